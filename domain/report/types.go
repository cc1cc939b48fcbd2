// Package report defines the dashboard payload handed to the external
// renderer and the validation findings produced alongside it.
package report

import (
	"time"

	"pladria/domain/core"
)

// Section keys are the stable identifiers the renderer binds to. Every
// declared bucket key is present in the payload even when its count is zero.
const (
	SectionUPR    = "upr"
	Section501511 = "501-511"
	BucketUPRCree = "upr-cree"
	BucketUPRNon  = "upr-non"
	Bucket501     = "501"
	Bucket511     = "511"
)

// UPRBuckets returns the fixed bucket set of the UPR section.
func UPRBuckets() []string {
	return []string{BucketUPRCree, BucketUPRNon}
}

// Ticket501511Buckets returns the fixed bucket set of the 501/511 section.
func Ticket501511Buckets() []string {
	return []string{Bucket501, Bucket511}
}

// DMTResult maps a collaborator name to a mean treatment duration.
// An absent entry means "no qualifying rows", never zero; zero cannot occur
// because only strictly positive durations enter the mean.
type DMTResult map[string]float64

// Collaborators returns the collaborators that have a computed mean.
func (d DMTResult) Collaborators() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	return names
}

// SectionCounts maps a bucket identifier to an occurrence count.
type SectionCounts map[string]int

// NewSectionCounts builds a count map with every declared bucket preset to
// zero, so the renderer always sees the full bucket set.
func NewSectionCounts(buckets []string) SectionCounts {
	counts := make(SectionCounts, len(buckets))
	for _, b := range buckets {
		counts[b] = 0
	}
	return counts
}

// Total sums all bucket counts of the section.
func (s SectionCounts) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}

// DashboardPayload is the canonical aggregate consumed by the static
// dashboard renderer. It is created fresh for each report generation,
// validated once, and never mutated afterwards.
type DashboardPayload struct {
	GeneratedAt   time.Time      `json:"generated_at"`
	Range         core.DateRange `json:"range"`
	DMTPA         DMTResult      `json:"dmt_pa"`
	DMTCM         DMTResult      `json:"dmt_cm"`
	UPR           SectionCounts  `json:"upr"`
	Tickets501511 SectionCounts  `json:"tickets_501_511"`
}
