package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdempotence(t *testing.T) {
	for _, tag := range Tags() {
		assert.Equal(t, tag, Normalize(string(tag)), "canonical tag %s must normalize to itself", tag)
	}
}

func TestNormalizeSeparatorEquivalence(t *testing.T) {
	variants := []string{"UPR NOK", "UPR-NOK", "UPR_NOK", "upr nok", " upr - nok "}
	for _, v := range variants {
		assert.Equal(t, TagUPRNOK, Normalize(v), "variant %q", v)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  string
		want Tag
	}{
		{"OK", TagOK},
		{"ok", TagOK},
		{"NOK", TagNOK},
		{"KO", TagNOK},
		{"UPR OK", TagUPROK},
		{"upr_ok", TagUPROK},
		{"UPR KO", TagUPRNOK},
		{"", TagUnrecognized},
		{"RAS", TagUnrecognized},
		{"UPRNOK", TagUnrecognized},
		{"NOK UPR", TagUnrecognized},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.raw), "input %q", tt.raw)
	}
}

func TestIsRecognized(t *testing.T) {
	assert.True(t, IsRecognized("upr ok"))
	assert.False(t, IsRecognized("mystery label"))
}
