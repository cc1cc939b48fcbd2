package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"pladria/domain/core"
	"pladria/domain/report"
	"pladria/internal"
)

// GenerationOutcome is what one report-generation task produces.
type GenerationOutcome struct {
	Payload  *report.DashboardPayload
	Findings *report.ValidationReport
}

// Resolution is the single delivery of a finished task: exactly one of
// Outcome or Err is set, never both.
type Resolution struct {
	Generation uuid.UUID
	Name       string
	Outcome    *GenerationOutcome
	Err        error
}

// Task is an in-flight unit of work tagged with a generation identifier.
// The task resolves exactly once; a caller that has since submitted a newer
// generation discards this task's resolution instead of applying it.
type Task struct {
	Name       string
	Generation uuid.UUID
	done       chan Resolution
}

// Done returns the channel the single resolution is delivered on.
func (t *Task) Done() <-chan Resolution {
	return t.done
}

// Await blocks until the task resolves or the context is cancelled.
func (t *Task) Await(ctx context.Context) (Resolution, error) {
	select {
	case res := <-t.done:
		return res, nil
	case <-ctx.Done():
		return Resolution{}, ctx.Err()
	}
}

// TaskRunner executes report generations off the interactive thread.
// Concurrent tasks are independent; the runner imposes no ordering and no
// timeout, callers may impose one through the context.
type TaskRunner struct {
	log *internal.Logger
}

// NewTaskRunner creates a task runner.
func NewTaskRunner() *TaskRunner {
	return &TaskRunner{log: internal.NewDefaultLogger("TaskRunner")}
}

// Submit starts work on a background goroutine and returns immediately.
// The returned task carries a fresh generation identifier and resolves
// exactly once, with the work's outcome or its error. A panicking work
// function resolves the task with an error rather than killing the process.
func (r *TaskRunner) Submit(ctx context.Context, name string, work func(context.Context) (*GenerationOutcome, error)) *Task {
	task := &Task{
		Name:       name,
		Generation: uuid.New(),
		done:       make(chan Resolution, 1),
	}
	r.log.Debug("task %s submitted (generation %s)", name, task.Generation)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				r.log.Error("task %s panicked: %v", name, p)
				task.done <- Resolution{
					Generation: task.Generation,
					Name:       name,
					Err:        fmt.Errorf("task %s panicked: %v", name, p),
				}
			}
		}()
		outcome, err := work(ctx)
		if err != nil {
			r.log.Warn("task %s failed: %v", name, err)
			task.done <- Resolution{Generation: task.Generation, Name: name, Err: err}
			return
		}
		task.done <- Resolution{Generation: task.Generation, Name: name, Outcome: outcome}
	}()
	return task
}

// Dispatcher tracks the most recent generation per task name so that a
// stale in-flight result, arriving after a newer submission, is dropped
// instead of overwriting the newest request's output.
type Dispatcher struct {
	runner *TaskRunner
	log    *internal.Logger

	mu     sync.Mutex
	latest map[string]uuid.UUID
}

// NewDispatcher creates a dispatcher over a runner.
func NewDispatcher(runner *TaskRunner) *Dispatcher {
	return &Dispatcher{
		runner: runner,
		log:    internal.NewDefaultLogger("Dispatcher"),
		latest: make(map[string]uuid.UUID),
	}
}

// Submit starts a task and records it as the current generation for its
// name, superseding any in-flight task under the same name.
func (d *Dispatcher) Submit(ctx context.Context, name string, work func(context.Context) (*GenerationOutcome, error)) *Task {
	task := d.runner.Submit(ctx, name, work)
	d.mu.Lock()
	d.latest[name] = task.Generation
	d.mu.Unlock()
	return task
}

// Accept checks a resolution against the current generation for its task
// name. Stale resolutions return ErrTaskSuperseded and must be discarded by
// the caller.
func (d *Dispatcher) Accept(res Resolution) error {
	d.mu.Lock()
	current, ok := d.latest[res.Name]
	d.mu.Unlock()
	if !ok || current != res.Generation {
		d.log.Debug("dropping stale resolution of %s (generation %s)", res.Name, res.Generation)
		return fmt.Errorf("%w: task %s", core.ErrTaskSuperseded, res.Name)
	}
	return res.Err
}
