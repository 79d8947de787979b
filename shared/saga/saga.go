package saga

import (
	"context"
	"sync/atomic"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Status represents the lifecycle state of a saga
type Status string

const (
	StatusCreated   Status = "Created"
	StatusRunning   Status = "Running"
	StatusSucceeded Status = "Succeeded"
	StatusFailed    Status = "Failed"
)

var (
	ErrSagaAlreadyRun = errors.New("saga has already been run")
	ErrNoSteps        = errors.New("saga has no steps")
)

// Result is the terminal outcome of a saga run
type Result struct {
	SagaID       models.ID
	Status       Status
	StepStatuses map[string]StepStatus

	// CompensationFailed reports that at least one compensation itself
	// failed, leaving downstream state inconsistent. This condition is
	// not retried here and requires operator attention.
	CompensationFailed bool

	// LogDegraded reports that one or more audit log appends failed and
	// the recorded history may be incomplete.
	LogDegraded bool
}

// Saga executes an ordered sequence of steps against remote services
// and compensates the steps that succeeded when a later one fails.
//
// Steps are grouped into phases. Phases run strictly in declared order,
// each awaited before the next starts; steps inside one phase are
// causally independent of each other and run concurrently. The first
// phase containing a failed step stops forward progress, and every step
// that succeeded is compensated in strict reverse declared order.
type Saga struct {
	ID models.ID

	log    Log
	phases [][]*Step
	steps  []*Step
	status Status

	logDegraded atomic.Bool
}

// New creates a saga correlated to the given business transaction ID.
// The log is a required, injected dependency.
func New(id models.ID, log Log) *Saga {
	return &Saga{
		ID:     id,
		log:    log,
		status: StatusCreated,
	}
}

// AddStep appends a single sequential step
func (s *Saga) AddStep(name string, action, compensation Operation) error {
	step, err := NewStep(name, action, compensation)
	if err != nil {
		return err
	}
	s.phases = append(s.phases, []*Step{step})
	s.steps = append(s.steps, step)
	return nil
}

// AddPhase appends a group of causally independent steps that run
// concurrently. The phase is all-or-nothing: later phases start only if
// every step in it succeeded.
func (s *Saga) AddPhase(steps ...*Step) error {
	if len(steps) == 0 {
		return ErrNoSteps
	}
	s.phases = append(s.phases, steps)
	s.steps = append(s.steps, steps...)
	return nil
}

// Status returns the current saga status
func (s *Saga) Status() Status {
	return s.status
}

// StepStatuses returns the status of every step keyed by step name
func (s *Saga) StepStatuses() map[string]StepStatus {
	statuses := make(map[string]StepStatus, len(s.steps))
	for _, step := range s.steps {
		statuses[step.Name] = step.Status()
	}
	return statuses
}

// Execute runs the saga to a terminal status. Business rejections and
// transport errors from steps are recovered into the Result; the
// returned error only reports misuse (re-running a finished saga or an
// empty saga).
func (s *Saga) Execute(ctx context.Context) (*Result, error) {
	if s.status != StatusCreated {
		return nil, ErrSagaAlreadyRun
	}
	if len(s.steps) == 0 {
		return nil, ErrNoSteps
	}

	s.status = StatusRunning
	s.appendLog(ctx, NewEntry(s.ID, SagaSubject, string(StatusRunning)))

	failed := false
	for _, phase := range s.phases {
		s.runPhase(ctx, phase)

		for _, step := range phase {
			if step.Status() == StepFailed {
				failed = true
			}
		}
		if failed {
			break
		}
	}

	compensationFailed := false
	if failed {
		// Strict reverse declared order, each compensation awaited
		// before the previous one starts.
		for i := len(s.steps) - 1; i >= 0; i-- {
			step := s.steps[i]
			if step.Status() != StepSucceeded {
				continue
			}
			if _, err := step.compensate(ctx); err != nil {
				return nil, err
			}
			if step.Status() == StepCompensationFailed {
				compensationFailed = true
			}
			s.appendLog(ctx, NewEntry(s.ID, step.Name, string(step.Status())))
		}
		s.status = StatusFailed
	} else {
		s.status = StatusSucceeded
	}

	if err := s.log.UpdateLatestState(ctx, s.ID, string(s.status)); err != nil {
		s.logDegraded.Store(true)
	}

	return &Result{
		SagaID:             s.ID,
		Status:             s.status,
		StepStatuses:       s.StepStatuses(),
		CompensationFailed: compensationFailed,
		LogDegraded:        s.logDegraded.Load(),
	}, nil
}

// runPhase executes every step of a phase and waits for all of them.
// Steps never abort their siblings: a failed step still lets the others
// finish, so the compensation pass sees the real outcome of each.
func (s *Saga) runPhase(ctx context.Context, phase []*Step) {
	if len(phase) == 1 {
		s.runStep(ctx, phase[0])
		return
	}

	var g errgroup.Group
	for _, step := range phase {
		step := step
		g.Go(func() error {
			s.runStep(ctx, step)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // step outcomes live on the steps
}

func (s *Saga) runStep(ctx context.Context, step *Step) {
	s.appendLog(ctx, NewEntry(s.ID, step.Name, string(StepRunning)))
	step.run(ctx) //nolint:errcheck // outcome recorded on the step
	s.appendLog(ctx, NewEntry(s.ID, step.Name, string(step.Status())))
}

// appendLog records a transition, degrading to best-effort when the log
// backend is unavailable: execution proceeds and the result carries the
// degraded flag so callers know the audit trail may be incomplete.
func (s *Saga) appendLog(ctx context.Context, entry Entry) {
	if err := s.log.Append(ctx, entry); err != nil {
		s.logDegraded.Store(true)
	}
}
