package saga

import (
	"context"

	"github.com/pkg/errors"
)

// StepStatus represents the lifecycle state of a single saga step
type StepStatus string

const (
	StepCreated            StepStatus = "Created"
	StepRunning            StepStatus = "Running"
	StepSucceeded          StepStatus = "Succeeded"
	StepFailed             StepStatus = "Failed"
	StepCompensated        StepStatus = "Compensated"
	StepCompensationFailed StepStatus = "CompensationFailed"
)

var (
	ErrNilOperation       = errors.New("step action and compensation must not be nil")
	ErrStepAlreadyRun     = errors.New("step has already been run")
	ErrStepNotCompensable = errors.New("step can only be compensated after its action succeeded")
)

// Operation performs one remote call. It returns true when the remote
// side accepted the call and false when it rejected it for a business
// reason (insufficient stock, insufficient credit). A non-nil error
// means the call could not be completed at the transport level, which
// is a distinct outcome from a rejection.
type Operation func(ctx context.Context) (bool, error)

// Step pairs one action with the compensation that semantically undoes
// it. A step belongs to exactly one saga and is never reused.
type Step struct {
	Name string

	action       Operation
	compensation Operation

	status StepStatus
	err    error
}

// NewStep creates a step in the Created state
func NewStep(name string, action, compensation Operation) (*Step, error) {
	if action == nil || compensation == nil {
		return nil, ErrNilOperation
	}
	return &Step{
		Name:         name,
		action:       action,
		compensation: compensation,
		status:       StepCreated,
	}, nil
}

// Status returns the current step status
func (s *Step) Status() StepStatus {
	return s.status
}

// Err returns the transport error recorded for the step, if any
func (s *Step) Err() error {
	return s.err
}

// run executes the action exactly once. A business rejection and a
// transport error both leave the step Failed; the transport error is
// kept on the step so callers can tell the two apart.
func (s *Step) run(ctx context.Context) (bool, error) {
	if s.status != StepCreated {
		return false, ErrStepAlreadyRun
	}

	s.status = StepRunning

	ok, err := s.action(ctx)
	if err != nil {
		s.status = StepFailed
		s.err = err
		return false, nil
	}

	if ok {
		s.status = StepSucceeded
	} else {
		s.status = StepFailed
	}
	return ok, nil
}

// compensate executes the compensation exactly once, and only for a
// step whose action succeeded.
func (s *Step) compensate(ctx context.Context) (bool, error) {
	if s.status != StepSucceeded {
		return false, ErrStepNotCompensable
	}

	ok, err := s.compensation(ctx)
	if err != nil {
		s.status = StepCompensationFailed
		s.err = err
		return false, nil
	}

	if ok {
		s.status = StepCompensated
	} else {
		s.status = StepCompensationFailed
	}
	return ok, nil
}
