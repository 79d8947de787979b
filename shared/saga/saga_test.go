package saga

import (
	"context"
	"sync"
	"testing"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryLog is an in-memory Log used to assert on recorded transitions
type memoryLog struct {
	mu      sync.Mutex
	entries []Entry
	failing bool
}

func (l *memoryLog) Append(ctx context.Context, entry Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failing {
		return ErrStorageUnavailable
	}
	l.entries = append(l.entries, entry)
	return nil
}

func (l *memoryLog) FindBySagaID(ctx context.Context, sagaID models.ID) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failing {
		return nil, ErrStorageUnavailable
	}
	var out []Entry
	for _, e := range l.entries {
		if e.SagaID == sagaID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (l *memoryLog) UpdateLatestState(ctx context.Context, sagaID models.ID, state string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failing {
		return ErrStorageUnavailable
	}
	for i, e := range l.entries {
		if e.SagaID == sagaID && e.Subject == SagaSubject {
			l.entries[i].State = state
			return nil
		}
	}
	return errors.Errorf("no saga entry for %s", sagaID)
}

// recorder builds operations that record their invocations
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) op(name string, ok bool, err error) Operation {
	return func(ctx context.Context) (bool, error) {
		r.mu.Lock()
		r.calls = append(r.calls, name)
		r.mu.Unlock()
		return ok, err
	}
}

func (r *recorder) count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

func TestSaga_Execute_AllStepsSucceed(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{}
	rec := &recorder{}

	s := New(sagaID, log)
	require.NoError(t, s.AddStep("Decrease i1", rec.op("a1", true, nil), rec.op("c1", true, nil)))
	require.NoError(t, s.AddStep("Decrease i2", rec.op("a2", true, nil), rec.op("c2", true, nil)))
	require.NoError(t, s.AddStep("Payment", rec.op("pay", true, nil), rec.op("refund", true, nil)))

	result, err := s.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusSucceeded, result.Status)
	assert.False(t, result.CompensationFailed)
	assert.False(t, result.LogDegraded)
	for _, status := range result.StepStatuses {
		assert.Equal(t, StepSucceeded, status)
	}

	// No compensation is ever invoked on the success path
	assert.Zero(t, rec.count("c1"))
	assert.Zero(t, rec.count("c2"))
	assert.Zero(t, rec.count("refund"))
	assert.Equal(t, []string{"a1", "a2", "pay"}, rec.calls)
}

func TestSaga_Execute_MidStepFailureCompensatesInReverse(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{}
	rec := &recorder{}

	s := New(sagaID, log)
	require.NoError(t, s.AddStep("s1", rec.op("a1", true, nil), rec.op("c1", true, nil)))
	require.NoError(t, s.AddStep("s2", rec.op("a2", true, nil), rec.op("c2", true, nil)))
	require.NoError(t, s.AddStep("s3", rec.op("a3", false, nil), rec.op("c3", true, nil)))
	require.NoError(t, s.AddStep("s4", rec.op("a4", true, nil), rec.op("c4", true, nil)))

	result, err := s.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, StepCompensated, result.StepStatuses["s1"])
	assert.Equal(t, StepCompensated, result.StepStatuses["s2"])
	assert.Equal(t, StepFailed, result.StepStatuses["s3"])

	// Steps after the failed one never run
	assert.Equal(t, StepCreated, result.StepStatuses["s4"])
	assert.Zero(t, rec.count("a4"))

	// Succeeded steps compensated exactly once, in strict reverse order
	assert.Equal(t, []string{"a1", "a2", "a3", "c2", "c1"}, rec.calls)
	assert.Equal(t, 1, rec.count("c1"))
	assert.Equal(t, 1, rec.count("c2"))
	assert.Zero(t, rec.count("c3"))
}

func TestSaga_Execute_TransportErrorIsFailureNotRejection(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{}
	rec := &recorder{}
	transportErr := errors.New("connection refused")

	s := New(sagaID, log)
	require.NoError(t, s.AddStep("s1", rec.op("a1", true, nil), rec.op("c1", true, nil)))
	require.NoError(t, s.AddStep("s2", rec.op("a2", false, transportErr), rec.op("c2", true, nil)))

	result, err := s.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, StepFailed, result.StepStatuses["s2"])
	assert.Equal(t, 1, rec.count("c1"))

	// The transport error stays recorded on the step
	var failedStep *Step
	for _, step := range s.steps {
		if step.Name == "s2" {
			failedStep = step
		}
	}
	require.NotNil(t, failedStep)
	assert.ErrorIs(t, failedStep.Err(), transportErr)
}

func TestSaga_Execute_CompensationFailureIsEscalated(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{}
	rec := &recorder{}

	s := New(sagaID, log)
	require.NoError(t, s.AddStep("s1", rec.op("a1", true, nil), rec.op("c1", false, nil)))
	require.NoError(t, s.AddStep("s2", rec.op("a2", false, nil), rec.op("c2", true, nil)))

	result, err := s.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.True(t, result.CompensationFailed)
	assert.Equal(t, StepCompensationFailed, result.StepStatuses["s1"])
	assert.Equal(t, StepFailed, result.StepStatuses["s2"])
}

func TestSaga_Execute_ConcurrentPhaseGatesLaterPhases(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{}
	rec := &recorder{}

	stock1, err := NewStep("Decrease i1", rec.op("a1", true, nil), rec.op("c1", true, nil))
	require.NoError(t, err)
	stock2, err := NewStep("Decrease i2", rec.op("a2", false, nil), rec.op("c2", true, nil))
	require.NoError(t, err)

	s := New(sagaID, log)
	require.NoError(t, s.AddPhase(stock1, stock2))
	require.NoError(t, s.AddStep("Payment", rec.op("pay", true, nil), rec.op("refund", true, nil)))

	result, err := s.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, StepCompensated, result.StepStatuses["Decrease i1"])
	assert.Equal(t, StepFailed, result.StepStatuses["Decrease i2"])

	// Payment never starts when the stock phase is unhealthy
	assert.Equal(t, StepCreated, result.StepStatuses["Payment"])
	assert.Zero(t, rec.count("pay"))
	assert.Equal(t, 1, rec.count("c1"))
	assert.Zero(t, rec.count("c2"))
}

func TestSaga_Execute_CannotRunTwice(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{}
	rec := &recorder{}

	s := New(sagaID, log)
	require.NoError(t, s.AddStep("s1", rec.op("a1", true, nil), rec.op("c1", true, nil)))

	_, err := s.Execute(context.Background())
	require.NoError(t, err)

	_, err = s.Execute(context.Background())
	assert.ErrorIs(t, err, ErrSagaAlreadyRun)
	assert.Equal(t, 1, rec.count("a1"))
}

func TestSaga_Execute_EmptySaga(t *testing.T) {
	s := New(models.GenerateUUID(), &memoryLog{})
	_, err := s.Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoSteps)
}

func TestSaga_Execute_LogCompleteness(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{}
	rec := &recorder{}

	s := New(sagaID, log)
	require.NoError(t, s.AddStep("s1", rec.op("a1", true, nil), rec.op("c1", true, nil)))
	require.NoError(t, s.AddStep("s2", rec.op("a2", false, nil), rec.op("c2", true, nil)))

	_, err := s.Execute(context.Background())
	require.NoError(t, err)

	entries, err := log.FindBySagaID(context.Background(), sagaID)
	require.NoError(t, err)

	var states []string
	for _, e := range entries {
		states = append(states, e.Subject+":"+e.State)
	}
	assert.Equal(t, []string{
		"saga:Failed", // summary entry, rewritten in place with the terminal state
		"s1:Running",
		"s1:Succeeded",
		"s2:Running",
		"s2:Failed",
		"s1:Compensated",
	}, states)
}

func TestSaga_Execute_DegradesWhenLogUnavailable(t *testing.T) {
	sagaID := models.GenerateUUID()
	log := &memoryLog{failing: true}
	rec := &recorder{}

	s := New(sagaID, log)
	require.NoError(t, s.AddStep("s1", rec.op("a1", true, nil), rec.op("c1", true, nil)))

	result, err := s.Execute(context.Background())
	require.NoError(t, err)

	// Execution proceeds; the degraded audit trail is surfaced
	assert.Equal(t, StatusSucceeded, result.Status)
	assert.True(t, result.LogDegraded)
	assert.Equal(t, 1, rec.count("a1"))
}

func TestStep_CompensateRequiresSuccess(t *testing.T) {
	step, err := NewStep("s1", func(ctx context.Context) (bool, error) {
		return false, nil
	}, func(ctx context.Context) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)

	_, err = step.compensate(context.Background())
	assert.ErrorIs(t, err, ErrStepNotCompensable)

	_, err = step.run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StepFailed, step.Status())

	_, err = step.compensate(context.Background())
	assert.ErrorIs(t, err, ErrStepNotCompensable)
}

func TestStep_RunOnlyOnce(t *testing.T) {
	step, err := NewStep("s1", func(ctx context.Context) (bool, error) {
		return true, nil
	}, func(ctx context.Context) (bool, error) {
		return true, nil
	})
	require.NoError(t, err)

	_, err = step.run(context.Background())
	require.NoError(t, err)

	_, err = step.run(context.Background())
	assert.ErrorIs(t, err, ErrStepAlreadyRun)
}

func TestNewStep_NilOperations(t *testing.T) {
	_, err := NewStep("s1", nil, nil)
	assert.ErrorIs(t, err, ErrNilOperation)
}
