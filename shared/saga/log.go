package saga

import (
	"context"
	"time"

	"github.com/philippedeb/order-system/shared/models"
	"github.com/pkg/errors"
)

// SagaSubject is the Subject used for saga-level log entries; step-level
// entries use the step name as their subject.
const SagaSubject = "saga"

// ErrStorageUnavailable is returned by Log implementations when the
// backing store is unreachable. Appends never silently drop entries.
var ErrStorageUnavailable = errors.New("saga log storage unavailable")

// Entry is one saga or step state transition. Insertion order within a
// saga is causal order.
type Entry struct {
	SagaID    models.ID `json:"saga_id"`
	Subject   string    `json:"subject"`
	State     string    `json:"state"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEntry creates a log entry stamped with the current time
func NewEntry(sagaID models.ID, subject, state string) Entry {
	return Entry{
		SagaID:    sagaID,
		Subject:   subject,
		State:     state,
		Timestamp: time.Now(),
	}
}

// Log records saga and step state transitions for audit. The step
// history is append-only; the saga-level summary is a mutable "current
// status" record layered on top of it (UpdateLatestState rewrites the
// saga summary entry in place rather than appending, which is the one
// deliberate breach of append-only semantics).
type Log interface {
	// Append atomically appends one entry. It fails with
	// ErrStorageUnavailable when the backing store is unreachable.
	Append(ctx context.Context, entry Entry) error

	// FindBySagaID returns all entries for a saga in insertion order.
	FindBySagaID(ctx context.Context, sagaID models.ID) ([]Entry, error)

	// UpdateLatestState rewrites the saga-level summary entry with a
	// new state, preserving the step history.
	UpdateLatestState(ctx context.Context, sagaID models.ID, state string) error
}
