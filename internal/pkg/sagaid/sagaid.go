// Package sagaid mints the identifier that ties together every
// downstream call belonging to a single saga instance.
package sagaid

import "github.com/storiqa/saga-coordinator/internal/pkg/uid"

// SagaId identifies a single saga instance. It is minted once at saga
// start and never changes; the same string is threaded into every
// downstream payload and path that keys resources by saga id
// (invoices/by-saga-id/{id}, users/user_by_saga_id/{id}, ...).
type SagaId string

// New mints a fresh SagaId, delegating to uid.NewUUID for the
// v7-preferred, v4-fallback generation every other id in this service
// uses.
func New() SagaId {
	return SagaId(uid.NewUUID())
}

// String implements fmt.Stringer.
func (s SagaId) String() string {
	return string(s)
}
