package queries

import (
	"errors"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves every delivery still in flight, meaning
// everything except delivered and cancelled ones. Failed deliveries stay in
// the result so operators can see what needs intervention.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for in-flight deliveries.
// This is a parameterless query that fetches the complete active set.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is one in-flight delivery in the read model.
type GetActiveDeliveriesQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	DriverID  *kernel.UUID
	Address   string
	Status    string
	CreatedAt time.Time
}
