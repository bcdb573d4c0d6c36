package queries

import (
	"errors"
	"time"

	"boozebuddies/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetTotalRevenueQueryIsNotConstructed = errors.New(
		"GetTotalRevenueQuery must be created via NewGetTotalRevenueQuery constructor",
	)
	ErrPeriodIsInvalid = errors.New("period start must not be after period end")
)

// GetTotalRevenueQuery computes revenue over a period. Revenue counts payments
// whose current status is authorized. Refund rows carry their own status and
// are not netted against the total.
type GetTotalRevenueQuery struct { //nolint:recvcheck //using for validation
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetTotalRevenueQuery creates a revenue query for the inclusive period
// [from, to].
func NewGetTotalRevenueQuery(from, to time.Time) (GetTotalRevenueQuery, error) {
	q := GetTotalRevenueQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPeriod(from, to); err != nil {
		return GetTotalRevenueQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTotalRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetTotalRevenueQueryIsNotConstructed)
}

// From returns the period start.
func (q GetTotalRevenueQuery) From() time.Time {
	return q.from
}

// To returns the period end.
func (q GetTotalRevenueQuery) To() time.Time {
	return q.to
}

func (q *GetTotalRevenueQuery) setPeriod(from, to time.Time) error {
	if from.After(to) {
		return ErrPeriodIsInvalid
	}
	q.from = from
	q.to = to
	return nil
}

// GetTotalRevenueQueryResponse is the aggregated revenue for the period.
type GetTotalRevenueQueryResponse struct {
	Total decimal.Decimal
	From  time.Time
	To    time.Time
}
