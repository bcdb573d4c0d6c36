package queries

import (
	"context"

	"boozebuddies/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetTotalRevenueQueryHandler sums authorized payment amounts over a period.
// The ledger is append-only and a refund is its own row, so authorization rows
// keep counting after a refund. Refunds are never netted against revenue.
type GetTotalRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetTotalRevenueQueryHandler creates a handler for revenue queries.
// Requires a GORM database connection for query execution.
func NewGetTotalRevenueQueryHandler(db *gorm.DB) GetTotalRevenueQueryHandler {
	return GetTotalRevenueQueryHandler{db: db}
}

// Handle executes the revenue aggregation for the query's period.
func (h GetTotalRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetTotalRevenueQuery,
) (GetTotalRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTotalRevenueQueryResponse{}, err
	}

	var total decimal.Decimal

	row := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE status = ?
		  AND created_at >= ?
		  AND created_at <= ?
	`,
		payment.StatusAuthorized.String(),
		query.From(),
		query.To(),
	).Row()

	if err := row.Scan(&total); err != nil {
		return GetTotalRevenueQueryResponse{}, err
	}

	return GetTotalRevenueQueryResponse{
		Total: total,
		From:  query.From(),
		To:    query.To(),
	}, nil
}
