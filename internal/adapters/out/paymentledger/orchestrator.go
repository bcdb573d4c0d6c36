// Package paymentledger implements the payment side effects of order state
// changes as an append-only ledger. There is no external processor call here;
// authorization and refund are ledger writes, which keeps the money trail
// auditable and the operations idempotence-checkable by status.
package paymentledger

import (
	"context"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/core/domain/model/payment"
	"boozebuddies/internal/core/ports"
	"boozebuddies/internal/metrics"
	"boozebuddies/internal/pkg/clock"
	"boozebuddies/internal/pkg/errs"
)

// LedgerOrchestrator implements ports.PaymentOrchestrator over the payment
// repository.
type LedgerOrchestrator struct {
	payments ports.PaymentRepository
	clock    clock.Clock
}

// NewLedgerOrchestrator creates an orchestrator writing to the given ledger.
func NewLedgerOrchestrator(payments ports.PaymentRepository, clk clock.Clock) *LedgerOrchestrator {
	return &LedgerOrchestrator{
		payments: payments,
		clock:    clk,
	}
}

// Authorize places an authorization hold for the order's total. A second
// authorization for the same order is rejected.
func (o *LedgerOrchestrator) Authorize(ctx context.Context, aggregate *order.Order, method string) (*payment.Payment, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}
	if method == "" {
		return nil, errs.NewValueIsRequiredError("payment method")
	}

	existing, err := o.payments.GetAuthorizedByOrderID(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, payment.NewAlreadyAuthorizedError(aggregate.ID())
	}

	record, err := payment.NewAuthorization(
		kernel.NewUUID(), aggregate.ID(), aggregate.UserID(),
		aggregate.Total(), method, o.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = o.payments.Add(ctx, record); err != nil {
		return nil, err
	}

	metrics.PaymentsAuthorizedTotal.Inc()
	return record, nil
}

// Refund reverses the order's authorized payment by appending a new refund
// record with the same amount and method. The authorization row is left
// untouched; without one the refund fails.
func (o *LedgerOrchestrator) Refund(ctx context.Context, aggregate *order.Order, reason string) (*payment.Payment, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	authorized, err := o.payments.GetAuthorizedByOrderID(ctx, aggregate.ID())
	if err != nil {
		return nil, err
	}
	if authorized == nil {
		return nil, payment.NewNoAuthorizedPaymentError(aggregate.ID())
	}

	record, err := payment.NewRefund(
		kernel.NewUUID(), aggregate.ID(), aggregate.UserID(),
		authorized.Amount(), authorized.Method(), reason, o.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = o.payments.Add(ctx, record); err != nil {
		return nil, err
	}

	metrics.PaymentsRefundedTotal.Inc()
	return record, nil
}
