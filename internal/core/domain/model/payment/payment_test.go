package payment_test

import (
	"testing"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paidAt = time.Date(2026, 7, 4, 12, 0, 0, 0, time.UTC)

func TestNewAuthorization(t *testing.T) {
	p, err := payment.NewAuthorization(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.RequireFromString("65.00"), "tok_visa", paidAt,
	)

	require.NoError(t, err)
	assert.Equal(t, payment.StatusAuthorized, p.Status())
	assert.Empty(t, p.RefundReason())
	assert.True(t, p.Amount().Equal(decimal.RequireFromString("65.00")))
	assert.Equal(t, paidAt, p.CreatedAt())
}

func TestNewRefund(t *testing.T) {
	p, err := payment.NewRefund(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.RequireFromString("65.00"), "tok_visa", "Order cancelled by user", paidAt,
	)

	require.NoError(t, err)
	assert.Equal(t, payment.StatusRefunded, p.Status())
	assert.Equal(t, "Order cancelled by user", p.RefundReason())
}

func TestPayment_Validation(t *testing.T) {
	t.Run("rejects_negative_amount", func(t *testing.T) {
		_, err := payment.NewAuthorization(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(-1), "tok", paidAt,
		)
		require.Error(t, err)
	})

	t.Run("rejects_empty_method", func(t *testing.T) {
		_, err := payment.NewAuthorization(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			decimal.NewFromInt(10), "", paidAt,
		)
		require.Error(t, err)
	})

	t.Run("rejects_zero_order_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := payment.NewAuthorization(
			kernel.NewUUID(), zero, kernel.NewUUID(),
			decimal.NewFromInt(10), "tok", paidAt,
		)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p payment.Payment
		require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
	})
}

func TestRestorePayment_RejectsInvalidStatus(t *testing.T) {
	_, err := payment.RestorePayment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		decimal.NewFromInt(10), "tok", payment.Status(42), "", paidAt,
	)
	require.Error(t, err)
}
