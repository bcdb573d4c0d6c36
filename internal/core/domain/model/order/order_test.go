package order_test

import (
	"testing"
	"time"

	"boozebuddies/internal/core/domain/model/kernel"
	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, quantity int, unitPrice string) *order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), quantity, decimal.RequireFromString(unitPrice))
	require.NoError(t, err)
	return item
}

func newTestOrder(t *testing.T, items ...*order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		"742 Evergreen Terrace",
		"tok_visa",
		items,
		decimal.Zero,
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("starts_pending_with_no_driver", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "9.99"))

		assert.Equal(t, order.StatusPending, o.Status())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.EstimatedDeliveryTime())
		require.NoError(t, o.Validate())
	})

	t.Run("requires_valid_id", func(t *testing.T) {
		var zeroID kernel.UUID
		_, err := order.NewOrder(zeroID, kernel.NewUUID(), kernel.NewUUID(),
			"addr", "tok", nil, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("requires_delivery_address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "tok", nil, decimal.Zero)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("rejects_zero_quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 0, decimal.NewFromInt(5))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_negative_quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), -2, decimal.NewFromInt(5))

		require.Error(t, err)
	})

	t.Run("rejects_negative_unit_price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), 1, decimal.NewFromInt(-1))

		require.Error(t, err)
	})

	t.Run("allows_zero_unit_price_for_catalog_adoption", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), 1, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, item.UnitPrice().IsZero())
	})
}

func TestItem_Stamp(t *testing.T) {
	t.Run("assigns_line_and_name_and_subtotal", func(t *testing.T) {
		item := mustItem(t, 3, "15.00")

		err := item.Stamp(2, "Pinot Noir", decimal.RequireFromString("12.00"))

		require.NoError(t, err)
		assert.Equal(t, 2, item.LineNo())
		assert.Equal(t, "Pinot Noir", item.Name())
		assert.True(t, item.UnitPrice().Equal(decimal.RequireFromString("15.00")),
			"submitted price must not be overwritten")
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("45.00")))
	})

	t.Run("adopts_catalog_price_when_unset", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), 2, decimal.Zero)
		require.NoError(t, err)

		err = item.Stamp(1, "Lager", decimal.RequireFromString("4.50"))

		require.NoError(t, err)
		assert.True(t, item.UnitPrice().Equal(decimal.RequireFromString("4.50")))
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("9.00")))
	})

	t.Run("rejects_non_positive_line_number", func(t *testing.T) {
		item := mustItem(t, 1, "1.00")

		err := item.Stamp(0, "x", decimal.Zero)

		require.Error(t, err)
	})
}

func TestOrder_Finalize(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	t.Run("computes_total_from_subtotals_when_unset", func(t *testing.T) {
		first := mustItem(t, 2, "10.00")
		second := mustItem(t, 3, "15.00")
		require.NoError(t, first.Stamp(1, "Beer", decimal.Zero))
		require.NoError(t, second.Stamp(2, "Wine", decimal.Zero))
		o := newTestOrder(t, first, second)

		o.Finalize(now)

		assert.True(t, o.Total().Equal(decimal.RequireFromString("65.00")),
			"expected 65.00, got %s", o.Total())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("trusts_pre_supplied_total", func(t *testing.T) {
		item := mustItem(t, 2, "10.00")
		require.NoError(t, item.Stamp(1, "Beer", decimal.Zero))
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"addr", "tok", []*order.Item{item}, decimal.RequireFromString("99.00"))
		require.NoError(t, err)

		o.Finalize(now)

		assert.True(t, o.Total().Equal(decimal.RequireFromString("99.00")))
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	t.Run("legal_transition_applies_and_touches_updated_at", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))

		err := o.TransitionTo(order.StatusConfirmed, now)

		require.NoError(t, err)
		assert.Equal(t, order.StatusConfirmed, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("illegal_transition_names_both_statuses", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))

		err := o.TransitionTo(order.StatusCompleted, now)

		require.Error(t, err)
		var transitionErr *order.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.StatusPending, transitionErr.From)
		assert.Equal(t, order.StatusCompleted, transitionErr.To)
		assert.Contains(t, err.Error(), "PENDING")
		assert.Contains(t, err.Error(), "COMPLETED")
		assert.Equal(t, order.StatusPending, o.Status(), "status must not change")
	})

	t.Run("rejects_invalid_target_enum", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))

		err := o.TransitionTo(order.StatusUnknown, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Cancel(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	t.Run("pending_order_can_be_cancelled", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))
		assert.True(t, o.CanBeCancelled())

		require.NoError(t, o.Cancel(now))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("confirmed_order_can_be_cancelled", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))
		require.NoError(t, o.TransitionTo(order.StatusConfirmed, now))

		require.NoError(t, o.Cancel(now))
	})

	t.Run("preparing_order_cannot_be_cancelled", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))
		require.NoError(t, o.TransitionTo(order.StatusConfirmed, now))
		require.NoError(t, o.TransitionTo(order.StatusPreparing, now))

		err := o.Cancel(now)

		require.Error(t, err)
		var cancelErr *order.CancellationNotAllowedError
		require.ErrorAs(t, err, &cancelErr)
		assert.Equal(t, order.StatusPreparing, cancelErr.Status)
		assert.Contains(t, err.Error(), "PREPARING")
		assert.Equal(t, order.StatusPreparing, o.Status())
	})

	t.Run("cancelled_order_cannot_be_cancelled_again", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))
		require.NoError(t, o.Cancel(now))

		err := o.Cancel(now)

		require.Error(t, err)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	t.Run("binds_driver", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))
		driverID := kernel.NewUUID()

		require.NoError(t, o.AssignDriver(driverID, now))

		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("rejects_zero_driver_id", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, 1, "5.00"))
		var zero kernel.UUID

		err := o.AssignDriver(zero, now)

		require.Error(t, err)
		assert.Nil(t, o.DriverID())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	eta := now.Add(45 * time.Minute)
	driverID := kernel.NewUUID()
	item, err := order.RestoreItem(1, kernel.NewUUID(), "Stout", 2,
		decimal.RequireFromString("6.00"), decimal.RequireFromString("12.00"))
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &driverID,
		"addr", "tok", []*order.Item{item},
		decimal.RequireFromString("12.00"), order.StatusPreparing,
		&eta, now, now, 3,
	)

	require.NoError(t, err)
	assert.Equal(t, order.StatusPreparing, o.Status())
	assert.Equal(t, int64(3), o.Version())
	require.NotNil(t, o.DriverID())
	assert.True(t, o.DriverID().IsEqual(driverID))
	require.NotNil(t, o.EstimatedDeliveryTime())
	assert.Equal(t, eta, *o.EstimatedDeliveryTime())

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			"addr", "tok", nil, decimal.Zero, order.Status(42),
			nil, now, now, 0,
		)
		require.Error(t, err)
	})
}
