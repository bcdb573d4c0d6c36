package order_test

import (
	"testing"

	"boozebuddies/internal/core/domain/model/order"
	"boozebuddies/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    order.Status
		wantErr bool
	}{
		{"exact_upper", "PENDING", order.StatusPending, false},
		{"lower_case", "confirmed", order.StatusConfirmed, false},
		{"mixed_case", "Ready_For_Pickup", order.StatusReadyForPickup, false},
		{"surrounding_spaces", "  COMPLETED  ", order.StatusCompleted, false},
		{"preparing", "preparing", order.StatusPreparing, false},
		{"cancelled", "CANCELLED", order.StatusCancelled, false},
		{"unrecognized", "SHIPPED", order.StatusUnknown, true},
		{"empty", "", order.StatusUnknown, true},
		{"unknown_not_accepted", "UNKNOWN", order.StatusUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseStatus(tt.input)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("forward_chain_advances_one_stage", func(t *testing.T) {
		assert.True(t, order.StatusPending.CanTransitionTo(order.StatusConfirmed))
		assert.True(t, order.StatusConfirmed.CanTransitionTo(order.StatusPreparing))
		assert.True(t, order.StatusPreparing.CanTransitionTo(order.StatusReadyForPickup))
		assert.True(t, order.StatusReadyForPickup.CanTransitionTo(order.StatusCompleted))
	})

	t.Run("skipping_stages_is_rejected", func(t *testing.T) {
		assert.False(t, order.StatusPending.CanTransitionTo(order.StatusPreparing))
		assert.False(t, order.StatusPending.CanTransitionTo(order.StatusCompleted))
		assert.False(t, order.StatusConfirmed.CanTransitionTo(order.StatusCompleted))
	})

	t.Run("backward_steps_are_rejected", func(t *testing.T) {
		assert.False(t, order.StatusConfirmed.CanTransitionTo(order.StatusPending))
		assert.False(t, order.StatusCompleted.CanTransitionTo(order.StatusReadyForPickup))
	})

	t.Run("cancelled_reachable_from_any_non_terminal", func(t *testing.T) {
		assert.True(t, order.StatusPending.CanTransitionTo(order.StatusCancelled))
		assert.True(t, order.StatusConfirmed.CanTransitionTo(order.StatusCancelled))
		assert.True(t, order.StatusPreparing.CanTransitionTo(order.StatusCancelled))
		assert.True(t, order.StatusReadyForPickup.CanTransitionTo(order.StatusCancelled))
	})

	t.Run("terminal_states_allow_nothing", func(t *testing.T) {
		assert.False(t, order.StatusCompleted.CanTransitionTo(order.StatusCancelled))
		assert.False(t, order.StatusCancelled.CanTransitionTo(order.StatusCancelled))
		assert.False(t, order.StatusCancelled.CanTransitionTo(order.StatusConfirmed))
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "READY_FOR_PICKUP", order.StatusReadyForPickup.String())
	assert.Equal(t, "UNKNOWN", order.StatusUnknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.StatusPending.Validate())
	require.NoError(t, order.StatusCancelled.Validate())
	require.Error(t, order.StatusUnknown.Validate())
	require.Error(t, order.Status(99).Validate())
}
