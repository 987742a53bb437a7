package order_test

import (
	"fmt"
	"testing"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []order.Status{
	order.Pending,
	order.Claimed,
	order.InDelivery,
	order.Delivered,
	order.Abandoned,
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate declared statuses", func(t *testing.T) {
		for _, status := range allStatuses {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject Unknown and out of range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(6)} {
			err := status.Validate()

			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
		}
	})
}

func TestStatus_String(t *testing.T) {
	names := []string{"Pending", "Claimed", "InDelivery", "Delivered", "Abandoned"}
	for i, status := range allStatuses {
		assert.Equal(t, names[i], status.String())
	}

	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	tests := []struct {
		name    string
		apply   transition
		allowed map[order.Status]order.Status
	}{
		{
			name:    "claim",
			apply:   order.Status.Claim,
			allowed: map[order.Status]order.Status{order.Pending: order.Claimed},
		},
		{
			name:    "dispatch",
			apply:   order.Status.Dispatch,
			allowed: map[order.Status]order.Status{order.Claimed: order.InDelivery},
		},
		{
			name:    "pair",
			apply:   order.Status.Pair,
			allowed: map[order.Status]order.Status{order.Pending: order.InDelivery},
		},
		{
			name:    "deliver",
			apply:   order.Status.Deliver,
			allowed: map[order.Status]order.Status{order.InDelivery: order.Delivered},
		},
		{
			name:  "abandon",
			apply: order.Status.Abandon,
			allowed: map[order.Status]order.Status{
				order.Claimed:    order.Abandoned,
				order.InDelivery: order.Abandoned,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range append([]order.Status{order.Unknown}, allStatuses...) {
				got, err := tt.apply(from)

				if want, ok := tt.allowed[from]; ok {
					require.NoError(t, err, "%s from %s", tt.name, from)
					assert.Equal(t, want, got)
					continue
				}

				require.ErrorIs(t, err, errs.ErrPreconditionIsNotMet, "%s from %s", tt.name, from)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to %s", from, tt.name))
				assert.Equal(t, order.Unknown, got)
			}
		})
	}
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Delivered.IsFinal())
	assert.True(t, order.Abandoned.IsFinal())
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.Claimed.IsFinal())
	assert.False(t, order.InDelivery.IsFinal())
}
