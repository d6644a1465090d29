package order_test

import (
	"testing"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  order.Status
	}{
		{"empty is unknown", "", order.Unknown},
		{"pending", "PENDING", order.Pending},
		{"paid", "PAID", order.Paid},
		{"approved", "APPROVED", order.Approved},
		{"cancelling", "CANCELLING", order.Cancelling},
		{"cancelled", "CANCELLED", order.Cancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := order.ParseStatus(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			if tt.input != "" {
				assert.Equal(t, tt.input, got.String())
			}
		})
	}

	t.Run("rejects unknown names", func(t *testing.T) {
		for _, input := range []string{"UNKNOWN", "pending", "SHIPPED"} {
			_, err := order.ParseStatus(input)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	assert.NoError(t, order.Unknown.Validate())
	assert.NoError(t, order.Cancelled.Validate())
	assert.ErrorIs(t, order.Status(-1).Validate(), errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatus_IsFinal(t *testing.T) {
	assert.True(t, order.Approved.IsFinal())
	assert.True(t, order.Cancelled.IsFinal())
	assert.False(t, order.Pending.IsFinal())
	assert.False(t, order.Paid.IsFinal())
	assert.False(t, order.Cancelling.IsFinal())
}

func TestStatus_Transitions(t *testing.T) {
	all := []order.Status{
		order.Unknown, order.Pending, order.Paid, order.Approved, order.Cancelling, order.Cancelled,
	}

	transitions := []struct {
		operation string
		apply     func(order.Status) (order.Status, error)
		allowed   map[order.Status]order.Status
	}{
		{
			operation: "pay",
			apply:     order.Status.Pay,
			allowed:   map[order.Status]order.Status{order.Pending: order.Paid},
		},
		{
			operation: "approve",
			apply:     order.Status.Approve,
			allowed:   map[order.Status]order.Status{order.Paid: order.Approved},
		},
		{
			operation: "initCancel",
			apply:     order.Status.InitCancel,
			allowed:   map[order.Status]order.Status{order.Paid: order.Cancelling},
		},
		{
			operation: "cancel",
			apply:     order.Status.Cancel,
			allowed: map[order.Status]order.Status{
				order.Pending:    order.Cancelled,
				order.Cancelling: order.Cancelled,
			},
		},
	}

	for _, tr := range transitions {
		for _, from := range all {
			t.Run(tr.operation+" from "+from.String(), func(t *testing.T) {
				next, err := tr.apply(from)

				if want, ok := tr.allowed[from]; ok {
					require.NoError(t, err)
					assert.Equal(t, want, next)
					return
				}

				require.Error(t, err)
				assert.True(t, errs.IsKind(err, errs.KindInvalidStateTransition))
				assert.Equal(t, "Order is not in correct state for "+tr.operation+" operation!", err.Error())
				assert.Equal(t, from, next, "rejected transition keeps the current status")
			})
		}
	}
}
