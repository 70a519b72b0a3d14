package order_test

import (
	"fmt"
	"testing"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/order"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum levels", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, order.Created.Level())
		assert.Equal(t, 2, order.Preparing.Level())
		assert.Equal(t, 3, order.Dispatched.Level())
		assert.Equal(t, 4, order.Delivered.Level())
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Created,
			order.Preparing,
			order.Dispatched,
			order.Delivered,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Created, "CREATED"},
			{order.Preparing, "PREPARING"},
			{order.Dispatched, "DISPATCHED"},
			{order.Delivered, "DELIVERED"},
			{order.Unknown, "UNKNOWN"},
			{order.Status(42), "UNKNOWN"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all valid wire names", func(t *testing.T) {
		testCases := map[string]order.Status{
			"CREATED":    order.Created,
			"PREPARING":  order.Preparing,
			"DISPATCHED": order.Dispatched,
			"DELIVERED":  order.Delivered,
		}

		for input, expected := range testCases {
			status, err := order.StatusFromString(input)
			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown wire names", func(t *testing.T) {
		for _, input := range []string{"", "created", "SHIPPED", "UNKNOWN"} {
			status, err := order.StatusFromString(input)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow forward progression one level at a time", func(t *testing.T) {
		transitions := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Preparing},
			{order.Preparing, order.Dispatched},
			{order.Dispatched, order.Delivered},
		}

		for _, tr := range transitions {
			t.Run(fmt.Sprintf("%s to %s", tr.from, tr.to), func(t *testing.T) {
				next, err := tr.from.TransitionTo(tr.to)
				require.NoError(t, err)
				assert.Equal(t, tr.to, next)
			})
		}
	})

	t.Run("should allow same-status transitions", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.Preparing, order.Dispatched, order.Delivered} {
			next, err := s.TransitionTo(s)
			require.NoError(t, err)
			assert.Equal(t, s, next)
		}
	})

	t.Run("should allow the permitted regression Dispatched to Preparing", func(t *testing.T) {
		next, err := order.Dispatched.TransitionTo(order.Preparing)
		require.NoError(t, err)
		assert.Equal(t, order.Preparing, next)
	})

	t.Run("should reject skips and other regressions", func(t *testing.T) {
		illegal := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Created, order.Dispatched},
			{order.Created, order.Delivered},
			{order.Preparing, order.Delivered},
			{order.Preparing, order.Created},
			{order.Dispatched, order.Created},
			{order.Delivered, order.Dispatched},
			{order.Delivered, order.Preparing},
			{order.Delivered, order.Created},
		}

		for _, tr := range illegal {
			t.Run(fmt.Sprintf("%s to %s", tr.from, tr.to), func(t *testing.T) {
				next, err := tr.from.TransitionTo(tr.to)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Equal(t, order.Unknown, next)
				assert.Contains(t, err.Error(), tr.from.String())
				assert.Contains(t, err.Error(), tr.to.String())
			})
		}
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		_, err := order.Created.TransitionTo(order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
