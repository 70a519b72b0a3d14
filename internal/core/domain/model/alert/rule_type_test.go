package alert_test

import (
	"testing"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleTypeFromString(t *testing.T) {
	t.Run("should parse known rule types", func(t *testing.T) {
		tests := map[string]alert.RuleType{
			"NOT_DISPATCHED_IN_X_DAYS": alert.RuleTypeNotDispatchedInXDays,
			"NOT_DELIVERED_SAME_DAY":   alert.RuleTypeNotDeliveredSameDay,
		}

		for input, want := range tests {
			got, err := alert.RuleTypeFromString(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown rule type", func(t *testing.T) {
		_, err := alert.RuleTypeFromString("NOT_A_RULE")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := alert.RuleTypeFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject lower-case wire name", func(t *testing.T) {
		_, err := alert.RuleTypeFromString("not_dispatched_in_x_days")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRuleTypeValidate(t *testing.T) {
	t.Run("should accept valid rule types", func(t *testing.T) {
		assert.NoError(t, alert.RuleTypeNotDispatchedInXDays.Validate())
		assert.NoError(t, alert.RuleTypeNotDeliveredSameDay.Validate())
	})

	t.Run("should reject unknown rule type", func(t *testing.T) {
		require.ErrorIs(t, alert.RuleTypeUnknown.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, alert.RuleType(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestRuleTypeString(t *testing.T) {
	assert.Equal(t, "NOT_DISPATCHED_IN_X_DAYS", alert.RuleTypeNotDispatchedInXDays.String())
	assert.Equal(t, "NOT_DELIVERED_SAME_DAY", alert.RuleTypeNotDeliveredSameDay.String())
	assert.Equal(t, "UNKNOWN", alert.RuleTypeUnknown.String())
	assert.Equal(t, "UNKNOWN", alert.RuleType(42).String())
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "low", alert.SeverityLow.String())
	assert.Equal(t, "medium", alert.SeverityMedium.String())
	assert.Equal(t, "high", alert.SeverityHigh.String())
	assert.Equal(t, "unknown", alert.SeverityUnknown.String())
}
