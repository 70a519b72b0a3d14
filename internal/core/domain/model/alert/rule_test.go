package alert_test

import (
	"testing"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/alert"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule(t *testing.T) {
	t.Run("should create active rule", func(t *testing.T) {
		now := time.Now()
		userID := "user-1"

		rule, err := alert.NewRule(alert.RuleTypeNotDispatchedInXDays, 3, true, &userID, now)

		require.NoError(t, err)
		assert.Equal(t, uint(0), rule.ID())
		assert.Equal(t, alert.RuleTypeNotDispatchedInXDays, rule.RuleType())
		assert.Equal(t, 3, rule.Threshold())
		assert.True(t, rule.Active())
		assert.Equal(t, &userID, rule.UserID())
		assert.Equal(t, now, rule.CreatedAt())
		assert.Equal(t, now, rule.UpdatedAt())
		require.NoError(t, rule.Validate())
	})

	t.Run("should reject invalid rule type", func(t *testing.T) {
		_, err := alert.NewRule(alert.RuleTypeUnknown, 3, true, nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-positive threshold", func(t *testing.T) {
		_, err := alert.NewRule(alert.RuleTypeNotDispatchedInXDays, 0, true, nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = alert.NewRule(alert.RuleTypeNotDispatchedInXDays, -1, true, nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-constructed rule", func(t *testing.T) {
		var rule alert.Rule
		require.ErrorIs(t, rule.Validate(), alert.ErrRuleIsNotConstructed)
	})
}

func TestRestoreRule(t *testing.T) {
	t.Run("should restore rule with id and timestamps", func(t *testing.T) {
		createdAt := time.Now().Add(-time.Hour)
		updatedAt := time.Now()

		rule, err := alert.RestoreRule(7, alert.RuleTypeNotDeliveredSameDay, 1, false, nil, createdAt, updatedAt)

		require.NoError(t, err)
		assert.Equal(t, uint(7), rule.ID())
		assert.False(t, rule.Active())
		assert.Equal(t, createdAt, rule.CreatedAt())
		assert.Equal(t, updatedAt, rule.UpdatedAt())
	})

	t.Run("should reject invalid threshold", func(t *testing.T) {
		_, err := alert.RestoreRule(7, alert.RuleTypeNotDeliveredSameDay, 0, false, nil, time.Now(), time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRuleSetters(t *testing.T) {
	newRule := func(t *testing.T) *alert.Rule {
		t.Helper()
		rule, err := alert.NewRule(alert.RuleTypeNotDispatchedInXDays, 3, true, nil, time.Now().Add(-time.Hour))
		require.NoError(t, err)
		return rule
	}

	t.Run("should change rule type and bump updatedAt", func(t *testing.T) {
		rule := newRule(t)
		now := time.Now()

		require.NoError(t, rule.SetRuleType(alert.RuleTypeNotDeliveredSameDay, now))

		assert.Equal(t, alert.RuleTypeNotDeliveredSameDay, rule.RuleType())
		assert.Equal(t, now, rule.UpdatedAt())
	})

	t.Run("should reject invalid rule type", func(t *testing.T) {
		rule := newRule(t)
		require.ErrorIs(t, rule.SetRuleType(alert.RuleTypeUnknown, time.Now()), errs.ErrValueIsInvalid)
	})

	t.Run("should change threshold", func(t *testing.T) {
		rule := newRule(t)
		now := time.Now()

		require.NoError(t, rule.SetThreshold(5, now))

		assert.Equal(t, 5, rule.Threshold())
		assert.Equal(t, now, rule.UpdatedAt())
	})

	t.Run("should reject non-positive threshold", func(t *testing.T) {
		rule := newRule(t)
		require.ErrorIs(t, rule.SetThreshold(0, time.Now()), errs.ErrValueIsInvalid)
		assert.Equal(t, 3, rule.Threshold())
	})

	t.Run("should toggle active flag", func(t *testing.T) {
		rule := newRule(t)

		assert.False(t, rule.Toggle(time.Now()))
		assert.False(t, rule.Active())

		assert.True(t, rule.Toggle(time.Now()))
		assert.True(t, rule.Active())
	})

	t.Run("should set active flag", func(t *testing.T) {
		rule := newRule(t)
		now := time.Now()

		rule.SetActive(false, now)

		assert.False(t, rule.Active())
		assert.Equal(t, now, rule.UpdatedAt())
	})
}

func TestRuleAssignID(t *testing.T) {
	t.Run("should assign id once", func(t *testing.T) {
		rule, err := alert.NewRule(alert.RuleTypeNotDispatchedInXDays, 3, true, nil, time.Now())
		require.NoError(t, err)

		require.NoError(t, rule.AssignID(12))
		assert.Equal(t, uint(12), rule.ID())
	})

	t.Run("should reject reassignment", func(t *testing.T) {
		rule, err := alert.NewRule(alert.RuleTypeNotDispatchedInXDays, 3, true, nil, time.Now())
		require.NoError(t, err)
		require.NoError(t, rule.AssignID(12))

		require.ErrorIs(t, rule.AssignID(13), errs.ErrConflict)
		assert.Equal(t, uint(12), rule.ID())
	})
}
