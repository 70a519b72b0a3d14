package notification_test

import (
	"testing"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/domain/model/notification"
	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeFromString(t *testing.T) {
	t.Run("should parse known notification types", func(t *testing.T) {
		tests := map[string]notification.Type{
			"ALERT_GENERATED":      notification.TypeAlertGenerated,
			"ORDER_STATUS_CHANGED": notification.TypeOrderStatusChanged,
			"ADMIN_ALERT":          notification.TypeAdminAlert,
			"SYSTEM_NOTIFICATION":  notification.TypeSystemNotification,
		}

		for input, want := range tests {
			got, err := notification.TypeFromString(input)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown notification type", func(t *testing.T) {
		_, err := notification.TypeFromString("CARRIER_PIGEON")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "ALERT_GENERATED", notification.TypeAlertGenerated.String())
	assert.Equal(t, "ADMIN_ALERT", notification.TypeAdminAlert.String())
	assert.Equal(t, "UNKNOWN", notification.TypeUnknown.String())
	assert.Equal(t, "UNKNOWN", notification.Type(42).String())
}

func TestNewNotification(t *testing.T) {
	t.Run("should create unread notification for a user", func(t *testing.T) {
		userID := "user-1"
		now := time.Now()
		data := map[string]any{"orderId": "abc", "severity": "high"}

		n, err := notification.NewNotification(
			&userID, notification.TypeAlertGenerated, "Alert", "Order abc is late", data, now)

		require.NoError(t, err)
		assert.Equal(t, uint(0), n.ID())
		assert.Equal(t, &userID, n.UserID())
		assert.Equal(t, notification.TypeAlertGenerated, n.NotificationType())
		assert.Equal(t, "Alert", n.Title())
		assert.Equal(t, "Order abc is late", n.Message())
		assert.Equal(t, data, n.Data())
		assert.False(t, n.Read())
		assert.False(t, n.IsAdminBroadcast())
		assert.Equal(t, now, n.CreatedAt())
		require.NoError(t, n.Validate())
	})

	t.Run("should treat nil recipient as admin broadcast", func(t *testing.T) {
		n, err := notification.NewNotification(
			nil, notification.TypeAdminAlert, "Alert", "Order abc is late", nil, time.Now())

		require.NoError(t, err)
		assert.True(t, n.IsAdminBroadcast())
	})

	t.Run("should reject invalid notification type", func(t *testing.T) {
		_, err := notification.NewNotification(
			nil, notification.TypeUnknown, "Alert", "text", nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty title", func(t *testing.T) {
		_, err := notification.NewNotification(
			nil, notification.TypeAdminAlert, "", "text", nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty message", func(t *testing.T) {
		_, err := notification.NewNotification(
			nil, notification.TypeAdminAlert, "Alert", "", nil, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject non-constructed notification", func(t *testing.T) {
		var n notification.Notification
		require.ErrorIs(t, n.Validate(), notification.ErrNotificationIsNotConstructed)
	})
}

func TestRestoreNotification(t *testing.T) {
	createdAt := time.Now().Add(-time.Hour)
	readAt := time.Now().Add(-time.Minute)

	n, err := notification.RestoreNotification(
		5, nil, notification.TypeSystemNotification, "Maintenance", "Scheduled downtime", nil, true, &readAt, createdAt)

	require.NoError(t, err)
	assert.Equal(t, uint(5), n.ID())
	assert.True(t, n.Read())
	assert.Equal(t, &readAt, n.ReadAt())
	assert.Equal(t, createdAt, n.CreatedAt())
}

func TestNotificationMarkRead(t *testing.T) {
	t.Run("should mark unread notification as read", func(t *testing.T) {
		n, err := notification.NewNotification(
			nil, notification.TypeAdminAlert, "Alert", "text", nil, time.Now())
		require.NoError(t, err)
		now := time.Now()

		assert.True(t, n.MarkRead(now))
		assert.True(t, n.Read())
		require.NotNil(t, n.ReadAt())
		assert.Equal(t, now, *n.ReadAt())
	})

	t.Run("should be idempotent", func(t *testing.T) {
		n, err := notification.NewNotification(
			nil, notification.TypeAdminAlert, "Alert", "text", nil, time.Now())
		require.NoError(t, err)
		first := time.Now()
		require.True(t, n.MarkRead(first))

		assert.False(t, n.MarkRead(time.Now().Add(time.Minute)))
		assert.True(t, n.Read())
		assert.Equal(t, first, *n.ReadAt())
	})
}

func TestNotificationAssignID(t *testing.T) {
	n, err := notification.NewNotification(
		nil, notification.TypeAdminAlert, "Alert", "text", nil, time.Now())
	require.NoError(t, err)

	require.NoError(t, n.AssignID(8))
	assert.Equal(t, uint(8), n.ID())
	require.ErrorIs(t, n.AssignID(9), errs.ErrConflict)
}
