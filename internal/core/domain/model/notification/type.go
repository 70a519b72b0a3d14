package notification

import (
	"fmt"

	"github.com/francomiret/orders-tracker-app/internal/pkg/errs"
)

// Type classifies the source of a notification.
type Type int

const (
	// TypeUnknown represents an invalid or undefined notification type.
	TypeUnknown Type = iota

	// TypeAlertGenerated is sent to a rule owner when their rule raises an alert.
	TypeAlertGenerated

	// TypeOrderStatusChanged is sent to an order owner when the order changes status.
	TypeOrderStatusChanged

	// TypeAdminAlert is broadcast to administrators when any rule raises an alert.
	TypeAdminAlert

	// TypeSystemNotification is reserved for operational announcements.
	TypeSystemNotification
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:            "UNKNOWN",
		TypeAlertGenerated:     "ALERT_GENERATED",
		TypeOrderStatusChanged: "ORDER_STATUS_CHANGED",
		TypeAdminAlert:         "ADMIN_ALERT",
		TypeSystemNotification: "SYSTEM_NOTIFICATION",
	}
}

func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeAlertGenerated:     "ALERT_GENERATED",
		TypeOrderStatusChanged: "ORDER_STATUS_CHANGED",
		TypeAdminAlert:         "ADMIN_ALERT",
		TypeSystemNotification: "SYSTEM_NOTIFICATION",
	}
}

// TypeFromString parses the wire representation of a notification type.
func TypeFromString(s string) (Type, error) {
	for notificationType, str := range getValidTypeStrings() {
		if str == s {
			return notificationType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notificationType",
		fmt.Errorf("%q is not a valid notification type", s),
	)
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"notification type is invalid",
			fmt.Errorf("%d is not a valid notification type", t),
		)
	}
	return nil
}

// String returns the wire name of the notification type. Implements fmt.Stringer.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}
