// Package notification contains the notification domain model.
//
// A Notification is addressed either to a single user or, when the
// recipient is nil, broadcast to all administrators. Notifications are
// raised by the alerting engine and by order status changes, persisted
// first, and then pushed to connected clients on a best-effort basis.
package notification
