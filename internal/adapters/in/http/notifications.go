package http

import (
	"net/http"
	"time"

	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/commands"
	"github.com/francomiret/orders-tracker-app/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// notificationJSON is the wire representation of a notification.
type notificationJSON struct {
	ID        uint           `json:"id"`
	UserID    *string        `json:"user_id,omitempty"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func notificationResponseJSON(response queries.NotificationResponse) notificationJSON {
	return notificationJSON{
		ID:        response.ID,
		UserID:    response.UserID,
		Type:      response.NotificationType.String(),
		Title:     response.Title,
		Message:   response.Message,
		Data:      response.Data,
		Read:      response.Read,
		ReadAt:    response.ReadAt,
		CreatedAt: response.CreatedAt,
	}
}

// GetNotifications handles GET /api/v1/notifications. Without a user_id
// parameter it lists the admin broadcast feed.
func (s *Server) GetNotifications(ctx echo.Context) error {
	unreadOnly, ok := optionalBool(ctx, "unread_only")
	if !ok {
		return respondBadRequest(ctx, "invalid unread_only filter")
	}

	skip, take := parsePaging(ctx)
	query, err := queries.NewGetNotificationsQuery(
		optionalString(ctx, "user_id"),
		unreadOnly != nil && *unreadOnly,
		skip,
		take,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	page, err := s.handlers.GetNotifications.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	notifications := make([]notificationJSON, len(page.Notifications))
	for i, response := range page.Notifications {
		notifications[i] = notificationResponseJSON(response)
	}

	return respondPage(ctx, notifications, query.Skip(), query.Take(), page.Total)
}

// GetNotificationStats handles GET /api/v1/notifications/stats.
func (s *Server) GetNotificationStats(ctx echo.Context) error {
	stats, err := s.handlers.GetNotificationStats.Handle(
		ctx.Request().Context(),
		queries.NewGetNotificationStatsQuery(optionalString(ctx, "user_id")),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]any{
		"total":  stats.Total,
		"unread": stats.Unread,
		"read":   stats.Read,
	})
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
// Marking an already-read notification is an idempotent no-op.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid notification id")
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	marked, err := s.handlers.MarkRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, notificationJSON{
		ID:        marked.ID(),
		UserID:    marked.UserID(),
		Type:      marked.NotificationType().String(),
		Title:     marked.Title(),
		Message:   marked.Message(),
		Data:      marked.Data(),
		Read:      marked.Read(),
		ReadAt:    marked.ReadAt(),
		CreatedAt: marked.CreatedAt(),
	})
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	var body struct {
		UserID *string `json:"user_id"`
	}
	if err := ctx.Bind(&body); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewMarkAllNotificationsReadCommand(body.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	affected, err := s.handlers.MarkAllRead.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]int64{"marked_read": affected})
}

// DeleteNotification handles DELETE /api/v1/notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	notificationID, ok := parseUintParam(ctx, "id")
	if !ok {
		return respondBadRequest(ctx, "invalid notification id")
	}

	cmd, err := commands.NewDeleteNotificationCommand(notificationID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteNotif.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return respond(ctx, http.StatusOK, map[string]string{"message": "notification deleted"})
}
