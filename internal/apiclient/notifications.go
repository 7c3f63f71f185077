package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"warbler/internal/model"
)

func (c *HTTPClient) Notifications(ctx context.Context) ([]model.Notification, error) {
	var out []wireNotification
	if err := c.do(ctx, "notifications", http.MethodGet, "/api/notifications", nil, &out); err != nil {
		return nil, err
	}
	ns := make([]model.Notification, 0, len(out))
	for _, w := range out {
		ns = append(ns, w.toModel())
	}
	return ns, nil
}

func (c *HTTPClient) UnreadCount(ctx context.Context) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, "unread_count", http.MethodGet, "/api/notifications/unread/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id string) error {
	p := fmt.Sprintf("/api/notifications/%s/read", url.PathEscape(id))
	return c.do(ctx, "mark_read", http.MethodPost, p, nil, nil)
}

func (c *HTTPClient) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, "mark_all_read", http.MethodPost, "/api/notifications/read-all", nil, nil)
}
