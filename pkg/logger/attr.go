package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// NotificationID records a notification identifier under the key "notification_id".
func NotificationID(id string) slog.Attr {
	return slog.String("notification_id", id)
}

// Tag records a replacement tag under the key "tag".
// If tag is empty, it returns an empty Attr.
func Tag(tag string) slog.Attr {
	if tag == "" {
		return slog.Attr{}
	}
	return slog.String("tag", tag)
}

// State records a lifecycle state name under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}
