package config

import (
	"context"
	"errors"
	"log/slog"
)

// fanoutHandler sends each record to every sub-handler enabled for its
// level.
type fanoutHandler []slog.Handler

func (handlers fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (handlers fanoutHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record.Clone()); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func (handlers fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanoutHandler, len(handlers))
	for i, handler := range handlers {
		out[i] = handler.WithAttrs(attrs)
	}
	return out
}

func (handlers fanoutHandler) WithGroup(name string) slog.Handler {
	out := make(fanoutHandler, len(handlers))
	for i, handler := range handlers {
		out[i] = handler.WithGroup(name)
	}
	return out
}
