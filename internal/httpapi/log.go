package httpapi

import (
	"context"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func (s server) logError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}
	withReqID(s.log.Error(), ctx).Err(err).Msg(msg)
}

func (s server) logMsg(ctx context.Context, msg string) {
	withReqID(s.log.Info(), ctx).Msg(msg)
}

func withReqID(e *zerolog.Event, ctx context.Context) *zerolog.Event {
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return e.Str("req_id", reqID)
	}
	return e
}
