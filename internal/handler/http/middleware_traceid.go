package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the request trace ID. Callers that already hold a
// trace (the registration portal, batch importers) pass it along; everyone
// else gets a fresh one minted here.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace ID and binds a child logger
// carrying it to the request context, so downstream log lines from the same
// request can be correlated. The ID is echoed back in the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := traceIDFromRequest(r)

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func traceIDFromRequest(r *http.Request) string {
	if upstream := r.Header.Get(traceIDHeader); upstream != "" {
		return upstream
	}
	return uuid.NewString()
}
