package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Jacobisaldana/signature-mail/pkg/logger"
)

// HealthCheckHandler returns a handler usable for liveness and readiness
// probes. With no probe functions it always reports ALIVE; with probes it
// runs them all and reports READY or NOT_READY.
func HealthCheckHandler(log *slog.Logger, probes ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(probes) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, probe := range probes {
			if err := probe(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
