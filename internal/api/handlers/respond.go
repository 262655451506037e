package handlers

import (
	"log/slog"
	"net/http"

	"github.com/ecanay/blogfolio-backend/internal/api/httpx"
	"github.com/ecanay/blogfolio-backend/internal/middleware"
)

// serverError logs the real cause with the request id and answers
// with the generic 500 envelope.
func serverError(w http.ResponseWriter, r *http.Request, op string, err error) {
	slog.Error(op, "err", err, "request_id", middleware.RequestIDFrom(r.Context()))
	httpx.Fail(w, http.StatusInternalServerError, "Internal server error")
}
