package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/httputil"
)

// location resolves the tz query parameter, defaulting to the server's zone.
func (s *Server) location(r *http.Request) (*time.Location, error) {
	return service.LoadLocation(r.URL.Query().Get("tz"), s.defaultLocation)
}

// writeServiceError maps service sentinels to HTTP statuses. op prefixes the log line.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation), errors.Is(err, errorvalues.ErrInvalidDateRange):
		logger.Error(op+" error: invalid request", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Error(op + " error: existed user")
		httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Error(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrOwnerNotFound):
		logger.Error(op + " error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user not found", nil)
	case errors.Is(err, errorvalues.ErrProfileNotFound):
		logger.Info(op + ": profile not set")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "profile not found", nil)
	case errors.Is(err, errorvalues.ErrRemindersNotFound):
		logger.Info(op + ": reminders not set")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "reminder settings not found", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}
