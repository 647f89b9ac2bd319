package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/internal/stats"
	"github.com/limbo/hydration/pkg/entity"
	"github.com/limbo/hydration/pkg/httputil"
)

type AppendLogResponse struct {
	Log entity.BeverageLog `json:"log"`
	// Today's progress recomputed right after the write
	Progress *stats.Progress `json:"progress,omitempty"`
}

type ListLogsResponse struct {
	Logs  []entity.BeverageLog `json:"logs"`
	Count int                  `json:"count"`
}

type BeveragesResponse struct {
	Beverages []stats.BeverageType `json:"beverages"`
}

// ListBeverages godoc
// @Summary Known beverage types
// @Tags logs
// @Produce json
// @Success 200 {object} BeveragesResponse
// @Router /beverages [get]
func (s *Server) ListBeverages(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, BeveragesResponse{Beverages: stats.Catalog()})
}

// AppendLog godoc
// @Summary Log a drink
// @Tags logs
// @Accept json
// @Produce json
// @Param body body service.AppendLogRequest true "beverage and amount"
// @Param tz query string false "IANA timezone used for today's progress"
// @Success 201 {object} AppendLogResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /logs [post]
func (s *Server) AppendLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("append log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	loc, err := s.location(r)
	if err != nil {
		writeServiceError(w, logger, "append log", err)
		return
	}
	var req service.AppendLogRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("append log error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	l, err := s.hydrationService.AppendLog(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "append log", err)
		return
	}
	resp := AppendLogResponse{Log: *l}
	progress, err := s.statsService.Progress(ctx, uid, loc)
	if err != nil {
		logger.Warn("append log: progress recompute failed", slog.String("error", err.Error()))
	} else {
		resp.Progress = progress
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, resp)
	logger.Info("log appended", slog.String("beverage_type", l.BeverageType), slog.Int("amount_ml", l.AmountMl))
}

// ListLogs godoc
// @Summary Logs between two calendar days
// @Tags logs
// @Produce json
// @Param start_date query string true "YYYY-MM-DD, inclusive"
// @Param end_date query string false "YYYY-MM-DD, inclusive; omitted means up to now"
// @Param tz query string false "IANA timezone of the dates"
// @Success 200 {object} ListLogsResponse
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /logs [get]
func (s *Server) ListLogs(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("list logs error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	loc, err := s.location(r)
	if err != nil {
		writeServiceError(w, logger, "list logs", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	logs, err := s.hydrationService.ListLogs(ctx, uid, service.ListLogsQuery{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
		Location:  loc,
	})
	if err != nil {
		writeServiceError(w, logger, "list logs", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ListLogsResponse{
		Logs:  logs,
		Count: len(logs),
	})
	logger.Info("logs provided")
}
