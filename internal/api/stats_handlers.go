package api

import (
	"context"
	"net/http"

	"github.com/limbo/hydration/pkg/httputil"
)

// GetStatistics godoc
// @Summary Daily, weekly and monthly statistics with beverage breakdown
// @Description data_unavailable is true when logs could not be fetched; the views are then empty.
// @Tags stats
// @Produce json
// @Param tz query string false "IANA timezone that defines calendar days"
// @Success 200 {object} service.Statistics
// @Security BearerAuth
// @Router /stats [get]
func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("statistics error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	loc, err := s.location(r)
	if err != nil {
		writeServiceError(w, logger, "statistics", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	st, err := s.statsService.Statistics(ctx, uid, loc)
	if err != nil {
		writeServiceError(w, logger, "statistics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, st)
	logger.Info("statistics provided")
}

// GetProgress godoc
// @Summary Today's progress against the daily goal
// @Tags stats
// @Produce json
// @Param tz query string false "IANA timezone that defines today"
// @Success 200 {object} stats.Progress
// @Security BearerAuth
// @Router /progress [get]
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	loc, err := s.location(r)
	if err != nil {
		writeServiceError(w, logger, "progress", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	p, err := s.statsService.Progress(ctx, uid, loc)
	if err != nil {
		writeServiceError(w, logger, "progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
}
