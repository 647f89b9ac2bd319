package api

import (
	"context"
	"net/http"

	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/httputil"
)

type ScheduleResponse struct {
	Times []string `json:"times"`
}

// GetReminders godoc
// @Summary Reminder settings
// @Tags reminders
// @Produce json
// @Success 200 {object} entity.ReminderSettings
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /reminders [get]
func (s *Server) GetReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	settings, err := s.reminderService.Get(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

// SaveReminders godoc
// @Summary Create or replace reminder settings
// @Tags reminders
// @Accept json
// @Produce json
// @Param body body service.SaveRemindersRequest true "settings"
// @Success 200 {object} entity.ReminderSettings
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /reminders [put]
func (s *Server) SaveReminders(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save reminders error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.SaveRemindersRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("save reminders error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	settings, err := s.reminderService.Save(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "save reminders", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
	logger.Info("reminders saved")
}

// GetReminderSchedule godoc
// @Summary Times of day reminders fire at
// @Tags reminders
// @Produce json
// @Success 200 {object} ScheduleResponse
// @Security BearerAuth
// @Router /reminders/schedule [get]
func (s *Server) GetReminderSchedule(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reminder schedule error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	times, err := s.reminderService.Schedule(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "reminder schedule", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ScheduleResponse{Times: times})
}
