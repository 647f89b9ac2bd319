package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/limbo/hydration/internal/service"
	"github.com/limbo/hydration/pkg/httputil"
)

type RecommendationResponse struct {
	RecommendedGoalMl int `json:"recommended_goal_ml"`
}

// GetProfile godoc
// @Summary Current goal profile
// @Tags profile
// @Produce json
// @Success 200 {object} entity.Profile
// @Failure 404 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	p, err := s.profileService.Get(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
	logger.Info("profile provided")
}

// SaveProfile godoc
// @Summary Create or replace the goal profile
// @Tags profile
// @Accept json
// @Produce json
// @Param body body service.SaveProfileRequest true "profile"
// @Success 200 {object} entity.Profile
// @Failure 400 {object} httputil.ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (s *Server) SaveProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req service.SaveProfileRequest
	if err = httputil.DecodeJSON(r, &req); err != nil {
		logger.Error("save profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	p, err := s.profileService.Save(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "save profile", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, p)
	logger.Info("profile saved")
}

// RecommendGoal godoc
// @Summary Suggested daily goal
// @Description Parameters override the stored profile. Without a usable weight the default 2500 ml is suggested.
// @Tags profile
// @Produce json
// @Param weight_kg query number false "body weight"
// @Param age query integer false "age in years"
// @Param activity_level query string false "sedentary, moderate, active or very_active"
// @Success 200 {object} RecommendationResponse
// @Security BearerAuth
// @Router /profile/recommendation [get]
func (s *Server) RecommendGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recommend goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	q := r.URL.Query()
	var query service.RecommendationQuery
	// unparsable numbers count as unusable values rather than absent ones
	if v := q.Get("weight_kg"); v != "" {
		weight, err := strconv.ParseFloat(v, 64)
		if err != nil {
			weight = 0
		}
		query.WeightKg = &weight
	}
	if v := q.Get("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			age = 0
		}
		query.Age = &age
	}
	if v := q.Get("activity_level"); v != "" {
		query.ActivityLevel = &v
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	goal, err := s.profileService.Recommend(ctx, uid, query)
	if err != nil {
		writeServiceError(w, logger, "recommend goal", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, RecommendationResponse{RecommendedGoalMl: goal})
	logger.Info("goal recommended")
}
