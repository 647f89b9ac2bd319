package service

import (
	"cmp"
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/internal/stats"
	"github.com/limbo/hydration/pkg/entity"
)

type ProfileService struct {
	repo repository.ProfilesRepositoryI
}

func NewProfileService(profilesRepo repository.ProfilesRepositoryI) *ProfileService {
	if profilesRepo == nil {
		log.Fatal("provided nil profilesRepo")
	}
	return &ProfileService{
		repo: profilesRepo,
	}
}

func (ps *ProfileService) Get(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	p, err := ps.repo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return p, nil
}

func (ps *ProfileService) Save(ctx context.Context, uid uuid.UUID, req *SaveProfileRequest) (*entity.Profile, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	p := entity.Profile{
		UserID:        uid,
		DailyGoalMl:   req.DailyGoalMl,
		Age:           req.Age,
		Gender:        req.Gender,
		WeightKg:      req.WeightKg,
		ActivityLevel: req.ActivityLevel,
	}
	if err := ps.repo.Upsert(ctx, &p); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return &p, nil
}

// Recommend suggests a daily goal. Values missing from the query are taken from the
// stored profile. Without a usable weight the default goal is suggested.
func (ps *ProfileService) Recommend(ctx context.Context, uid uuid.UUID, query RecommendationQuery) (int, error) {
	if query.WeightKg == nil || query.Age == nil || query.ActivityLevel == nil {
		p, err := ps.repo.GetByUserID(ctx, uid)
		switch {
		case err == nil:
			query.WeightKg = cmp.Or(query.WeightKg, p.WeightKg)
			query.Age = cmp.Or(query.Age, p.Age)
			query.ActivityLevel = cmp.Or(query.ActivityLevel, p.ActivityLevel)
		case !errors.Is(err, errorvalues.ErrProfileNotFound):
			return 0, errors.New("profiles repository error: " + err.Error())
		}
	}
	var weight float64
	if query.WeightKg != nil {
		weight = *query.WeightKg
	}
	var age int
	if query.Age != nil {
		age = *query.Age
	}
	activity := stats.ActivityModerate
	if query.ActivityLevel != nil {
		if !stats.ValidActivityLevel(*query.ActivityLevel) {
			return 0, invalid("unknown activity_level " + *query.ActivityLevel)
		}
		activity = stats.ActivityLevel(*query.ActivityLevel)
	}
	// the formula needs both weight and age
	if age <= 0 {
		return stats.DefaultDailyGoalMl, nil
	}
	return stats.RecommendGoal(weight, age, activity), nil
}
