package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/limbo/hydration/internal/error_values"
	"github.com/limbo/hydration/internal/repository"
	"github.com/limbo/hydration/pkg/entity"
)

type HydrationService struct {
	repo repository.BeverageLogsRepositoryI
}

func NewHydrationService(logsRepo repository.BeverageLogsRepositoryI) *HydrationService {
	if logsRepo == nil {
		log.Fatal("provided nil beverageLogsRepo")
	}
	return &HydrationService{
		repo: logsRepo,
	}
}

func (hs *HydrationService) AppendLog(ctx context.Context, uid uuid.UUID, req *AppendLogRequest) (*entity.BeverageLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	l := entity.BeverageLog{
		UserID:       uid,
		BeverageType: req.BeverageType,
		AmountMl:     req.AmountMl,
	}
	if err := hs.repo.Create(ctx, &l); err != nil {
		if errors.Is(err, errorvalues.ErrOwnerNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("beverage logs repository error: " + err.Error())
	}
	return &l, nil
}

func (hs *HydrationService) ListLogs(ctx context.Context, uid uuid.UUID, query ListLogsQuery) ([]entity.BeverageLog, error) {
	loc := query.Location
	if loc == nil {
		loc = time.UTC
	}
	if query.StartDate == "" {
		return nil, invalid("start_date is required")
	}
	start, err := time.ParseInLocation(time.DateOnly, query.StartDate, loc)
	if err != nil {
		return nil, invalid("start_date must be YYYY-MM-DD")
	}
	var to *time.Time
	if query.EndDate != "" {
		end, err := time.ParseInLocation(time.DateOnly, query.EndDate, loc)
		if err != nil {
			return nil, invalid("end_date must be YYYY-MM-DD")
		}
		if end.Before(start) {
			return nil, errorvalues.ErrInvalidDateRange
		}
		// end date is inclusive
		next := end.AddDate(0, 0, 1)
		to = &next
	}
	logs, err := hs.repo.ListByUserAndRange(ctx, uid, start, to)
	if err != nil {
		return nil, errors.New("beverage logs repository error: " + err.Error())
	}
	return logs, nil
}
