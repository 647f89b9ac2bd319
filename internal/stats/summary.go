package stats

import (
	"time"

	"github.com/limbo/hydration/pkg/entity"
)

type Summary struct {
	GeneratedAt   time.Time       `json:"generated_at"`
	DailyGoalMl   int             `json:"daily_goal_ml"`
	TodayIntakeMl int             `json:"today_intake_ml"`
	Progress      Progress        `json:"progress"`
	Daily         []HourBucket    `json:"daily"`
	Weekly        WeeklySummary   `json:"weekly"`
	Monthly       MonthlySummary  `json:"monthly"`
	Breakdown     []BeverageShare `json:"breakdown"`
	StreakDays    int             `json:"streak_days"`
}

// Summarize builds every view from one snapshot of logs.
func Summarize(logs []entity.BeverageLog, dailyGoalMl int, now time.Time) Summary {
	today := TodayIntake(logs, now)
	return Summary{
		GeneratedAt:   now,
		DailyGoalMl:   dailyGoalMl,
		TodayIntakeMl: today,
		Progress:      CalculateProgress(today, dailyGoalMl),
		Daily:         DailyByHour(logs, now),
		Weekly:        WeeklyByDay(logs, now),
		Monthly:       MonthlyByWeek(logs, now),
		Breakdown:     BeverageBreakdown(logs, now),
		StreakDays:    GoalStreak(logs, dailyGoalMl, now),
	}
}
