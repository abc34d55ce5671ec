// ABOUTME: Export and import actions for the caller's workout log.
// ABOUTME: Imports always land under the caller, whatever user the file names.
package actions

import (
	"context"
	"strings"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
	"go.uber.org/zap"
)

// Export collects the caller's workouts for date, or all of them when date is empty.
func (s *Service) Export(ctx context.Context, date string) (*storage.ExportData, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}

	var workouts []*models.Workout
	if date = strings.TrimSpace(date); date != "" {
		if _, err := s.check(ctx, dateInput{Date: date}); err != nil {
			return nil, err
		}
		workouts, err = s.repo.GetWorkoutsByDate(ctx, userID, date)
	} else {
		workouts, err = s.repo.ListWorkouts(ctx, userID, 0)
	}
	if err != nil {
		return nil, err
	}
	return storage.NewExportData(userID, workouts), nil
}

// Import recreates exported workouts for the caller.
func (s *Service) Import(ctx context.Context, data *storage.ExportData) (*storage.ImportSummary, error) {
	userID, err := s.user(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := storage.ImportData(ctx, s.repo, userID, data)
	if err != nil {
		return summary, err
	}
	s.logger.Info("import complete",
		zap.String("user", userID),
		zap.Int("workouts", summary.Workouts),
		zap.Int("exercises", summary.Exercises),
		zap.Int("sets", summary.Sets))
	return summary, nil
}
