package repository

import (
	"context"

	"smart-hospital-display/internal/models"

	"gorm.io/gorm"
)

type ScheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// GetSchedulesByDate retrieves all schedules for a YYYY-MM-DD date ordered by start time
func (r *ScheduleRepository) GetSchedulesByDate(ctx context.Context, date string) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.db.WithContext(ctx).
		Where("schedule_date = ?", date).
		Order("start_time ASC").
		Order("id ASC").
		Find(&schedules).Error
	return schedules, err
}

// GetScheduleByID retrieves a schedule by ID
func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id uint) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &schedule, nil
}

// CreateSchedule creates a new schedule
func (r *ScheduleRepository) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

// UpdateSchedule locks the schedule, lets mutate change it and saves the result.
// An error from mutate rolls the transaction back and is returned unchanged.
func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, id uint, mutate func(*models.Schedule) error) (*models.Schedule, error) {
	var schedule models.Schedule

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&schedule, id).Error; err != nil {
			return translateNotFound(err)
		}
		if err := mutate(&schedule); err != nil {
			return err
		}
		return tx.Save(&schedule).Error
	})
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}
