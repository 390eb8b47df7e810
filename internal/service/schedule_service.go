package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"smart-hospital-display/internal/metrics"
	"smart-hospital-display/internal/models"
	"smart-hospital-display/internal/repository"
)

// ScheduleView is a schedule with its derived appointment count
type ScheduleView struct {
	models.Schedule
	Remaining int `json:"remaining"`
}

// ScheduleSnapshot is one day of schedules keyed by "<date>_<type>_<id>"
type ScheduleSnapshot struct {
	Date          string                  `json:"date"`
	OTSchedules   map[string]ScheduleView `json:"ot_schedules"`
	Consultations map[string]ScheduleView `json:"consultations"`
}

// ScheduleInput carries schedule fields; nil fields are left unchanged on update
type ScheduleInput struct {
	ScheduleType          *string `json:"schedule_type"`
	Department            *string `json:"department"`
	DoctorName            *string `json:"doctor_name"`
	ProcedureName         *string `json:"procedure_name"`
	PatientID             *string `json:"patient_id"`
	RoomNumber            *string `json:"room_number"`
	StartTime             *string `json:"start_time"`
	EndTime               *string `json:"end_time"`
	ScheduleDate          *string `json:"schedule_date"`
	Status                *string `json:"status"`
	Anesthesiologist      *string `json:"anesthesiologist"`
	TotalAppointments     *int    `json:"total_appointments"`
	CompletedAppointments *int    `json:"completed_appointments"`
}

type ScheduleService struct {
	scheduleRepo ScheduleStore
	auditRepo    AuditStore
	now          func() time.Time
}

func NewScheduleService(scheduleRepo ScheduleStore, auditRepo AuditStore) *ScheduleService {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		auditRepo:    auditRepo,
		now:          time.Now,
	}
}

// Today returns the server-local date used when no date is given
func (s *ScheduleService) Today() string {
	return s.now().Format(models.DateLayout)
}

// GetSchedules returns the OT and consultation schedules of one day
func (s *ScheduleService) GetSchedules(ctx context.Context, date string) (*ScheduleSnapshot, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		date = s.Today()
	} else if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, newValidationError("Date must be YYYY-MM-DD")
	}

	schedules, err := s.scheduleRepo.GetSchedulesByDate(ctx, date)
	if err != nil {
		return nil, storageError("load schedules", err)
	}

	snapshot := &ScheduleSnapshot{
		Date:          date,
		OTSchedules:   make(map[string]ScheduleView),
		Consultations: make(map[string]ScheduleView),
	}
	for _, schedule := range schedules {
		key := fmt.Sprintf("%s_%s_%d", schedule.ScheduleDate, schedule.ScheduleType, schedule.ID)
		if schedule.ScheduleType == models.ScheduleTypeOT {
			snapshot.OTSchedules[key] = newScheduleView(schedule)
		} else {
			snapshot.Consultations[key] = newScheduleView(schedule)
		}
	}

	return snapshot, nil
}

// GetSchedule returns a single schedule by id
func (s *ScheduleService) GetSchedule(ctx context.Context, id uint) (*ScheduleView, error) {
	schedule, err := s.scheduleRepo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, s.translate("load schedule", id, err)
	}
	view := newScheduleView(*schedule)
	return &view, nil
}

// Create persists a new schedule
func (s *ScheduleService) Create(ctx context.Context, input ScheduleInput, actor string) (*ScheduleView, error) {
	schedule := models.Schedule{
		ScheduleDate: s.Today(),
		Status:       models.DefaultScheduleStatus,
	}
	input.applyTo(&schedule)
	if err := validateSchedule(&schedule); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	schedule.CreatedAt = now
	schedule.UpdatedAt = now
	if err := s.scheduleRepo.CreateSchedule(ctx, &schedule); err != nil {
		return nil, storageError("create schedule", err)
	}

	metrics.ScheduleWrites.WithLabelValues("create").Inc()
	recordAudit(ctx, s.auditRepo, actor, "schedule.create", "Scheduled %s %d on %s %s-%s",
		schedule.ScheduleType, schedule.ID, schedule.ScheduleDate, schedule.StartTime, schedule.EndTime)

	view := newScheduleView(schedule)
	return &view, nil
}

// Update merges input into an existing schedule and persists it
func (s *ScheduleService) Update(ctx context.Context, id uint, input ScheduleInput, actor string) (*ScheduleView, error) {
	schedule, err := s.scheduleRepo.UpdateSchedule(ctx, id, func(schedule *models.Schedule) error {
		input.applyTo(schedule)
		return validateSchedule(schedule)
	})
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			return nil, err
		}
		return nil, s.translate("update schedule", id, err)
	}

	metrics.ScheduleWrites.WithLabelValues("update").Inc()
	recordAudit(ctx, s.auditRepo, actor, "schedule.update", "Updated %s schedule %d", schedule.ScheduleType, schedule.ID)

	view := newScheduleView(*schedule)
	return &view, nil
}

func (s *ScheduleService) translate(op string, id uint, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Resource: "Schedule", Key: strconv.FormatUint(uint64(id), 10)}
	}
	return storageError(op, err)
}

func (in ScheduleInput) applyTo(schedule *models.Schedule) {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}

	setString(&schedule.ScheduleType, in.ScheduleType)
	setString(&schedule.Department, in.Department)
	setString(&schedule.DoctorName, in.DoctorName)
	setString(&schedule.ProcedureName, in.ProcedureName)
	setString(&schedule.PatientID, in.PatientID)
	setString(&schedule.RoomNumber, in.RoomNumber)
	setString(&schedule.StartTime, in.StartTime)
	setString(&schedule.EndTime, in.EndTime)
	setString(&schedule.ScheduleDate, in.ScheduleDate)
	setString(&schedule.Status, in.Status)
	setString(&schedule.Anesthesiologist, in.Anesthesiologist)

	if in.TotalAppointments != nil {
		schedule.TotalAppointments = *in.TotalAppointments
	}
	if in.CompletedAppointments != nil {
		schedule.CompletedAppointments = *in.CompletedAppointments
	}
	schedule.ScheduleType = strings.ToLower(schedule.ScheduleType)
	if schedule.Status == "" {
		schedule.Status = models.DefaultScheduleStatus
	}
}

func validateSchedule(schedule *models.Schedule) error {
	if schedule.ScheduleType != models.ScheduleTypeOT && schedule.ScheduleType != models.ScheduleTypeConsultation {
		return newValidationError("Schedule type must be ot or consultation")
	}
	if _, err := time.Parse(models.DateLayout, schedule.ScheduleDate); err != nil {
		return newValidationError("Schedule date must be YYYY-MM-DD")
	}

	start, err := time.Parse(models.ClockLayout, schedule.StartTime)
	if err != nil {
		return newValidationError("Start time must be HH:MM")
	}
	end, err := time.Parse(models.ClockLayout, schedule.EndTime)
	if err != nil {
		return newValidationError("End time must be HH:MM")
	}
	if end.Before(start) {
		return newValidationError("End time must not be before start time")
	}
	// stored zero-padded so start_time sorts chronologically
	schedule.StartTime = start.Format(models.ClockLayout)
	schedule.EndTime = end.Format(models.ClockLayout)

	if schedule.TotalAppointments < 0 || schedule.CompletedAppointments < 0 {
		return newValidationError("Appointment counts must not be negative")
	}
	if schedule.CompletedAppointments > schedule.TotalAppointments {
		return newValidationError("Completed appointments cannot exceed total appointments")
	}
	return nil
}

func newScheduleView(schedule models.Schedule) ScheduleView {
	return ScheduleView{Schedule: schedule, Remaining: schedule.Remaining()}
}
