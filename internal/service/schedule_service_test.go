package service

import (
	"context"
	"fmt"
	"testing"

	"smart-hospital-display/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(v string) *string { return &v }

func consultationInput(date string) ScheduleInput {
	return ScheduleInput{
		ScheduleType:          strPtr(models.ScheduleTypeConsultation),
		Department:            strPtr("Cardiology"),
		DoctorName:            strPtr("Dr. Ramesh Iyer"),
		StartTime:             strPtr("09:00"),
		EndTime:               strPtr("12:00"),
		ScheduleDate:          strPtr(date),
		Status:                strPtr("ongoing"),
		TotalAppointments:     intPtr(12),
		CompletedAppointments: intPtr(8),
	}
}

func TestScheduleService_CreateAndList(t *testing.T) {
	svc := newTestScheduleService(t)
	ctx := context.Background()

	consultation, err := svc.Create(ctx, consultationInput("2026-04-14"), "coordinator")
	require.NoError(t, err)
	assert.Equal(t, 4, consultation.Remaining)

	ot, err := svc.Create(ctx, ScheduleInput{
		ScheduleType:     strPtr("OT"),
		ProcedureName:    strPtr("Appendectomy"),
		DoctorName:       strPtr("Dr. Rajesh Kumar"),
		PatientID:        strPtr("P001234"),
		RoomNumber:       strPtr("OT-1"),
		StartTime:        strPtr("09:00"),
		EndTime:          strPtr("11:30"),
		Anesthesiologist: strPtr("Dr. Priya Sharma"),
	}, "coordinator")
	require.NoError(t, err)
	assert.Equal(t, models.ScheduleTypeOT, ot.ScheduleType)
	assert.Equal(t, models.DefaultScheduleStatus, ot.Status)
	// no date given: the clock's day
	assert.Equal(t, "2026-04-14", ot.ScheduleDate)

	snapshot, err := svc.GetSchedules(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "2026-04-14", snapshot.Date)
	require.Len(t, snapshot.OTSchedules, 1)
	require.Len(t, snapshot.Consultations, 1)

	otKey := fmt.Sprintf("2026-04-14_ot_%d", ot.ID)
	consultationKey := fmt.Sprintf("2026-04-14_consultation_%d", consultation.ID)
	assert.Contains(t, snapshot.OTSchedules, otKey)
	assert.Equal(t, 4, snapshot.Consultations[consultationKey].Remaining)

	other, err := svc.GetSchedules(ctx, "2026-04-15")
	require.NoError(t, err)
	assert.Empty(t, other.OTSchedules)
	assert.Empty(t, other.Consultations)
}

func TestScheduleService_UpdatePersists(t *testing.T) {
	svc := newTestScheduleService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, consultationInput("2026-04-14"), "coordinator")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, ScheduleInput{CompletedAppointments: intPtr(11)}, "coordinator")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Remaining)

	stored, err := svc.GetSchedule(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 11, stored.CompletedAppointments)
	assert.Equal(t, "Dr. Ramesh Iyer", stored.DoctorName)
}

func TestScheduleService_UpdateValidationKeepsStoredRow(t *testing.T) {
	svc := newTestScheduleService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, consultationInput("2026-04-14"), "coordinator")
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, ScheduleInput{CompletedAppointments: intPtr(13)}, "coordinator")
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)

	stored, err := svc.GetSchedule(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 8, stored.CompletedAppointments)
}

func TestScheduleService_NotFound(t *testing.T) {
	svc := newTestScheduleService(t)
	ctx := context.Background()

	var notFound *NotFoundError
	_, err := svc.GetSchedule(ctx, 77)
	assert.ErrorAs(t, err, &notFound)

	_, err = svc.Update(ctx, 77, ScheduleInput{Status: strPtr("completed")}, "coordinator")
	assert.ErrorAs(t, err, &notFound)
}

func TestScheduleService_Validation(t *testing.T) {
	svc := newTestScheduleService(t)
	ctx := context.Background()

	cases := map[string]func(in *ScheduleInput){
		"unknown type":         func(in *ScheduleInput) { in.ScheduleType = strPtr("ward_round") },
		"bad start time":       func(in *ScheduleInput) { in.StartTime = strPtr("9am") },
		"end before start":     func(in *ScheduleInput) { in.EndTime = strPtr("08:00") },
		"bad date":             func(in *ScheduleInput) { in.ScheduleDate = strPtr("14/04/2026") },
		"negative total":       func(in *ScheduleInput) { in.TotalAppointments = intPtr(-1) },
		"completed over total": func(in *ScheduleInput) { in.CompletedAppointments = intPtr(20) },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := consultationInput("2026-04-14")
			mutate(&in)
			_, err := svc.Create(ctx, in, "coordinator")
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}

	_, err := svc.GetSchedules(ctx, "yesterday")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestScheduleService_ClockTimesAreZeroPadded(t *testing.T) {
	svc := newTestScheduleService(t)
	ctx := context.Background()

	early := consultationInput("2026-04-14")
	early.StartTime = strPtr("9:30")
	early.EndTime = strPtr("9:45")
	created, err := svc.Create(ctx, early, "coordinator")
	require.NoError(t, err)
	assert.Equal(t, "09:30", created.StartTime)
	assert.Equal(t, "09:45", created.EndTime)

	late := consultationInput("2026-04-14")
	late.StartTime = strPtr("10:00")
	late.EndTime = strPtr("11:00")
	_, err = svc.Create(ctx, late, "coordinator")
	require.NoError(t, err)

	schedules, err := svc.scheduleRepo.GetSchedulesByDate(ctx, "2026-04-14")
	require.NoError(t, err)
	require.Len(t, schedules, 2)
	assert.Equal(t, created.ID, schedules[0].ID)
	assert.Equal(t, "09:30", schedules[0].StartTime)

	updated, err := svc.Update(ctx, created.ID, ScheduleInput{EndTime: strPtr("9:50")}, "coordinator")
	require.NoError(t, err)
	assert.Equal(t, "09:50", updated.EndTime)
}
