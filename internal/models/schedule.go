package models

import "time"

// Schedule kinds
const (
	ScheduleTypeOT           = "ot"
	ScheduleTypeConsultation = "consultation"
)

const DefaultScheduleStatus = "scheduled"

// Date and clock layouts used for schedule_date and start/end times
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Schedule represents the schedules table
// OT rows use procedure/patient/room/anesthesiologist, consultation rows use the appointment counters
type Schedule struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	ScheduleType          string    `gorm:"size:50;not null" json:"schedule_type"`
	Department            string    `gorm:"size:100" json:"department"`
	DoctorName            string    `gorm:"size:200" json:"doctor_name"`
	ProcedureName         string    `gorm:"size:300" json:"procedure_name"`
	PatientID             string    `gorm:"size:50" json:"patient_id"`
	RoomNumber            string    `gorm:"size:20" json:"room_number"`
	StartTime             string    `gorm:"size:5;not null" json:"start_time"`
	EndTime               string    `gorm:"size:5;not null" json:"end_time"`
	ScheduleDate          string    `gorm:"size:10;not null;index" json:"schedule_date"`
	Status                string    `gorm:"size:50;default:'scheduled'" json:"status"`
	Anesthesiologist      string    `gorm:"size:200" json:"anesthesiologist"`
	TotalAppointments     int       `gorm:"default:0" json:"total_appointments"`
	CompletedAppointments int       `gorm:"default:0" json:"completed_appointments"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// TableName specifies the table name for Schedule model
func (Schedule) TableName() string {
	return "schedules"
}

// Remaining is the number of appointments still to be seen
func (s Schedule) Remaining() int {
	return s.TotalAppointments - s.CompletedAppointments
}
