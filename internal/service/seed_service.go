package service

import (
	"context"
	"time"

	"smart-hospital-display/internal/models"

	"github.com/rs/zerolog/log"
)

const seedCreator = "System"

// SeedService loads the demo data set shown on a fresh display
type SeedService struct {
	tokenRepo     TokenStore
	inventoryRepo InventoryStore
	alertRepo     AlertStore
	scheduleRepo  ScheduleStore
	now           func() time.Time
}

func NewSeedService(tokenRepo TokenStore, inventoryRepo InventoryStore, alertRepo AlertStore, scheduleRepo ScheduleStore) *SeedService {
	return &SeedService{
		tokenRepo:     tokenRepo,
		inventoryRepo: inventoryRepo,
		alertRepo:     alertRepo,
		scheduleRepo:  scheduleRepo,
		now:           time.Now,
	}
}

// SeedSummary counts the rows written by Seed
type SeedSummary struct {
	Tokens    int `json:"tokens"`
	Items     int `json:"items"`
	Alerts    int `json:"alerts"`
	Schedules int `json:"schedules"`
}

// Seed inserts the sample tokens, inventory, alert and today's schedules.
// It expects empty tables.
func (s *SeedService) Seed(ctx context.Context) (*SeedSummary, error) {
	summary := &SeedSummary{}
	now := s.now()

	log.Info().Msg("Populating tokens")
	// Created a second apart so the queue order is the listed order
	base := now.UTC().Add(-time.Hour)
	for i, token := range sampleTokens() {
		token.CreatedAt = base.Add(time.Duration(i) * time.Second)
		token.UpdatedAt = token.CreatedAt
		if err := s.tokenRepo.CreateToken(ctx, &token); err != nil {
			return nil, storageError("seed tokens", err)
		}
		summary.Tokens++
	}

	log.Info().Msg("Populating inventory")
	for _, item := range sampleInventory(now) {
		item.CreatedAt = now.UTC()
		item.UpdatedAt = now.UTC()
		if err := s.inventoryRepo.CreateItem(ctx, &item); err != nil {
			return nil, storageError("seed inventory", err)
		}
		summary.Items++
	}

	log.Info().Msg("Populating alerts")
	alert := models.Alert{
		AlertType: models.DefaultAlertType,
		Message:   "Pharmacy will be closed for lunch break from 1:00 PM to 2:00 PM",
		Location:  "Pharmacy Department",
		IsActive:  true,
		CreatedAt: now.UTC(),
		CreatedBy: seedCreator,
	}
	if err := s.alertRepo.CreateAlert(ctx, &alert); err != nil {
		return nil, storageError("seed alerts", err)
	}
	summary.Alerts++

	log.Info().Msg("Populating schedules")
	for _, schedule := range sampleSchedules(now.Format(models.DateLayout)) {
		schedule.CreatedAt = now.UTC()
		schedule.UpdatedAt = now.UTC()
		if err := s.scheduleRepo.CreateSchedule(ctx, &schedule); err != nil {
			return nil, storageError("seed schedules", err)
		}
		summary.Schedules++
	}

	log.Info().
		Int("tokens", summary.Tokens).
		Int("items", summary.Items).
		Int("alerts", summary.Alerts).
		Int("schedules", summary.Schedules).
		Msg("Database populated")

	return summary, nil
}

func sampleTokens() []models.Token {
	current := func(department, number, patientType string) models.Token {
		return models.Token{Department: department, TokenNumber: number, PatientType: patientType, Status: models.TokenStatusInProgress, IsCurrent: true}
	}
	waiting := func(department, number, patientType string) models.Token {
		return models.Token{Department: department, TokenNumber: number, PatientType: patientType, Status: models.TokenStatusWaiting}
	}

	return []models.Token{
		current("general", "G015", "General"),
		current("cardiology", "C008", "Follow-up"),
		current("orthopedics", "O012", "Emergency"),
		current("pediatrics", "P006", "Vaccination"),

		waiting("general", "G016", "General"),
		waiting("general", "G017", "General"),
		waiting("general", "G018", "Senior Citizen"),
		waiting("cardiology", "C009", "Follow-up"),
		waiting("cardiology", "C010", "New Patient"),
		waiting("orthopedics", "O013", "Emergency"),
		waiting("pediatrics", "P007", "Vaccination"),
		waiting("pediatrics", "P008", "General"),
		waiting("gynecology", "GY003", "Consultation"),
	}
}

// sampleInventory dates expiries relative to now so the demo never shows expired stock
func sampleInventory(now time.Time) []models.InventoryItem {
	expiry := func(months int) *time.Time {
		d := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
		return &d
	}
	medication := func(name string, qty int, unit string, minThreshold, maxCapacity int, category string, expiresIn int) models.InventoryItem {
		return models.InventoryItem{
			Name: name, Quantity: qty, Unit: unit, MinThreshold: minThreshold, MaxCapacity: maxCapacity,
			Category: category, ItemType: models.ItemTypeMedication, ExpiryDate: expiry(expiresIn),
		}
	}
	supply := func(name string, qty int, unit string, minThreshold, maxCapacity int, category string) models.InventoryItem {
		return models.InventoryItem{
			Name: name, Quantity: qty, Unit: unit, MinThreshold: minThreshold, MaxCapacity: maxCapacity,
			Category: category, ItemType: models.ItemTypeSupply,
		}
	}

	return []models.InventoryItem{
		medication("Paracetamol 500mg", 250, "tablets", 100, 1000, "Analgesic", 14),
		medication("Amoxicillin 250mg", 75, "capsules", 50, 500, "Antibiotic", 9),
		medication("Insulin Glargine", 25, "vials", 30, 100, "Diabetes", 11),
		medication("Aspirin 75mg", 180, "tablets", 100, 500, "Cardiovascular", 17),
		medication("Morphine 10mg", 15, "ampoules", 20, 50, "Controlled Substance", 8),
		medication("Omeprazole 20mg", 120, "capsules", 50, 300, "Gastric", 12),

		supply("Surgical Gloves (Medium)", 450, "pairs", 200, 1000, "PPE"),
		supply("N95 Masks", 80, "pieces", 100, 500, "PPE"),
		supply("Syringes 10ml", 320, "pieces", 150, 800, "Injection Supplies"),
		supply("Gauze Bandages", 95, "rolls", 100, 300, "Wound Care"),
		supply("IV Cannula 18G", 55, "pieces", 75, 200, "IV Supplies"),
		supply("Blood Collection Tubes", 180, "pieces", 100, 500, "Laboratory"),
	}
}

func sampleSchedules(date string) []models.Schedule {
	ot := func(procedure, doctor, patientID, room, start, end, status, anesthesiologist string) models.Schedule {
		return models.Schedule{
			ScheduleType: models.ScheduleTypeOT, ProcedureName: procedure, DoctorName: doctor, PatientID: patientID,
			RoomNumber: room, StartTime: start, EndTime: end, ScheduleDate: date, Status: status, Anesthesiologist: anesthesiologist,
		}
	}
	consultation := func(department, doctor, start, end, status string, total, completed int) models.Schedule {
		return models.Schedule{
			ScheduleType: models.ScheduleTypeConsultation, Department: department, DoctorName: doctor,
			StartTime: start, EndTime: end, ScheduleDate: date, Status: status,
			TotalAppointments: total, CompletedAppointments: completed,
		}
	}

	return []models.Schedule{
		ot("Appendectomy", "Dr. Rajesh Kumar", "P001234", "OT-1", "09:00", "11:30", "in_progress", "Dr. Priya Sharma"),
		ot("Knee Replacement", "Dr. Suresh Reddy", "P001235", "OT-2", "08:30", "12:00", "completed", "Dr. Meera Nair"),
		ot("Cardiac Bypass", "Dr. Anil Gupta", "P001236", "OT-3", "14:00", "18:00", "scheduled", "Dr. Ravi Patel"),
		ot("Gallbladder Surgery", "Dr. Sunita Das", "P001237", "OT-4", "15:30", "17:00", "scheduled", "Dr. Vikram Singh"),

		consultation("Cardiology", "Dr. Ramesh Iyer", "09:00", "12:00", "ongoing", 12, 8),
		consultation("Orthopedics", "Dr. Kavitha Menon", "10:00", "13:00", "ongoing", 15, 12),
		consultation("Pediatrics", "Dr. Arjun Nair", "09:30", "12:30", "ongoing", 10, 6),
		consultation("General Medicine", "Dr. Lakshmi Pillai", "14:00", "17:00", "scheduled", 18, 0),
		consultation("Gynecology", "Dr. Deepa Krishnan", "15:00", "18:00", "scheduled", 8, 0),
	}
}
