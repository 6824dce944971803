package service

import (
	"context"
	"sort"
	"time"

	"github.com/smartbiz360/biz-service/internal/domain"
	"github.com/smartbiz360/biz-service/internal/repository"
)

// Reminder is one upcoming dated obligation, statutory or vehicular.
type Reminder struct {
	Source   string `json:"source"`
	RefID    string `json:"refId"`
	Name     string `json:"name"`
	DueDate  string `json:"dueDate"`
	DaysLeft int    `json:"daysLeft"`
}

// ReminderService aggregates compliance deadlines and vehicle document
// renewals into one upcoming-reminders view.
type ReminderService struct {
	compliance repository.ComplianceRepository
	vehicles   repository.VehicleRepository
	now        func() time.Time
}

// NewReminderService builds the service.
func NewReminderService(compliance repository.ComplianceRepository, vehicles repository.VehicleRepository) *ReminderService {
	return &ReminderService{compliance: compliance, vehicles: vehicles, now: time.Now}
}

// ListCompliance returns all compliance items.
func (s *ReminderService) ListCompliance(ctx context.Context) ([]domain.ComplianceItem, error) {
	return s.compliance.List(ctx)
}

// ListVehicles returns all vehicles.
func (s *ReminderService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.List(ctx)
}

// Upcoming returns every obligation due within the window, soonest first.
// Already-overdue items are included with a negative DaysLeft.
func (s *ReminderService) Upcoming(ctx context.Context, withinDays int) ([]Reminder, error) {
	items, err := s.compliance.List(ctx)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.List(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now().Truncate(24 * time.Hour)
	var reminders []Reminder
	add := func(source, refID, name, dueDate string) {
		due, err := time.Parse("2006-01-02", dueDate)
		if err != nil {
			return
		}
		daysLeft := int(due.Sub(today).Hours() / 24)
		if daysLeft > withinDays {
			return
		}
		reminders = append(reminders, Reminder{
			Source:   source,
			RefID:    refID,
			Name:     name,
			DueDate:  dueDate,
			DaysLeft: daysLeft,
		})
	}

	for _, item := range items {
		add("compliance", item.ID, item.Name+" ("+string(item.Category)+")", item.DueDate)
	}
	for _, v := range vehicles {
		add("vehicle", v.ID, v.Name+" PUC renewal", v.PUCExpiry)
		add("vehicle", v.ID, v.Name+" insurance renewal", v.InsuranceExpiry)
		add("vehicle", v.ID, v.Name+" fitness certificate renewal", v.FCExpiry)
		add("vehicle", v.ID, v.Name+" road tax renewal", v.RoadTaxExpiry)
	}

	sort.Slice(reminders, func(i, j int) bool {
		if reminders[i].DueDate != reminders[j].DueDate {
			return reminders[i].DueDate < reminders[j].DueDate
		}
		return reminders[i].RefID < reminders[j].RefID
	})
	return reminders, nil
}
