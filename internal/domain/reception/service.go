package reception

import (
	"context"
	"fmt"

	"github.com/clinicdesk/clinicdesk/internal/platform/reporting"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// DashboardView is the full reception page payload. Results is present only
// when a search was submitted; an unfiltered search still returns the whole
// joined set.
type DashboardView struct {
	Searched       bool             `json:"searched"`
	Results        []AppointmentRow `json:"results"`
	Waitlist       []WaitlistRow    `json:"waitlist"`
	ClinicSchedule []ScheduleRow    `json:"clinic_schedule"`
	SpecialtyChart reporting.Chart  `json:"specialty_chart"`
	StatusChart    reporting.Chart  `json:"status_chart"`
}

// Dashboard assembles the reception page. A nil filter means no search was
// submitted (plain GET).
func (s *Service) Dashboard(ctx context.Context, filter *SearchFilter) (*DashboardView, error) {
	view := &DashboardView{Results: []AppointmentRow{}}

	if filter != nil {
		results, err := s.repo.SearchAppointments(ctx, *filter)
		if err != nil {
			return nil, fmt.Errorf("search appointments: %w", err)
		}
		view.Searched = true
		if results != nil {
			view.Results = results
		}
	}

	waitlist, err := s.repo.ListWaitlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("list waitlist: %w", err)
	}
	view.Waitlist = waitlist

	schedule, err := s.repo.ListClinicSchedule(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clinic schedule: %w", err)
	}
	view.ClinicSchedule = schedule

	specialty, err := s.repo.SpecialtyCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("specialty counts: %w", err)
	}
	view.SpecialtyChart = reporting.SpecialtyHistogram(specialty)

	statuses, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	view.StatusChart = reporting.MonthlyStatusChart(statuses)

	return view, nil
}

// BookingFormView carries the dropdown directories of the add-appointment form.
type BookingFormView struct {
	Patients  []PatientOption  `json:"patients"`
	Providers []ProviderOption `json:"providers"`
}

func (s *Service) BookingForm(ctx context.Context) (*BookingFormView, error) {
	patients, err := s.repo.ListPatients(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	providers, err := s.repo.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	return &BookingFormView{Patients: patients, Providers: providers}, nil
}
