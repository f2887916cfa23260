package provider

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

// DashboardView is the provider page payload. Without a selected provider
// the per-provider sections render as empty lists, never as an error.
type DashboardView struct {
	Providers             []ProviderInfo         `json:"providers"`
	SelectedProviderID    *int                   `json:"selected_provider_id"`
	Schedule              []WorkdayRoom          `json:"schedule"`
	ScheduledAppointments []ScheduledAppointment `json:"scheduled_appointments"`
	Labs                  []LabRow               `json:"labs"`
	PatientResults        []HistoryRow           `json:"patient_results"`
	DiseaseChart          reporting.Chart        `json:"disease_chart"`
}

// Dashboard assembles the provider page. providerID selects the dashboard
// sections; patientName, when non-empty, runs the medical-history search.
func (s *Service) Dashboard(ctx context.Context, providerID *int, patientName string) (*DashboardView, error) {
	providers, err := s.repo.ListProviders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}

	view := &DashboardView{
		Providers:             providers,
		SelectedProviderID:    providerID,
		Schedule:              []WorkdayRoom{},
		ScheduledAppointments: []ScheduledAppointment{},
		Labs:                  []LabRow{},
		PatientResults:        []HistoryRow{},
	}

	if providerID != nil {
		if view.Schedule, err = s.repo.Schedule(ctx, *providerID); err != nil {
			return nil, fmt.Errorf("provider schedule: %w", err)
		}
		if view.ScheduledAppointments, err = s.repo.ScheduledAppointments(ctx, *providerID); err != nil {
			return nil, fmt.Errorf("scheduled appointments: %w", err)
		}
		if view.Labs, err = s.repo.Labs(ctx, *providerID); err != nil {
			return nil, fmt.Errorf("provider labs: %w", err)
		}
	}
	if view.Schedule == nil {
		view.Schedule = []WorkdayRoom{}
	}
	if view.ScheduledAppointments == nil {
		view.ScheduledAppointments = []ScheduledAppointment{}
	}
	if view.Labs == nil {
		view.Labs = []LabRow{}
	}

	if patientName != "" {
		if view.PatientResults, err = s.repo.SearchHistory(ctx, patientName); err != nil {
			return nil, fmt.Errorf("history search: %w", err)
		}
		if view.PatientResults == nil {
			view.PatientResults = []HistoryRow{}
		}
	}

	diseases, err := s.repo.DiseaseCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("disease counts: %w", err)
	}
	view.DiseaseChart = reporting.MonthlyDiseaseChart(diseases)

	return view, nil
}
