package provider

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/reporting"
)

type Repository interface {
	ListProviders(ctx context.Context) ([]ProviderInfo, error)
	Schedule(ctx context.Context, providerID int) ([]WorkdayRoom, error)
	ScheduledAppointments(ctx context.Context, providerID int) ([]ScheduledAppointment, error)
	Labs(ctx context.Context, providerID int) ([]LabRow, error)
	SearchHistory(ctx context.Context, patientName string) ([]HistoryRow, error)
	DiseaseCounts(ctx context.Context) ([]reporting.MonthDiseaseCount, error)
}
