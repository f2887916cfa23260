package reception

import (
	"context"

	"github.com/clinicdesk/clinicdesk/internal/platform/reporting"
)

type Repository interface {
	SearchAppointments(ctx context.Context, filter SearchFilter) ([]AppointmentRow, error)
	ListWaitlist(ctx context.Context) ([]WaitlistRow, error)
	ListClinicSchedule(ctx context.Context) ([]ScheduleRow, error)
	SpecialtyCounts(ctx context.Context) ([]reporting.WeekdaySpecialtyCount, error)
	StatusCounts(ctx context.Context) ([]reporting.MonthStatusCount, error)
	ListPatients(ctx context.Context) ([]PatientOption, error)
	ListProviders(ctx context.Context) ([]ProviderOption, error)
}
