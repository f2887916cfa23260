package reception

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
	"github.com/clinicdesk/clinicdesk/internal/platform/reporting"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *repoPG) SearchAppointments(ctx context.Context, filter SearchFilter) ([]AppointmentRow, error) {
	query := `
		SELECT a."appointment_ID", a.appointment_date::text, a.appointment_time::text,
			a.appointment_status::text, a.cancellation_reason,
			pr."provider_ID", pe.first_name || ' ' || pe.last_name, pr.specialty,
			pa."patient_ID", pa.first_name || ' ' || pa.last_name, pa.phone_number, pa.email
		FROM "Appointment" a
		JOIN "Provider" pr ON pr."provider_ID" = a."provider_ID"
		JOIN "Employee" pe ON pe."employee_ID" = pr."provider_ID"
		JOIN "Patient" pa ON pa."patient_ID" = a."patient_ID"
		WHERE 1=1`
	var args []interface{}
	idx := 1

	if filter.ProviderName != "" {
		query += fmt.Sprintf(` AND pe.first_name || ' ' || pe.last_name ILIKE $%d`, idx)
		args = append(args, "%"+filter.ProviderName+"%")
		idx++
	}
	if filter.PatientName != "" {
		query += fmt.Sprintf(` AND pa.first_name || ' ' || pa.last_name ILIKE $%d`, idx)
		args = append(args, "%"+filter.PatientName+"%")
		idx++
	}
	if filter.Date != nil {
		query += fmt.Sprintf(` AND a.appointment_date = $%d`, idx)
		args = append(args, *filter.Date)
		idx++
	}
	if filter.Status != "" {
		query += fmt.Sprintf(` AND a.appointment_status::text = $%d`, idx)
		args = append(args, filter.Status)
		idx++
	}

	query += ` ORDER BY a.appointment_date, a.appointment_time, a."appointment_ID"`

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AppointmentRow
	for rows.Next() {
		var a AppointmentRow
		if err := rows.Scan(&a.AppointmentID, &a.Date, &a.Time, &a.Status, &a.CancellationReason,
			&a.ProviderID, &a.ProviderName, &a.Specialty,
			&a.PatientID, &a.PatientName, &a.PhoneNumber, &a.Email); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) ListWaitlist(ctx context.Context) ([]WaitlistRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT w."patient_ID", p.first_name || ' ' || p.last_name, p.phone_number,
			w."appointment_ID", a.appointment_date::text, a.appointment_time::text,
			w.waitlist_status::text
		FROM "Waitlist" w
		JOIN "Appointment" a ON a."appointment_ID" = w."appointment_ID"
		JOIN "Patient" p ON p."patient_ID" = w."patient_ID"
		ORDER BY w."patient_ID", w."appointment_ID"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WaitlistRow
	for rows.Next() {
		var w WaitlistRow
		if err := rows.Scan(&w.PatientID, &w.PatientName, &w.PhoneNumber,
			&w.AppointmentID, &w.Date, &w.Time, &w.Status); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *repoPG) ListClinicSchedule(ctx context.Context) ([]ScheduleRow, error) {
	// workday sorts by its label string, not calendar position: Friday before
	// Monday. Long-standing display order, keep it.
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT cs."provider_ID", e.first_name || ' ' || e.last_name, pr.specialty,
			cs.workday::text, cs.room_number
		FROM "Clinic_Schedule" cs
		JOIN "Provider" pr ON pr."provider_ID" = cs."provider_ID"
		JOIN "Employee" e ON e."employee_ID" = pr."provider_ID"
		ORDER BY e.last_name, cs.workday::text`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ScheduleRow
	for rows.Next() {
		var s ScheduleRow
		if err := rows.Scan(&s.ProviderID, &s.ProviderName, &s.Specialty, &s.Workday, &s.RoomNumber); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (r *repoPG) SpecialtyCounts(ctx context.Context) ([]reporting.WeekdaySpecialtyCount, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT cs.workday::text, pr.specialty, COUNT(*)
		FROM "Clinic_Schedule" cs
		JOIN "Provider" pr ON pr."provider_ID" = cs."provider_ID"
		GROUP BY cs.workday, pr.specialty`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reporting.WeekdaySpecialtyCount
	for rows.Next() {
		var c reporting.WeekdaySpecialtyCount
		if err := rows.Scan(&c.Weekday, &c.Specialty, &c.Count); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *repoPG) StatusCounts(ctx context.Context) ([]reporting.MonthStatusCount, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT EXTRACT(MONTH FROM appointment_date)::int, appointment_status::text, COUNT(*)
		FROM "Appointment"
		GROUP BY 1, 2`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reporting.MonthStatusCount
	for rows.Next() {
		var c reporting.MonthStatusCount
		if err := rows.Scan(&c.Month, &c.Status, &c.Count); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *repoPG) ListPatients(ctx context.Context) ([]PatientOption, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT "patient_ID", first_name || ' ' || last_name
		FROM "Patient" ORDER BY "patient_ID"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []PatientOption
	for rows.Next() {
		var p PatientOption
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) ListProviders(ctx context.Context) ([]ProviderOption, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT pr."provider_ID", e.first_name || ' ' || e.last_name, pr.specialty
		FROM "Provider" pr
		JOIN "Employee" e ON e."employee_ID" = pr."provider_ID"
		ORDER BY pr."provider_ID"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProviderOption
	for rows.Next() {
		var p ProviderOption
		if err := rows.Scan(&p.ID, &p.Name, &p.Specialty); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
