package provider

import (
	"context"

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

func (r *repoPG) ListProviders(ctx context.Context) ([]ProviderInfo, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT pr."provider_ID", e.first_name || ' ' || e.last_name, pr.specialty
		FROM "Provider" pr
		JOIN "Employee" e ON e."employee_ID" = pr."provider_ID"
		ORDER BY pr."provider_ID"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ProviderInfo
	for rows.Next() {
		var p ProviderInfo
		if err := rows.Scan(&p.ID, &p.Name, &p.Specialty); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *repoPG) Schedule(ctx context.Context, providerID int) ([]WorkdayRoom, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT workday::text, room_number
		FROM "Clinic_Schedule"
		WHERE "provider_ID" = $1
		ORDER BY workday`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []WorkdayRoom
	for rows.Next() {
		var w WorkdayRoom
		if err := rows.Scan(&w.Workday, &w.RoomNumber); err != nil {
			return nil, err
		}
		items = append(items, w)
	}
	return items, rows.Err()
}

func (r *repoPG) ScheduledAppointments(ctx context.Context, providerID int) ([]ScheduledAppointment, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT a."appointment_ID", a.appointment_date::text, a.appointment_time::text,
			p."patient_ID", p.first_name || ' ' || p.last_name, p.phone_number
		FROM "Appointment" a
		JOIN "Patient" p ON p."patient_ID" = a."patient_ID"
		WHERE a."provider_ID" = $1 AND a.appointment_status = 'Scheduled'
		ORDER BY a.appointment_date, a.appointment_time`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ScheduledAppointment
	for rows.Next() {
		var a ScheduledAppointment
		if err := rows.Scan(&a.AppointmentID, &a.Date, &a.Time,
			&a.PatientID, &a.PatientName, &a.PhoneNumber); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

func (r *repoPG) Labs(ctx context.Context, providerID int) ([]LabRow, error) {
	// inner join on the appointment: labs not yet tied to a visit stay off
	// the provider page
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT l."lab_ID", l.lab_type::text, a."appointment_ID",
			a.appointment_date::text, a.appointment_time::text,
			p.first_name || ' ' || p.last_name, d.disease_name
		FROM "Lab" l
		JOIN "Appointment" a ON a."appointment_ID" = l."appointment_ID"
		JOIN "Patient" p ON p."patient_ID" = a."patient_ID"
		LEFT JOIN "Diagnosis" d ON d."lab_ID" = l."lab_ID"
		WHERE a."provider_ID" = $1
		ORDER BY l."lab_ID"`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LabRow
	for rows.Next() {
		var l LabRow
		if err := rows.Scan(&l.LabID, &l.LabType, &l.AppointmentID,
			&l.Date, &l.Time, &l.PatientName, &l.DiseaseName); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}

func (r *repoPG) SearchHistory(ctx context.Context, patientName string) ([]HistoryRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT p."patient_ID", p.first_name || ' ' || p.last_name,
			mh."medical_history_ID", d.disease_name,
			fa.appointment_date::text, fa.appointment_time::text, fa.appointment_status::text,
			fu.appointment_date::text, fu.appointment_time::text, fu.appointment_status::text
		FROM "Patient" p
		JOIN "Medical_History" mh ON mh."patient_ID" = p."patient_ID"
		LEFT JOIN "Diagnosis" d ON d."diagnosis_ID" = mh."diagnosis_ID"
		LEFT JOIN "Appointment" fa ON fa."appointment_ID" = mh."first_appointment_ID"
		LEFT JOIN "Appointment" fu ON fu."appointment_ID" = mh."followup_appointment_ID"
		WHERE p.first_name || ' ' || p.last_name ILIKE $1
		ORDER BY mh."medical_history_ID"`, "%"+patientName+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []HistoryRow
	for rows.Next() {
		var h HistoryRow
		if err := rows.Scan(&h.PatientID, &h.PatientName, &h.MedicalHistoryID, &h.DiseaseName,
			&h.FirstDate, &h.FirstTime, &h.FirstStatus,
			&h.FollowupDate, &h.FollowupTime, &h.FollowupStatus); err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	return items, rows.Err()
}

func (r *repoPG) DiseaseCounts(ctx context.Context) ([]reporting.MonthDiseaseCount, error) {
	// ordered by first appearance so the chart's datasets come out in
	// chronological first-encounter order
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT EXTRACT(MONTH FROM a.appointment_date)::int, d.disease_name, COUNT(*)
		FROM "Diagnosis" d
		JOIN "Lab" l ON l."lab_ID" = d."lab_ID"
		JOIN "Appointment" a ON a."appointment_ID" = l."appointment_ID"
		WHERE a.appointment_date IS NOT NULL
		GROUP BY 1, 2
		ORDER BY 1, 2`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []reporting.MonthDiseaseCount
	for rows.Next() {
		var c reporting.MonthDiseaseCount
		if err := rows.Scan(&c.Month, &c.Disease, &c.Count); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}
