package lab

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clinicdesk/clinicdesk/internal/platform/db"
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

func (r *repoPG) ListTechs(ctx context.Context) ([]Tech, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT "employee_ID", first_name || ' ' || last_name
		FROM "Employee"
		WHERE job = 'Lab Tech'
		ORDER BY "employee_ID"`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tech
	for rows.Next() {
		var t Tech
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (r *repoPG) Results(ctx context.Context, techID int) ([]ResultRow, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT l."lab_ID", l.lab_type::text, a."appointment_ID",
			a.appointment_date::text, a.appointment_time::text,
			p.first_name || ' ' || p.last_name, d.disease_name
		FROM "Lab" l
		JOIN "Appointment" a ON a."appointment_ID" = l."appointment_ID"
		JOIN "Patient" p ON p."patient_ID" = a."patient_ID"
		LEFT JOIN "Diagnosis" d ON d."lab_ID" = l."lab_ID"
		WHERE l."lab_tech_ID" = $1
		ORDER BY a.appointment_date, a.appointment_time`, techID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ResultRow
	for rows.Next() {
		var res ResultRow
		if err := rows.Scan(&res.LabID, &res.LabType, &res.AppointmentID,
			&res.Date, &res.Time, &res.PatientName, &res.DiseaseName); err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, rows.Err()
}
