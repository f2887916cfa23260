package scheduling

import (
	"context"
	"errors"
	"time"

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

type txKey struct{}

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) conn(ctx context.Context) queryable {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

func (r *repoPG) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (r *repoPG) PatientExists(ctx context.Context, patientID int) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM "Patient" WHERE "patient_ID" = $1)`, patientID).Scan(&exists)
	return exists, err
}

func (r *repoPG) ProviderExists(ctx context.Context, providerID int) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM "Provider" WHERE "provider_ID" = $1)`, providerID).Scan(&exists)
	return exists, err
}

func (r *repoPG) SlotTaken(ctx context.Context, providerID int, day, clock time.Time) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM "Appointment"
			WHERE "provider_ID" = $1 AND appointment_date = $2 AND appointment_time = $3
		)`,
		providerID, day, clock.Format("15:04:05")).Scan(&exists)
	return exists, err
}

func (r *repoPG) CreateAppointment(ctx context.Context, providerID, patientID int, day, clock time.Time) (int, error) {
	var id int
	err := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO "Appointment" (appointment_date, appointment_time, "provider_ID", "patient_ID", appointment_status)
		VALUES ($1, $2, $3, $4, 'Scheduled')
		RETURNING "appointment_ID"`,
		day, clock.Format("15:04:05"), providerID, patientID).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrSlotTaken
		}
		return 0, err
	}
	return id, nil
}
