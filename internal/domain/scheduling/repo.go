package scheduling

import (
	"context"
	"time"
)

// Repository is the storage surface of the booking path. InTx runs fn inside
// one transaction; every repository call made through the ctx passed to fn
// joins that transaction.
type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
	PatientExists(ctx context.Context, patientID int) (bool, error)
	ProviderExists(ctx context.Context, providerID int) (bool, error)
	SlotTaken(ctx context.Context, providerID int, day, clock time.Time) (bool, error)
	CreateAppointment(ctx context.Context, providerID, patientID int, day, clock time.Time) (int, error)
}
