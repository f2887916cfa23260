package scheduling

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Book validates req and inserts the appointment, returning the new
// appointment id. The checks and the insert run in one transaction; the
// stored status is always Scheduled regardless of what the caller sent.
func (s *Service) Book(ctx context.Context, req BookingRequest) (int, error) {
	var id int
	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		ok, err := s.repo.PatientExists(ctx, req.PatientID)
		if err != nil {
			return fmt.Errorf("check patient: %w", err)
		}
		if !ok {
			return ErrPatientNotFound
		}

		ok, err = s.repo.ProviderExists(ctx, req.ProviderID)
		if err != nil {
			return fmt.Errorf("check provider: %w", err)
		}
		if !ok {
			return ErrProviderNotFound
		}

		if !req.StartsAt().After(s.now()) {
			return ErrPastAppointment
		}

		taken, err := s.repo.SlotTaken(ctx, req.ProviderID, req.Date, req.Time)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if taken {
			return ErrSlotTaken
		}

		id, err = s.repo.CreateAppointment(ctx, req.ProviderID, req.PatientID, req.Date, req.Time)
		if err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}
