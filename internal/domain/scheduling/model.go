package scheduling

import (
	"errors"
	"time"
)

// Booking validation errors. The messages render verbatim in the reception
// form, so they stay user-facing rather than log-facing.
var (
	ErrPatientNotFound  = errors.New("selected patient does not exist")
	ErrProviderNotFound = errors.New("selected provider does not exist")
	ErrPastAppointment  = errors.New("appointment must be in the future")
	ErrSlotTaken        = errors.New("this provider already has an appointment at this time")
)

// BookingRequest is a request to book a new appointment. Date carries the
// calendar day and Time the clock time; the date part of Time is ignored.
type BookingRequest struct {
	PatientID  int
	ProviderID int
	Date       time.Time
	Time       time.Time
}

// StartsAt combines the request's day and clock time into a single instant.
func (r BookingRequest) StartsAt() time.Time {
	return time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(),
		r.Time.Hour(), r.Time.Minute(), 0, 0, time.Local)
}
