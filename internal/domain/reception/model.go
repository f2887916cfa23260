package reception

import "time"

// SearchFilter narrows the reception appointment search. Zero-valued fields
// add no predicate, so the empty filter returns every appointment.
type SearchFilter struct {
	ProviderName string
	PatientName  string
	Date         *time.Time
	Status       string
}

// AppointmentRow is one row of the reception search: the appointment joined
// with its provider (and the provider's employee record) and patient.
// Date and Time come back as the database's text rendering so the payload
// displays verbatim.
type AppointmentRow struct {
	AppointmentID      int     `json:"appointment_id"`
	Date               string  `json:"appointment_date"`
	Time               string  `json:"appointment_time"`
	Status             string  `json:"appointment_status"`
	CancellationReason *string `json:"cancellation_reason"`
	ProviderID         int     `json:"provider_id"`
	ProviderName       string  `json:"provider_name"`
	Specialty          string  `json:"specialty"`
	PatientID          int     `json:"patient_id"`
	PatientName        string  `json:"patient_name"`
	PhoneNumber        string  `json:"phone_number"`
	Email              string  `json:"email"`
}

// WaitlistRow joins a waitlist entry with its patient and appointment.
type WaitlistRow struct {
	PatientID     int    `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	PhoneNumber   string `json:"phone_number"`
	AppointmentID int    `json:"appointment_id"`
	Date          string `json:"appointment_date"`
	Time          string `json:"appointment_time"`
	Status        string `json:"waitlist_status"`
}

// ScheduleRow is one clinic-schedule entry with the provider's name attached.
type ScheduleRow struct {
	ProviderID   int    `json:"provider_id"`
	ProviderName string `json:"provider_name"`
	Specialty    string `json:"specialty"`
	Workday      string `json:"workday"`
	RoomNumber   int    `json:"room_number"`
}

// PatientOption and ProviderOption feed the booking form's dropdowns.
type PatientOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ProviderOption struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
