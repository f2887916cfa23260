package provider

// ProviderInfo is a directory entry for the provider picker.
type ProviderInfo struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// WorkdayRoom is one clinic-schedule entry of the selected provider.
type WorkdayRoom struct {
	Workday    string `json:"workday"`
	RoomNumber int    `json:"room_number"`
}

// ScheduledAppointment is an upcoming (status Scheduled) appointment of the
// selected provider, joined with its patient.
type ScheduledAppointment struct {
	AppointmentID int    `json:"appointment_id"`
	Date          string `json:"appointment_date"`
	Time          string `json:"appointment_time"`
	PatientID     int    `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	PhoneNumber   string `json:"phone_number"`
}

// LabRow is a lab ordered under one of the provider's appointments, with the
// diagnosis attached when one has been recorded.
type LabRow struct {
	LabID         int     `json:"lab_id"`
	LabType       *string `json:"lab_type"`
	AppointmentID int     `json:"appointment_id"`
	Date          string  `json:"appointment_date"`
	Time          string  `json:"appointment_time"`
	PatientName   string  `json:"patient_name"`
	DiseaseName   *string `json:"disease_name"`
}

// HistoryRow is one medical-history record of the patient search. The two
// appointment legs join independently and either can be absent, so every
// joined column is nullable.
type HistoryRow struct {
	PatientID        int     `json:"patient_id"`
	PatientName      string  `json:"patient_name"`
	MedicalHistoryID int     `json:"medical_history_id"`
	DiseaseName      *string `json:"disease_name"`
	FirstDate        *string `json:"first_appointment_date"`
	FirstTime        *string `json:"first_appointment_time"`
	FirstStatus      *string `json:"first_appointment_status"`
	FollowupDate     *string `json:"followup_appointment_date"`
	FollowupTime     *string `json:"followup_appointment_time"`
	FollowupStatus   *string `json:"followup_appointment_status"`
}
