package lab

// Tech is a directory entry for the lab-tech picker: every employee whose
// job is Lab Tech.
type Tech struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ResultRow is one of the selected tech's labs, joined with the appointment
// it was ordered under, the patient, and the diagnosis when one exists.
type ResultRow struct {
	LabID         int     `json:"lab_id"`
	LabType       *string `json:"lab_type"`
	AppointmentID int     `json:"appointment_id"`
	Date          string  `json:"appointment_date"`
	Time          string  `json:"appointment_time"`
	PatientName   string  `json:"patient_name"`
	DiseaseName   *string `json:"disease_name"`
}
