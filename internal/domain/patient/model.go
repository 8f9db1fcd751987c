package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient statuses recognized by the listing contract. Status is not
// state-machine enforced; these are the values the UI renders.
const (
	StatusActive     = "active"
	StatusNewPatient = "new_patient"
	StatusInactive   = "inactive"
)

// Patient maps to the patients table. PatientID is the human-facing
// zero-padded sequential code, distinct from the internal key.
type Patient struct {
	ID                    uuid.UUID `db:"id" json:"id"`
	PatientID             string    `db:"patient_id" json:"patient_id"`
	FirstName             string    `db:"first_name" json:"first_name"`
	LastName              string    `db:"last_name" json:"last_name"`
	DateOfBirth           time.Time `db:"date_of_birth" json:"date_of_birth"`
	Email                 *string   `db:"email" json:"email,omitempty"`
	Phone                 *string   `db:"phone" json:"phone,omitempty"`
	Address               *string   `db:"address" json:"address,omitempty"`
	EmergencyContactName  *string   `db:"emergency_contact_name" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string   `db:"emergency_contact_phone" json:"emergency_contact_phone,omitempty"`
	Status                string    `db:"status" json:"status"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

// Row is one flattened listing row: the patient joined with its active
// episode, treatment and doctor. Patients without an active episode appear
// with the episode-derived fields null. Age is derived at query time from
// the date of birth, never stored.
type Row struct {
	ID                    uuid.UUID  `db:"id" json:"id"`
	PatientID             string     `db:"patient_id" json:"patient_id"`
	FirstName             string     `db:"first_name" json:"first_name"`
	LastName              string     `db:"last_name" json:"last_name"`
	DateOfBirth           time.Time  `db:"date_of_birth" json:"date_of_birth"`
	Age                   int        `db:"age" json:"age"`
	Email                 *string    `db:"email" json:"email,omitempty"`
	Phone                 *string    `db:"phone" json:"phone,omitempty"`
	Address               *string    `db:"address" json:"address,omitempty"`
	EmergencyContactName  *string    `db:"emergency_contact_name" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string    `db:"emergency_contact_phone" json:"emergency_contact_phone,omitempty"`
	Status                string     `db:"status" json:"status"`
	CheckInDate           *time.Time `db:"check_in_date" json:"check_in_date"`
	EpisodeID             *string    `db:"episode_id" json:"episode_id"`
	TreatmentName         *string    `db:"treatment_name" json:"treatment_name"`
	DoctorName            *string    `db:"doctor_name" json:"doctor_name"`
	CreatedAt             time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at" json:"updated_at"`
}

// Episode is a bounded care engagement linking a patient to a doctor and
// treatment. Only episodes with status "active" are joined into the listing;
// a patient has at most one active episode for listing purposes.
type Episode struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	EpisodeID   string     `db:"episode_id" json:"episode_id"`
	PatientID   uuid.UUID  `db:"patient_id" json:"patient_id"`
	DoctorID    *uuid.UUID `db:"doctor_id" json:"doctor_id,omitempty"`
	TreatmentID *uuid.UUID `db:"treatment_id" json:"treatment_id,omitempty"`
	Status      string     `db:"status" json:"status"`
	CheckInDate *time.Time `db:"check_in_date" json:"check_in_date,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Doctor is a care provider referenced by episodes.
type Doctor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Specialty *string   `db:"specialty" json:"specialty,omitempty"`
}

// Treatment is a named course of care referenced by episodes.
type Treatment struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Category *string   `db:"category" json:"category,omitempty"`
}

// Input is the request body accepted by the create and update endpoints.
// The wire format is camelCase; stored records marshal as snake_case.
type Input struct {
	PatientID             string  `json:"patientId"`
	FirstName             string  `json:"firstName"`
	LastName              string  `json:"lastName"`
	DateOfBirth           string  `json:"dateOfBirth"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	Address               *string `json:"address"`
	EmergencyContactName  *string `json:"emergencyContactName"`
	EmergencyContactPhone *string `json:"emergencyContactPhone"`
	Status                string  `json:"status"`
}
