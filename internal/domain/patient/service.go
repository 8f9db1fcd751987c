package patient

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ValidationError marks input errors the HTTP layer reports as 400. The
// message is the client-facing body, so it names the offending fields.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

// fromInput converts a wire-format body into a Patient record.
func fromInput(in *Input) (*Patient, error) {
	if in.FirstName == "" || in.LastName == "" || in.DateOfBirth == "" {
		return nil, &ValidationError{Msg: "Missing required fields: firstName, lastName, dateOfBirth"}
	}
	dob, err := time.Parse("2006-01-02", in.DateOfBirth)
	if err != nil {
		return nil, &ValidationError{Msg: "dateOfBirth must be formatted YYYY-MM-DD"}
	}

	status := in.Status
	if status == "" {
		status = StatusNewPatient
	}

	return &Patient{
		PatientID:             in.PatientID,
		FirstName:             in.FirstName,
		LastName:              in.LastName,
		DateOfBirth:           dob,
		Email:                 in.Email,
		Phone:                 in.Phone,
		Address:               in.Address,
		EmergencyContactName:  in.EmergencyContactName,
		EmergencyContactPhone: in.EmergencyContactPhone,
		Status:                status,
	}, nil
}

// CreatePatient validates the input and inserts the record. When the caller
// does not supply a patient code, one is assigned as max(existing)+1,
// zero-padded to three digits. The max read happens before the insert
// transaction, so concurrent creations can collide; the unique constraint
// rejects the loser.
func (s *Service) CreatePatient(ctx context.Context, in *Input) (*Patient, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}

	if p.PatientID == "" {
		next, err := s.patients.NextPatientCode(ctx)
		if err != nil {
			return nil, fmt.Errorf("assign patient code: %w", err)
		}
		p.PatientID = fmt.Sprintf("%03d", next)
	}

	if err := s.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) GetPatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// UpdatePatient applies a full-record update; every field is resent.
// Last write wins under concurrent updates.
func (s *Service) UpdatePatient(ctx context.Context, id uuid.UUID, in *Input) (*Patient, error) {
	p, err := fromInput(in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	return s.patients.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.Delete(ctx, id)
}

// ListPatients returns one page of listing rows plus the total count of rows
// matching the same filter. The count is a dedicated aggregate query sharing
// the filter predicate, not a second full fetch. The filter must already be
// validated: sort identifiers are resolved through the allow-list and are
// never taken from raw input here.
func (s *Service) ListPatients(ctx context.Context, f Filter) ([]*Row, int, error) {
	rows, err := s.patients.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.patients.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *Service) GetDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.patients.ListDoctors(ctx)
}

func (s *Service) GetTreatments(ctx context.Context) ([]*Treatment, error) {
	return s.patients.ListTreatments(ctx)
}
