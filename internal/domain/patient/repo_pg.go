package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caresync/caresync/internal/platform/db"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG returns the PostgreSQL-backed patient repository. The pool is
// injected; this package holds no connection state of its own.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const patientCols = `id, patient_id, first_name, last_name, date_of_birth,
	email, phone, address, emergency_contact_name, emergency_contact_phone,
	status, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.PatientID, &p.FirstName, &p.LastName, &p.DateOfBirth,
		&p.Email, &p.Phone, &p.Address, &p.EmergencyContactName, &p.EmergencyContactPhone,
		&p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func scanRow(row pgx.Row) (*Row, error) {
	var r Row
	err := row.Scan(&r.ID, &r.PatientID, &r.FirstName, &r.LastName, &r.DateOfBirth,
		&r.Age, &r.Email, &r.Phone, &r.Address, &r.EmergencyContactName, &r.EmergencyContactPhone,
		&r.Status, &r.CheckInDate, &r.EpisodeID, &r.TreatmentName, &r.DoctorName,
		&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO patients (id, patient_id, first_name, last_name, date_of_birth,
				email, phone, address, emergency_contact_name, emergency_contact_phone, status)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
			RETURNING `+patientCols,
			p.ID, p.PatientID, p.FirstName, p.LastName, p.DateOfBirth,
			p.Email, p.Phone, p.Address, p.EmergencyContactName, p.EmergencyContactPhone, p.Status)
		created, err := scanPatient(row)
		if err != nil {
			return err
		}
		*p = *created
		return nil
	})
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

// Update resends the full record; absent rows surface as pgx.ErrNoRows.
func (r *repoPG) Update(ctx context.Context, p *Patient) (*Patient, error) {
	var updated *Patient
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			UPDATE patients SET patient_id=$2, first_name=$3, last_name=$4, date_of_birth=$5,
				email=$6, phone=$7, address=$8, emergency_contact_name=$9,
				emergency_contact_phone=$10, status=$11, updated_at=NOW()
			WHERE id = $1
			RETURNING `+patientCols,
			p.ID, p.PatientID, p.FirstName, p.LastName, p.DateOfBirth,
			p.Email, p.Phone, p.Address, p.EmergencyContactName, p.EmergencyContactPhone, p.Status)
		var err error
		updated, err = scanPatient(row)
		return err
	})
	return updated, err
}

// Delete hard-deletes the row and returns it for confirmation.
func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) (*Patient, error) {
	var deleted *Patient
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx,
			`DELETE FROM patients WHERE id = $1 RETURNING `+patientCols, id)
		var err error
		deleted, err = scanPatient(row)
		return err
	})
	return deleted, err
}

func (r *repoPG) List(ctx context.Context, f Filter) ([]*Row, error) {
	q := newListQuery(f)
	rows, err := r.pool.Query(ctx, q.DataSQL(f), q.DataArgs(f)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*Row
	for rows.Next() {
		item, err := scanRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *repoPG) Count(ctx context.Context, f Filter) (int, error) {
	q := newListQuery(f)
	var total int
	if err := r.pool.QueryRow(ctx, q.CountSQL(), q.CountArgs()...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// NextPatientCode reads max(numeric patient_id)+1. The read is not atomic
// with the subsequent insert; concurrent creations can race on the code.
// The patients.patient_id unique constraint turns that race into an insert
// error rather than a duplicate.
func (r *repoPG) NextPatientCode(ctx context.Context) (int, error) {
	var next int
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(MAX(patient_id::integer), 0) + 1
		FROM patients WHERE patient_id ~ '^[0-9]+$'`).Scan(&next)
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (r *repoPG) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, specialty FROM doctors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var doctors []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty); err != nil {
			return nil, err
		}
		doctors = append(doctors, &d)
	}
	return doctors, rows.Err()
}

func (r *repoPG) ListTreatments(ctx context.Context) ([]*Treatment, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, category FROM treatments ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var treatments []*Treatment
	for rows.Next() {
		var t Treatment
		if err := rows.Scan(&t.ID, &t.Name, &t.Category); err != nil {
			return nil, err
		}
		treatments = append(treatments, &t)
	}
	return treatments, rows.Err()
}
