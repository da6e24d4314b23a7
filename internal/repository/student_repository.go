package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-admin-api/internal/models"
)

// StudentRepository manages persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListCodes returns every student code currently in use.
func (r *StudentRepository) ListCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.SelectContext(ctx, &codes, "SELECT code FROM students"); err != nil {
		return nil, fmt.Errorf("list student codes: %w", err)
	}
	return codes, nil
}

// List returns all students ordered by registration date.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	const query = `SELECT code, full_name, phone, total_fees, paid_fees, password, registered_at
        FROM students ORDER BY registered_at DESC, code`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Search returns students whose name or code contains the term. The match is
// a case-sensitive substring match, mirroring the admin panel's behaviour.
func (r *StudentRepository) Search(ctx context.Context, term string) ([]models.Student, error) {
	const query = `SELECT code, full_name, phone, total_fees, paid_fees, password, registered_at
        FROM students
        WHERE full_name LIKE '%' || $1 || '%' OR code LIKE '%' || $1 || '%'
        ORDER BY registered_at DESC, code`
	var students []models.Student
	if err := r.db.SelectContext(ctx, &students, query, term); err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}
	return students, nil
}

// FindByCode fetches a single student. Returns sql.ErrNoRows when absent.
func (r *StudentRepository) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	const query = `SELECT code, full_name, phone, total_fees, paid_fees, password, registered_at
        FROM students WHERE code = $1`
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, code); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.RegisteredAt.IsZero() {
		student.RegisteredAt = time.Now().UTC()
	}
	const query = `INSERT INTO students (code, full_name, phone, total_fees, paid_fees, password, registered_at)
        VALUES (:code, :full_name, :phone, :total_fees, :paid_fees, :password, :registered_at)`
	if _, err := r.db.NamedExecContext(ctx, query, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

// UpdatePaidFees overwrites the paid-to-date cell for the student.
func (r *StudentRepository) UpdatePaidFees(ctx context.Context, code string, paid float64) error {
	const query = `UPDATE students SET paid_fees = $2 WHERE code = $1`
	if _, err := r.db.ExecContext(ctx, query, code, paid); err != nil {
		return fmt.Errorf("update paid fees: %w", err)
	}
	return nil
}

// SetPasswordIfEmpty stores the password only when none exists yet. It
// reports whether the write happened, so callers can re-read the credential
// that won instead of overwriting it.
func (r *StudentRepository) SetPasswordIfEmpty(ctx context.Context, code, password string) (bool, error) {
	const query = `UPDATE students SET password = $2 WHERE code = $1 AND password = ''`
	result, err := r.db.ExecContext(ctx, query, code, password)
	if err != nil {
		return false, fmt.Errorf("set password: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set password rows: %w", err)
	}
	return affected > 0, nil
}
