package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
)

func TestPaymentRepositoryCreateFillsDefaults(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	mock.ExpectExec("INSERT INTO payments").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	payment := &models.Payment{StudentCode: "A1234567", Amount: 200}
	require.NoError(t, repo.Create(context.Background(), payment))
	assert.NotEmpty(t, payment.ID)
	assert.False(t, payment.PaidAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepositoryListByStudent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewPaymentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "student_code", "amount", "paid_at"}).
		AddRow("p1", "A1234567", 200.0, time.Now()).
		AddRow("p2", "A1234567", 300.0, time.Now())
	mock.ExpectQuery("SELECT id, student_code, amount, paid_at").
		WithArgs("A1234567").
		WillReturnRows(rows)

	payments, err := repo.ListByStudent(context.Background(), "A1234567")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, 300.0, payments[1].Amount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
