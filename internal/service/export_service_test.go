package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
)

func TestRosterCSVExcludesPasswords(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{
		{Code: "A1234567", FullName: "Ahmed Ali", Phone: "0100", TotalFees: 500, PaidFees: 200, Password: "ab123456", RegisteredAt: time.Now()},
	}}
	svc := NewExportService(repo, &mockLedger{}, nil)

	payload, contentType, err := svc.Roster(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)

	body := string(payload)
	assert.Contains(t, body, "A1234567")
	assert.Contains(t, body, "300.00") // remaining
	assert.NotContains(t, body, "ab123456")
}

func TestRosterPDF(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{
		{Code: "A1234567", FullName: "Ahmed Ali", TotalFees: 500, RegisteredAt: time.Now()},
	}}
	svc := NewExportService(repo, &mockLedger{}, nil)

	payload, contentType, err := svc.Roster(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}

func TestRosterUnsupportedFormat(t *testing.T) {
	svc := NewExportService(&mockStudentRepo{}, &mockLedger{}, nil)

	_, _, err := svc.Roster(context.Background(), "xlsx")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestReceiptNotFound(t *testing.T) {
	svc := NewExportService(&mockStudentRepo{}, &mockLedger{}, nil)

	_, err := svc.Receipt(context.Background(), "Z0000000")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErr.Code)
}

func TestReceiptRendersLedger(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{
		{Code: "A1234567", FullName: "Ahmed Ali", TotalFees: 500, PaidFees: 200, RegisteredAt: time.Now()},
	}}
	ledger := &mockLedger{payments: []models.Payment{
		{ID: "p1", StudentCode: "A1234567", Amount: 200, PaidAt: time.Now()},
	}}
	svc := NewExportService(repo, ledger, nil)

	payload, err := svc.Receipt(context.Background(), "A1234567")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
}
