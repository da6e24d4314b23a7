package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/pkg/idgen"
	"github.com/noah-isme/school-admin-api/pkg/response"
)

type studentStoreMock struct {
	students map[string]*models.Student
}

func (m *studentStoreMock) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	if s, ok := m.students[code]; ok {
		copied := *s
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (m *studentStoreMock) UpdatePaidFees(ctx context.Context, code string, paid float64) error {
	m.students[code].PaidFees = paid
	return nil
}

func (m *studentStoreMock) SetPasswordIfEmpty(ctx context.Context, code, password string) (bool, error) {
	if m.students[code].Password != "" {
		return false, nil
	}
	m.students[code].Password = password
	return true, nil
}

type ledgerMock struct {
	payments []models.Payment
}

func (m *ledgerMock) Create(ctx context.Context, payment *models.Payment) error {
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *ledgerMock) ListByStudent(ctx context.Context, studentCode string) ([]models.Payment, error) {
	return m.payments, nil
}

func newPaymentHandler() (*PaymentHandler, *studentStoreMock) {
	students := &studentStoreMock{students: map[string]*models.Student{
		"A1234567": {Code: "A1234567", FullName: "Ahmed Ali", TotalFees: 500, PaidFees: 200},
	}}
	svc := service.NewPaymentService(students, &ledgerMock{}, nil, idgen.New(rand.New(rand.NewSource(9))), nil, nil)
	return NewPaymentHandler(svc, nil), students
}

func TestPaymentHandlerLookup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newPaymentHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payments/A1234567", nil)
	c.Params = gin.Params{{Key: "code", Value: "A1234567"}}

	handler.Lookup(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	assert.Equal(t, 300.0, data["remaining"])
}

func TestPaymentHandlerLookupNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newPaymentHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payments/Z0000000", nil)
	c.Params = gin.Params{{Key: "code", Value: "Z0000000"}}

	handler.Lookup(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentHandlerPay(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, students := newPaymentHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(PayRequest{Amount: 300})
	req := httptest.NewRequest(http.MethodPost, "/payments/A1234567", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "code", Value: "A1234567"}}

	handler.Pay(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 500.0, students.students["A1234567"].PaidFees)
	assert.NotEmpty(t, students.students["A1234567"].Password)
}

func TestPaymentHandlerPayOutOfBounds(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, students := newPaymentHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(PayRequest{Amount: 400})
	req := httptest.NewRequest(http.MethodPost, "/payments/A1234567", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "code", Value: "A1234567"}}

	handler.Pay(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 200.0, students.students["A1234567"].PaidFees)
}

func TestPaymentHandlerPayInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler, _ := newPaymentHandler()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/payments/A1234567", bytes.NewReader([]byte(`invalid`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "code", Value: "A1234567"}}

	handler.Pay(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
