package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/pkg/idgen"
	"github.com/noah-isme/school-admin-api/pkg/response"
)

type studentRepoMock struct {
	students []models.Student
}

func (m *studentRepoMock) ListCodes(ctx context.Context) ([]string, error) {
	codes := make([]string, 0, len(m.students))
	for _, s := range m.students {
		codes = append(codes, s.Code)
	}
	return codes, nil
}

func (m *studentRepoMock) List(ctx context.Context) ([]models.Student, error) {
	return m.students, nil
}

func (m *studentRepoMock) Search(ctx context.Context, term string) ([]models.Student, error) {
	var out []models.Student
	for _, s := range m.students {
		if strings.Contains(s.FullName, term) || strings.Contains(s.Code, term) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *studentRepoMock) FindByCode(ctx context.Context, code string) (*models.Student, error) {
	for _, s := range m.students {
		if s.Code == code {
			copied := s
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *studentRepoMock) Create(ctx context.Context, student *models.Student) error {
	m.students = append(m.students, *student)
	return nil
}

func newStudentHandler(repo *studentRepoMock) *StudentHandler {
	svc := service.NewStudentService(repo, nil, idgen.New(rand.New(rand.NewSource(17))), nil, nil, nil, time.Minute)
	return NewStudentHandler(svc, nil)
}

func TestStudentHandlerRegister(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &studentRepoMock{}
	handler := newStudentHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.RegisterStudentRequest{FullName: "Ahmed Ali", Phone: "0100", TotalFees: 500})
	req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Register(c)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.students, 1)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	data := envelope.Data.(map[string]interface{})
	assert.Regexp(t, `^[A-Z][0-9]{7}$`, data["code"])
	assert.Equal(t, 0.0, data["paid_fees"])
}

func TestStudentHandlerRegisterMissingName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&studentRepoMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.RegisterStudentRequest{TotalFees: 500})
	req := httptest.NewRequest(http.MethodPost, "/students", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Register(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentHandlerSearch(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &studentRepoMock{students: []models.Student{
		{Code: "A1234567", FullName: "Ahmed Ali"},
		{Code: "B7654321", FullName: "Sara Ahmed"},
	}}
	handler := newStudentHandler(repo)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/students?search=Ahmed", nil)

	handler.List(c)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
}

func TestStudentHandlerSearchNoResults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newStudentHandler(&studentRepoMock{students: []models.Student{{Code: "A1234567", FullName: "Ahmed Ali"}}})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/students?search=xyz", nil)

	handler.List(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
