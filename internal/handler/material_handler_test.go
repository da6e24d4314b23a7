package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
)

type materialRepoMock struct {
	materials []models.Material
}

func (m *materialRepoMock) List(ctx context.Context) ([]models.Material, error) {
	return m.materials, nil
}

func (m *materialRepoMock) Create(ctx context.Context, material *models.Material) error {
	m.materials = append(m.materials, *material)
	return nil
}

func TestMaterialHandlerPublishGlobal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := &materialRepoMock{}
	handler := NewMaterialHandler(service.NewMaterialService(repo, nil, nil))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.PublishMaterialRequest{Type: models.MaterialTypeGlobal, Title: "Week 1", Link: "https://example.com/w1"})
	req := httptest.NewRequest(http.MethodPost, "/materials", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Publish(c)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, repo.materials, 1)
}

func TestMaterialHandlerPublishSubjectWithoutTeacher(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewMaterialHandler(service.NewMaterialService(&materialRepoMock{}, nil, nil))
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(service.PublishMaterialRequest{Type: models.MaterialTypeSubject, Title: "Exam", Link: "https://example.com/exam"})
	req := httptest.NewRequest(http.MethodPost, "/materials", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Publish(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
