package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
)

type mockMaterialRepo struct {
	materials []models.Material
}

func (m *mockMaterialRepo) List(ctx context.Context) ([]models.Material, error) {
	return m.materials, nil
}

func (m *mockMaterialRepo) Create(ctx context.Context, material *models.Material) error {
	m.materials = append(m.materials, *material)
	return nil
}

func TestPublishGlobalMaterial(t *testing.T) {
	repo := &mockMaterialRepo{}
	svc := NewMaterialService(repo, nil, nil)

	material, err := svc.Publish(context.Background(), PublishMaterialRequest{
		Type:  models.MaterialTypeGlobal,
		Title: "Week 1 summary",
		Link:  "https://example.com/w1",
	})
	require.NoError(t, err)
	assert.Empty(t, material.TeacherCode)
	assert.Len(t, repo.materials, 1)
}

func TestPublishSubjectMaterialRequiresTeacherCode(t *testing.T) {
	svc := NewMaterialService(&mockMaterialRepo{}, nil, nil)

	_, err := svc.Publish(context.Background(), PublishMaterialRequest{
		Type:  models.MaterialTypeSubject,
		Title: "Algebra exam",
		Link:  "https://example.com/exam",
	})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestPublishSubjectMaterial(t *testing.T) {
	repo := &mockMaterialRepo{}
	svc := NewMaterialService(repo, nil, nil)

	material, err := svc.Publish(context.Background(), PublishMaterialRequest{
		Type:        models.MaterialTypeSubject,
		Title:       "Algebra exam",
		Link:        "https://example.com/exam",
		TeacherCode: "T-12345",
	})
	require.NoError(t, err)
	assert.Equal(t, "T-12345", material.TeacherCode)
}

func TestPublishMaterialMissingFields(t *testing.T) {
	svc := NewMaterialService(&mockMaterialRepo{}, nil, nil)

	_, err := svc.Publish(context.Background(), PublishMaterialRequest{Type: models.MaterialTypeGlobal, Title: "No link"})
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
