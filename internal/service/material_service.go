package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
)

type materialRepository interface {
	List(ctx context.Context) ([]models.Material, error)
	Create(ctx context.Context, material *models.Material) error
}

// PublishMaterialRequest holds payload for publishing a link. TeacherCode is
// required for Subject materials and must stay empty for Global ones. The
// code is deliberately not checked against the teachers table.
type PublishMaterialRequest struct {
	Type        string `json:"type" validate:"required,oneof=Global Subject"`
	Title       string `json:"title" validate:"required"`
	Link        string `json:"link" validate:"required"`
	TeacherCode string `json:"teacher_code" validate:"required_if=Type Subject,excluded_if=Type Global"`
}

// MaterialService publishes and lists study materials.
type MaterialService struct {
	repo      materialRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewMaterialService constructs a MaterialService.
func NewMaterialService(repo materialRepository, validate *validator.Validate, logger *zap.Logger) *MaterialService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaterialService{repo: repo, validator: validate, logger: logger}
}

// Publish appends one material record with the current timestamp.
func (s *MaterialService) Publish(ctx context.Context, req PublishMaterialRequest) (*models.Material, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid material payload")
	}

	material := &models.Material{
		Type:        req.Type,
		Title:       req.Title,
		Link:        req.Link,
		TeacherCode: req.TeacherCode,
	}
	if err := s.repo.Create(ctx, material); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to publish material")
	}

	s.logger.Info("material published", zap.String("type", material.Type), zap.String("title", material.Title))
	return material, nil
}

// List returns published materials, newest first.
func (s *MaterialService) List(ctx context.Context) ([]models.Material, error) {
	materials, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list materials")
	}
	return materials, nil
}
