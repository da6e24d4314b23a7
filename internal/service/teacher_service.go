package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/idgen"
)

type teacherRepository interface {
	ListCodes(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
}

// RegisterTeacherRequest holds payload for registering a teacher.
type RegisterTeacherRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Subject  string `json:"subject" validate:"required"`
	Grade    string `json:"grade" validate:"required"`
	Term     string `json:"term" validate:"required"`
}

// TeacherRegistration carries the one-time credential handoff. The password
// is only ever visible in this response.
type TeacherRegistration struct {
	Teacher  models.Teacher `json:"teacher"`
	Password string         `json:"password"`
}

// TeacherService registers and lists teachers. Records are immutable after
// registration.
type TeacherService struct {
	repo       teacherRepository
	generator  *idgen.Generator
	validator  *validator.Validate
	logger     *zap.Logger
	codePrefix string
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, generator *idgen.Generator, validate *validator.Validate, logger *zap.Logger, codePrefix string) *TeacherService {
	if generator == nil {
		generator = idgen.New(nil)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if codePrefix == "" {
		codePrefix = "T-"
	}
	return &TeacherService{repo: repo, generator: generator, validator: validate, logger: logger, codePrefix: codePrefix}
}

// Register creates a teacher with a generated code and password.
func (s *TeacherService) Register(ctx context.Context, req RegisterTeacherRequest) (*TeacherRegistration, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load existing codes")
	}

	teacher := &models.Teacher{
		Code:     s.generator.UniqueTeacherCode(s.codePrefix, idgen.UsedSet(codes)),
		FullName: req.FullName,
		Subject:  req.Subject,
		Grade:    req.Grade,
		Term:     req.Term,
		Password: s.generator.Password(),
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register teacher")
	}

	s.logger.Info("teacher registered", zap.String("code", teacher.Code))
	return &TeacherRegistration{Teacher: *teacher, Password: teacher.Password}, nil
}

// List returns all teachers. Passwords are excluded from serialization by the
// model itself.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}
