package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/idgen"
)

const searchCachePrefix = "students:search:"

type studentRepository interface {
	ListCodes(ctx context.Context) ([]string, error)
	List(ctx context.Context) ([]models.Student, error)
	Search(ctx context.Context, term string) ([]models.Student, error)
	FindByCode(ctx context.Context, code string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

type searchCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// RegisterStudentRequest holds payload for registering a student.
type RegisterStudentRequest struct {
	FullName  string  `json:"full_name" validate:"required"`
	Phone     string  `json:"phone"`
	TotalFees float64 `json:"total_fees" validate:"gte=0"`
}

// StudentService handles registration and search.
type StudentService struct {
	repo      studentRepository
	cache     searchCache
	generator *idgen.Generator
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	cacheTTL  time.Duration
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, cache searchCache, generator *idgen.Generator, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cacheTTL time.Duration) *StudentService {
	if generator == nil {
		generator = idgen.New(nil)
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cache, generator: generator, validator: validate, logger: logger, metrics: metrics, cacheTTL: cacheTTL}
}

// Register creates a student with a freshly generated unique code, zero paid
// fees and no password. The code is returned for manual handoff.
func (s *StudentService) Register(ctx context.Context, req RegisterStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid student payload")
	}

	codes, err := s.repo.ListCodes(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load existing codes")
	}

	student := &models.Student{
		Code:         s.generator.UniqueStudentCode(idgen.UsedSet(codes)),
		FullName:     req.FullName,
		Phone:        req.Phone,
		TotalFees:    req.TotalFees,
		PaidFees:     0,
		Password:     "",
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register student")
	}

	s.invalidateSearchCache(ctx)
	s.logger.Info("student registered", zap.String("code", student.Code))
	return student, nil
}

// Search returns students whose name or code contains the term. An empty
// term lists everyone. Empty results are a valid outcome, not an error.
func (s *StudentService) Search(ctx context.Context, term string) ([]models.Student, error) {
	if term == "" {
		students, err := s.repo.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
		}
		return students, nil
	}

	cacheKey := searchCachePrefix + term
	if s.cache != nil {
		var cached []models.Student
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			s.metrics.RecordCacheOperation(true)
			return cached, nil
		}
		s.metrics.RecordCacheOperation(false)
	}

	students, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search students")
	}
	if students == nil {
		students = []models.Student{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, students, s.cacheTTL); err != nil {
			s.logger.Warn("search cache write failed", zap.Error(err))
		}
	}
	return students, nil
}

// Get returns a single student by code.
func (s *StudentService) Get(ctx context.Context, code string) (*models.Student, error) {
	student, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

func (s *StudentService) invalidateSearchCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, searchCachePrefix+"*"); err != nil {
		s.logger.Warn("search cache invalidation failed", zap.Error(err))
	}
}
