package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/idgen"
)

type paymentStudentRepository interface {
	FindByCode(ctx context.Context, code string) (*models.Student, error)
	UpdatePaidFees(ctx context.Context, code string, paid float64) error
	SetPasswordIfEmpty(ctx context.Context, code, password string) (bool, error)
}

type paymentLedger interface {
	Create(ctx context.Context, payment *models.Payment) error
	ListByStudent(ctx context.Context, studentCode string) ([]models.Payment, error)
}

// BalanceStatement reports a student's standing before a payment is taken.
type BalanceStatement struct {
	Code      string  `json:"code"`
	FullName  string  `json:"full_name"`
	TotalFees float64 `json:"total_fees"`
	PaidFees  float64 `json:"paid_fees"`
	Remaining float64 `json:"remaining"`
}

// PaymentResult reports an accepted payment together with the student's
// active credentials. CredentialIssued is true only on first issuance.
type PaymentResult struct {
	Code             string  `json:"code"`
	FullName         string  `json:"full_name"`
	Amount           float64 `json:"amount"`
	PaidFees         float64 `json:"paid_fees"`
	Remaining        float64 `json:"remaining"`
	Password         string  `json:"password"`
	CredentialIssued bool    `json:"credential_issued"`
}

// PaymentService runs the fee collection workflow: locate the student,
// bound the amount by the remaining balance, accumulate paid fees, and issue
// login credentials exactly once.
type PaymentService struct {
	students  paymentStudentRepository
	ledger    paymentLedger
	cache     searchCache
	generator *idgen.Generator
	logger    *zap.Logger
	metrics   *MetricsService
}

// NewPaymentService constructs a PaymentService.
func NewPaymentService(students paymentStudentRepository, ledger paymentLedger, cache searchCache, generator *idgen.Generator, logger *zap.Logger, metrics *MetricsService) *PaymentService {
	if generator == nil {
		generator = idgen.New(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{students: students, ledger: ledger, cache: cache, generator: generator, logger: logger, metrics: metrics}
}

// Lookup locates a student by code and computes the remaining balance.
func (s *PaymentService) Lookup(ctx context.Context, code string) (*BalanceStatement, error) {
	student, err := s.findStudent(ctx, code)
	if err != nil {
		return nil, err
	}
	return &BalanceStatement{
		Code:      student.Code,
		FullName:  student.FullName,
		TotalFees: student.TotalFees,
		PaidFees:  student.PaidFees,
		Remaining: student.Remaining(),
	}, nil
}

// Pay accepts an amount in (0, remaining], overwrites paid-to-date with the
// new sum, appends a ledger entry, and returns the student's credentials.
//
// The paid-fees update and the credential write are two separate statements
// with no transaction across them; if the process dies in between, re-running
// Pay (or any future first payment) issues the credential safely because the
// password write only fires while the field is still empty.
func (s *PaymentService) Pay(ctx context.Context, code string, amount float64) (*PaymentResult, error) {
	student, err := s.findStudent(ctx, code)
	if err != nil {
		return nil, err
	}

	remaining := student.Remaining()
	if amount <= 0 || amount > remaining {
		return nil, appErrors.Clone(appErrors.ErrPaymentBounds,
			fmt.Sprintf("payment must be greater than 0 and at most %.2f", remaining))
	}

	newPaid := student.PaidFees + amount
	if err := s.students.UpdatePaidFees(ctx, code, newPaid); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record payment")
	}

	if err := s.ledger.Create(ctx, &models.Payment{StudentCode: code, Amount: amount}); err != nil {
		// The authoritative balance already moved; the ledger is an audit
		// trail, so a failed append must not roll the payment back.
		s.logger.Error("payment ledger append failed", zap.String("code", code), zap.Error(err))
	}

	password, issued, err := s.issueCredential(ctx, student)
	if err != nil {
		return nil, err
	}

	s.invalidateSearchCache(ctx)
	s.metrics.RecordPayment(amount)
	s.logger.Info("payment recorded",
		zap.String("code", code),
		zap.Float64("amount", amount),
		zap.Float64("paid_fees", newPaid),
		zap.Bool("credential_issued", issued),
	)

	return &PaymentResult{
		Code:             student.Code,
		FullName:         student.FullName,
		Amount:           amount,
		PaidFees:         newPaid,
		Remaining:        student.TotalFees - newPaid,
		Password:         password,
		CredentialIssued: issued,
	}, nil
}

// History returns the student's recorded payments, oldest first.
func (s *PaymentService) History(ctx context.Context, code string) (*models.Student, []models.Payment, error) {
	student, err := s.findStudent(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.ledger.ListByStudent(ctx, code)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment history")
	}
	return student, payments, nil
}

// issueCredential generates and stores a password when none exists. Issuance
// is idempotent: a concurrent or earlier issuance wins and its password is
// re-read and returned instead.
func (s *PaymentService) issueCredential(ctx context.Context, student *models.Student) (string, bool, error) {
	if student.Password != "" {
		return student.Password, false, nil
	}

	candidate := s.generator.Password()
	set, err := s.students.SetPasswordIfEmpty(ctx, student.Code, candidate)
	if err != nil {
		return "", false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to issue credentials")
	}
	if set {
		return candidate, true, nil
	}

	current, err := s.findStudent(ctx, student.Code)
	if err != nil {
		return "", false, err
	}
	return current.Password, false, nil
}

func (s *PaymentService) findStudent(ctx context.Context, code string) (*models.Student, error) {
	student, err := s.students.FindByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}
	return student, nil
}

func (s *PaymentService) invalidateSearchCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, searchCachePrefix+"*"); err != nil {
		s.logger.Warn("search cache invalidation failed", zap.Error(err))
	}
}
