package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/noah-isme/school-admin-api/internal/models"
	appErrors "github.com/noah-isme/school-admin-api/pkg/errors"
	"github.com/noah-isme/school-admin-api/pkg/export"
)

type exportStudentSource interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByCode(ctx context.Context, code string) (*models.Student, error)
}

// ExportService renders the student roster and payment receipts. Passwords
// never appear in exported output.
type ExportService struct {
	students exportStudentSource
	ledger   paymentLedger
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(students exportStudentSource, ledger paymentLedger, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		ledger:   ledger,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Roster renders all students in the requested format ("csv" or "pdf").
func (s *ExportService) Roster(ctx context.Context, format string) ([]byte, string, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}

	data := export.Dataset{
		Headers: []string{"Code", "Name", "Phone", "Total Fees", "Paid", "Remaining", "Registered"},
	}
	for _, st := range students {
		data.Rows = append(data.Rows, map[string]string{
			"Code":       st.Code,
			"Name":       st.FullName,
			"Phone":      st.Phone,
			"Total Fees": formatAmount(st.TotalFees),
			"Paid":       formatAmount(st.PaidFees),
			"Remaining":  formatAmount(st.Remaining()),
			"Registered": st.RegisteredAt.Format("2006-01-02"),
		})
	}

	switch format {
	case "csv":
		payload, err := s.csv.Render(data)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return payload, "text/csv", nil
	case "pdf":
		payload, err := s.pdf.Render(data, "Student Roster")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return payload, "application/pdf", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// Receipt renders the student's payment history as a PDF receipt.
func (s *ExportService) Receipt(ctx context.Context, code string) ([]byte, error) {
	student, err := s.students.FindByCode(ctx, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	payments, err := s.ledger.ListByStudent(ctx, code)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load payment history")
	}

	data := export.Dataset{Headers: []string{"Date", "Amount"}}
	for _, p := range payments {
		data.Rows = append(data.Rows, map[string]string{
			"Date":   p.PaidAt.Format("2006-01-02 15:04"),
			"Amount": formatAmount(p.Amount),
		})
	}

	summary := []string{
		fmt.Sprintf("Student: %s (%s)", student.FullName, student.Code),
		fmt.Sprintf("Total fees: %s", formatAmount(student.TotalFees)),
		fmt.Sprintf("Paid to date: %s", formatAmount(student.PaidFees)),
		fmt.Sprintf("Remaining: %s", formatAmount(student.Remaining())),
	}

	payload, err := s.pdf.Render(data, "Payment Receipt", summary...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render receipt")
	}
	return payload, nil
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
