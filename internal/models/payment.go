package models

import "time"

// Payment is one accepted cash payment, appended to the ledger alongside the
// paid_fees update on the student row.
type Payment struct {
	ID          string    `db:"id" json:"id"`
	StudentCode string    `db:"student_code" json:"student_code"`
	Amount      float64   `db:"amount" json:"amount"`
	PaidAt      time.Time `db:"paid_at" json:"paid_at"`
}
