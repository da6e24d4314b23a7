package models

import "time"

// Student is a learner registered through the admin panel. The code doubles
// as the student's login identifier; the password stays empty until the first
// fee payment is recorded.
type Student struct {
	Code         string    `db:"code" json:"code"`
	FullName     string    `db:"full_name" json:"full_name"`
	Phone        string    `db:"phone" json:"phone"`
	TotalFees    float64   `db:"total_fees" json:"total_fees"`
	PaidFees     float64   `db:"paid_fees" json:"paid_fees"`
	Password     string    `db:"password" json:"-"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}

// Remaining returns the outstanding balance.
func (s Student) Remaining() float64 {
	return s.TotalFees - s.PaidFees
}

// Pagination carries list metadata in the response envelope.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
