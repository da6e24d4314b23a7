package models

// Teacher is a staff member registered once and never updated afterwards.
type Teacher struct {
	Code     string `db:"code" json:"code"`
	FullName string `db:"full_name" json:"full_name"`
	Subject  string `db:"subject" json:"subject"`
	Grade    string `db:"grade" json:"grade"`
	Term     string `db:"term" json:"term"`
	Password string `db:"password" json:"-"`
}
