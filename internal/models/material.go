package models

import "time"

// Material types. Global materials are visible to every student; Subject
// materials belong to a single teacher.
const (
	MaterialTypeGlobal  = "Global"
	MaterialTypeSubject = "Subject"
)

// Material is a published link (lesson, exam, announcement). Append-only.
type Material struct {
	ID          string    `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	Title       string    `db:"title" json:"title"`
	Link        string    `db:"link" json:"link"`
	TeacherCode string    `db:"teacher_code" json:"teacher_code,omitempty"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
}
