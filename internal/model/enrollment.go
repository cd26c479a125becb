package model

import "time"

// Enrollment is a join record linking one student to one course. It is created
// once and never updated; deletion is not exposed.
type Enrollment struct {
	EnrollmentID string    `db:"id" json:"id"`
	StudentID    string    `db:"student_id" json:"studentId"`
	CourseID     string    `db:"course_id" json:"courseId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`

	// Populated on listing queries
	Course       *Course `db:"-" json:"-"`
	StudentName  string  `db:"student_name" json:"-"`
	StudentEmail string  `db:"student_email" json:"-"`
}
