package dto

import (
	"time"

	"app/internal/model"
)

// EnrollDTO is used for incoming enrollment requests
type EnrollDTO struct {
	CourseID string `json:"courseId" validate:"required"`
}

// StudentDTO is the denormalized student carried on roster responses
type StudentDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EnrollmentResponseDTO is returned in API responses for enrollments. Course
// is populated on a student's own listing, Student on an instructor's roster.
type EnrollmentResponseDTO struct {
	ID        string             `json:"id"`
	StudentID string             `json:"studentId"`
	CourseID  string             `json:"courseId"`
	CreatedAt time.Time          `json:"createdAt"`
	Course    *CourseResponseDTO `json:"course,omitempty"`
	Student   *StudentDTO        `json:"student,omitempty"`
}

// EnrollResultDTO wraps a successful enrollment
type EnrollResultDTO struct {
	Message    string                `json:"message"`
	Enrollment EnrollmentResponseDTO `json:"enrollment"`
}

// NewEnrollmentResponse maps an enrollment model, including any populated
// course or student, to its response shape.
func NewEnrollmentResponse(e *model.Enrollment) EnrollmentResponseDTO {
	resp := EnrollmentResponseDTO{
		ID:        e.EnrollmentID,
		StudentID: e.StudentID,
		CourseID:  e.CourseID,
		CreatedAt: e.CreatedAt,
	}
	if e.Course != nil {
		course := NewCourseResponse(e.Course)
		resp.Course = &course
	}
	if e.StudentName != "" || e.StudentEmail != "" {
		resp.Student = &StudentDTO{
			ID:    e.StudentID,
			Name:  e.StudentName,
			Email: e.StudentEmail,
		}
	}
	return resp
}

// NewEnrollmentResponseList maps a slice of enrollment models
func NewEnrollmentResponseList(enrollments []model.Enrollment) []EnrollmentResponseDTO {
	out := make([]EnrollmentResponseDTO, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, NewEnrollmentResponse(&enrollments[i]))
	}
	return out
}
