package dto

import (
	"time"

	"app/internal/model"
)

// CourseCreateDTO is used for incoming course creation requests. Optional
// fields fall back to the schema defaults.
type CourseCreateDTO struct {
	Title            string  `json:"title" validate:"required"`
	Description      string  `json:"description" validate:"required"`
	Content          *string `json:"content,omitempty"`
	Category         *string `json:"category,omitempty"`
	Level            *string `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration         *string `json:"duration,omitempty"`
	Price            *string `json:"price,omitempty"`
	Prerequisites    *string `json:"prerequisites,omitempty"`
	LearningOutcomes *string `json:"learningOutcomes,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests. Every submitted
// field replaces the corresponding stored field; absent fields keep their
// stored values.
type CourseUpdateDTO struct {
	Title            *string `json:"title,omitempty"`
	Description      *string `json:"description,omitempty"`
	Content          *string `json:"content,omitempty"`
	Category         *string `json:"category,omitempty"`
	Level            *string `json:"level,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration         *string `json:"duration,omitempty"`
	Price            *string `json:"price,omitempty"`
	Prerequisites    *string `json:"prerequisites,omitempty"`
	LearningOutcomes *string `json:"learningOutcomes,omitempty"`
}

// InstructorDTO is the denormalized instructor carried on course responses,
// never the full instructor record.
type InstructorDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Content          string        `json:"content"`
	Category         string        `json:"category"`
	Level            string        `json:"level"`
	Duration         string        `json:"duration"`
	Price            string        `json:"price"`
	Prerequisites    string        `json:"prerequisites"`
	LearningOutcomes string        `json:"learningOutcomes"`
	Instructor       InstructorDTO `json:"instructor"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// CourseStatsDTO is returned from the instructor stats endpoint
type CourseStatsDTO struct {
	TotalCourses  int `json:"totalCourses"`
	TotalStudents int `json:"totalStudents"`
}

// NewCourseResponse maps a course model, including any denormalized
// instructor fields, to its response shape.
func NewCourseResponse(c *model.Course) CourseResponseDTO {
	return CourseResponseDTO{
		ID:               c.CourseID,
		Title:            c.Title,
		Description:      c.Description,
		Content:          c.Content,
		Category:         c.Category,
		Level:            c.Level,
		Duration:         c.Duration,
		Price:            c.Price,
		Prerequisites:    c.Prerequisites,
		LearningOutcomes: c.LearningOutcomes,
		Instructor: InstructorDTO{
			ID:    c.InstructorID,
			Name:  c.InstructorName,
			Email: c.InstructorEmail,
		},
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewCourseResponseList maps a slice of course models
func NewCourseResponseList(courses []model.Course) []CourseResponseDTO {
	out := make([]CourseResponseDTO, 0, len(courses))
	for i := range courses {
		out = append(out, NewCourseResponse(&courses[i]))
	}
	return out
}
