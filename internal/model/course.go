package model

import "time"

// Course levels accepted by the API
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course represents an instructor-authored catalog entry. The descriptive text
// fields (title, description, content) double as the corpus for the keyword
// relevance filter.
type Course struct {
	CourseID         string    `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	Content          string    `db:"content" json:"content"`
	Category         string    `db:"category" json:"category"`
	Level            string    `db:"level" json:"level"`
	Duration         string    `db:"duration" json:"duration"`
	Price            string    `db:"price" json:"price"`
	Prerequisites    string    `db:"prerequisites" json:"prerequisites"`
	LearningOutcomes string    `db:"learning_outcomes" json:"learningOutcomes"`
	InstructorID     string    `db:"instructor_id" json:"instructorId"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`

	// Denormalized from the users table on list/search queries; never the
	// full instructor record.
	InstructorName  string `db:"instructor_name" json:"-"`
	InstructorEmail string `db:"instructor_email" json:"-"`
}

// OwnedBy reports whether the course belongs to the given user. A course's
// owner never changes after creation.
func (c *Course) OwnedBy(userID string) bool {
	return c.InstructorID == userID
}
