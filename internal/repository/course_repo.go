package repository

import (
	"context"
	"database/sql"

	"app/internal/model"

	"github.com/rs/zerolog"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	CreateCourse(ctx context.Context, c *model.Course) error
	// GetCourseByID retrieves a course by its ID
	GetCourseByID(ctx context.Context, courseID string) (*model.Course, error)
	// ListCourses retrieves all courses with instructor name/email resolved
	ListCourses(ctx context.Context) ([]model.Course, error)
	// ListCoursesByInstructor retrieves the courses owned by an instructor
	ListCoursesByInstructor(ctx context.Context, instructorID string) ([]model.Course, error)
	// UpdateCourse overwrites an existing course
	UpdateCourse(ctx context.Context, c *model.Course) error
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, courseID string) error
	// SearchCourses retrieves courses whose title, description or content
	// matches the case-insensitive alternation pattern, in creation order
	SearchCourses(ctx context.Context, pattern string, limit int) ([]model.Course, error)
	// ListTopCourses retrieves the first courses in creation order
	ListTopCourses(ctx context.Context, limit int) ([]model.Course, error)
	// CountByInstructor counts the courses owned by an instructor
	CountByInstructor(ctx context.Context, instructorID string) (int, error)
}

type courseRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB, logger zerolog.Logger) CourseRepository {
	return &courseRepo{db: db, logger: logger.With().Str("repository", "CourseRepository").Logger()}
}

const courseColumns = `c.id, c.title, c.description, c.content, c.category, c.level,
	c.duration, c.price, c.prerequisites, c.learning_outcomes, c.instructor_id,
	c.created_at, c.updated_at`

func scanCourse(rows *sql.Rows, withInstructor bool) (model.Course, error) {
	var c model.Course
	dest := []interface{}{
		&c.CourseID, &c.Title, &c.Description, &c.Content, &c.Category, &c.Level,
		&c.Duration, &c.Price, &c.Prerequisites, &c.LearningOutcomes, &c.InstructorID,
		&c.CreatedAt, &c.UpdatedAt,
	}
	if withInstructor {
		dest = append(dest, &c.InstructorName, &c.InstructorEmail)
	}
	err := rows.Scan(dest...)
	return c, err
}

// CreateCourse inserts a new course and returns the created record
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (title, description, content, category, level, duration,
			price, prerequisites, learning_outcomes, instructor_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		c.Title, c.Description, c.Content, c.Category, c.Level, c.Duration,
		c.Price, c.Prerequisites, c.LearningOutcomes, c.InstructorID,
	).Scan(&c.CourseID, &c.CreatedAt, &c.UpdatedAt)
}

// GetCourseByID retrieves a course by its ID
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID string) (*model.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses c WHERE c.id = $1`
	var c model.Course
	err := r.db.QueryRowContext(ctx, query, courseID).Scan(
		&c.CourseID, &c.Title, &c.Description, &c.Content, &c.Category, &c.Level,
		&c.Duration, &c.Price, &c.Prerequisites, &c.LearningOutcomes, &c.InstructorID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListCourses retrieves all courses with instructor name and email resolved
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	query := `
		SELECT ` + courseColumns + `, u.name, u.email
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		ORDER BY c.created_at ASC
	`
	return r.queryCourses(ctx, query, true)
}

// ListCoursesByInstructor retrieves all courses owned by the given instructor
func (r *courseRepo) ListCoursesByInstructor(ctx context.Context, instructorID string) ([]model.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses c
		WHERE c.instructor_id = $1
		ORDER BY c.created_at ASC
	`
	return r.queryCourses(ctx, query, false, instructorID)
}

// UpdateCourse persists a full overwrite of an existing course record
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, content = $3, category = $4, level = $5,
			duration = $6, price = $7, prerequisites = $8, learning_outcomes = $9,
			updated_at = NOW()
		WHERE id = $10
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		c.Title, c.Description, c.Content, c.Category, c.Level,
		c.Duration, c.Price, c.Prerequisites, c.LearningOutcomes, c.CourseID,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// DeleteCourse deletes a course by its ID
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, courseID)
	return err
}

// SearchCourses retrieves up to limit courses matching the alternation pattern
// anywhere in title, description or content, case-insensitively, in creation
// order (no relevance ranking across tokens).
func (r *courseRepo) SearchCourses(ctx context.Context, pattern string, limit int) ([]model.Course, error) {
	query := `
		SELECT ` + courseColumns + `, u.name, u.email
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		WHERE c.title ~* $1 OR c.description ~* $1 OR c.content ~* $1
		ORDER BY c.created_at ASC
		LIMIT $2
	`
	return r.queryCourses(ctx, query, true, pattern, limit)
}

// ListTopCourses retrieves the first limit courses in creation order
func (r *courseRepo) ListTopCourses(ctx context.Context, limit int) ([]model.Course, error) {
	query := `
		SELECT ` + courseColumns + `, u.name, u.email
		FROM courses c
		JOIN users u ON u.id = c.instructor_id
		ORDER BY c.created_at ASC
		LIMIT $1
	`
	return r.queryCourses(ctx, query, true, limit)
}

// CountByInstructor counts the courses owned by the given instructor
func (r *courseRepo) CountByInstructor(ctx context.Context, instructorID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM courses WHERE instructor_id = $1`, instructorID,
	).Scan(&count)
	return count, err
}

func (r *courseRepo) queryCourses(ctx context.Context, query string, withInstructor bool, args ...interface{}) ([]model.Course, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		c, err := scanCourse(rows, withInstructor)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}
