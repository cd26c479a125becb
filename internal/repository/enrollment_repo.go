package repository

import (
	"context"
	"database/sql"
	"errors"

	"app/internal/model"

	"github.com/rs/zerolog"
)

// EnrollmentRepository defines the interface for interacting with enrollment data
type EnrollmentRepository interface {
	CreateEnrollment(ctx context.Context, e *model.Enrollment) error
	// GetByStudentAndCourse retrieves the enrollment for a (student, course)
	// pair, or nil when the student is not enrolled
	GetByStudentAndCourse(ctx context.Context, studentID, courseID string) (*model.Enrollment, error)
	// ListByStudent retrieves a student's enrollments with the course populated
	ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error)
	// ListByCourse retrieves a course's enrollments with student name/email resolved
	ListByCourse(ctx context.Context, courseID string) ([]model.Enrollment, error)
	// CountDistinctStudents counts the distinct students enrolled across all
	// of an instructor's courses
	CountDistinctStudents(ctx context.Context, instructorID string) (int, error)
}

type enrollmentRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewEnrollmentRepo creates a new EnrollmentRepository
func NewEnrollmentRepo(db *sql.DB, logger zerolog.Logger) EnrollmentRepository {
	return &enrollmentRepo{db: db, logger: logger.With().Str("repository", "EnrollmentRepository").Logger()}
}

// CreateEnrollment inserts a new enrollment. A concurrent duplicate for the
// same (student, course) pair fails the unique index and maps to ErrDuplicate.
func (r *enrollmentRepo) CreateEnrollment(ctx context.Context, e *model.Enrollment) error {
	query := `
		INSERT INTO enrollments (student_id, course_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, e.StudentID, e.CourseID).
		Scan(&e.EnrollmentID, &e.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByStudentAndCourse retrieves an existing enrollment for the pair, if any
func (r *enrollmentRepo) GetByStudentAndCourse(ctx context.Context, studentID, courseID string) (*model.Enrollment, error) {
	var e model.Enrollment
	query := `
		SELECT id, student_id, course_id, created_at
		FROM enrollments
		WHERE student_id = $1 AND course_id = $2
	`
	err := r.db.QueryRowContext(ctx, query, studentID, courseID).
		Scan(&e.EnrollmentID, &e.StudentID, &e.CourseID, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

// ListByStudent retrieves all enrollments of a student with the course record
// populated.
func (r *enrollmentRepo) ListByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at,
			c.id, c.title, c.description, c.content, c.category, c.level,
			c.duration, c.price, c.prerequisites, c.learning_outcomes,
			c.instructor_id, c.created_at, c.updated_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.student_id = $1
		ORDER BY e.created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		var c model.Course
		if err := rows.Scan(
			&e.EnrollmentID, &e.StudentID, &e.CourseID, &e.CreatedAt,
			&c.CourseID, &c.Title, &c.Description, &c.Content, &c.Category, &c.Level,
			&c.Duration, &c.Price, &c.Prerequisites, &c.LearningOutcomes,
			&c.InstructorID, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		e.Course = &c
		enrollments = append(enrollments, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(enrollments) == 0 {
		return []model.Enrollment{}, nil
	}
	return enrollments, nil
}

// ListByCourse retrieves all enrollments of a course with student name and
// email resolved, never the full student record.
func (r *enrollmentRepo) ListByCourse(ctx context.Context, courseID string) ([]model.Enrollment, error) {
	query := `
		SELECT e.id, e.student_id, e.course_id, e.created_at, u.name, u.email
		FROM enrollments e
		JOIN users u ON u.id = e.student_id
		WHERE e.course_id = $1
		ORDER BY e.created_at ASC
	`
	rows, err := r.db.QueryContext(ctx, query, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(
			&e.EnrollmentID, &e.StudentID, &e.CourseID, &e.CreatedAt,
			&e.StudentName, &e.StudentEmail,
		); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(enrollments) == 0 {
		return []model.Enrollment{}, nil
	}
	return enrollments, nil
}

// CountDistinctStudents counts each student once even when enrolled in several
// of the instructor's courses.
func (r *enrollmentRepo) CountDistinctStudents(ctx context.Context, instructorID string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT e.student_id)
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE c.instructor_id = $1
	`
	var count int
	err := r.db.QueryRowContext(ctx, query, instructorID).Scan(&count)
	return count, err
}
