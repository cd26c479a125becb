package service

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

var ErrAlreadyEnrolled = errors.New("already enrolled")

type EnrollmentService interface {
	// Enroll admits a student into a course exactly once
	Enroll(ctx context.Context, studentID, courseID string) (*model.Enrollment, error)
	// ListOwn retrieves the calling student's enrollments with courses populated
	ListOwn(ctx context.Context, studentID string) ([]model.Enrollment, error)
	// ListCourseStudents retrieves a course's enrollments with student
	// name/email resolved, only for the owning instructor
	ListCourseStudents(ctx context.Context, courseID, callerID string) ([]model.Enrollment, error)
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	courseRepo     repository.CourseRepository
	logger         zerolog.Logger
}

func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository, courseRepo repository.CourseRepository, logger zerolog.Logger) EnrollmentService {
	return &enrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		logger:         logger.With().Str("service", "EnrollmentService").Logger(),
	}
}

// Enroll checks for an existing (student, course) pair before inserting. The
// unique index on the pair backstops the check under concurrent duplicates;
// both paths surface as ErrAlreadyEnrolled.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID string) (*model.Enrollment, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("looking up course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}

	existing, err := s.enrollmentRepo.GetByStudentAndCourse(ctx, studentID, courseID)
	if err != nil {
		return nil, fmt.Errorf("checking enrollment: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	enrollment := &model.Enrollment{StudentID: studentID, CourseID: courseID}
	if err := s.enrollmentRepo.CreateEnrollment(ctx, enrollment); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyEnrolled
		}
		s.logger.Error().Err(err).Str("student_id", studentID).Str("course_id", courseID).Msg("Failed to create enrollment")
		return nil, fmt.Errorf("creating enrollment: %w", err)
	}
	return enrollment, nil
}

func (s *enrollmentService) ListOwn(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, studentID)
	if err != nil {
		s.logger.Error().Err(err).Str("student_id", studentID).Msg("Failed to list enrollments")
		return nil, fmt.Errorf("listing enrollments: %w", err)
	}
	return enrollments, nil
}

// ListCourseStudents verifies the course exists and belongs to the caller
// before returning its roster.
func (s *enrollmentService) ListCourseStudents(ctx context.Context, courseID, callerID string) ([]model.Enrollment, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("looking up course: %w", err)
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if !course.OwnedBy(callerID) {
		return nil, ErrNotCourseOwner
	}
	return s.enrollmentRepo.ListByCourse(ctx, courseID)
}
