package service

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"
	"app/internal/repository"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrNotCourseOwner = errors.New("not allowed")
)

// CourseStats aggregates an instructor's catalog and audience size.
type CourseStats struct {
	TotalCourses  int `json:"totalCourses"`
	TotalStudents int `json:"totalStudents"`
}

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// ListCourses retrieves all courses with instructor name/email resolved
	ListCourses(ctx context.Context) ([]model.Course, error)
	// ListOwnCourses retrieves the calling instructor's courses
	ListOwnCourses(ctx context.Context, instructorID string) ([]model.Course, error)
	// UpdateCourse overwrites the submitted fields of an existing course,
	// only when the caller owns it
	UpdateCourse(ctx context.Context, courseID, callerID string, overwrite func(*model.Course)) (*model.Course, error)
	// DeleteCourse deletes a course, only when the caller owns it
	DeleteCourse(ctx context.Context, courseID, callerID string) error
	// Stats aggregates course and distinct-student counts for an instructor
	Stats(ctx context.Context, instructorID string) (*CourseStats, error)
}

// courseService is the implementation of CourseService
type courseService struct {
	courseRepo     repository.CourseRepository
	enrollmentRepo repository.EnrollmentRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(courseRepo repository.CourseRepository, enrollmentRepo repository.EnrollmentRepository) CourseService {
	return &courseService{courseRepo: courseRepo, enrollmentRepo: enrollmentRepo}
}

// CreateCourse creates a new course record owned by the calling instructor
func (s *courseService) CreateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if err := s.courseRepo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListCourses retrieves all courses in the catalog
func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.courseRepo.ListCourses(ctx)
}

// ListOwnCourses retrieves the courses owned by the calling instructor
func (s *courseService) ListOwnCourses(ctx context.Context, instructorID string) ([]model.Course, error) {
	return s.courseRepo.ListCoursesByInstructor(ctx, instructorID)
}

// UpdateCourse applies the overwrite to the stored course and persists it.
// The overwrite callback receives the stored record with every submitted
// field replacing the corresponding stored field.
func (s *courseService) UpdateCourse(ctx context.Context, courseID, callerID string, overwrite func(*model.Course)) (*model.Course, error) {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	if !course.OwnedBy(callerID) {
		return nil, ErrNotCourseOwner
	}

	overwrite(course)
	if err := s.courseRepo.UpdateCourse(ctx, course); err != nil {
		return nil, fmt.Errorf("updating course: %w", err)
	}
	return course, nil
}

// DeleteCourse deletes a course owned by the caller
func (s *courseService) DeleteCourse(ctx context.Context, courseID, callerID string) error {
	course, err := s.courseRepo.GetCourseByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return ErrCourseNotFound
	}
	if !course.OwnedBy(callerID) {
		return ErrNotCourseOwner
	}
	return s.courseRepo.DeleteCourse(ctx, courseID)
}

// Stats aggregates the instructor's course count and the distinct students
// enrolled across those courses.
func (s *courseService) Stats(ctx context.Context, instructorID string) (*CourseStats, error) {
	totalCourses, err := s.courseRepo.CountByInstructor(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("counting courses: %w", err)
	}
	totalStudents, err := s.enrollmentRepo.CountDistinctStudents(ctx, instructorID)
	if err != nil {
		return nil, fmt.Errorf("counting students: %w", err)
	}
	return &CourseStats{TotalCourses: totalCourses, TotalStudents: totalStudents}, nil
}
