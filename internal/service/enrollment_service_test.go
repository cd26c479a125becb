package service

import (
	"context"
	"testing"

	"app/internal/logger"
	"app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEnrollmentService(t *testing.T) (EnrollmentService, *mockCourseRepo, *model.Course) {
	t.Helper()
	courseRepo := newMockCourseRepo()
	enrollmentRepo := newMockEnrollmentRepo(courseRepo)
	course := &model.Course{Title: "Go Fundamentals", Description: "Learn Go", InstructorID: "instr-1"}
	require.NoError(t, courseRepo.CreateCourse(context.Background(), course))
	svc := NewEnrollmentService(enrollmentRepo, courseRepo, logger.New())
	return svc, courseRepo, course
}

func TestEnrollmentService_EnrollOnce(t *testing.T) {
	svc, _, course := setupEnrollmentService(t)

	enrollment, err := svc.Enroll(context.Background(), "student-1", course.CourseID)
	require.NoError(t, err)
	assert.NotEmpty(t, enrollment.EnrollmentID)
	assert.Equal(t, "student-1", enrollment.StudentID)
	assert.Equal(t, course.CourseID, enrollment.CourseID)
}

func TestEnrollmentService_EnrollTwiceFails(t *testing.T) {
	svc, _, course := setupEnrollmentService(t)

	_, err := svc.Enroll(context.Background(), "student-1", course.CourseID)
	require.NoError(t, err)

	_, err = svc.Enroll(context.Background(), "student-1", course.CourseID)
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)

	// A different student is unaffected
	_, err = svc.Enroll(context.Background(), "student-2", course.CourseID)
	require.NoError(t, err)
}

func TestEnrollmentService_EnrollMissingCourse(t *testing.T) {
	svc, _, _ := setupEnrollmentService(t)
	_, err := svc.Enroll(context.Background(), "student-1", "missing")
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestEnrollmentService_ListOwnPopulatesCourse(t *testing.T) {
	svc, _, course := setupEnrollmentService(t)
	_, err := svc.Enroll(context.Background(), "student-1", course.CourseID)
	require.NoError(t, err)

	enrollments, err := svc.ListOwn(context.Background(), "student-1")
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.NotNil(t, enrollments[0].Course)
	assert.Equal(t, "Go Fundamentals", enrollments[0].Course.Title)

	none, err := svc.ListOwn(context.Background(), "student-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEnrollmentService_ListCourseStudentsOwnershipGate(t *testing.T) {
	svc, _, course := setupEnrollmentService(t)
	_, err := svc.Enroll(context.Background(), "student-1", course.CourseID)
	require.NoError(t, err)

	_, err = svc.ListCourseStudents(context.Background(), course.CourseID, "instr-2")
	assert.ErrorIs(t, err, ErrNotCourseOwner)

	_, err = svc.ListCourseStudents(context.Background(), "missing", "instr-1")
	assert.ErrorIs(t, err, ErrCourseNotFound)

	roster, err := svc.ListCourseStudents(context.Background(), course.CourseID, "instr-1")
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, "student-1", roster[0].StudentID)
}
