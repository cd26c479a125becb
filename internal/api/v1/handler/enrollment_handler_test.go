package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEnrollmentService struct {
	enrollFn     func(ctx context.Context, studentID, courseID string) (*model.Enrollment, error)
	listOwnFn    func(ctx context.Context, studentID string) ([]model.Enrollment, error)
	listRosterFn func(ctx context.Context, courseID, callerID string) ([]model.Enrollment, error)
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, studentID, courseID string) (*model.Enrollment, error) {
	return s.enrollFn(ctx, studentID, courseID)
}

func (s *stubEnrollmentService) ListOwn(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	return s.listOwnFn(ctx, studentID)
}

func (s *stubEnrollmentService) ListCourseStudents(ctx context.Context, courseID, callerID string) ([]model.Enrollment, error) {
	return s.listRosterFn(ctx, courseID, callerID)
}

func newEnrollmentMux(svc service.EnrollmentService, p *middleware.Principal) *http.ServeMux {
	h := NewEnrollmentHandler(svc, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, injectPrincipal(p))
	return mux
}

func studentPrincipal() *middleware.Principal {
	return &middleware.Principal{UserID: "student-1", Name: "Bo", Email: "bo@example.com", Role: model.RoleStudent}
}

func TestEnrollmentHandler_Enroll(t *testing.T) {
	svc := &stubEnrollmentService{
		enrollFn: func(_ context.Context, studentID, courseID string) (*model.Enrollment, error) {
			assert.Equal(t, "student-1", studentID)
			assert.Equal(t, "course-1", courseID)
			return &model.Enrollment{EnrollmentID: "enr-1", StudentID: studentID, CourseID: courseID}, nil
		},
	}
	mux := newEnrollmentMux(svc, studentPrincipal())

	req := httptest.NewRequest(http.MethodPost, "/enrollments/enroll", strings.NewReader(`{"courseId":"course-1"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Message    string `json:"message"`
		Enrollment struct {
			ID       string `json:"id"`
			CourseID string `json:"courseId"`
		} `json:"enrollment"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Enrollment successful", resp.Message)
	assert.Equal(t, "enr-1", resp.Enrollment.ID)
	assert.Equal(t, "course-1", resp.Enrollment.CourseID)
}

func TestEnrollmentHandler_EnrollDuplicate(t *testing.T) {
	svc := &stubEnrollmentService{
		enrollFn: func(_ context.Context, _, _ string) (*model.Enrollment, error) {
			return nil, service.ErrAlreadyEnrolled
		},
	}
	mux := newEnrollmentMux(svc, studentPrincipal())

	req := httptest.NewRequest(http.MethodPost, "/enrollments/enroll", strings.NewReader(`{"courseId":"course-1"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Already enrolled", decodeMessage(t, rec))
}

func TestEnrollmentHandler_EnrollMissingCourseID(t *testing.T) {
	svc := &stubEnrollmentService{}
	mux := newEnrollmentMux(svc, studentPrincipal())

	req := httptest.NewRequest(http.MethodPost, "/enrollments/enroll", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Course ID is required", decodeMessage(t, rec))
}

func TestEnrollmentHandler_EnrollMissingCourse(t *testing.T) {
	svc := &stubEnrollmentService{
		enrollFn: func(_ context.Context, _, _ string) (*model.Enrollment, error) {
			return nil, service.ErrCourseNotFound
		},
	}
	mux := newEnrollmentMux(svc, studentPrincipal())

	req := httptest.NewRequest(http.MethodPost, "/enrollments/enroll", strings.NewReader(`{"courseId":"missing"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Course not found", decodeMessage(t, rec))
}

func TestEnrollmentHandler_EnrollRejectsInstructor(t *testing.T) {
	svc := &stubEnrollmentService{}
	mux := newEnrollmentMux(svc, instructorPrincipal())

	req := httptest.NewRequest(http.MethodPost, "/enrollments/enroll", strings.NewReader(`{"courseId":"course-1"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestEnrollmentHandler_ListOwn(t *testing.T) {
	svc := &stubEnrollmentService{
		listOwnFn: func(_ context.Context, studentID string) ([]model.Enrollment, error) {
			return []model.Enrollment{{
				EnrollmentID: "enr-1",
				StudentID:    studentID,
				CourseID:     "course-1",
				Course:       &model.Course{CourseID: "course-1", Title: "Go Fundamentals"},
			}}, nil
		},
	}
	mux := newEnrollmentMux(svc, studentPrincipal())

	req := httptest.NewRequest(http.MethodGet, "/enrollments/my", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []struct {
		ID     string `json:"id"`
		Course *struct {
			Title string `json:"title"`
		} `json:"course"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Course)
	assert.Equal(t, "Go Fundamentals", resp[0].Course.Title)
}

func TestEnrollmentHandler_RosterNotOwner(t *testing.T) {
	svc := &stubEnrollmentService{
		listRosterFn: func(_ context.Context, _, _ string) ([]model.Enrollment, error) {
			return nil, service.ErrNotCourseOwner
		},
	}
	mux := newEnrollmentMux(svc, instructorPrincipal())

	req := httptest.NewRequest(http.MethodGet, "/enrollments/course/course-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Not allowed", decodeMessage(t, rec))
}

func TestEnrollmentHandler_RosterResolvesStudents(t *testing.T) {
	svc := &stubEnrollmentService{
		listRosterFn: func(_ context.Context, courseID, callerID string) ([]model.Enrollment, error) {
			assert.Equal(t, "course-1", courseID)
			assert.Equal(t, "instr-1", callerID)
			return []model.Enrollment{{
				EnrollmentID: "enr-1",
				StudentID:    "student-1",
				CourseID:     courseID,
				StudentName:  "Bo",
				StudentEmail: "bo@example.com",
			}}, nil
		},
	}
	mux := newEnrollmentMux(svc, instructorPrincipal())

	req := httptest.NewRequest(http.MethodGet, "/enrollments/course/course-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []struct {
		Student *struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"student"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Student)
	assert.Equal(t, "Bo", resp[0].Student.Name)
}
