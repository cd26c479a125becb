package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// EnrollmentHandler handles enrollment-related endpoints
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
	validate          *validator.Validate
	logger            zerolog.Logger
}

// NewEnrollmentHandler creates a new EnrollmentHandler
func NewEnrollmentHandler(enrollmentService service.EnrollmentService, validate *validator.Validate, logger zerolog.Logger) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService, validate: validate, logger: logger}
}

// RegisterRoutes mounts enrollment routes
func (h *EnrollmentHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	studentOnly := middleware.RequireRole(model.RoleStudent)
	instructorOnly := middleware.RequireRole(model.RoleInstructor)
	mux.Handle("/enrollments/enroll", authMw(studentOnly(http.HandlerFunc(h.enroll))))
	mux.Handle("/enrollments/my", authMw(studentOnly(http.HandlerFunc(h.listOwn))))
	mux.Handle("/enrollments/course/", authMw(instructorOnly(http.HandlerFunc(h.listCourseStudents))))
}

// enroll godoc
// @Summary Enroll in a course
// @Description Enrolls the authenticated student in a course. Enrolling twice fails with "Already enrolled".
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body dto.EnrollDTO true "Enrollment request"
// @Success 201 {object} dto.EnrollResultDTO
// @Failure 400 {object} map[string]string "Course ID missing or already enrolled"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /enrollments/enroll [post]
func (h *EnrollmentHandler) enroll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.EnrollDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if req.CourseID == "" {
		writeError(w, http.StatusBadRequest, "Course ID is required")
		return
	}

	enrollment, err := h.enrollmentService.Enroll(r.Context(), principal.UserID, req.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyEnrolled):
			writeError(w, http.StatusBadRequest, "Already enrolled")
		case errors.Is(err, service.ErrCourseNotFound):
			writeError(w, http.StatusNotFound, "Course not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.EnrollResultDTO{
		Message:    "Enrollment successful",
		Enrollment: dto.NewEnrollmentResponse(enrollment),
	})
}

// listOwn godoc
// @Summary List the caller's enrollments
// @Description Retrieves the authenticated student's enrollments with the course populated.
// @Tags enrollments
// @Produce json
// @Success 200 {array} dto.EnrollmentResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Access denied"
// @Router /enrollments/my [get]
func (h *EnrollmentHandler) listOwn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}
	enrollments, err := h.enrollmentService.ListOwn(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.NewEnrollmentResponseList(enrollments))
}

// listCourseStudents godoc
// @Summary List a course's students
// @Description Retrieves a course's enrollments with student name and email resolved, for the owning instructor.
// @Tags enrollments
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {array} dto.EnrollmentResponseDTO
// @Failure 403 {object} map[string]string "Not allowed"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /enrollments/course/{courseId} [get]
func (h *EnrollmentHandler) listCourseStudents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	courseID := strings.TrimPrefix(r.URL.Path, "/enrollments/course/")
	if courseID == "" || strings.Contains(courseID, "/") {
		http.NotFound(w, r)
		return
	}
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}

	enrollments, err := h.enrollmentService.ListCourseStudents(r.Context(), courseID, principal.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCourseNotFound):
			writeError(w, http.StatusNotFound, "Course not found")
		case errors.Is(err, service.ErrNotCourseOwner):
			writeError(w, http.StatusForbidden, "Not allowed")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, dto.NewEnrollmentResponseList(enrollments))
}
