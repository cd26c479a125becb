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

// CourseHandler handles course-related endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	instructorOnly := middleware.RequireRole(model.RoleInstructor)
	mux.Handle("/courses", authMw(http.HandlerFunc(h.handleCourses)))
	mux.Handle("/courses/my", authMw(instructorOnly(http.HandlerFunc(h.listOwnCourses))))
	mux.Handle("/courses/stats", authMw(instructorOnly(http.HandlerFunc(h.stats))))
	mux.Handle("/courses/", authMw(instructorOnly(http.HandlerFunc(h.handleCourse))))
}

func (h *CourseHandler) handleCourses(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/courses" {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPost:
		h.createCourse(w, r)
	case http.MethodGet:
		h.listCourses(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *CourseHandler) handleCourse(w http.ResponseWriter, r *http.Request) {
	courseID := strings.TrimPrefix(r.URL.Path, "/courses/")
	if courseID == "" || strings.Contains(courseID, "/") {
		http.NotFound(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		h.updateCourse(w, r, courseID)
	case http.MethodDelete:
		h.deleteCourse(w, r, courseID)
	default:
		http.NotFound(w, r)
	}
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a course owned by the authenticated instructor. Omitted fields take their defaults.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string]string "Invalid JSON payload or validation failed"
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Access denied"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}
	if principal.Role != model.RoleInstructor {
		http.Error(w, "Access denied", http.StatusForbidden)
		return
	}

	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	course := &model.Course{
		Title:            req.Title,
		Description:      req.Description,
		Content:          "",
		Category:         "Other",
		Level:            model.LevelBeginner,
		Duration:         "Self-paced",
		Price:            "Free",
		Prerequisites:    "None",
		LearningOutcomes: "",
		InstructorID:     principal.UserID,
	}
	if req.Content != nil {
		course.Content = *req.Content
	}
	if req.Category != nil {
		course.Category = *req.Category
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Duration != nil {
		course.Duration = *req.Duration
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Prerequisites != nil {
		course.Prerequisites = *req.Prerequisites
	}
	if req.LearningOutcomes != nil {
		course.LearningOutcomes = *req.LearningOutcomes
	}

	created, err := h.courseService.CreateCourse(r.Context(), course)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	created.InstructorName = principal.Name
	created.InstructorEmail = principal.Email
	writeJSON(w, http.StatusCreated, dto.NewCourseResponse(created))
}

// listCourses godoc
// @Summary List all courses
// @Description Retrieves every course in the catalog with instructor name and email resolved.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponseList(courses))
}

// listOwnCourses godoc
// @Summary List the caller's courses
// @Description Retrieves the courses owned by the authenticated instructor.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Access denied"
// @Router /courses/my [get]
func (h *CourseHandler) listOwnCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}
	courses, err := h.courseService.ListOwnCourses(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponseList(courses))
}

// stats godoc
// @Summary Instructor statistics
// @Description Aggregates total courses and distinct enrolled students for the authenticated instructor.
// @Tags courses
// @Produce json
// @Success 200 {object} dto.CourseStatsDTO
// @Failure 401 {string} string "Unauthorized"
// @Failure 403 {string} string "Access denied"
// @Router /courses/stats [get]
func (h *CourseHandler) stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}
	stats, err := h.courseService.Stats(r.Context(), principal.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, dto.CourseStatsDTO{
		TotalCourses:  stats.TotalCourses,
		TotalStudents: stats.TotalStudents,
	})
}

// updateCourse godoc
// @Summary Update a course
// @Description Overwrites the submitted fields of a course owned by the authenticated instructor.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Course update request"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string]string "Invalid JSON payload or validation failed"
// @Failure 403 {object} map[string]string "Not allowed"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{courseId} [put]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	updated, err := h.courseService.UpdateCourse(r.Context(), courseID, principal.UserID, func(c *model.Course) {
		if req.Title != nil {
			c.Title = *req.Title
		}
		if req.Description != nil {
			c.Description = *req.Description
		}
		if req.Content != nil {
			c.Content = *req.Content
		}
		if req.Category != nil {
			c.Category = *req.Category
		}
		if req.Level != nil {
			c.Level = *req.Level
		}
		if req.Duration != nil {
			c.Duration = *req.Duration
		}
		if req.Price != nil {
			c.Price = *req.Price
		}
		if req.Prerequisites != nil {
			c.Prerequisites = *req.Prerequisites
		}
		if req.LearningOutcomes != nil {
			c.LearningOutcomes = *req.LearningOutcomes
		}
	})
	if err != nil {
		h.respondCourseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.NewCourseResponse(updated))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Deletes a course owned by the authenticated instructor.
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string "Not allowed"
// @Failure 404 {object} map[string]string "Course not found"
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request, courseID string) {
	principal, ok := middleware.PrincipalFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}
	if err := h.courseService.DeleteCourse(r.Context(), courseID, principal.UserID); err != nil {
		h.respondCourseError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Course deleted successfully"})
}

func (h *CourseHandler) respondCourseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCourseNotFound):
		writeError(w, http.StatusNotFound, "Course not found")
	case errors.Is(err, service.ErrNotCourseOwner):
		writeError(w, http.StatusForbidden, "Not allowed")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
