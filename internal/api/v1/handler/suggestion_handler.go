package handler

import (
	"encoding/json"
	"net/http"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// SuggestionHandler handles the AI course-suggestion endpoint
type SuggestionHandler struct {
	suggestionService service.SuggestionService
	validate          *validator.Validate
	logger            zerolog.Logger
}

// NewSuggestionHandler creates a new SuggestionHandler
func NewSuggestionHandler(suggestionService service.SuggestionService, validate *validator.Validate, logger zerolog.Logger) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService, validate: validate, logger: logger}
}

// RegisterRoutes mounts suggestion routes. Any authenticated role may ask.
func (h *SuggestionHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/gpt/ask", authMw(http.HandlerFunc(h.ask)))
}

// ask godoc
// @Summary Ask the course advisor
// @Description Sends the prompt to the AI advisor and returns its reply alongside up to ten matching courses.
// @Tags gpt
// @Accept json
// @Produce json
// @Param question body dto.AskDTO true "Suggestion request"
// @Success 200 {object} dto.AskResponseDTO
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 401 {string} string "Unauthorized"
// @Failure 500 {object} map[string]string "Advisor request failed"
// @Router /gpt/ask [post]
func (h *SuggestionHandler) ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	if _, ok := middleware.PrincipalFrom(r.Context()); !ok {
		http.Error(w, "Unauthorized: User not found in context", http.StatusUnauthorized)
		return
	}

	var req dto.AskDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload: "+err.Error())
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	suggestion, err := h.suggestionService.Ask(r.Context(), req.Prompt)
	if err != nil {
		// The whole request fails when the upstream call fails; no partial
		// "courses without reply" response.
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AskResponseDTO{
		Reply:   suggestion.Reply,
		Courses: dto.NewCourseResponseList(suggestion.Courses),
	})
}
