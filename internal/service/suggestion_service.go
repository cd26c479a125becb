package service

import (
	"context"
	"fmt"

	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

const (
	// Result caps for the two filter paths
	maxMatchedCourses  = 10
	maxFallbackCourses = 5
)

// Suggestion pairs the advisor's reply with the courses the relevance filter
// selected for it.
type Suggestion struct {
	Reply   string
	Courses []model.Course
}

// SuggestionService answers free-text prompts with an AI reply and a bounded
// set of relevant courses from the local catalog.
type SuggestionService interface {
	Ask(ctx context.Context, prompt string) (*Suggestion, error)
}

type suggestionService struct {
	courseRepo repository.CourseRepository
	openAI     OpenAIClient
	logger     zerolog.Logger
}

func NewSuggestionService(courseRepo repository.CourseRepository, openAI OpenAIClient, logger zerolog.Logger) SuggestionService {
	return &suggestionService{
		courseRepo: courseRepo,
		openAI:     openAI,
		logger:     logger.With().Str("service", "SuggestionService").Logger(),
	}
}

// Ask forwards the prompt to the advisor model, then correlates the prompt's
// salient keywords with locally stored courses. An upstream failure fails the
// whole request; there is no partial "courses without reply" degradation.
func (s *suggestionService) Ask(ctx context.Context, prompt string) (*Suggestion, error) {
	reply, err := s.openAI.CreateCompletion(ctx, prompt)
	if err != nil {
		s.logger.Error().Err(err).Msg("Completion request failed")
		return nil, fmt.Errorf("asking advisor: %w", err)
	}

	keywords := ExtractKeywords(prompt)

	var courses []model.Course
	if len(keywords) == 0 {
		// Prompt consisted entirely of stopwords/short tokens: fall back to
		// the first courses of the catalog rather than returning nothing.
		courses, err = s.courseRepo.ListTopCourses(ctx, maxFallbackCourses)
	} else {
		courses, err = s.courseRepo.SearchCourses(ctx, KeywordPattern(keywords), maxMatchedCourses)
	}
	if err != nil {
		s.logger.Error().Err(err).Strs("keywords", keywords).Msg("Failed to select courses")
		return nil, fmt.Errorf("selecting courses: %w", err)
	}

	return &Suggestion{Reply: reply, Courses: courses}, nil
}
