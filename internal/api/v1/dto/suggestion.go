package dto

// AskDTO is used for incoming suggestion requests
type AskDTO struct {
	Prompt string `json:"prompt" validate:"required"`
}

// AskResponseDTO pairs the advisor's reply with the relevant courses
type AskResponseDTO struct {
	Reply   string              `json:"reply"`
	Courses []CourseResponseDTO `json:"courses"`
}
