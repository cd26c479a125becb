package service

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			name:   "typical request",
			prompt: "I want to learn mobile app development",
			want:   []string{"mobile", "app", "development"},
		},
		{
			name:   "punctuation stripped",
			prompt: "machine-learning, please! (beginner)",
			want:   []string{"machinelearning", "beginner"},
		},
		{
			name:   "mixed case lowered",
			prompt: "Teach me PYTHON",
			want:   []string{"python"},
		},
		{
			name:   "stopwords only",
			prompt: "please find me a good course",
			want:   nil,
		},
		{
			name:   "short tokens dropped",
			prompt: "ai ml db",
			want:   nil,
		},
		{
			name:   "empty prompt",
			prompt: "",
			want:   nil,
		},
		{
			name:   "garbage prompt",
			prompt: "!!! ??? ***",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractKeywords(tt.prompt)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractKeywords(%q) = %v, want %v", tt.prompt, got, tt.want)
			}
		})
	}
}

func TestKeywordPattern(t *testing.T) {
	if got := KeywordPattern([]string{"mobile", "app"}); got != "mobile|app" {
		t.Errorf("KeywordPattern = %q, want %q", got, "mobile|app")
	}
	if got := KeywordPattern(nil); got != "" {
		t.Errorf("KeywordPattern(nil) = %q, want empty", got)
	}
}
