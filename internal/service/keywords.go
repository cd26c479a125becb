package service

import (
	"strings"
	"unicode"
)

// Stopwords excluded from the relevance filter's keyword set: pronouns,
// articles, and the request verbs users wrap their actual topic in.
// Tokens of length <= 2 are dropped before this set is consulted.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "this": {},
	"you": {}, "your": {}, "are": {}, "can": {}, "could": {}, "would": {},
	"want": {}, "need": {}, "learn": {}, "learning": {}, "study": {},
	"course": {}, "courses": {}, "class": {}, "classes": {},
	"find": {}, "show": {}, "get": {}, "give": {}, "tell": {}, "teach": {},
	"looking": {}, "suggest": {}, "recommend": {}, "please": {}, "help": {},
	"how": {}, "what": {}, "which": {}, "some": {}, "any": {}, "about": {},
	"good": {}, "best": {}, "new": {},
}

// ExtractKeywords reduces a free-text prompt to its salient tokens: lowercase
// the prompt, strip everything that is not a word character or whitespace,
// split on whitespace, and drop short tokens and stopwords. An empty result is
// a valid, expected outcome for stopword-only or garbage prompts.
func ExtractKeywords(prompt string) []string {
	var b strings.Builder
	for _, r := range strings.ToLower(prompt) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	var keywords []string
	for _, token := range strings.Fields(b.String()) {
		if len(token) <= 2 {
			continue
		}
		if _, ok := stopwords[token]; ok {
			continue
		}
		keywords = append(keywords, token)
	}
	return keywords
}

// KeywordPattern joins the surviving tokens into a single case-insensitive
// alternation. A course is relevant iff any one token appears as a substring
// in any of its text fields. Tokens contain only word characters, so the
// pattern needs no escaping.
func KeywordPattern(keywords []string) string {
	return strings.Join(keywords, "|")
}
