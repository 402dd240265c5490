package models

import "strings"

// PromptType selects the summary template.
type PromptType string

const (
	PromptGeneral      PromptType = "general"
	PromptMeeting      PromptType = "meeting"
	PromptPresentation PromptType = "presentation"
)

// PromptTypes lists the recognised prompt types in display order.
var PromptTypes = []PromptType{PromptGeneral, PromptMeeting, PromptPresentation}

// ParsePromptType normalises s to a known PromptType.
// Unrecognised values fall back to PromptGeneral.
func ParsePromptType(s string) PromptType {
	t := PromptType(strings.ToLower(strings.TrimSpace(s)))
	if t.Known() {
		return t
	}
	return PromptGeneral
}

// Known reports whether t is one of PromptTypes.
func (t PromptType) Known() bool {
	switch t {
	case PromptGeneral, PromptMeeting, PromptPresentation:
		return true
	}
	return false
}

// Prompt is the message pair sent to the summarization service.
type Prompt struct {
	System string
	User   string
}
