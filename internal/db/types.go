package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Resume is a stored resume record. Analysis holds the JSON-encoded
// analysis result from the most recent run; ATSScore is nil until a score
// has been computed.
type Resume struct {
	ID        uuid.UUID       `json:"id"`
	FileName  string          `json:"file_name"`
	MimeType  string          `json:"mime_type"`
	Content   string          `json:"content"`
	Analysis  json.RawMessage `json:"analysis,omitempty"`
	ATSScore  *int            `json:"ats_score,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SuggestionSet is one persisted suggestion run for a resume.
type SuggestionSet struct {
	ID             uuid.UUID       `json:"id"`
	ResumeID       uuid.UUID       `json:"resume_id"`
	Category       string          `json:"category"`
	Items          json.RawMessage `json:"items"`
	JobDescription string          `json:"job_description,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ResumeFilters narrows ListResumes results.
type ResumeFilters struct {
	FileName string
	Limit    int
}
