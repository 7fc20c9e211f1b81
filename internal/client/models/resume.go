package models

import "time"

// ResumeRecord is a server-owned uploaded resume. At most one record per
// user has IsActive=true in any settled state; the server list is the source
// of truth and wins over any optimistic local change.
type ResumeRecord struct {
	ID              string    `json:"id"`
	FileName        string    `json:"file_name"`
	ExtractedSkills []string  `json:"extracted_skills"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
