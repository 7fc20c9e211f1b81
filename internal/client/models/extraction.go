package models

import "time"

// StructuredExtraction is the structured record the remote parsing service
// produces from a resume document. It is transient: held in the current view
// until superseded or cleared, never persisted by the client.
type StructuredExtraction struct {
	PersonalInfo         PersonalInfo    `json:"personal_info"`
	Summary              string          `json:"summary"`
	Skills               SkillGroups     `json:"skills"`
	AllSkills            []string        `json:"all_skills"`
	Experience           []Experience    `json:"experience"`
	Education            []Education     `json:"education"`
	Projects             []Project       `json:"projects"`
	Certifications       []Certification `json:"certifications"`
	TotalExperienceYears float64         `json:"total_experience_years"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

// SkillGroups splits skills by kind; AllSkills on the extraction is the
// deduplicated union of both groups.
type SkillGroups struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}

// ProcessingDetails is server-side metadata accompanying an extraction.
type ProcessingDetails struct {
	FileName    string    `json:"file_name"`
	ProcessedAt time.Time `json:"processed_at"`
	Method      string    `json:"method"`
}

// ParseResult is the wire shape returned by the parse and parsed-data
// endpoints.
type ParseResult struct {
	StructuredData    StructuredExtraction `json:"structured_data"`
	ProcessingDetails ProcessingDetails    `json:"processing_details"`
}
