package models

// Stage is one step of the progress sequence displayed while a parse runs.
type Stage struct {
	Name      string
	Label     string
	Icon      string
	Completed bool
}

// NoActiveStage is the active-index value meaning no stage is in progress.
const NoActiveStage = -1

// DefaultStages returns the parse progress sequence, all incomplete.
// Stages complete strictly in order; the sequence is reset whenever a new
// parse begins.
func DefaultStages() []Stage {
	return []Stage{
		{Name: "uploading", Label: "Uploading document", Icon: "upload"},
		{Name: "extracting", Label: "Extracting text", Icon: "file-text"},
		{Name: "analyzing", Label: "Analyzing skills", Icon: "cpu"},
		{Name: "structuring", Label: "Structuring data", Icon: "layers"},
		{Name: "finalizing", Label: "Finalizing results", Icon: "check-circle"},
	}
}
