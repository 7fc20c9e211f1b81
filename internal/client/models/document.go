package models

// Document is a candidate file selected for upload. Data is held in memory;
// resumes are capped at 10 MiB before any upload is attempted, so buffering
// the whole file is acceptable.
type Document struct {
	Name     string
	MimeType string
	Size     int64
	Data     []byte
}
