// Package models defines client-side data models for the InternHub portal:
// uploaded documents, resume records, structured extractions produced by the
// remote parsing service, and the processing-stage sequence shown while a
// parse is in flight.
package models
