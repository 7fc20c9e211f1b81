// Package services contains the portal's orchestration core: document
// intake validation, the upload/parse pipeline with its staged progress
// feedback, the resume registry with optimistic activation, best-effort
// profile synchronization, and the collapsible-section persistence and
// broadcast bus.
package services
