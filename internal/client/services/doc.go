// Package services holds the client-side application services: the
// in-memory session with its persisted record, and the profile service
// that feeds server updates back into it.
package services
