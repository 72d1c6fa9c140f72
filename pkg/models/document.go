package models

// Document is a transient draft produced by the renderer and consumed by
// the placeholder resolver. It is never persisted on its own; only the
// snapshot embedded in a MemoryTrace survives.
type Document struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
