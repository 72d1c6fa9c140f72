package models

// Source identifies where an inbox item came from.
type Source string

const (
	SourceNote     Source = "note"
	SourceEmail    Source = "email"
	SourceCall     Source = "call"
	SourceInternal Source = "internal"
	// SourceDocument marks items created from an uploaded file whose text
	// was extracted upstream.
	SourceDocument Source = "document"
)

// Category is the classification tag driving template eligibility.
type Category string

const (
	CategoryInfo        Category = "info"
	CategoryRH          Category = "rh"
	CategoryLogement    Category = "logement"
	CategoryFacturation Category = "facturation"
	CategoryDirection   Category = "direction"
	CategoryUrgence     Category = "urgence"
	// CategoryGeneral is the shared template bucket; items themselves are
	// never tagged general.
	CategoryGeneral Category = "general"
)

// Status is the lifecycle state of an inbox item.
type Status string

const (
	StatusPending  Status = "pending"
	StatusArchived Status = "archived"
)

// Sources and Categories enumerate the accepted values, used by validation.
var (
	Sources    = []Source{SourceNote, SourceEmail, SourceCall, SourceInternal, SourceDocument}
	Categories = []Category{CategoryInfo, CategoryRH, CategoryLogement, CategoryFacturation, CategoryDirection, CategoryUrgence}
)

// InboxItem is an unprocessed incoming request awaiting a decision.
// Content is mutable only while Status is pending; the only status
// transition is pending -> archived, performed by the lifecycle manager.
type InboxItem struct {
	ID       string   `json:"id"`
	Source   Source   `json:"source"`
	Category Category `json:"category"`
	Content  string   `json:"content"`
	Status   Status   `json:"status"`
	// Created timestamp (ns)
	CreatedTS int64 `json:"created_ts"`
	// Updated timestamp (ns) - last edit while pending, or archival time
	UpdatedTS int64 `json:"updated_ts,omitempty"`
}
