package models

// MemoryTrace is the permanent record of a decision taken on a processed
// inbox item. Created exactly once per processed item and never deleted by
// the lifecycle; decision/context/responsible stay editable afterwards.
type MemoryTrace struct {
	ID       string `json:"id"`
	Decision string `json:"decision"`
	Context  string `json:"context,omitempty"`
	// State mirrors the processing outcome; currently always "processed"
	// for traces created by the lifecycle manager.
	State       string `json:"state,omitempty"`
	Responsible string `json:"responsible,omitempty"`
	// DocumentContent is the finalized document snapshot as resolved at
	// commit time. Replaced wholesale on update, never patched field by
	// field.
	DocumentContent *Document `json:"document_content,omitempty"`
	// Created timestamp (ns), immutable
	CreatedTS int64 `json:"created_ts"`
}
