// Package lifecycle owns the inbox item state machine: pending -> archived,
// with the atomic process commit that turns an item into a memory trace.
package lifecycle

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Eloura74/Backbone/pkg/logger"
	"github.com/Eloura74/Backbone/pkg/models"
	"github.com/Eloura74/Backbone/pkg/utils"
	"github.com/Eloura74/Backbone/pkg/validation"
)

// InboxStore is the persistence contract for inbox items. Get returns
// found=false (with nil error) on a clean miss.
type InboxStore interface {
	Get(id string) (models.InboxItem, bool, error)
	Insert(models.InboxItem) error
	Update(models.InboxItem) error
	Delete(id string) error
}

// MemoryStore is the persistence contract for memory traces.
type MemoryStore interface {
	Insert(models.MemoryTrace) error
}

// Committer is an optional MemoryStore upgrade: stores that can write the
// archived item and its trace as one atomic unit implement it, and Process
// prefers it over the two-step fallback.
type Committer interface {
	Commit(models.InboxItem, models.MemoryTrace) error
}

// ProcessRequest is the commit payload: the decision taken on an item plus
// optional context, responsible and the finalized document snapshot.
// Residual placeholder tokens in Document are permitted; full resolution is
// the caller's choice.
type ProcessRequest struct {
	Decision    string
	Context     string
	Responsible string
	Document    *models.Document
}

// Manager drives item lifecycle transitions. Process calls on the same item
// id are serialized, so exactly one of two racing commits succeeds and the
// loser observes the archived state.
type Manager struct {
	inbox  InboxStore
	memory MemoryStore

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New builds a Manager over the given stores.
func New(inbox InboxStore, memory MemoryStore) *Manager {
	return &Manager{inbox: inbox, memory: memory, locks: make(map[string]*sync.Mutex)}
}

// lockFor returns the mutex serializing operations on one item id.
func (m *Manager) lockFor(id string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.locks[id]
	if !ok {
		l = &sync.Mutex{}
		m.locks[id] = l
	}
	return l
}

func (m *Manager) releaseLock(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, id)
}

// Create validates and stores a new pending item.
func (m *Manager) Create(source models.Source, category models.Category, content string) (models.InboxItem, error) {
	if strings.TrimSpace(content) == "" {
		return models.InboxItem{}, &ValidationError{Field: "content"}
	}
	item := models.InboxItem{
		ID:        utils.GenItemID(),
		Source:    source,
		Category:  category,
		Content:   content,
		Status:    models.StatusPending,
		CreatedTS: time.Now().UTC().UnixNano(),
	}
	item.UpdatedTS = item.CreatedTS
	if err := validation.ValidateItem(item); err != nil {
		return models.InboxItem{}, &ValidationError{Field: "item", Reason: err.Error()}
	}
	if err := m.inbox.Insert(item); err != nil {
		return models.InboxItem{}, err
	}
	logger.Log.Info("item_created",
		zap.String("id", item.ID),
		zap.String("source", string(source)),
		zap.String("category", string(category)))
	return item, nil
}

// Intake normalizes an upload into a pending item with source=document.
// Text extraction from the binary happens upstream; only non-empty
// extracted text reaches this point.
func (m *Manager) Intake(category models.Category, content string) (models.InboxItem, error) {
	return m.Create(models.SourceDocument, category, content)
}

// Edit replaces the content of a pending item. Archived items are
// immutable.
func (m *Manager) Edit(id, content string) (models.InboxItem, error) {
	if strings.TrimSpace(content) == "" {
		return models.InboxItem{}, &ValidationError{Field: "content"}
	}
	l := m.lockFor(id)
	l.Lock()
	defer l.Unlock()

	item, found, err := m.inbox.Get(id)
	if err != nil {
		return models.InboxItem{}, err
	}
	if !found {
		return models.InboxItem{}, &NotFoundError{ID: id}
	}
	if item.Status != models.StatusPending {
		return models.InboxItem{}, &InvalidStateError{ID: id, Status: item.Status, Op: "edit"}
	}
	item.Content = content
	item.UpdatedTS = time.Now().UTC().UnixNano()
	if err := m.inbox.Update(item); err != nil {
		return models.InboxItem{}, err
	}
	logger.Log.Info("item_edited", zap.String("id", id))
	return item, nil
}

// Delete removes a pending item. Archived items are history and stay put;
// their removal belongs to retention, not this path.
func (m *Manager) Delete(id string) error {
	l := m.lockFor(id)
	l.Lock()
	defer l.Unlock()

	item, found, err := m.inbox.Get(id)
	if err != nil {
		return err
	}
	if !found {
		return &NotFoundError{ID: id}
	}
	if item.Status != models.StatusPending {
		return &InvalidStateError{ID: id, Status: item.Status, Op: "delete"}
	}
	if err := m.inbox.Delete(id); err != nil {
		return err
	}
	m.releaseLock(id)
	return nil
}

// Get returns an item regardless of state.
func (m *Manager) Get(id string) (models.InboxItem, error) {
	item, found, err := m.inbox.Get(id)
	if err != nil {
		return models.InboxItem{}, err
	}
	if !found {
		return models.InboxItem{}, &NotFoundError{ID: id}
	}
	return item, nil
}

// Process archives a pending item and creates its memory trace as one
// observable unit. A second call on the same id fails with InvalidState (or
// NotFound if the item never existed); the commit happens at most once.
func (m *Manager) Process(id string, req ProcessRequest) (models.MemoryTrace, error) {
	if err := validation.ValidateDecision(req.Decision); err != nil {
		return models.MemoryTrace{}, &ValidationError{Field: "decision", Reason: err.Error()}
	}

	l := m.lockFor(id)
	l.Lock()
	defer l.Unlock()

	item, found, err := m.inbox.Get(id)
	if err != nil {
		return models.MemoryTrace{}, err
	}
	if !found {
		return models.MemoryTrace{}, &NotFoundError{ID: id}
	}
	if item.Status != models.StatusPending {
		return models.MemoryTrace{}, &InvalidStateError{ID: id, Status: item.Status, Op: "process"}
	}

	now := time.Now().UTC().UnixNano()
	trace := models.MemoryTrace{
		ID:              utils.GenTraceID(),
		Decision:        req.Decision,
		Context:         traceContext(item, req.Context),
		State:           "processed",
		Responsible:     req.Responsible,
		DocumentContent: req.Document,
		CreatedTS:       now,
	}
	if trace.Responsible == "" {
		trace.Responsible = "Assistant"
	}

	item.Status = models.StatusArchived
	item.UpdatedTS = now

	if c, ok := m.memory.(Committer); ok {
		if err := c.Commit(item, trace); err != nil {
			return models.MemoryTrace{}, err
		}
	} else {
		// two-step fallback: trace first so a crash between the writes
		// leaves a pending item with a trace, never an archived item
		// without one
		if err := m.memory.Insert(trace); err != nil {
			return models.MemoryTrace{}, err
		}
		if err := m.inbox.Update(item); err != nil {
			return models.MemoryTrace{}, err
		}
	}

	logger.Log.Info("item_processed",
		zap.String("item", id),
		zap.String("trace", trace.ID),
		zap.Bool("document", req.Document != nil))
	return trace, nil
}

// traceContext formats the provenance line stored in the trace:
// "[CATEGORY] content" plus the caller's extra context when given.
func traceContext(item models.InboxItem, extra string) string {
	ctx := "[" + strings.ToUpper(string(item.Category)) + "] " + item.Content
	if s := strings.TrimSpace(extra); s != "" {
		ctx += " | " + s
	}
	return ctx
}
