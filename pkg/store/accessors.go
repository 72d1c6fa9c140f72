package store

import "github.com/Eloura74/Backbone/pkg/models"

// InboxAccessor adapts the package-level item functions to the lifecycle
// manager's InboxStore interface.
type InboxAccessor struct{}

func (InboxAccessor) Get(id string) (models.InboxItem, bool, error) { return GetItem(id) }
func (InboxAccessor) Insert(item models.InboxItem) error            { return SaveItem(item) }
func (InboxAccessor) Update(item models.InboxItem) error            { return SaveItem(item) }
func (InboxAccessor) Delete(id string) error                        { return DeleteItem(id) }

// MemoryAccessor adapts the trace functions to the lifecycle manager's
// MemoryStore interface. Commit makes it an atomic Committer, so archiving
// an item and writing its trace land in one batch.
type MemoryAccessor struct{}

func (MemoryAccessor) Insert(trace models.MemoryTrace) error { return SaveTrace(trace) }
func (MemoryAccessor) Commit(item models.InboxItem, trace models.MemoryTrace) error {
	return CommitProcess(item, trace)
}
