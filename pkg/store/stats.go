package store

import (
	"io/fs"
	"path/filepath"

	"github.com/Eloura74/Backbone/pkg/models"
)

// Stats is the aggregate view served by the dashboard endpoint.
type Stats struct {
	InboxTotal    int    `json:"inbox_total"`
	InboxPending  int    `json:"inbox_pending"`
	InboxArchived int    `json:"inbox_archived"`
	MemoryTotal   int    `json:"memory_total"`
	DiskBytes     uint64 `json:"disk_bytes"`
}

// CollectStats counts items and traces by a single pass over each prefix.
func CollectStats() (Stats, error) {
	var s Stats
	items, err := ListItems("")
	if err != nil {
		return s, err
	}
	for _, it := range items {
		s.InboxTotal++
		switch it.Status {
		case models.StatusPending:
			s.InboxPending++
		case models.StatusArchived:
			s.InboxArchived++
		}
	}
	traces, err := ListTraces(0)
	if err != nil {
		return s, err
	}
	s.MemoryTotal = len(traces)
	s.DiskBytes = DiskUsage()
	return s, nil
}

// DiskUsage returns the best-effort on-disk size of the DB directory.
func DiskUsage() uint64 {
	if dbPath == "" {
		return 0
	}
	var total uint64
	_ = filepath.WalkDir(dbPath, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += uint64(fi.Size())
		}
		return nil
	})
	return total
}
