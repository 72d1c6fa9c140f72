package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"

	"github.com/Eloura74/Backbone/pkg/logger"
	"github.com/Eloura74/Backbone/pkg/models"
)

var (
	db     *pebble.DB
	dbPath string
)

// Key layout:
//   inbox:item:<id>    -> JSON InboxItem
//   memory:trace:<id>  -> JSON MemoryTrace
const (
	itemPrefix  = "inbox:item:"
	tracePrefix = "memory:trace:"
)

// Open opens (or creates) a Pebble database at the given path and keeps a
// global handle for simple usage in this package.
func Open(path string) error {
	var err error
	logger.Log.Info("opening_pebble_db", zap.String("path", path))
	db, err = pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Log.Error("pebble_open_failed", zap.String("path", path), zap.Error(err))
		return err
	}
	dbPath = path
	logger.Log.Info("pebble_opened", zap.String("path", path))
	return nil
}

// Close closes the opened pebble DB if present.
func Close() error {
	if db == nil {
		return nil
	}
	if err := db.Close(); err != nil {
		return err
	}
	db = nil
	logger.Log.Info("pebble_closed")
	return nil
}

// Ready reports whether the store is opened and ready.
func Ready() bool {
	return db != nil
}

func notOpened() error { return fmt.Errorf("pebble not opened; call store.Open first") }

// SaveItem writes an inbox item (insert or update, same path).
func SaveItem(item models.InboxItem) error {
	if db == nil {
		return notOpened()
	}
	data, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	key := []byte(itemPrefix + item.ID)
	if err := db.Set(key, data, pebble.Sync); err != nil {
		logger.Log.Error("save_item_failed", zap.String("id", item.ID), zap.Error(err))
		return err
	}
	logger.Log.Info("item_saved", zap.String("id", item.ID), zap.String("status", string(item.Status)))
	return nil
}

// GetItem returns an inbox item by id. The boolean reports whether the item
// exists; a false return with nil error is a clean miss.
func GetItem(id string) (models.InboxItem, bool, error) {
	var item models.InboxItem
	if db == nil {
		return item, false, notOpened()
	}
	v, closer, err := db.Get([]byte(itemPrefix + id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return item, false, nil
		}
		return item, false, err
	}
	defer closer.Close()
	if err := json.Unmarshal(v, &item); err != nil {
		return item, false, fmt.Errorf("invalid stored item %s: %w", id, err)
	}
	return item, true, nil
}

// ListItems returns inbox items, newest first. An empty status returns
// everything; otherwise only items in that state.
func ListItems(status models.Status) ([]models.InboxItem, error) {
	if db == nil {
		return nil, notOpened()
	}
	prefix := []byte(itemPrefix)
	iter, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var out []models.InboxItem
	for iter.SeekGE(prefix); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), prefix) {
			break
		}
		var item models.InboxItem
		if err := json.Unmarshal(iter.Value(), &item); err != nil {
			logger.Log.Warn("skip_invalid_item", zap.ByteString("key", iter.Key()), zap.Error(err))
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		out = append(out, item)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedTS > out[j].CreatedTS })
	return out, nil
}

// DeleteItem removes an inbox item. Lifecycle rules (pending only) are
// enforced by the caller; retention also uses this path for expired
// archived items.
func DeleteItem(id string) error {
	if db == nil {
		return notOpened()
	}
	if err := db.Delete([]byte(itemPrefix+id), pebble.Sync); err != nil {
		logger.Log.Error("delete_item_failed", zap.String("id", id), zap.Error(err))
		return err
	}
	logger.Log.Info("item_deleted", zap.String("id", id))
	return nil
}

// SaveTrace writes a memory trace (insert or update, same path).
func SaveTrace(trace models.MemoryTrace) error {
	if db == nil {
		return notOpened()
	}
	data, err := json.Marshal(trace)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}
	if err := db.Set([]byte(tracePrefix+trace.ID), data, pebble.Sync); err != nil {
		logger.Log.Error("save_trace_failed", zap.String("id", trace.ID), zap.Error(err))
		return err
	}
	logger.Log.Info("trace_saved", zap.String("id", trace.ID))
	return nil
}

// GetTrace returns a memory trace by id. False with nil error is a miss.
func GetTrace(id string) (models.MemoryTrace, bool, error) {
	var trace models.MemoryTrace
	if db == nil {
		return trace, false, notOpened()
	}
	v, closer, err := db.Get([]byte(tracePrefix + id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return trace, false, nil
		}
		return trace, false, err
	}
	defer closer.Close()
	if err := json.Unmarshal(v, &trace); err != nil {
		return trace, false, fmt.Errorf("invalid stored trace %s: %w", id, err)
	}
	return trace, true, nil
}

// ListTraces returns memory traces, newest first. limit <= 0 means all.
func ListTraces(limit int) ([]models.MemoryTrace, error) {
	if db == nil {
		return nil, notOpened()
	}
	prefix := []byte(tracePrefix)
	iter, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	var out []models.MemoryTrace
	for iter.SeekGE(prefix); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), prefix) {
			break
		}
		var trace models.MemoryTrace
		if err := json.Unmarshal(iter.Value(), &trace); err != nil {
			logger.Log.Warn("skip_invalid_trace", zap.ByteString("key", iter.Key()), zap.Error(err))
			continue
		}
		out = append(out, trace)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedTS > out[j].CreatedTS })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// DeleteTrace removes a memory trace. Only the manual memory API uses this;
// the lifecycle never deletes traces.
func DeleteTrace(id string) error {
	if db == nil {
		return notOpened()
	}
	if err := db.Delete([]byte(tracePrefix+id), pebble.Sync); err != nil {
		logger.Log.Error("delete_trace_failed", zap.String("id", id), zap.Error(err))
		return err
	}
	logger.Log.Info("trace_deleted", zap.String("id", id))
	return nil
}

// CommitProcess writes the archived item and its memory trace in a single
// synced batch so no reader can observe one without the other.
func CommitProcess(item models.InboxItem, trace models.MemoryTrace) error {
	if db == nil {
		return notOpened()
	}
	ib, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item: %w", err)
	}
	tb, err := json.Marshal(trace)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}
	batch := db.NewBatch()
	defer batch.Close()
	if err := batch.Set([]byte(itemPrefix+item.ID), ib, nil); err != nil {
		return err
	}
	if err := batch.Set([]byte(tracePrefix+trace.ID), tb, nil); err != nil {
		return err
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		logger.Log.Error("commit_process_failed", zap.String("item", item.ID), zap.String("trace", trace.ID), zap.Error(err))
		return err
	}
	logger.Log.Info("process_committed", zap.String("item", item.ID), zap.String("trace", trace.ID))
	return nil
}

// ResetAll wipes all inbox items and memory traces. Used by the settings
// reset endpoint only.
func ResetAll() error {
	if db == nil {
		return notOpened()
	}
	batch := db.NewBatch()
	defer batch.Close()
	if err := batch.DeleteRange([]byte(itemPrefix), []byte(itemPrefix+"\xff"), nil); err != nil {
		return err
	}
	if err := batch.DeleteRange([]byte(tracePrefix), []byte(tracePrefix+"\xff"), nil); err != nil {
		return err
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		logger.Log.Error("reset_all_failed", zap.Error(err))
		return err
	}
	logger.Log.Warn("store_reset")
	return nil
}
