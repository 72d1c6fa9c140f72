// Package state owns the runtime folder layout under the configured DB
// path.
package state

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths is the canonical layout: the pebble store plus state folders for
// retention markers, crash dumps and abort requests.
type Paths struct {
	Store     string
	Retention string
	Crash     string
	Abort     string
	Tmp       string
}

// PathsVar holds the resolved layout after Init.
var PathsVar Paths

// Init resolves and creates the runtime layout under dbPath. It rejects
// symlinks and group/other-writable directories so a misconfigured mount
// fails at startup rather than at first write.
func Init(dbPath string) error {
	p := Paths{
		Store:     filepath.Join(dbPath, "store"),
		Retention: filepath.Join(dbPath, "state", "retention"),
		Crash:     filepath.Join(dbPath, "state", "crash"),
		Abort:     filepath.Join(dbPath, "state", "abort"),
		Tmp:       filepath.Join(dbPath, "state", "tmp"),
	}

	for _, dir := range []string{p.Store, p.Retention, p.Crash, p.Abort, p.Tmp} {
		if err := ensureDir(dir); err != nil {
			return err
		}
	}
	PathsVar = p
	return nil
}

func ensureDir(p string) error {
	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return fmt.Errorf("cannot create parent for %s: %w", p, err)
	}
	if fi, err := os.Lstat(p); err == nil {
		if fi.Mode()&os.ModeSymlink != 0 {
			return fmt.Errorf("path is a symlink: %s", p)
		}
		if !fi.IsDir() {
			return fmt.Errorf("path exists and is not a directory: %s", p)
		}
		if fi.Mode().Perm()&0o022 != 0 {
			return fmt.Errorf("path has permissive mode (group/other write): %s", p)
		}
	}
	if err := os.MkdirAll(p, 0o700); err != nil {
		return fmt.Errorf("cannot create path %s: %w", p, err)
	}

	// writability check: create and remove a temp file
	tmp, err := os.CreateTemp(p, ".validate-*")
	if err != nil {
		return fmt.Errorf("path not writable: %s: %w", p, err)
	}
	tmp.Close()
	_ = os.Remove(tmp.Name())
	return nil
}
