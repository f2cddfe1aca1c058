package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/huyi122/Ticket-Master/model"
)

// FileStore keeps the snapshot as one pretty-printed JSON document,
// written via a temp file and rename so a crash mid-save never leaves a
// torn state file behind.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (f *FileStore) Load(_ context.Context) (*model.BackupData, error) {
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file %s: %w", f.Path, err)
	}

	var doc model.BackupData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnapshotInvalid, f.Path, err)
	}
	if doc.Version != model.BackupVersion {
		return nil, fmt.Errorf("%w: %s: unknown version %d", ErrSnapshotInvalid, f.Path, doc.Version)
	}
	if doc.Events == nil || doc.Tickets == nil {
		return nil, fmt.Errorf("%w: %s: missing collections", ErrSnapshotInvalid, f.Path)
	}
	return &doc, nil
}

func (f *FileStore) Save(_ context.Context, doc *model.BackupData) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmp := f.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.Path)
}
