package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	"github.com/huyi122/Ticket-Master/model"
	"github.com/huyi122/Ticket-Master/validate"
)

// ExportFile writes the document into dir under its timestamped name and
// returns the full path.
func ExportFile(dir string, doc *model.BackupData) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, LocalFilename(time.Now()))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup file: %w", err)
	}
	return path, nil
}

// ImportFile reads and verifies an exported document. A shape mismatch
// rejects the whole file; nothing is partially imported.
func ImportFile(path string) (*model.BackupData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read backup file: %w", err)
	}
	return Decode(raw)
}

// Decode parses and verifies backup document bytes.
func Decode(raw []byte) (*model.BackupData, error) {
	var doc model.BackupData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", validate.ErrInvalidBackup, err)
	}
	if err := validate.BackupPayload(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CodeSheet writes one event's ticket codes as a plain-text sheet for
// printing, named after the event. Returns the full path.
func CodeSheet(dir string, event model.Event, tickets []model.Ticket) (string, error) {
	var sb strings.Builder
	for _, t := range tickets {
		if t.EventID != event.ID {
			continue
		}
		sb.WriteString(t.Code)
		sb.WriteByte('\n')
	}

	path := filepath.Join(dir, slug.Make(event.Name)+"-codes.txt")
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write code sheet: %w", err)
	}
	return path, nil
}
