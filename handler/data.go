package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/huyi122/Ticket-Master/backup"
)

func (a *App) Export(ctx context.Context, dir string) error {
	doc := backup.Build(a.Store.Events(), a.Store.Tickets(), time.Now().UnixMilli())
	path, err := backup.ExportFile(dir, doc)
	if err != nil {
		return err
	}
	fmt.Printf("exported %d events and %d tickets to %s\n", len(doc.Events), len(doc.Tickets), path)
	return nil
}

// Import replaces all current data with the file's collections,
// wholesale. A malformed file changes nothing.
func (a *App) Import(ctx context.Context, path string) error {
	doc, err := backup.ImportFile(path)
	if err != nil {
		return err
	}

	if err := a.Store.Replace(ctx, doc.Events, doc.Tickets); err != nil {
		return err
	}
	fmt.Printf("restored %d events and %d tickets\n", len(doc.Events), len(doc.Tickets))
	return nil
}

func (a *App) BackupUpload(ctx context.Context) error {
	if a.Cloud == nil {
		fmt.Println("cloud backup is not configured")
		return nil
	}

	name, err := a.Cloud.Upload(ctx, a.Store.Snapshot())
	if err != nil {
		return err
	}
	fmt.Printf("uploaded %s\n", name)
	return nil
}

// BackupRestoreLatest pulls the newest-named cloud backup and replaces
// the local collections with it (last write wins).
func (a *App) BackupRestoreLatest(ctx context.Context) error {
	if a.Cloud == nil {
		fmt.Println("cloud backup is not configured")
		return nil
	}

	doc, name, err := a.Cloud.RestoreLatest(ctx)
	if err != nil {
		return err
	}
	if err := a.Store.Replace(ctx, doc.Events, doc.Tickets); err != nil {
		return err
	}
	fmt.Printf("restored %s: %d events, %d tickets\n", name, len(doc.Events), len(doc.Tickets))
	return nil
}
