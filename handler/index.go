// Package handler implements the user-facing actions. It is the thin
// edge around the core: it validates input, drives the pure store
// operations through the state container, and prints results. Expected
// business outcomes (not found, archived, duplicates) are messages here,
// never errors.
package handler

import (
	"github.com/rs/zerolog"

	"github.com/huyi122/Ticket-Master/backup"
	"github.com/huyi122/Ticket-Master/scan"
	"github.com/huyi122/Ticket-Master/storage"
)

type App struct {
	Store   *storage.Store
	Cloud   *backup.Cloud // nil when cloud backup is not configured
	Scanner *scan.Session
	Log     zerolog.Logger
}
