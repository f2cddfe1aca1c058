package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/huyi122/Ticket-Master/backup"
	"github.com/huyi122/Ticket-Master/config"
	"github.com/huyi122/Ticket-Master/handler"
	"github.com/huyi122/Ticket-Master/helper"
	"github.com/huyi122/Ticket-Master/router"
	"github.com/huyi122/Ticket-Master/scan"
	"github.com/huyi122/Ticket-Master/storage"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if config.Config("VTM_DEBUG") == "" {
		log = log.Level(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	snap, closeSnap := openSnapshotStore()
	defer closeSnap()

	st, err := storage.Open(ctx, snap, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load state")
	}

	app := &handler.App{
		Store:   st,
		Scanner: scan.NewSession(log),
		Log:     log,
	}

	if cld, err := helper.InitCloudinary(); err == nil {
		app.Cloud = backup.NewCloud(cld, config.ConfigOr("VTM_BACKUP_FOLDER", "default"), log)
	} else if !errors.Is(err, helper.ErrCloudNotConfigured) {
		log.Fatal().Err(err).Msg("cloud backup init failed")
	}

	if every := config.Config("VTM_AUTO_BACKUP_EVERY"); every != "" && app.Cloud != nil {
		d, err := time.ParseDuration(every)
		if err != nil {
			log.Fatal().Err(err).Msg("bad VTM_AUTO_BACKUP_EVERY")
		}
		if err := helper.StartBackupScheduler(st, app.Cloud, d, log); err != nil {
			log.Fatal().Err(err).Msg("failed to start backup scheduler")
		}
		defer helper.StopBackupScheduler()
	}

	if err := router.Dispatch(ctx, app, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func openSnapshotStore() (storage.SnapshotStore, func()) {
	if config.Config("VTM_STORE") == "redis" {
		rs := storage.NewRedisStore(
			config.ConfigOr("REDIS_ADDR", "localhost:6379"),
			config.Config("REDIS_PASSWORD"),
			config.ConfigOr("VTM_STATE_KEY", "vtm:state"),
		)
		return rs, func() { _ = rs.Close() }
	}
	fs := storage.NewFileStore(config.ConfigOr("VTM_STATE_FILE", "vtm-state.json"))
	return fs, func() {}
}
