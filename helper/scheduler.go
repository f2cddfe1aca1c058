package helper

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"

	"github.com/huyi122/Ticket-Master/backup"
	"github.com/huyi122/Ticket-Master/storage"
)

var backupScheduler gocron.Scheduler

// StartBackupScheduler uploads a cloud snapshot every interval.
func StartBackupScheduler(st *storage.Store, cloud *backup.Cloud, every time.Duration, log zerolog.Logger) error {
	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(every),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, err := cloud.Upload(ctx, st.Snapshot()); err != nil {
				log.Error().Err(err).Msg("scheduled backup failed")
			}
		}),
	)
	if err != nil {
		return err
	}

	backupScheduler = s
	s.Start()
	log.Info().Dur("every", every).Msg("auto backup scheduler started")
	return nil
}

// StopBackupScheduler is safe to call when the scheduler never started.
func StopBackupScheduler() {
	if backupScheduler != nil {
		_ = backupScheduler.Shutdown()
		backupScheduler = nil
	}
}
