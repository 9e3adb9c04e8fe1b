package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rohitgunthal18/pixico-core/internal/gateway"
	"github.com/rohitgunthal18/pixico-core/internal/models"
	pkgcron "github.com/rohitgunthal18/pixico-core/internal/pkg/cron"
	"github.com/rohitgunthal18/pixico-core/internal/pkg/session"
	"go.uber.org/zap"
)

// registerCronJobs registers all scheduled background jobs. Every job is a
// no-op while the gateway is inert.
func registerCronJobs(sched *pkgcron.Scheduler, gw *gateway.Gateway, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:        "purge_sessions",
		Description: "Delete expired and revoked login sessions",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			db, err := gw.Writer()
			if err != nil {
				return nil
			}
			purged, err := session.PurgeExpired(db)
			if err != nil {
				cronLogger.Warn("session purge failed", zap.Error(err))
				return err
			}
			cronLogger.Info(fmt.Sprintf("session purge done, %d rows removed", purged))
			return nil
		},
	})

	sched.Register(pkgcron.Job{
		Name:        "cleanup_contacts",
		Description: "Delete closed contact queries older than 180 days",
		Interval:    24 * time.Hour,
		Fn: func(ctx context.Context) error {
			db, err := gw.Writer()
			if err != nil {
				return nil
			}
			cutoff := time.Now().AddDate(0, 0, -180)
			result := db.Where("status = ? AND updated_at < ?", models.ContactStatusClosed, cutoff).
				Delete(&models.ContactQueryModel{})
			if result.Error != nil {
				cronLogger.Warn("contact cleanup failed", zap.Error(result.Error))
				return result.Error
			}
			cronLogger.Info(fmt.Sprintf("contact cleanup done, %d rows removed", result.RowsAffected))
			return nil
		},
	})
}
