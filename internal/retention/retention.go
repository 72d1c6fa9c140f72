// Package retention purges archived inbox items past their retention
// period on a cron schedule. Memory traces are permanent and never swept.
package retention

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adhocore/gronx"
	"go.uber.org/zap"

	"github.com/Eloura74/Backbone/pkg/config"
	"github.com/Eloura74/Backbone/pkg/logger"
	"github.com/Eloura74/Backbone/pkg/models"
	"github.com/Eloura74/Backbone/pkg/state"
	"github.com/Eloura74/Backbone/pkg/store"
)

const defaultCron = "0 2 * * *"

// ParsePeriod parses a retention period. Accepts Go durations ("720h") and
// a day shorthand ("90d").
func ParsePeriod(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("period is empty")
	}
	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil || days <= 0 {
			return 0, fmt.Errorf("invalid day period: %s", s)
		}
		return time.Duration(days) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("period must be positive: %s", s)
	}
	return d, nil
}

// Start starts the retention scheduler if enabled. Returns a cancel func.
func Start(ctx context.Context, eff config.EffectiveConfigResult) (context.CancelFunc, error) {
	ret := eff.Config.Retention

	if !ret.Enabled {
		logger.Log.Info("retention_disabled")
		return func() {}, nil
	}

	period, err := ParsePeriod(ret.Period)
	if err != nil {
		logger.Log.Error("retention_invalid_period", zap.String("period", ret.Period), zap.Error(err))
		return nil, err
	}

	cronExpr := ret.Cron
	if cronExpr == "" {
		cronExpr = defaultCron
	}
	if !gronx.IsValid(cronExpr) {
		logger.Log.Error("retention_invalid_cron", zap.String("cron", ret.Cron))
		return nil, fmt.Errorf("invalid retention cron expression: %s", ret.Cron)
	}

	logger.Log.Info("retention_enabled",
		zap.String("cron", cronExpr),
		zap.Duration("period", period))

	ctx2, cancel := context.WithCancel(ctx)
	go runScheduler(ctx2, cronExpr, period)
	return cancel, nil
}

// runScheduler uses gronx to compute the next tick for the configured cron
// expression and sleeps until it.
func runScheduler(ctx context.Context, cronExpr string, period time.Duration) {
	for {
		select {
		case <-ctx.Done():
			logger.Log.Info("retention_scheduler_stopping")
			return
		default:
		}

		now := time.Now().UTC()
		next, err := gronx.NextTickAfter(cronExpr, now, false)
		if err != nil {
			logger.Log.Error("retention_nexttick_failed", zap.String("cron", cronExpr), zap.Error(err))
			select {
			case <-time.After(30 * time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		select {
		case <-time.After(time.Until(next)):
			if n, err := RunOnce(period); err != nil {
				logger.Log.Error("retention_run_error", zap.Error(err))
			} else {
				logger.Log.Info("retention_run_complete", zap.Int("purged", n))
			}
		case <-ctx.Done():
			logger.Log.Info("retention_scheduler_stopping")
			return
		}
	}
}

// RunOnce purges archived items whose last update is older than the period
// and reports how many it deleted. Pending items never match; they stay
// until a human archives or deletes them.
func RunOnce(period time.Duration) (int, error) {
	items, err := store.ListItems(models.StatusArchived)
	if err != nil {
		return 0, err
	}
	cutoff := time.Now().Add(-period).UnixNano()
	purged := 0
	for _, it := range items {
		ts := it.UpdatedTS
		if ts == 0 {
			ts = it.CreatedTS
		}
		if ts >= cutoff {
			continue
		}
		if err := store.DeleteItem(it.ID); err != nil {
			return purged, err
		}
		purged++
	}
	writeLastRunMarker(purged)
	return purged, nil
}

// writeLastRunMarker records the last sweep outcome under the state folder
// so operators can check sweep health without grepping logs. Best effort.
func writeLastRunMarker(purged int) {
	dir := state.PathsVar.Retention
	if dir == "" {
		return
	}
	line := fmt.Sprintf("time=%s purged=%d\n", time.Now().UTC().Format(time.RFC3339), purged)
	if err := os.WriteFile(filepath.Join(dir, "last-run"), []byte(line), 0o600); err != nil {
		logger.Log.Warn("retention_marker_failed", zap.Error(err))
	}
}
