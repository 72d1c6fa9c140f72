package app

import (
	"fmt"

	"github.com/adhocore/gronx"

	"github.com/Eloura74/Backbone/internal/retention"
	"github.com/Eloura74/Backbone/pkg/config"
)

// validateConfig performs quick, fail-fast validation of the effective
// configuration before starting long-running services. Keep checks light
// and focused so callers can surface user-friendly errors.
func validateConfig(eff config.EffectiveConfigResult) error {
	if eff.DBPath == "" {
		return fmt.Errorf("database path is empty: set --db flag, BACKBONE_DB_PATH env, or storage.db_path in config")
	}

	if v := eff.Config.Validation.MaxContentLen; v < 0 {
		return fmt.Errorf("validation.max_content_len must be >= 0, got %d", v)
	}
	if v := eff.Config.Validation.MaxDecisionLen; v < 0 {
		return fmt.Errorf("validation.max_decision_len must be >= 0, got %d", v)
	}

	ret := eff.Config.Retention
	if ret.Enabled {
		if ret.Cron != "" && !gronx.IsValid(ret.Cron) {
			return fmt.Errorf("invalid retention.cron expression: %s", ret.Cron)
		}
		if _, err := retention.ParsePeriod(ret.Period); err != nil {
			return fmt.Errorf("invalid retention.period: %w", err)
		}
	}
	return nil
}
