// internal/complaint/orchestrator/config.go
package orchestrator

import (
	"fmt"
	"time"

	"tgrera-complaint-form/internal/common/config"
)

type Config struct {
	StrictDocumentCheck bool
	Location            *time.Location
	Timeout             time.Duration
}

func LoadConfig(cfg config.ComplaintConfig) (*Config, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	return &Config{
		StrictDocumentCheck: cfg.StrictDocumentCheck,
		Location:            loc,
		Timeout:             10 * time.Second,
	}, nil
}
