package youtube

import (
	"fmt"

	"github.com/ytcommunity/scraper/internal/config"
	"github.com/ytcommunity/scraper/internal/domain"
)

// NewSource selects the page source implementation based on the mode
func NewSource(cfg *config.Config) (domain.Source, error) {
	switch cfg.SourceMode {
	case "live":
		return NewClient(cfg), nil
	case "mock":
		return NewMockSource(), nil
	default:
		return nil, fmt.Errorf("unknown SCRAPER_SOURCE_MODE: %s (use 'live' or 'mock')", cfg.SourceMode)
	}
}
