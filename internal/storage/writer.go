package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ytcommunity/scraper/internal/domain"
)

// WriterService persists one ScrapeResult as a single indented JSON
// document. Nothing touches the disk until the full result is
// assembled, so a failed run never leaves a partial artifact.
type WriterService struct {
	Dir string
}

// Write saves the result under a name derived from the channel id and
// the capture instant, and returns the path it wrote.
func (w *WriterService) Write(result *domain.ScrapeResult) (string, error) {
	captured := time.Unix(result.ScrapeTimestamp, 0)
	name := fmt.Sprintf("posts_%s_%s.json", result.ChannelID, captured.Format("20060102_150405"))
	path := filepath.Join(w.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	// Keep URLs and non-ASCII text readable in the artifact
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}

	return path, nil
}
