package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the upstream API needs to accept our calls.
// The client identity values are an external contract with YouTube's
// internal browse endpoint and have to be kept current enough for the
// endpoint to keep answering; they carry no logic of their own.
type Config struct {
	Endpoint      string        `split_words:"true" default:"https://www.youtube.com/youtubei/v1/browse"`
	Locale        string        `split_words:"true" default:"en-GB"`
	ClientName    string        `split_words:"true" default:"WEB"`
	ClientVersion string        `split_words:"true" default:"2.20241113.07.00"`
	UserAgent     string        `split_words:"true" default:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"`
	HTTPTimeout   time.Duration `split_words:"true" default:"30s"`
	SourceMode    string        `split_words:"true" default:"live"`
	LogFormat     string        `split_words:"true"`
}

// Load reads configuration from SCRAPER_* environment variables,
// falling back to the defaults above.
func Load() (*Config, error) {
	var config Config
	if err := envconfig.Process("scraper", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
