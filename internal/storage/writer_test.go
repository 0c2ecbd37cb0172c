package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytcommunity/scraper/internal/domain"
)

func TestWrite(t *testing.T) {
	post := domain.NewPostRecord()
	post.PostID = "p1"
	post.Content = "héllo wörld 日本語 & <tags>"
	post.Links = append(post.Links, domain.Link{Text: "x", URL: "https://example.com/a?b=1&c=2"})

	now := time.Date(2026, 8, 29, 10, 30, 0, 0, time.Local)
	result := domain.NewScrapeResult("UC123", []domain.PostRecord{post}, now)

	dir := t.TempDir()
	w := &WriterService{Dir: dir}
	path, err := w.Write(&result)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "posts_UC123_20260829_103000.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Indented, non-ASCII kept literal, ampersands and angle brackets
	// not escaped.
	text := string(data)
	assert.Contains(t, text, "\n  \"channel_id\": \"UC123\"")
	assert.Contains(t, text, "héllo wörld 日本語 & <tags>")
	assert.Contains(t, text, "https://example.com/a?b=1&c=2")
	assert.NotContains(t, text, `\u`)

	var decoded domain.ScrapeResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 1, decoded.PostsCount)
	assert.Equal(t, result.ScrapeTimestamp, decoded.ScrapeTimestamp)
	assert.Equal(t, "p1", decoded.Posts[0].PostID)
}

func TestWriteNoPosts(t *testing.T) {
	result := domain.NewScrapeResult("UC123", nil, time.Now())

	w := &WriterService{Dir: t.TempDir()}
	path, err := w.Write(&result)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "\"posts_count\": 0")
	// An empty run serializes as an empty array, not null.
	assert.Contains(t, text, "\"posts\": []")
	assert.NotContains(t, text, "null")
}

func TestWriteBadDirectory(t *testing.T) {
	result := domain.NewScrapeResult("UC123", nil, time.Now())

	w := &WriterService{Dir: filepath.Join(t.TempDir(), "missing", "nested")}
	_, err := w.Write(&result)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "create"))
}
