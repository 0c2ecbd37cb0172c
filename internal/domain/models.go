package domain

import (
	"context"
	"time"
)

// PostRecord is the clean data structure for one community post.
// Every field has a safe default: a missing upstream field degrades
// that field only, never the whole post.
type PostRecord struct {
	PostID        string  `json:"post_id"`
	Content       string  `json:"content"`
	Timestamp     string  `json:"timestamp"`
	Likes         string  `json:"likes"`
	CommentsCount string  `json:"comments_count"`
	Images        []Image `json:"images"`
	Links         []Link  `json:"links"`
}

// Image holds one attached image in two resolutions.
type Image struct {
	Standard string `json:"standard"`
	HighRes  string `json:"high_res"`
}

// Link is one hyperlink run embedded in the post body.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// NewPostRecord returns a record with every field at its default.
func NewPostRecord() PostRecord {
	return PostRecord{
		Likes:         "0",
		CommentsCount: "0",
		Images:        []Image{},
		Links:         []Link{},
	}
}

// Page is one parsed upstream page. An empty Continuation token
// means there are no further pages.
type Page struct {
	Posts        []PostRecord
	Continuation string
}

// ScrapeResult is the persisted artifact for one run.
type ScrapeResult struct {
	ChannelID       string       `json:"channel_id"`
	ScrapeDate      string       `json:"scrape_date"`
	ScrapeTimestamp int64        `json:"scrape_timestamp"`
	PostsCount      int          `json:"posts_count"`
	Posts           []PostRecord `json:"posts"`
}

// NewScrapeResult assembles the final artifact for a completed run.
func NewScrapeResult(channelID string, posts []PostRecord, now time.Time) ScrapeResult {
	if posts == nil {
		posts = []PostRecord{}
	}
	return ScrapeResult{
		ChannelID:       channelID,
		ScrapeDate:      now.Format(time.RFC3339),
		ScrapeTimestamp: now.Unix(),
		PostsCount:      len(posts),
		Posts:           posts,
	}
}

// Source defines the interface for page fetching
type Source interface {
	InitialPage(ctx context.Context, channelID string) (Page, error)
	ContinuationPage(ctx context.Context, token string) (Page, error)
}
