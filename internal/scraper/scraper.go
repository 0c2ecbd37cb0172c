package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ytcommunity/scraper/internal/domain"
)

// Limit bounds the number of posts a run collects. The zero value
// means unbounded.
type Limit struct {
	n       int
	bounded bool
}

func LimitOf(n int) Limit {
	return Limit{n: n, bounded: true}
}

func (l Limit) Reached(count int) bool {
	return l.bounded && count >= l.n
}

func (l Limit) String() string {
	if !l.bounded {
		return "all"
	}
	return fmt.Sprintf("%d", l.n)
}

// Scraper walks a channel's community feed page by page, following
// continuation tokens until the feed or the limit runs out.
type Scraper struct {
	source domain.Source
}

func New(source domain.Source) *Scraper {
	return &Scraper{source: source}
}

// Run collects up to limit posts for one channel, in discovery order.
// The contract is all-or-nothing: any transport or parse failure
// aborts the run and discards everything accumulated so far.
func (s *Scraper) Run(ctx context.Context, channelID string, limit Limit) ([]domain.PostRecord, error) {
	slog.Info("Starting scrape", "channel_id", channelID, "max_posts", limit.String())

	page, err := s.source.InitialPage(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("initial page for %s: %w", channelID, err)
	}

	posts := make([]domain.PostRecord, 0, len(page.Posts))
	pageNum := 1
	for {
		// The limit check runs per post, not per page: a page that
		// satisfies the limit mid-way is truncated right there and no
		// further continuation request is issued.
		for _, post := range page.Posts {
			posts = append(posts, post)
			if limit.Reached(len(posts)) {
				slog.Info("Post limit reached", "page", pageNum, "total", len(posts))
				return posts, nil
			}
		}
		slog.Info("Page scraped", "page", pageNum, "posts", len(page.Posts), "total", len(posts))

		if page.Continuation == "" {
			return posts, nil
		}

		pageNum++
		page, err = s.source.ContinuationPage(ctx, page.Continuation)
		if err != nil {
			return nil, fmt.Errorf("continuation page %d: %w", pageNum, err)
		}
	}
}
