package scraper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ytcommunity/scraper/internal/domain"
)

// stubSource serves pre-built pages keyed by continuation token and
// counts the requests it receives.
type stubSource struct {
	initial   domain.Page
	byToken   map[string]domain.Page
	failToken string
	initCalls int
	contCalls int
}

func (s *stubSource) InitialPage(ctx context.Context, channelID string) (domain.Page, error) {
	s.initCalls++
	return s.initial, nil
}

func (s *stubSource) ContinuationPage(ctx context.Context, token string) (domain.Page, error) {
	s.contCalls++
	if token == s.failToken {
		return domain.Page{}, errors.New("upstream gone")
	}
	return s.byToken[token], nil
}

func makePosts(prefix string, n int) []domain.PostRecord {
	posts := make([]domain.PostRecord, 0, n)
	for i := 0; i < n; i++ {
		post := domain.NewPostRecord()
		post.PostID = fmt.Sprintf("%s-%d", prefix, i)
		posts = append(posts, post)
	}
	return posts
}

func postIDs(posts []domain.PostRecord) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.PostID)
	}
	return ids
}

func TestRunTruncatesMidPage(t *testing.T) {
	src := &stubSource{
		initial: domain.Page{Posts: makePosts("p1", 3), Continuation: "t1"},
		byToken: map[string]domain.Page{
			"t1": {Posts: makePosts("p2", 4), Continuation: "t2"},
		},
	}

	posts, err := New(src).Run(context.Background(), "UC123", LimitOf(5))
	require.NoError(t, err)

	// Page one in full, then exactly the first two of page two.
	assert.Equal(t, []string{"p1-0", "p1-1", "p1-2", "p2-0", "p2-1"}, postIDs(posts))
	// Page two satisfied the limit mid-way, so its token is never followed.
	assert.Equal(t, 1, src.contCalls)
}

func TestRunStopsBeforeNextPageWhenLimitHit(t *testing.T) {
	src := &stubSource{
		initial: domain.Page{Posts: makePosts("p1", 3), Continuation: "t1"},
	}

	posts, err := New(src).Run(context.Background(), "UC123", LimitOf(3))
	require.NoError(t, err)

	assert.Len(t, posts, 3)
	assert.Equal(t, 0, src.contCalls)
}

func TestRunUnboundedTerminatesOnMissingToken(t *testing.T) {
	src := &stubSource{
		initial: domain.Page{Posts: makePosts("p1", 3), Continuation: "t1"},
		byToken: map[string]domain.Page{
			"t1": {Posts: makePosts("p2", 2)},
		},
	}

	posts, err := New(src).Run(context.Background(), "UC123", Limit{})
	require.NoError(t, err)

	assert.Len(t, posts, 5)
	assert.Equal(t, 1, src.initCalls)
	assert.Equal(t, 1, src.contCalls)
}

func TestRunContinuationFailureDiscardsEverything(t *testing.T) {
	src := &stubSource{
		initial:   domain.Page{Posts: makePosts("p1", 3), Continuation: "t1"},
		failToken: "t1",
	}

	posts, err := New(src).Run(context.Background(), "UC123", Limit{})
	require.Error(t, err)
	assert.Nil(t, posts)
}

func TestRunEmptyFeed(t *testing.T) {
	src := &stubSource{initial: domain.Page{Posts: []domain.PostRecord{}}}

	posts, err := New(src).Run(context.Background(), "UC123", Limit{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestLimit(t *testing.T) {
	assert.False(t, Limit{}.Reached(1000000))
	assert.Equal(t, "all", Limit{}.String())

	five := LimitOf(5)
	assert.False(t, five.Reached(4))
	assert.True(t, five.Reached(5))
	assert.True(t, five.Reached(6))
	assert.Equal(t, "5", five.String())
}
