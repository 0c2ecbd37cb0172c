package youtube

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/ytcommunity/scraper/internal/domain"
)

// MockSource implements domain.Source but fabricates pages, so the
// driver and dashboard can run without touching the network.
type MockSource struct {
	PageSize int
	Pages    int
}

func NewMockSource() *MockSource {
	return &MockSource{PageSize: 10, Pages: 3}
}

func (ms *MockSource) InitialPage(ctx context.Context, channelID string) (domain.Page, error) {
	return ms.page(channelID, 0), nil
}

func (ms *MockSource) ContinuationPage(ctx context.Context, token string) (domain.Page, error) {
	n, err := strconv.Atoi(strings.TrimPrefix(token, "mock:"))
	if err != nil {
		return domain.Page{}, &StructureError{Path: "mock continuation token"}
	}
	return ms.page("continued", n), nil
}

func (ms *MockSource) page(label string, n int) domain.Page {
	// Simulate network latency
	time.Sleep(200 * time.Millisecond)

	page := domain.Page{Posts: []domain.PostRecord{}}
	for i := 0; i < ms.PageSize; i++ {
		post := domain.NewPostRecord()
		post.PostID = fmt.Sprintf("mock_%s_%d_%d", label, n, i)
		post.Content = fmt.Sprintf("Simulated community update #%d from page %d", i, n)
		post.Timestamp = fmt.Sprintf("%d days ago", n+1)
		post.Likes = strconv.Itoa(rand.Intn(500))
		post.CommentsCount = strconv.Itoa(rand.Intn(50))
		if i%3 == 0 {
			post.Images = append(post.Images, domain.Image{
				Standard: "https://localhost/mock=w100-h100",
				HighRes:  "https://localhost/mock=s2160",
			})
		}
		page.Posts = append(page.Posts, post)
	}

	if n+1 < ms.Pages {
		page.Continuation = fmt.Sprintf("mock:%d", n+1)
	}
	return page
}
