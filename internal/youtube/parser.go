package youtube

import (
	"encoding/json"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/ytcommunity/scraper/internal/domain"
)

const (
	origin        = "https://www.youtube.com"
	highResSuffix = "=s2160"
)

// The envelope types below mirror only the paths this scraper actually
// consults; everything else in the payload stays untyped on purpose.

type browseResponse struct {
	Contents struct {
		TwoColumnBrowseResultsRenderer struct {
			Tabs []struct {
				TabRenderer struct {
					Title   string `json:"title"`
					Content struct {
						SectionListRenderer struct {
							Contents []struct {
								ItemSectionRenderer struct {
									Contents []feedItem `json:"contents"`
								} `json:"itemSectionRenderer"`
							} `json:"contents"`
						} `json:"sectionListRenderer"`
					} `json:"content"`
				} `json:"tabRenderer"`
			} `json:"tabs"`
		} `json:"twoColumnBrowseResultsRenderer"`
	} `json:"contents"`
}

type continuationResponse struct {
	OnResponseReceivedEndpoints []struct {
		AppendContinuationItemsAction struct {
			ContinuationItems []feedItem `json:"continuationItems"`
		} `json:"appendContinuationItemsAction"`
	} `json:"onResponseReceivedEndpoints"`
}

// feedItem is the union over the two item shapes a community feed
// carries: a post thread or a continuation marker.
type feedItem struct {
	BackstagePostThreadRenderer *struct {
		Post struct {
			BackstagePostRenderer json.RawMessage `json:"backstagePostRenderer"`
		} `json:"post"`
	} `json:"backstagePostThreadRenderer"`
	ContinuationItemRenderer *struct {
		ContinuationEndpoint struct {
			ContinuationCommand struct {
				Token string `json:"token"`
			} `json:"continuationCommand"`
		} `json:"continuationEndpoint"`
	} `json:"continuationItemRenderer"`
}

// ParseInitialPage locates the community tab in a full browse response
// and extracts its posts and continuation token.
func ParseInitialPage(data []byte) (domain.Page, error) {
	var resp browseResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return domain.Page{}, &StructureError{Path: "browse response body"}
	}

	items, err := communityItems(&resp)
	if err != nil {
		return domain.Page{}, err
	}

	return collectItems(items), nil
}

// ParseContinuationPage extracts posts and the next token from a
// continuation response, whose item list lives under a different
// envelope than the initial page's.
func ParseContinuationPage(data []byte) (domain.Page, error) {
	var resp continuationResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return domain.Page{}, &StructureError{Path: "continuation response body"}
	}

	if len(resp.OnResponseReceivedEndpoints) == 0 {
		return domain.Page{}, &StructureError{Path: "onResponseReceivedEndpoints"}
	}

	items := resp.OnResponseReceivedEndpoints[0].AppendContinuationItemsAction.ContinuationItems
	if items == nil {
		return domain.Page{}, &StructureError{Path: "appendContinuationItemsAction.continuationItems"}
	}

	return collectItems(items), nil
}

// communityItems finds the tab titled "community" (case-insensitive)
// and returns its first content section's item list.
func communityItems(resp *browseResponse) ([]feedItem, error) {
	tabs := resp.Contents.TwoColumnBrowseResultsRenderer.Tabs
	if len(tabs) == 0 {
		return nil, &StructureError{Path: "contents.twoColumnBrowseResultsRenderer.tabs"}
	}

	for _, tab := range tabs {
		if !strings.EqualFold(tab.TabRenderer.Title, "community") {
			continue
		}
		sections := tab.TabRenderer.Content.SectionListRenderer.Contents
		if len(sections) == 0 {
			return nil, &StructureError{Path: "community tab sectionListRenderer.contents"}
		}
		return sections[0].ItemSectionRenderer.Contents, nil
	}

	return nil, &StructureError{Path: "community tab"}
}

// collectItems scans one page's items in order: every post thread
// becomes a record, and the continuation marker (at most one, at any
// position) supplies the next page token.
func collectItems(items []feedItem) domain.Page {
	page := domain.Page{Posts: []domain.PostRecord{}}
	for _, item := range items {
		if item.ContinuationItemRenderer != nil {
			page.Continuation = item.ContinuationItemRenderer.ContinuationEndpoint.ContinuationCommand.Token
			continue
		}
		if item.BackstagePostThreadRenderer != nil {
			page.Posts = append(page.Posts, extractPost(item.BackstagePostThreadRenderer.Post.BackstagePostRenderer))
		}
	}
	return page
}

// extractPost maps one raw post renderer to a PostRecord. Every lookup
// defaults on absence, so a sparse renderer still yields a record.
func extractPost(renderer []byte) domain.PostRecord {
	post := domain.NewPostRecord()
	if len(renderer) == 0 {
		return post
	}

	if id, err := jsonparser.GetString(renderer, "postId"); err == nil {
		post.PostID = id
	}

	var content strings.Builder
	jsonparser.ArrayEach(renderer, func(run []byte, _ jsonparser.ValueType, _ int, _ error) {
		text, _ := jsonparser.GetString(run, "text")
		content.WriteString(text)

		url, err := jsonparser.GetString(run, "navigationEndpoint", "commandMetadata", "webCommandMetadata", "url")
		if err != nil || url == "" {
			return
		}
		if strings.HasPrefix(url, "/") {
			url = origin + url
		}
		post.Links = append(post.Links, domain.Link{Text: text, URL: url})
	}, "contentText", "runs")
	post.Content = content.String()

	if ts, err := jsonparser.GetString(renderer, "publishedTimeText", "runs", "[0]", "text"); err == nil {
		post.Timestamp = ts
	}

	if votes, err := jsonparser.GetString(renderer, "voteCount", "simpleText"); err == nil {
		post.Likes = votes
	}

	label, err := jsonparser.GetString(renderer, "actionButtons", "commentActionButtonsRenderer",
		"replyButton", "buttonRenderer", "text", "simpleText")
	if err == nil {
		if fields := strings.Fields(label); len(fields) > 0 {
			post.CommentsCount = fields[0]
		}
	}

	thumb, err := jsonparser.GetString(renderer, "backstageAttachment", "backstageImageRenderer",
		"image", "thumbnails", "[0]", "url")
	if err == nil && thumb != "" {
		post.Images = append(post.Images, domain.Image{
			Standard: thumb,
			HighRes:  strings.SplitN(thumb, "=", 2)[0] + highResSuffix,
		})
	}

	return post
}
