package youtube

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/ytcommunity/scraper/internal/config"
	"github.com/ytcommunity/scraper/internal/domain"
)

// communityParams is the fixed opaque parameter selecting the
// community view of a channel in an initial browse request.
const communityParams = "Egljb21tdW5pdHnyBgQKAkoA"

// clientContext is the client-identity descriptor the browse endpoint
// requires on every call.
type clientContext struct {
	Client struct {
		HL            string `json:"hl"`
		ClientName    string `json:"clientName"`
		ClientVersion string `json:"clientVersion"`
	} `json:"client"`
}

type browseRequest struct {
	Context      clientContext `json:"context"`
	BrowseID     string        `json:"browseId,omitempty"`
	Params       string        `json:"params,omitempty"`
	Continuation string        `json:"continuation,omitempty"`
}

// Client drives YouTube's internal browse endpoint: one JSON POST per
// page, a single attempt per request, raw body handed to the parser.
type Client struct {
	http     *resty.Client
	endpoint string
	context  clientContext
}

func NewClient(cfg *config.Config) *Client {
	var cc clientContext
	cc.Client.HL = cfg.Locale
	cc.Client.ClientName = cfg.ClientName
	cc.Client.ClientVersion = cfg.ClientVersion

	http := resty.New().
		SetTimeout(cfg.HTTPTimeout).
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{
		http:     http,
		endpoint: cfg.Endpoint,
		context:  cc,
	}
}

// InitialPage fetches and parses the community tab of a channel.
func (c *Client) InitialPage(ctx context.Context, channelID string) (domain.Page, error) {
	body, err := c.browse(ctx, browseRequest{
		Context:  c.context,
		BrowseID: channelID,
		Params:   communityParams,
	})
	if err != nil {
		return domain.Page{}, err
	}

	return ParseInitialPage(body)
}

// ContinuationPage fetches and parses the page behind a token.
func (c *Client) ContinuationPage(ctx context.Context, token string) (domain.Page, error) {
	body, err := c.browse(ctx, browseRequest{
		Context:      c.context,
		Continuation: token,
	})
	if err != nil {
		return domain.Page{}, err
	}

	return ParseContinuationPage(body)
}

func (c *Client) browse(ctx context.Context, payload browseRequest) ([]byte, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.IsError() {
		return nil, &TransportError{Status: resp.StatusCode()}
	}

	return resp.Body(), nil
}
