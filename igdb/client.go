package igdb

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// DefaultTokenURL is Twitch's client-credentials token endpoint; IGDB
	// authenticates through the Twitch developer program.
	DefaultTokenURL = "https://id.twitch.tv/oauth2/token"
	// DefaultAPIURL is the IGDB v4 query endpoint base.
	DefaultAPIURL = "https://api.igdb.com/v4"
)

// Client proxies a fixed recent-releases query to the IGDB catalog API.
// The bearer token comes from an oauth2 TokenSource, so an expired token
// is re-exchanged on the next request instead of going stale.
type Client struct {
	httpClient *resty.Client
	clientID   string
	tokens     oauth2.TokenSource
	apiURL     string
	now        func() time.Time
}

func NewClient(clientID, clientSecret, tokenURL, apiURL string) *Client {
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return &Client{
		httpClient: resty.New().SetTimeout(10 * time.Second),
		clientID:   clientID,
		tokens:     conf.TokenSource(context.Background()),
		apiURL:     apiURL,
		now:        time.Now,
	}
}

// RecentGames returns the catalog's ten most recently released titles that
// have a cover image, as the raw JSON payload IGDB responded with.
func (c *Client) RecentGames(ctx context.Context) ([]byte, error) {
	token, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("fetch catalog token: %w", err)
	}

	query := fmt.Sprintf(
		"fields name, first_release_date, summary, cover.url; sort first_release_date desc; where first_release_date < %d & cover != null; limit 10;",
		c.now().Unix(),
	)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Client-ID", c.clientID).
		SetHeader("Authorization", "Bearer "+token.AccessToken).
		SetHeader("Content-Type", "text/plain").
		SetBody(query).
		Post(c.apiURL + "/games")
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode())
	}

	return resp.Body(), nil
}
