package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"careminer/internal/config"
)

const (
	defaultAuthBaseURL = "https://www.reddit.com"
	defaultAPIBaseURL  = "https://oauth.reddit.com"
)

// Client is a read-only handle to the Reddit API. By construction it can
// only request an access token and issue GET queries; no mutating endpoint
// is exposed, regardless of what the underlying credentials would permit.
//
// Construction performs no I/O. Authentication happens lazily on first use,
// or eagerly via Authenticate.
type Client struct {
	creds      config.Credentials
	httpClient *http.Client

	authBaseURL string
	apiBaseURL  string

	token       string
	tokenExpiry time.Time
}

type Option func(*Client)

// WithBaseURLs overrides the token and API endpoints. Used in tests.
func WithBaseURLs(authBaseURL, apiBaseURL string) Option {
	return func(c *Client) {
		c.authBaseURL = authBaseURL
		c.apiBaseURL = apiBaseURL
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func New(creds config.Credentials, opts ...Option) *Client {
	c := &Client{
		creds:       creds,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		authBaseURL: defaultAuthBaseURL,
		apiBaseURL:  defaultAPIBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Authenticate obtains an access token via the password grant. Idempotent:
// a still-valid token is reused. Search calls this implicitly, but callers
// may invoke it eagerly so credential failures surface before any fetch.
func (c *Client) Authenticate(ctx context.Context) error {
	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return nil
	}

	form := url.Values{}
	form.Set("grant_type", "password")
	form.Set("username", c.creds.Username)
	form.Set("password", c.creds.Password)

	tokenURL := c.authBaseURL + "/api/v1/access_token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create token request: %w", err)
	}

	req.SetBasicAuth(c.creds.ClientID, c.creds.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", c.creds.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request access token: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read token response: %w", err)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}

	if token.Error != "" {
		return fmt.Errorf("token endpoint returned error: %s", token.Error)
	}

	if token.AccessToken == "" {
		return fmt.Errorf("token endpoint returned no access token")
	}

	c.token = token.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(token.ExpiresIn) * time.Second)

	return nil
}

// Search queries one subreddit with the given search expression, restricted
// to that subreddit and sorted by relevance, returning at most limit
// submissions in the order the API provides them.
func (c *Client) Search(ctx context.Context, subreddit, query string, limit int) ([]Submission, error) {
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("restrict_sr", "1")
	params.Set("sort", "relevance")
	params.Set("raw_json", "1")

	searchURL := fmt.Sprintf("%s/r/%s/search?%s", c.apiBaseURL, url.PathEscape(subreddit), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	req.Header.Set("Authorization", "bearer "+c.token)
	req.Header.Set("User-Agent", c.creds.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to search r/%s: %w", subreddit, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search r/%s returned status %d", subreddit, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var page listing
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	submissions := make([]Submission, 0, len(page.Data.Children))
	for _, child := range page.Data.Children {
		submissions = append(submissions, child.Data)
	}

	return submissions, nil
}
