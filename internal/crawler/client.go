package crawler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Page labels used for logging and metrics.
const (
	PageLogin     = "login"
	PageListing   = "listing"
	PageBoards    = "boards"
	PageTraveller = "traveller"
	PageRecord    = "record"
)

const (
	loginPath   = "/myhands/myhands_login.php?t=%2Fmyhands%2Findex.php%3F&offset=0"
	listingPath = "/v2/tarchive.php?m=h&h=acbl&d=ACBL&o=acbh&offset=0"
	recordBase  = "/myhands/"

	maxBodySnippet = 512
)

// Config controls how the client reaches the archive site.
type Config struct {
	BaseURL    string
	Username   string
	Password   string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches archive pages and board records over an
// authenticated session. The session cookie set at login is carried
// by the underlying HTTP client's jar.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient httpDoer
	year       func() int
}

// NewClient constructs an archive client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		year:       func() int { return time.Now().UTC().Year() },
	}
}

// Login establishes the archive session.
func (c *Client) Login(ctx context.Context) error {
	form := url.Values{}
	form.Set("username", c.username)
	form.Set("password", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if _, err := c.do(req); err != nil {
		return fmt.Errorf("archive login: %w", err)
	}
	return nil
}

// FetchTournaments retrieves the archive listing, newest tournament first.
func (c *Client) FetchTournaments(ctx context.Context) ([]Tournament, error) {
	body, err := c.get(ctx, c.baseURL+listingPath)
	if err != nil {
		return nil, err
	}
	return parseTournamentListing(bytes.NewReader(body), c.year())
}

// FetchTravellers retrieves the traveller rows of a tournament's boards page.
func (c *Client) FetchTravellers(ctx context.Context, t Tournament) ([]Traveller, error) {
	body, err := c.get(ctx, absoluteURL(c.baseURL, t.URL)+"&offset=0")
	if err != nil {
		return nil, err
	}
	return parseTravellerRows(bytes.NewReader(body))
}

// FetchRecordLinks retrieves the board record links of a traveller page.
func (c *Client) FetchRecordLinks(ctx context.Context, tr Traveller) ([]RecordLink, error) {
	body, err := c.get(ctx, absoluteURL(c.baseURL, tr.URL)+"&offset=0")
	if err != nil {
		return nil, err
	}
	return parseRecordLinks(bytes.NewReader(body))
}

// DownloadRecord fetches the raw board record behind a fetchlin link.
func (c *Client) DownloadRecord(ctx context.Context, link RecordLink) ([]byte, error) {
	target := link.URL
	if !strings.HasPrefix(target, "http") {
		target = c.baseURL + recordBase + strings.TrimPrefix(target, "/")
	}
	return c.get(ctx, target)
}

func (c *Client) get(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable {
		return nil, &ThrottledError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippet))
		return nil, fmt.Errorf("archive: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return io.ReadAll(resp.Body)
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
