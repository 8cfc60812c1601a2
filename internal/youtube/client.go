// Package youtube provides a catalog provider backed by the YouTube Data API v3.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"

	"github.com/llehouerou/wavetube/internal/catalog"
)

// Name identifies the provider in configuration and logs.
const Name = "youtube"

// ErrNoAPIKey is returned when the client has no API key.
var ErrNoAPIKey = errors.New("youtube: api key not configured")

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	// musicCategoryID is the "Music" video category.
	musicCategoryID = "10"
	maxBodySize     = 4 << 20
)

// Options configure a Client.
type Options struct {
	APIKey     string
	Region     string
	MaxResults int
	BaseURL    string // tests only
	Timeout    time.Duration
}

// Client is a YouTube Data API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	region     string
	maxResults int
}

// New creates a new YouTube Data API client.
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.MaxResults <= 0 {
		opts.MaxResults = 25
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    strings.TrimSuffix(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		region:     opts.Region,
		maxResults: opts.MaxResults,
	}
}

func (c *Client) Name() string { return Name }

// Trending returns the most popular music videos for the configured region.
func (c *Client) Trending(ctx context.Context) ([]catalog.Track, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("chart", "mostPopular")
	params.Set("videoCategoryId", musicCategoryID)
	if c.region != "" {
		params.Set("regionCode", c.region)
	}

	body, err := c.get(ctx, "videos", params)
	if err != nil {
		return nil, err
	}
	return parseItems(body, func(item []byte) string {
		id, _ := jsonparser.GetString(item, "id")
		return id
	})
}

// Search returns music videos matching query.
func (c *Client) Search(ctx context.Context, query string) ([]catalog.Track, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("videoCategoryId", musicCategoryID)
	params.Set("q", query)
	if c.region != "" {
		params.Set("regionCode", c.region)
	}

	body, err := c.get(ctx, "search", params)
	if err != nil {
		return nil, err
	}
	return parseItems(body, func(item []byte) string {
		id, _ := jsonparser.GetString(item, "id", "videoId")
		return id
	})
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	params.Set("maxResults", strconv.Itoa(c.maxResults))
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if msg, err := jsonparser.GetString(body, "error", "message"); err == nil && msg != "" {
			return nil, fmt.Errorf("youtube api: %s (%s)", msg, resp.Status)
		}
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return body, nil
}

// parseItems converts the "items" array of a videos or search response.
func parseItems(body []byte, idOf func(item []byte) string) ([]catalog.Track, error) {
	tracks := []catalog.Track{}
	var parseErr error
	_, err := jsonparser.ArrayEach(body, func(item []byte, _ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			parseErr = err
			return
		}
		id := idOf(item)
		if id == "" {
			return
		}
		title, _ := jsonparser.GetString(item, "snippet", "title")
		channel, _ := jsonparser.GetString(item, "snippet", "channelTitle")

		t := catalog.Track{
			ID:           id,
			Title:        html.UnescapeString(title),
			Artist:       ArtistFromChannel(html.UnescapeString(channel)),
			ThumbnailURL: thumbnail(item, id),
		}
		if iso, err := jsonparser.GetString(item, "contentDetails", "duration"); err == nil {
			if d, err := ParseISODuration(iso); err == nil {
				t.DurationLabel = catalog.DurationLabel(d)
			}
		}
		tracks = append(tracks, t)
	}, "items")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return tracks, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if parseErr != nil {
		return nil, fmt.Errorf("decode item: %w", parseErr)
	}
	return tracks, nil
}

func thumbnail(item []byte, id string) string {
	for _, size := range []string{"high", "medium", "default"} {
		if u, err := jsonparser.GetString(item, "snippet", "thumbnails", size, "url"); err == nil && u != "" {
			return u
		}
	}
	return catalog.ThumbnailFor(id)
}

// ArtistFromChannel strips the decorations YouTube adds to artist channels.
func ArtistFromChannel(channel string) string {
	channel = strings.TrimSpace(channel)
	channel = strings.TrimSuffix(channel, " - Topic")
	if strings.HasSuffix(channel, "VEVO") && len(channel) > len("VEVO") {
		channel = strings.TrimSuffix(channel, "VEVO")
	}
	return strings.TrimSpace(channel)
}

var _ catalog.Provider = (*Client)(nil)
