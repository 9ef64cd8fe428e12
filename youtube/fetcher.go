package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ytmeta/config"
	"ytmeta/metrics"
	"ytmeta/model"
)

const (
	// Parts requested from the videos endpoint; everything the column
	// extractors read comes from these three.
	apiParts = "snippet,contentDetails,statistics"

	// Maximum number of IDs the videos endpoint accepts per call.
	batchSize = 50

	// Cap on error-body bytes carried into diagnostics.
	maxErrorBody = 500
)

type Fetcher struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		apiKey:  cfg.APIKey,
		baseURL: cfg.APIBaseURL,
		client: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

// FetchVideos retrieves metadata for the given video IDs, at most batchSize
// per API call, and concatenates the returned items in chunk order. The API
// orders items its own way within a chunk and omits unknown or private IDs.
// Any transport, HTTP or decode failure aborts the whole fetch; there are no
// retries and no partial results.
func (f *Fetcher) FetchVideos(ctx context.Context, ids []string) ([]model.VideoItem, error) {
	var items []model.VideoItem
	for start := 0; start < len(ids); start += batchSize {
		end := start + batchSize
		if end > len(ids) {
			end = len(ids)
		}

		chunk, err := f.fetchChunk(ctx, ids[start:end])
		if err != nil {
			return nil, err
		}
		items = append(items, chunk...)
	}

	metrics.VideosFetchedTotal.Add(float64(len(items)))
	return items, nil
}

func (f *Fetcher) fetchChunk(ctx context.Context, ids []string) ([]model.VideoItem, error) {
	params := url.Values{}
	params.Set("key", f.apiKey)
	params.Set("part", apiParts)
	params.Set("id", strings.Join(ids, ","))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		metrics.YouTubeAPIRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.YouTubeAPIRequestsTotal.WithLabelValues(fmt.Sprintf("http_%d", resp.StatusCode)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResponse model.VideoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		metrics.YouTubeAPIRequestsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}

	metrics.YouTubeAPIRequestsTotal.WithLabelValues("ok").Inc()
	return apiResponse.Items, nil
}
