// File: services/news/client.go
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pressroom/config"
	"pressroom/models"
	"pressroom/utils"
)

// HTTPNewsSource talks to a NewsAPI-compatible top-headlines endpoint.
type HTTPNewsSource struct {
	BaseURL string
	APIKey  string
	Country string
	Client  *http.Client
}

// NewHTTPNewsSource builds a client from the app configuration.
func NewHTTPNewsSource() *HTTPNewsSource {
	return &HTTPNewsSource{
		BaseURL: config.AppConfig.NewsAPIBaseURL,
		APIKey:  config.AppConfig.NewsAPIKey,
		Country: config.AppConfig.NewsAPICountry,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type headlinesResponse struct {
	Status       string               `json:"status"`
	TotalResults int                  `json:"totalResults"`
	Articles     []models.RawNewsItem `json:"articles"`
	Code         string               `json:"code"`
	Message      string               `json:"message"`
}

// FetchHeadlines fetches top headlines for a category. Errors come back as
// UpstreamError; the aggregator decides whether to degrade or propagate.
func (s *HTTPNewsSource) FetchHeadlines(ctx context.Context, category, language string) ([]models.RawNewsItem, error) {
	endpoint, err := url.Parse(s.BaseURL + "/top-headlines")
	if err != nil {
		return nil, &utils.UpstreamError{Op: "news fetch", Err: err}
	}

	q := endpoint.Query()
	q.Set("country", s.Country)
	if category != "" && !strings.EqualFold(category, models.CategoryAll) {
		q.Set("category", strings.ToLower(category))
	}
	if language != "" {
		q.Set("language", strings.ToLower(language))
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "news fetch", Err: err}
	}
	req.Header.Set("X-Api-Key", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "news fetch", Err: err}
	}
	defer resp.Body.Close()

	var body headlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &utils.UpstreamError{Op: "news decode", Err: err}
	}
	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		return nil, &utils.UpstreamError{
			Op:  "news fetch",
			Err: fmt.Errorf("news source returned %d (%s: %s)", resp.StatusCode, body.Code, body.Message),
		}
	}
	return body.Articles, nil
}
