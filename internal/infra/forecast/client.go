// Package forecast implements the HTTP client for the weather collaborator.
package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/travelkit/packing-assistant/internal/domain/packlist"
)

const defaultTimeout = 3 * time.Second

// Client fetches weather summaries from the forecast collaborator.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. The timeout bounds the whole request so a
// hung collaborator cannot stall packing list generation.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the weather summary for a city and date range. Any failure
// is returned as an error; the caller decides how to degrade.
func (c *Client) Fetch(ctx context.Context, city, start, end string) (packlist.Forecast, error) {
	query := url.Values{}
	query.Set("city", city)
	query.Set("start", start)
	query.Set("end", end)
	endpoint := fmt.Sprintf("%s/v1/weather?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return packlist.Forecast{}, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return packlist.Forecast{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return packlist.Forecast{}, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return packlist.Forecast{}, fmt.Errorf("read forecast response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return packlist.Forecast{}, fmt.Errorf("decode forecast response: %w", err)
	}

	return packlist.Forecast{
		Summary:     raw.Summary,
		AvgTMax:     raw.AvgTMax,
		RainProb:    raw.RainProb,
		Uncertainty: raw.Uncertainty,
	}, nil
}

type apiResponse struct {
	City        string   `json:"city"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Summary     string   `json:"summary"`
	AvgTMin     *float64 `json:"avg_tmin"`
	AvgTMax     *float64 `json:"avg_tmax"`
	RainProb    *float64 `json:"rain_prob"`
	Uncertainty string   `json:"uncertainty"`
}
