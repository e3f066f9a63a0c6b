package indexes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ggrighi15/Atualizar-Selic/internal/dateutils"
)

// DefaultSGSBaseURL is the public endpoint of Bacen's time-series service.
const DefaultSGSBaseURL = "https://api.bcb.gov.br"

// Observation is one (date, rate-percent) pair of a daily series.
type Observation struct {
	Date time.Time
	Rate float64
}

// SeriesFetcher retrieves the daily observations of a series over an
// inclusive date interval. The engine depends on this interface so its
// compounding math is testable against an in-memory fake.
type SeriesFetcher interface {
	Fetch(ctx context.Context, code int, start, end time.Time) ([]Observation, error)
}

// SGSClient fetches daily series from the Bacen SGS REST API
// (/dados/serie/bcdata.sgs.{code}/dados).
type SGSClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSGSClient returns a client for the given base URL with the given request
// timeout. An empty baseURL selects the public Bacen endpoint.
func NewSGSClient(baseURL string, timeout time.Duration) *SGSClient {
	if baseURL == "" {
		baseURL = DefaultSGSBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SGSClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// sgsEntry mirrors the SGS JSON payload: dates are dd/mm/aaaa text and rates
// are decimal strings ("0.054266").
type sgsEntry struct {
	Data  string `json:"data"`
	Valor string `json:"valor"`
}

// Fetch retrieves the series observations for [start, end], both inclusive.
func (c *SGSClient) Fetch(ctx context.Context, code int, start, end time.Time) ([]Observation, error) {
	query := url.Values{}
	query.Set("formato", "json")
	query.Set("dataInicial", start.Format(dateutils.DateLayout))
	query.Set("dataFinal", end.Format(dateutils.DateLayout))

	endpoint := fmt.Sprintf("%s/dados/serie/bcdata.sgs.%d/dados?%s",
		c.baseURL, code, query.Encode())

	log.WithFields(map[string]interface{}{
		"series": code,
		"start":  start.Format(dateutils.DateLayout),
		"end":    end.Format(dateutils.DateLayout),
	}).Info("Fetching SGS daily series")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building SGS request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting SGS series %d: %w", code, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Warn("Failed to close SGS response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SGS series %d returned status %d", code, resp.StatusCode)
	}

	var entries []sgsEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decoding SGS payload for series %d: %w", code, err)
	}

	observations := make([]Observation, 0, len(entries))
	for _, entry := range entries {
		date, err := dateutils.Parse(entry.Data)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q in SGS payload: %w", entry.Data, err)
		}
		rate, err := strconv.ParseFloat(strings.ReplaceAll(entry.Valor, ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rate %q in SGS payload: %w", entry.Valor, err)
		}
		observations = append(observations, Observation{Date: date, Rate: rate})
	}

	log.WithField("count", len(observations)).Debug("Fetched SGS observations")
	return observations, nil
}
