package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// PortugalClient proxies the NIF.pt registry (lookup by NIF / NIPC).
type PortugalClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewPortugalClient(baseURL, apiKey string) *PortugalClient {
	if baseURL == "" {
		baseURL = "https://www.nif.pt"
	}
	return &PortugalClient{baseURL: baseURL, apiKey: apiKey, httpClient: newHTTPClient()}
}

type nifResponse struct {
	Result  string `json:"result"`
	Records map[string]struct {
		NIF       int64  `json:"nif"`
		Title     string `json:"title"`
		Address   string `json:"address"`
		Pc4       string `json:"pc4"`
		Pc3       string `json:"pc3"`
		City      string `json:"city"`
		Activity  string `json:"activity"`
		Structure struct {
			Nature string `json:"nature"`
		} `json:"structure"`
	} `json:"records"`
}

func (c *PortugalClient) Lookup(ctx context.Context, id string) (*Record, error) {
	q := url.Values{}
	q.Set("json", "1")
	q.Set("q", id)
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	endpoint := c.baseURL + "/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: nif.pt status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var out nifResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// nif.pt signals misses in-band, not with 404
	rec, ok := out.Records[id]
	if out.Result != "success" || !ok {
		return nil, ErrNotFound
	}

	return &Record{
		Source:       "nif.pt",
		TaxID:        fmt.Sprintf("%d", rec.NIF),
		Name:         rec.Title,
		LegalForm:    rec.Structure.Nature,
		Jurisdiction: "PT",
		LegalAddress: fmt.Sprintf("%s, %s-%s %s", rec.Address, rec.Pc4, rec.Pc3, rec.City),
	}, nil
}
