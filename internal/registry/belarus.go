package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// BelarusClient proxies the USR (ЕГР) state registry (lookup by UNP).
type BelarusClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewBelarusClient(baseURL string) *BelarusClient {
	if baseURL == "" {
		baseURL = "https://egr.gov.by/api/v2"
	}
	return &BelarusClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

type usrEntry struct {
	NGRN int64  `json:"ngrn"`
	VN   string `json:"vn"`
	VNS  string `json:"vns"`
	NSI  struct {
		NKFS string `json:"nkfs"`
		NKSO string `json:"nkso"`
	} `json:"nsi"`
	DFrom string `json:"dfrom"`
}

func (c *BelarusClient) Lookup(ctx context.Context, id string) (*Record, error) {
	endpoint := fmt.Sprintf("%s/getShortInfoByRegNum/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: egr.gov.by status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// API returns an array; empty array means no such UNP
	var entries []usrEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}

	e := entries[0]
	name := e.VN
	if e.VNS != "" {
		name = e.VNS
	}
	return &Record{
		Source:         "egr.gov.by",
		TaxID:          id,
		RegistrationID: fmt.Sprintf("%d", e.NGRN),
		Name:           name,
		LegalForm:      e.NSI.NKSO,
		Status:         e.NSI.NKFS,
		Jurisdiction:   "BY",
		RegisteredAt:   e.DFrom,
	}, nil
}
