package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// RussiaClient proxies the EGRUL company registry (lookup by INN or OGRN).
type RussiaClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewRussiaClient(baseURL, apiKey string) *RussiaClient {
	if baseURL == "" {
		baseURL = "https://egrul.itsoft.ru"
	}
	return &RussiaClient{baseURL: baseURL, apiKey: apiKey, httpClient: newHTTPClient()}
}

type egrulResponse struct {
	INN       string `json:"inn"`
	OGRN      string `json:"ogrn"`
	Name      string `json:"name"`
	FullName  string `json:"full_name"`
	OPF       string `json:"opf"`
	Status    string `json:"status"`
	Address   string `json:"address"`
	RegDate   string `json:"reg_date"`
	Liquidate string `json:"liquidation_date"`
}

func (c *RussiaClient) Lookup(ctx context.Context, id string) (*Record, error) {
	endpoint := fmt.Sprintf("%s/%s.json", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
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
		return nil, fmt.Errorf("%w: egrul status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var out egrulResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	name := out.FullName
	if name == "" {
		name = out.Name
	}
	return &Record{
		Source:         "egrul",
		TaxID:          out.INN,
		RegistrationID: out.OGRN,
		Name:           name,
		LegalForm:      out.OPF,
		Status:         out.Status,
		Jurisdiction:   "RU",
		LegalAddress:   out.Address,
		RegisteredAt:   out.RegDate,
	}, nil
}
