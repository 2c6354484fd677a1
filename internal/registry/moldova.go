package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// MoldovaClient proxies the public financial-reports portal (lookup by IDNO).
// Unlike the other registries this one also returns the latest reported
// revenue and profit figures.
type MoldovaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewMoldovaClient(baseURL string) *MoldovaClient {
	if baseURL == "" {
		baseURL = "https://statistica.gov.md/api/reports"
	}
	return &MoldovaClient{baseURL: baseURL, httpClient: newHTTPClient()}
}

type moldovaResponse struct {
	IDNO    string `json:"idno"`
	Name    string `json:"denumirea"`
	Form    string `json:"forma_juridica"`
	Address string `json:"adresa"`
	Reports []struct {
		Year    int     `json:"anul"`
		Revenue float64 `json:"venituri"`
		Profit  float64 `json:"profit_net"`
	} `json:"rapoarte"`
}

// FinancialRecord extends the shared Record with report figures.
type FinancialRecord struct {
	Record
	ReportYear int     `json:"report_year,omitempty"`
	Revenue    float64 `json:"revenue,omitempty"`
	Profit     float64 `json:"profit,omitempty"`
}

func (c *MoldovaClient) Lookup(ctx context.Context, id string) (*Record, error) {
	fr, err := c.LookupFinancial(ctx, id)
	if err != nil {
		return nil, err
	}
	return &fr.Record, nil
}

func (c *MoldovaClient) LookupFinancial(ctx context.Context, id string) (*FinancialRecord, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, url.PathEscape(id))
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
		return nil, fmt.Errorf("%w: statistica.gov.md status %d", ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var out moldovaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if out.IDNO == "" {
		return nil, ErrNotFound
	}

	fr := &FinancialRecord{
		Record: Record{
			Source:       "statistica.gov.md",
			TaxID:        out.IDNO,
			Name:         out.Name,
			LegalForm:    out.Form,
			Jurisdiction: "MD",
			LegalAddress: out.Address,
		},
	}
	// берём последний отчётный год
	for _, r := range out.Reports {
		if r.Year >= fr.ReportYear {
			fr.ReportYear = r.Year
			fr.Revenue = r.Revenue
			fr.Profit = r.Profit
		}
	}
	return fr, nil
}
