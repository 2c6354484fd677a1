package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"safelogist/internal/domain"
)

type CompanyReader interface {
	AllNames(ctx context.Context) ([]domain.Company, error)
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type Service struct {
	companies CompanyReader
	baseURL   string
}

func NewService(companies CompanyReader, baseURL string) *Service {
	return &Service{companies: companies, baseURL: strings.TrimRight(baseURL, "/")}
}

// Generate renders the full sitemap: static pages plus one entry per company.
func (s *Service) Generate(ctx context.Context) ([]byte, error) {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, path := range []string{"/", "/companies", "/reviews"} {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        s.baseURL + path,
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}

	companies, err := s.companies.AllNames(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range companies {
		if c.MinReviewID == 0 {
			continue
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:        fmt.Sprintf("%s/company/%d", s.baseURL, c.MinReviewID),
			LastMod:    c.UpdatedAt.Format(time.DateOnly),
			ChangeFreq: "weekly",
			Priority:   "0.6",
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
