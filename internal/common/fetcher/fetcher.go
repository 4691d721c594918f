package fetcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
)

// Fetcher retrieves a web page and reduces it to plain text, so a
// pasted link can be drafted the same way as pasted text
type Fetcher struct {
	collector *colly.Collector
}

// Config holds fetcher configuration
type Config struct {
	UserAgent    string
	RequestDelay time.Duration
}

// NewFetcher creates a new Colly-based page fetcher
func NewFetcher(cfg Config) *Fetcher {
	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)

	if cfg.RequestDelay > 0 {
		c.Limit(&colly.LimitRule{
			DomainGlob:  "*",
			Delay:       cfg.RequestDelay,
			RandomDelay: cfg.RequestDelay / 2,
		})
	}

	return &Fetcher{collector: c}
}

// FetchText visits the URL and returns the page title and its visible
// body text with boilerplate elements removed
func (f *Fetcher) FetchText(url string) (title, text string, err error) {
	var fetchErr error

	collector := f.collector.Clone()

	collector.OnHTML("html", func(el *colly.HTMLElement) {
		title = strings.TrimSpace(el.DOM.Find("title").First().Text())

		body := el.DOM.Find("body")
		body.Find("script, style, noscript, nav, header, footer, iframe").Remove()
		text = flattenText(body)
	})

	collector.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch error: %w (status: %d)", err, r.StatusCode)
	})

	if err := collector.Visit(url); err != nil {
		return "", "", fmt.Errorf("visit url: %w", err)
	}

	if fetchErr != nil {
		return "", "", fetchErr
	}

	if text == "" {
		return "", "", fmt.Errorf("no text extracted from %s", url)
	}

	return title, text, nil
}

// flattenText walks block-level elements and joins their text with
// newlines, preserving enough line structure for the extraction rules
func flattenText(body *goquery.Selection) string {
	var lines []string
	body.Find("p, li, h1, h2, h3, h4, h5, h6, td, div").Each(func(_ int, s *goquery.Selection) {
		// Skip containers; only take elements with no block children
		if s.Children().Filter("p, li, div, table, ul, ol").Length() > 0 {
			return
		}
		line := strings.Join(strings.Fields(s.Text()), " ")
		if line != "" {
			lines = append(lines, line)
		}
	})
	if len(lines) == 0 {
		return strings.TrimSpace(body.Text())
	}
	return strings.Join(lines, "\n")
}
