// Package scraper retrieves raw component listings from web search results.
// It is the only I/O-bound collaborator in the pipeline: it may be slow, it
// may fail, and the engine accepts whatever it returns, including nothing.
package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
	"github.com/ByteBuilderAI/ByteBuilder-API/internal/utils"
)

const searchEndpoint = "https://html.duckduckgo.com/html/"

var priceMatcher = regexp2.MustCompile(`\$\s?\d[\d,]*(\.\d{2})?`, 0)

type Scraper struct {
	Collector  *colly.Collector
	Headers    map[string]map[string]string
	MaxResults int
	Endpoint   string

	randomizeUA bool
}

// NoResultsError reports a search that completed but produced no usable
// listings. Callers typically substitute curated fallback listings.
type NoResultsError struct {
	Query string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no listings found for %q", e.Query)
}

// NewScraper initializes a new instance of the Scraper type and returns it.
// It creates a new collector, sets the async and AllowURLRevisit properties,
// applies the request timeout and initializes an empty Headers map with the
// "global" site.
func NewScraper(timeout time.Duration, maxResults int) Scraper {
	col := colly.NewCollector()
	col.Async = true
	col.AllowURLRevisit = true
	col.SetRequestTimeout(timeout)

	s := Scraper{
		Collector:  col,
		MaxResults: maxResults,
		Endpoint:   searchEndpoint,
	}
	s.Headers = map[string]map[string]string{
		"global": {},
	}

	return s
}

// UpdateHeaders merges newHeaders into the stored headers for the given
// site. "global" headers apply to every request; site-specific entries
// override them per hostname.
func (scrap *Scraper) UpdateHeaders(site string, newHeaders map[string]string) {
	headers := scrap.Headers[site]
	if headers == nil {
		headers = map[string]string{}
		scrap.Headers[site] = headers
	}

	for k, v := range newHeaders {
		headers[k] = v
	}
}

func (scrap *Scraper) RandomizeUserAgent() {
	scrap.randomizeUA = true
}

// SearchListings retrieves component listings for the given query. Each
// result carries a title, a display price string when one appears in the
// result text, and a free-text snippet; the compatibility engine extracts
// structured specs from these downstream.
//
// Every call clones the base collector so its callbacks see only this
// search's response. Concurrent searches on a shared collector would
// dispatch each response to every registered callback.
func (scrap *Scraper) SearchListings(query string) ([]models.Listing, error) {
	col := scrap.Collector.Clone()
	scrap.applyHeaders(col)
	if scrap.randomizeUA {
		extensions.RandomUserAgent(col)
	}

	listings := []models.Listing{}

	col.OnHTML(".result", func(result *colly.HTMLElement) {
		if len(listings) >= scrap.MaxResults {
			return
		}

		title := strings.TrimSpace(result.ChildText(".result__title"))
		if title == "" {
			return
		}
		snippet := strings.TrimSpace(result.ChildText(".result__snippet"))

		listings = append(listings, models.Listing{
			Title:   title,
			Price:   snippetPrice(snippet),
			URL:     resolveResultURL(result.ChildAttr(".result__title a", "href")),
			Snippet: snippet,
		})
	})

	err := col.Visit(scrap.buildSearchURL(query))
	col.Wait()

	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	if len(listings) == 0 {
		return nil, &NoResultsError{Query: query}
	}

	return listings, nil
}

// applyHeaders registers the stored headers on a cloned collector. Clones
// start with no callbacks, so this runs once per search.
func (scrap *Scraper) applyHeaders(col *colly.Collector) {
	col.OnRequest(func(r *colly.Request) {
		merged := map[string]string{}
		for k, v := range scrap.Headers["global"] {
			merged[k] = v
		}
		for k, v := range scrap.Headers[r.URL.Hostname()] {
			merged[k] = v
		}

		for k, v := range merged {
			if len(k) > 0 && len(v) > 0 {
				r.Headers.Set(k, v)
			}
		}
	})
}

// snippetPrice pulls the first price token out of a snippet and normalizes
// its display form, so "$ 409.99" and "$409.99" render the same.
func snippetPrice(snippet string) string {
	return models.NormalizePrice(utils.FirstMatch(priceMatcher, snippet)).Display
}

func (scrap *Scraper) buildSearchURL(query string) string {
	return scrap.Endpoint + "?q=" + url.QueryEscape(query+" computer component price")
}

// resolveResultURL unwraps the search engine's redirect links
// ("//duckduckgo.com/l/?uddg=<target>") to the target URL.
func resolveResultURL(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}
	return href
}
