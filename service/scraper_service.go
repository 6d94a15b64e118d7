package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ScraperService fetches a web page and reduces it to a title and the plain
// text of its headings, paragraphs and list items.
type ScraperService struct {
	client *http.Client
}

func NewScraperService(timeout time.Duration) *ScraperService {
	return &ScraperService{
		client: &http.Client{Timeout: timeout},
	}
}

// FetchPage downloads url and extracts its title and visible text. The title
// falls back to the URL itself when the page has no title element.
func (s *ScraperService) FetchPage(url string) (string, string, error) {
	resp, err := s.client.Get(url)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", "", err
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = url
	}

	var content strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text != "" {
			content.WriteString(text)
			content.WriteString("\n")
		}
	})

	return title, content.String(), nil
}
