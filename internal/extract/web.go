package extract

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"

// WebExtractor fetches a page over HTTP and extracts its readable text.
type WebExtractor struct {
	client *http.Client
}

// NewWebExtractor builds an extractor whose fetches time out after timeout.
func NewWebExtractor(timeout time.Duration) *WebExtractor {
	return &WebExtractor{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves pageURL and returns its title plus visible body text.
// Failures come back as *Error with a classified Kind.
func (e *WebExtractor) Fetch(ctx context.Context, pageURL string) (string, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return "", &Error{Kind: KindSchema, Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", &Error{Kind: KindSchema, Err: fmt.Errorf("unsupported scheme %q", u.Scheme)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", &Error{Kind: KindRequest, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return "", classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", &Error{
			Kind:       KindUpstream,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s returned status %d", u.Host, resp.StatusCode),
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindUnexpected, Err: err}
	}

	return pageText(doc), nil
}

// classify maps transport errors into the closed Kind set.
func classify(err error) *Error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Kind: KindTimeout, Err: err}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &Error{Kind: KindConnection, Err: err}
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return &Error{Kind: KindConnection, Err: err}
	}

	return &Error{Kind: KindRequest, Err: err}
}

// pageText flattens a document to "title\n\nbody" with whitespace collapsed.
func pageText(doc *goquery.Document) string {
	doc.Find("script, style, noscript, iframe").Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	body := doc.Find("body").Text()
	lines := make([]string, 0, 64)
	for _, line := range strings.Split(body, "\n") {
		if collapsed := strings.Join(strings.Fields(line), " "); collapsed != "" {
			lines = append(lines, collapsed)
		}
	}
	text := strings.Join(lines, "\n")

	if title == "" {
		return text
	}
	if text == "" {
		return title
	}
	return title + "\n\n" + text
}
