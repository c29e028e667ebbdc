package fetch

import (
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// maxBodyBytes caps how much of a page is read while looking for a title.
const maxBodyBytes = 1 << 20

var (
	ErrTitleNotFound = errors.New("page has no title element")
	ErrBadStatus     = errors.New("unexpected response status")
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TitleFetcher retrieves the <title> text of a remote page with a bounded
// timeout. Callers treat every error as non-fatal and fall back to the URL.
type TitleFetcher struct {
	http      httpDoer
	sanitizer *bluemonday.Policy
	userAgent string
}

// NewTitleFetcher builds a fetcher whose requests abort after timeout.
func NewTitleFetcher(timeout time.Duration) *TitleFetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TitleFetcher{
		http:      &http.Client{Timeout: timeout},
		sanitizer: bluemonday.StrictPolicy(),
		userAgent: "Mozilla/5.0 (compatible; linkshare/1.0)",
	}
}

// SetHTTPClient swaps the underlying client, primarily for tests.
func (f *TitleFetcher) SetHTTPClient(client httpDoer) {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	f.http = client
}

// Fetch performs a single best-effort GET and returns the trimmed title
// text. Non-2xx responses, transport failures and missing titles all return
// an error; there is no retry.
func (f *TitleFetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	res, err := f.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", fmt.Errorf("%w: %d", ErrBadStatus, res.StatusCode)
	}

	title, err := extractTitle(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}

	// Titles come from untrusted pages; strip any markup a malformed
	// document may have leaked into the text node. The sanitizer escapes
	// entities it keeps, so unescape to get plain text back.
	title = strings.TrimSpace(stdhtml.UnescapeString(f.sanitizer.Sanitize(title)))
	if title == "" {
		return "", ErrTitleNotFound
	}
	return title, nil
}

func extractTitle(body io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(body)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return "", ErrTitleNotFound
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if string(name) != "title" {
				continue
			}
			if tokenizer.Next() == html.TextToken {
				if title := strings.TrimSpace(tokenizer.Token().Data); title != "" {
					return title, nil
				}
			}
			return "", ErrTitleNotFound
		}
	}
}
