package numo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/oarkflow/json"
	"github.com/valyala/fasthttp"
)

var translatePattern = regexp.MustCompile(`(?i)^(.+?)\s+in\s+([a-zA-Z-]+)$`)

// TranslateRunner handles "<text> in <language>" lines against the
// translation API. The source language is auto-detected; results are
// lowercased. Any transport or payload problem is a decline, never a fault.
type TranslateRunner struct {
	apiURL  string
	timeout time.Duration
	client  *fasthttp.Client
	fetch   func(url string) ([]byte, error)
}

func NewTranslateRunner(apiURL string, timeout time.Duration) *TranslateRunner {
	r := &TranslateRunner{
		apiURL:  apiURL,
		timeout: timeout,
		client:  &fasthttp.Client{},
	}
	r.fetch = r.httpGet
	return r
}

func (r *TranslateRunner) Name() string { return "translate" }

func (r *TranslateRunner) Run(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m := translatePattern.FindStringSubmatch(source)
	if m == nil {
		return "", errors.New("not a translation request")
	}
	text := strings.TrimSpace(m[1])
	lang, ok := resolveLanguage(m[2])
	if !ok {
		return "", fmt.Errorf("unknown language %q", m[2])
	}
	query := url.Values{}
	query.Set("client", "gtx")
	query.Set("sl", "auto")
	query.Set("tl", lang)
	query.Set("dt", "t")
	query.Set("q", text)
	body, err := r.fetch(r.apiURL + "?" + query.Encode())
	if err != nil {
		return "", err
	}
	translated, err := parseTranslatePayload(body)
	if err != nil {
		return "", err
	}
	return strings.ToLower(translated), nil
}

// parseTranslatePayload extracts the translated text from the API response,
// a nested array whose first element holds [translation, original, ...]
// segments.
func parseTranslatePayload(body []byte) (string, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", errors.New("empty translation payload")
	}
	segments, ok := payload[0].([]any)
	if !ok {
		return "", errors.New("unexpected translation payload shape")
	}
	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("no translation in payload")
	}
	return sb.String(), nil
}

func (r *TranslateRunner) httpGet(requestURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)
	req.SetRequestURI(requestURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		return nil, err
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	return append([]byte(nil), resp.Body()...), nil
}
