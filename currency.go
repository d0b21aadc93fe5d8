package numo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oarkflow/date"
	"github.com/oarkflow/json"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

var currencyPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s+([a-zA-Z]{3})\s+(?:to|in|as)\s+([a-zA-Z]{3})$`)

// isoCurrencies is the set of codes the runner will attempt; anything else
// declines without a network round trip.
var isoCurrencies = map[string]bool{
	"AED": true, "AUD": true, "BGN": true, "BRL": true, "CAD": true,
	"CHF": true, "CLP": true, "CNY": true, "CZK": true, "DKK": true,
	"EUR": true, "GBP": true, "HKD": true, "HUF": true, "IDR": true,
	"ILS": true, "INR": true, "ISK": true, "JPY": true, "KRW": true,
	"MXN": true, "MYR": true, "NOK": true, "NZD": true, "PHP": true,
	"PLN": true, "RON": true, "RUB": true, "SEK": true, "SGD": true,
	"THB": true, "TRY": true, "TWD": true, "UAH": true, "USD": true,
	"VND": true, "ZAR": true,
}

// maxQuoteAge bounds how old the rates themselves may be. The API publishes
// daily; a quote two cycles old is stale no matter how recently we fetched
// it, so the cache refetches even inside the TTL.
const maxQuoteAge = 48 * time.Hour

type rateQuote struct {
	rates     map[string]float64
	quoteDate time.Time
	fetchedAt time.Time
}

func (q *rateQuote) fresh(ttl time.Duration) bool {
	return time.Since(q.fetchedAt) < ttl && time.Since(q.quoteDate) < maxQuoteAge
}

type ratesPayload struct {
	Result        string             `json:"result"`
	LastUpdateUTC string             `json:"time_last_update_utc"`
	Rates         map[string]float64 `json:"rates"`
}

// CurrencyRunner converts "<amount> usd to eur" lines using a public
// exchange-rate API. Rates are cached per base currency until the TTL
// expires; concurrent fetches for the same base are deduplicated.
type CurrencyRunner struct {
	apiURL  string
	ttl     time.Duration
	timeout time.Duration
	client  *fasthttp.Client
	fetch   func(url string) ([]byte, error)

	mu    sync.RWMutex
	cache map[string]*rateQuote
	group singleflight.Group
}

func NewCurrencyRunner(apiURL string, ttl, timeout time.Duration) *CurrencyRunner {
	r := &CurrencyRunner{
		apiURL:  apiURL,
		ttl:     ttl,
		timeout: timeout,
		client:  &fasthttp.Client{},
		cache:   make(map[string]*rateQuote),
	}
	r.fetch = r.httpGet
	return r
}

func (r *CurrencyRunner) Name() string { return "currency" }

func (r *CurrencyRunner) Run(ctx context.Context, source string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	m := currencyPattern.FindStringSubmatch(source)
	if m == nil {
		return "", errors.New("not a currency conversion")
	}
	amount, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", err
	}
	from := strings.ToUpper(m[2])
	to := strings.ToUpper(m[3])
	if !isoCurrencies[from] || !isoCurrencies[to] {
		return "", fmt.Errorf("unknown currency pair %s/%s", from, to)
	}
	quote, err := r.getRates(from)
	if err != nil {
		return "", err
	}
	rate, ok := quote.rates[to]
	if !ok {
		return "", fmt.Errorf("no rate for %s", to)
	}
	result := amount * rate
	if err := validateResult(result); err != nil {
		return "", err
	}
	return formatNumber(result), nil
}

// getRates serves from the cache when fresh and otherwise fetches, letting
// only one fetch per base currency run at a time.
func (r *CurrencyRunner) getRates(base string) (*rateQuote, error) {
	r.mu.RLock()
	q, ok := r.cache[base]
	r.mu.RUnlock()
	if ok && q.fresh(r.ttl) {
		return q, nil
	}
	v, err, _ := r.group.Do(base, func() (any, error) {
		body, err := r.fetch(r.apiURL + "/" + base)
		if err != nil {
			return nil, err
		}
		var payload ratesPayload
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		if payload.Result != "success" || len(payload.Rates) == 0 {
			return nil, errors.New("rate lookup failed")
		}
		quoteDate, derr := date.Parse(payload.LastUpdateUTC)
		if derr != nil {
			quoteDate = time.Now()
		}
		quote := &rateQuote{
			rates:     payload.Rates,
			quoteDate: quoteDate,
			fetchedAt: time.Now(),
		}
		r.mu.Lock()
		r.cache[base] = quote
		r.mu.Unlock()
		return quote, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*rateQuote), nil
}

func (r *CurrencyRunner) httpGet(requestURL string) ([]byte, error) {
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
