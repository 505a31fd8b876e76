package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// Gateway operation names used in logs and metrics.
const (
	opListCurrencies = "list_currencies"
	opConvert        = "convert"
	opGetRates       = "get_rates"
)

// latestResponse is the payload of GET /latest.
type latestResponse struct {
	Amount decimal.Decimal            `json:"amount"`
	Base   string                     `json:"base"`
	Date   string                     `json:"date"`
	Rates  map[string]decimal.Decimal `json:"rates"`
}

// ExchangeRatesHTTPFacade reads rates from a frankfurter-compatible HTTP API.
type ExchangeRatesHTTPFacade struct {
	baseURL string
	client  *http.Client
	metrics *metrics.Metrics
}

// NewExchangeRatesHTTPFacade creates a facade for the API rooted at baseURL.
// A nil client uses http.DefaultClient.
func NewExchangeRatesHTTPFacade(baseURL string, client *http.Client, m *metrics.Metrics) *ExchangeRatesHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &ExchangeRatesHTTPFacade{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		metrics: m,
	}
}

// ListCurrencies fetches the supported currency codes, sorted.
func (f *ExchangeRatesHTTPFacade) ListCurrencies(ctx context.Context) (catalog models.Catalog, err error) {
	defer f.observe(opListCurrencies, time.Now(), &err)

	var names map[string]string
	if err := f.get(ctx, "/currencies", nil, &names); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: empty currency list", models.ErrMalformedResponse)
	}

	catalog = make(models.Catalog, 0, len(names))
	for code := range names {
		catalog = append(catalog, models.CurrencyCode(code))
	}
	sort.Slice(catalog, func(i, j int) bool { return catalog[i] < catalog[j] })
	return catalog, nil
}

// Convert fetches the converted amount for a single currency pair.
func (f *ExchangeRatesHTTPFacade) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to models.CurrencyCode,
) (conv models.Conversion, err error) {
	defer f.observe(opConvert, time.Now(), &err)

	query := url.Values{}
	query.Set("amount", amount.String())
	query.Set("from", from.String())
	query.Set("to", to.String())

	var resp latestResponse
	if err := f.get(ctx, "/latest", query, &resp); err != nil {
		return models.Conversion{}, err
	}
	if resp.Rates == nil {
		return models.Conversion{}, fmt.Errorf("%w: response has no rates", models.ErrMalformedResponse)
	}

	converted, ok := resp.Rates[to.String()]
	if !ok || !converted.IsPositive() {
		return models.Conversion{}, fmt.Errorf("%w: %s", models.ErrMissingRate, to)
	}

	return models.Conversion{
		Rate:            converted.Div(amount),
		ConvertedAmount: converted,
	}, nil
}

// GetRates fetches the rates of targets relative to base, sorted by currency code.
func (f *ExchangeRatesHTTPFacade) GetRates(
	ctx context.Context,
	base models.CurrencyCode,
	targets []models.CurrencyCode,
) (rates []models.Rate, err error) {
	defer f.observe(opGetRates, time.Now(), &err)

	codes := make([]string, 0, len(targets))
	for _, t := range targets {
		codes = append(codes, t.String())
	}

	query := url.Values{}
	query.Set("from", base.String())
	query.Set("to", strings.Join(codes, ","))

	var resp latestResponse
	if err := f.get(ctx, "/latest", query, &resp); err != nil {
		return nil, err
	}
	if resp.Rates == nil {
		return nil, fmt.Errorf("%w: response has no rates", models.ErrMalformedResponse)
	}

	rates = make([]models.Rate, 0, len(targets))
	for _, t := range targets {
		value, ok := resp.Rates[t.String()]
		if !ok || !value.IsPositive() {
			return nil, fmt.Errorf("%w: %s", models.ErrMissingRate, t)
		}
		rates = append(rates, models.Rate{Currency: t, Value: value})
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Currency < rates[j].Currency })
	return rates, nil
}

func (f *ExchangeRatesHTTPFacade) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := f.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", models.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: unexpected status code %d from %s", models.ErrNetwork, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	}
	return nil
}

func (f *ExchangeRatesHTTPFacade) observe(op string, start time.Time, err *error) {
	f.metrics.ObserveGateway(op, start, *err)
	if *err != nil {
		logger.Log.Errorw("exchange rate request failed", "operation", op, "error", *err)
		return
	}
	logger.Log.Debugw("exchange rate request", "operation", op, "duration", time.Since(start))
}
