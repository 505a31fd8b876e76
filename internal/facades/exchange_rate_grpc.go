package facades

import (
	"context"
	"fmt"
	"sort"
	"time"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// ExchangeRatesGRPCFacade reads rates from the exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client  pb.ExchangeServiceClient
	metrics *metrics.Metrics
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient, m *metrics.Metrics) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client, metrics: m}
}

// ListCurrencies returns the codes known to the exchanger, sorted.
func (f *ExchangeRatesGRPCFacade) ListCurrencies(ctx context.Context) (catalog models.Catalog, err error) {
	start := time.Now()
	defer func() { f.metrics.ObserveGateway(opListCurrencies, start, err) }()

	resp, err := f.client.GetExchangeRates(ctx, &pb.Empty{})
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates via gRPC", "error", err)
		return nil, grpcError(err)
	}
	if len(resp.GetRates()) == 0 {
		return nil, fmt.Errorf("%w: empty currency list", models.ErrMalformedResponse)
	}

	catalog = make(models.Catalog, 0, len(resp.GetRates()))
	for code := range resp.GetRates() {
		catalog = append(catalog, models.CurrencyCode(code))
	}
	sort.Slice(catalog, func(i, j int) bool { return catalog[i] < catalog[j] })
	return catalog, nil
}

// Convert multiplies amount by the exchanger's rate for the pair.
func (f *ExchangeRatesGRPCFacade) Convert(
	ctx context.Context,
	amount decimal.Decimal,
	from, to models.CurrencyCode,
) (conv models.Conversion, err error) {
	start := time.Now()
	defer func() { f.metrics.ObserveGateway(opConvert, start, err) }()

	rate, err := f.rate(ctx, from, to)
	if err != nil {
		return models.Conversion{}, err
	}

	return models.Conversion{
		Rate:            rate,
		ConvertedAmount: amount.Mul(rate),
	}, nil
}

// GetRates asks for each target separately; the exchanger has no batch call.
func (f *ExchangeRatesGRPCFacade) GetRates(
	ctx context.Context,
	base models.CurrencyCode,
	targets []models.CurrencyCode,
) (rates []models.Rate, err error) {
	start := time.Now()
	defer func() { f.metrics.ObserveGateway(opGetRates, start, err) }()

	rates = make([]models.Rate, 0, len(targets))
	for _, target := range targets {
		rate, err := f.rate(ctx, base, target)
		if err != nil {
			return nil, err
		}
		rates = append(rates, models.Rate{Currency: target, Value: rate})
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].Currency < rates[j].Currency })
	return rates, nil
}

func (f *ExchangeRatesGRPCFacade) rate(ctx context.Context, from, to models.CurrencyCode) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: from.String(),
		ToCurrency:   to.String(),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate for currency via gRPC",
			"from", from, "to", to, "error", err)
		return decimal.Zero, grpcError(err)
	}

	rate := decimal.NewFromFloat32(resp.GetRate())
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s", models.ErrMissingRate, to)
	}
	return rate, nil
}

// grpcError maps a gRPC status onto the gateway error kinds.
func grpcError(err error) error {
	switch status.Code(err) {
	case codes.NotFound, codes.InvalidArgument:
		return fmt.Errorf("%w: %v", models.ErrMissingRate, err)
	case codes.DataLoss, codes.Internal:
		return fmt.Errorf("%w: %v", models.ErrMalformedResponse, err)
	default:
		return fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}
}
