package services

//go:generate mockgen -source=interfaces.go -destination=mock_interfaces.go -package=services

import (
	"context"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// RateGateway is the typed accessor over the remote rate-lookup API.
type RateGateway interface {
	ListCurrencies(ctx context.Context) (models.Catalog, error)                                                   // Returns the supported currency set
	Convert(ctx context.Context, amount decimal.Decimal, from, to models.CurrencyCode) (models.Conversion, error) // Converts amount between a pair
	GetRates(ctx context.Context, base models.CurrencyCode, targets []models.CurrencyCode) ([]models.Rate, error) // Returns a batch of rates relative to base
}

// KeyValueStore is the durable blob store behind favorites and history.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error) // Returns the value and whether the key exists
	Set(ctx context.Context, key string, value []byte) error   // Stores the value under key
}

// HistoryAppender records successful conversions.
type HistoryAppender interface {
	Append(ctx context.Context, record models.ConversionRecord) []models.ConversionRecord
}

// CatalogReader exposes the current currency catalog.
type CatalogReader interface {
	Current() models.Catalog
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}
