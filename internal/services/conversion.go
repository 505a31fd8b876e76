package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/metrics"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

// User-facing conversion messages.
const (
	MsgEnterAmount      = "Please enter an amount"
	MsgPositiveAmount   = "Amount must be a positive number"
	MsgInvalidData      = "Invalid conversion data received"
	MsgConversionFailed = "Error during conversion. Please try again."
)

// Session defaults.
const (
	DefaultAmount = "1"
	DefaultSource = models.USD
	DefaultTarget = models.INR
)

// ConversionController owns the single active conversion session.
type ConversionController struct {
	gateway     RateGateway
	history     HistoryAppender
	kafkaWriter KafkaWriter
	metrics     *metrics.Metrics
	now         func() time.Time

	mu         sync.Mutex
	amount     string
	source     models.CurrencyCode
	target     models.CurrencyCode
	status     models.ConversionStatus
	result     string
	errMsg     string
	generation uint64
}

// NewConversionController creates an idle session with the default pair.
// kafkaWriter and m may be nil.
func NewConversionController(
	gateway RateGateway,
	history HistoryAppender,
	kafkaWriter KafkaWriter,
	m *metrics.Metrics,
) *ConversionController {
	return &ConversionController{
		gateway:     gateway,
		history:     history,
		kafkaWriter: kafkaWriter,
		metrics:     m,
		now:         time.Now,
		amount:      DefaultAmount,
		source:      DefaultSource,
		target:      DefaultTarget,
		status:      models.ConversionIdle,
	}
}

// Snapshot returns the current session state.
func (c *ConversionController) Snapshot() models.ConversionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *ConversionController) snapshotLocked() models.ConversionState {
	return models.ConversionState{
		Amount:   c.amount,
		Source:   c.source,
		Target:   c.target,
		Status:   c.status,
		Result:   c.result,
		Error:    c.errMsg,
		InFlight: c.status == models.ConversionValidating || c.status == models.ConversionFetching,
	}
}

// SetInput updates the session inputs. A nil amount or empty code keeps the current value.
func (c *ConversionController) SetInput(amount *string, source, target models.CurrencyCode) models.ConversionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if amount != nil {
		c.amount = *amount
	}
	if source != "" {
		c.source = source
	}
	if target != "" {
		c.target = target
	}
	return c.snapshotLocked()
}

// Swap exchanges source and target. It never triggers a conversion.
func (c *ConversionController) Swap() models.ConversionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.source, c.target = c.target, c.source
	return c.snapshotLocked()
}

// Acknowledge returns a terminal session to idle.
func (c *ConversionController) Acknowledge() models.ConversionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == models.ConversionSucceeded || c.status == models.ConversionFailed {
		c.status = models.ConversionIdle
	}
	return c.snapshotLocked()
}

// Convert validates the amount, fetches the conversion and on success
// appends it to the history. A response that arrives after a newer valid
// Convert call was issued is discarded and ErrSuperseded is returned.
func (c *ConversionController) Convert(ctx context.Context) (models.ConversionState, error) {
	c.mu.Lock()
	amount, err := parseAmount(c.amount)
	if err != nil {
		// An outstanding request is left to complete.
		if c.status != models.ConversionFetching {
			c.status = models.ConversionIdle
		}
		c.errMsg = validationMessage(err)
		state := c.snapshotLocked()
		c.mu.Unlock()

		logger.Log.Warnw("conversion rejected", "amount", state.Amount, "error", err)
		c.metrics.Conversion(metrics.OutcomeInvalid)
		return state, err
	}

	c.generation++
	token := c.generation
	source, target := c.source, c.target
	c.status = models.ConversionFetching
	c.errMsg = ""
	c.mu.Unlock()

	conv, err := c.gateway.Convert(ctx, amount, source, target)

	c.mu.Lock()
	if token != c.generation {
		state := c.snapshotLocked()
		c.mu.Unlock()

		logger.Log.Infow("discarding superseded conversion", "from", source, "to", target, "token", token)
		c.metrics.Conversion(metrics.OutcomeStale)
		return state, fmt.Errorf("%w: conversion %s->%s", models.ErrSuperseded, source, target)
	}

	if err != nil {
		c.status = models.ConversionFailed
		c.errMsg = gatewayMessage(err)
		state := c.snapshotLocked()
		c.mu.Unlock()

		logger.Log.Errorw("conversion failed", "from", source, "to", target, "amount", amount, "error", err)
		c.metrics.Conversion(metrics.OutcomeError)
		return state, err
	}

	result := FormatResult(conv.ConvertedAmount, target)
	c.status = models.ConversionSucceeded
	c.result = result
	state := c.snapshotLocked()
	c.mu.Unlock()

	record := models.ConversionRecord{
		ID:        uuid.New(),
		Source:    source,
		Target:    target,
		Amount:    amount,
		Result:    result,
		Timestamp: c.now(),
	}
	c.history.Append(ctx, record)
	c.publishConversion(ctx, record)
	c.metrics.Conversion(metrics.OutcomeSuccess)

	return state, nil
}

// FormatResult renders a converted amount as "<amount> <CODE>".
func FormatResult(amount decimal.Decimal, code models.CurrencyCode) string {
	return amount.String() + " " + code.String()
}

var (
	errAmountMissing  = fmt.Errorf("%w: amount is required", models.ErrValidation)
	errAmountPositive = fmt.Errorf("%w: amount must be a positive number", models.ErrValidation)
)

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, errAmountMissing
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, errAmountPositive
	}
	return amount, nil
}

func validationMessage(err error) string {
	if errors.Is(err, errAmountMissing) {
		return MsgEnterAmount
	}
	return MsgPositiveAmount
}

func gatewayMessage(err error) string {
	if errors.Is(err, models.ErrMissingRate) || errors.Is(err, models.ErrMalformedResponse) {
		return MsgInvalidData
	}
	return MsgConversionFailed
}

// publishConversion publishes a conversion record to Kafka.
func (c *ConversionController) publishConversion(ctx context.Context, record models.ConversionRecord) {
	if c.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "record_id", record.ID)
		return
	}

	data, err := json.Marshal(record)
	if err != nil {
		logger.Log.Errorw("Failed to marshal conversion for Kafka", "record_id", record.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(record.ID.String()),
		Value: data,
	}
	if err := c.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish conversion to Kafka", "record_id", record.ID, "error", err)
		return
	}
	logger.Log.Infow("Conversion published to Kafka", "record_id", record.ID, "result", record.Result)
}
