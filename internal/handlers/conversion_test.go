package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/models"
)

func TestGetConversionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := handlers.NewMockConversionSession(ctrl)
	session.EXPECT().Snapshot().Return(models.ConversionState{
		Amount: "1",
		Source: models.USD,
		Target: models.INR,
		Status: models.ConversionIdle,
	})

	req := httptest.NewRequest(http.MethodGet, "/conversion", nil)
	w := httptest.NewRecorder()

	handlers.NewGetConversionHandler(session)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"amount":"1","from":"USD","to":"INR","status":"idle","in_flight":false}`, w.Body.String())
}

func TestSetConversionInputHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := handlers.NewMockConversionSession(ctrl)
	catalog := handlers.NewMockCatalogProvider(ctrl)

	handler := handlers.NewSetConversionInputHandler(session, catalog)

	amount := "250"

	tests := []struct {
		name      string
		body      string
		mockSetup func()
		wantCode  int
		wantBody  string
	}{
		{
			name: "all_fields",
			body: `{"amount":"250","from":"gbp","to":"JPY"}`,
			mockSetup: func() {
				catalog.EXPECT().Contains(models.GBP).Return(true)
				catalog.EXPECT().Contains(models.JPY).Return(true)
				session.EXPECT().SetInput(&amount, models.GBP, models.JPY).Return(models.ConversionState{
					Amount: "250", Source: models.GBP, Target: models.JPY, Status: models.ConversionIdle,
				})
			},
			wantCode: http.StatusOK,
			wantBody: `{"amount":"250","from":"GBP","to":"JPY","status":"idle","in_flight":false}`,
		},
		{
			name: "amount_only",
			body: `{"amount":""}`,
			mockSetup: func() {
				empty := ""
				session.EXPECT().SetInput(&empty, models.CurrencyCode(""), models.CurrencyCode("")).Return(models.ConversionState{
					Amount: "", Source: models.USD, Target: models.INR, Status: models.ConversionIdle,
				})
			},
			wantCode: http.StatusOK,
			wantBody: `{"amount":"","from":"USD","to":"INR","status":"idle","in_flight":false}`,
		},
		{
			name: "unknown_currency",
			body: `{"from":"XYZ"}`,
			mockSetup: func() {
				catalog.EXPECT().Contains(models.CurrencyCode("XYZ")).Return(false)
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Unknown currency"}`,
		},
		{
			name:      "invalid_json",
			body:      `{"amount":`,
			mockSetup: func() {},
			wantCode:  http.StatusBadRequest,
			wantBody:  `{"error":"Invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPut, "/conversion", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			require.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestConvertHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := handlers.NewMockConversionSession(ctrl)
	handler := handlers.NewConvertHandler(session)

	tests := []struct {
		name      string
		mockSetup func()
		wantCode  int
		wantBody  string
	}{
		{
			name: "success",
			mockSetup: func() {
				session.EXPECT().Convert(gomock.Any()).Return(models.ConversionState{
					Amount: "100", Source: models.USD, Target: models.EUR,
					Status: models.ConversionSucceeded, Result: "92 EUR",
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `{"amount":"100","from":"USD","to":"EUR","status":"succeeded","in_flight":false,"result":"92 EUR"}`,
		},
		{
			name: "empty_amount",
			mockSetup: func() {
				session.EXPECT().Convert(gomock.Any()).Return(models.ConversionState{
					Source: models.USD, Target: models.EUR,
					Status: models.ConversionIdle, Error: "Please enter an amount",
				}, fmt.Errorf("%w: empty amount", models.ErrValidation))
			},
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Please enter an amount"}`,
		},
		{
			name: "missing_rate",
			mockSetup: func() {
				session.EXPECT().Convert(gomock.Any()).Return(models.ConversionState{
					Status: models.ConversionFailed, Error: "Invalid conversion data received",
				}, fmt.Errorf("%w: EUR", models.ErrMissingRate))
			},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"Invalid conversion data received"}`,
		},
		{
			name: "network",
			mockSetup: func() {
				session.EXPECT().Convert(gomock.Any()).Return(models.ConversionState{
					Status: models.ConversionFailed, Error: "Error during conversion. Please try again.",
				}, fmt.Errorf("%w: timeout", models.ErrNetwork))
			},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"Error during conversion. Please try again."}`,
		},
		{
			name: "superseded",
			mockSetup: func() {
				session.EXPECT().Convert(gomock.Any()).Return(models.ConversionState{
					Status: models.ConversionFetching,
				}, fmt.Errorf("%w: conversion USD->EUR", models.ErrSuperseded))
			},
			wantCode: http.StatusConflict,
			wantBody: `{"error":"request superseded"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/conversion/convert", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			require.Equal(t, tt.wantCode, w.Code)
			require.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestSwapHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := handlers.NewMockConversionSession(ctrl)
	session.EXPECT().Swap().Return(models.ConversionState{
		Amount: "1", Source: models.INR, Target: models.USD, Status: models.ConversionIdle,
	})

	req := httptest.NewRequest(http.MethodPost, "/conversion/swap", nil)
	w := httptest.NewRecorder()

	handlers.NewSwapHandler(session)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"amount":"1","from":"INR","to":"USD","status":"idle","in_flight":false}`, w.Body.String())
}

func TestAcknowledgeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := handlers.NewMockConversionSession(ctrl)
	session.EXPECT().Acknowledge().Return(models.ConversionState{
		Amount: "100", Source: models.USD, Target: models.EUR,
		Status: models.ConversionIdle, Result: "92 EUR",
	})

	req := httptest.NewRequest(http.MethodPost, "/conversion/ack", nil)
	w := httptest.NewRecorder()

	handlers.NewAcknowledgeHandler(session)(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"amount":"100","from":"USD","to":"EUR","status":"idle","in_flight":false,"result":"92 EUR"}`, w.Body.String())
}
