package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"jewelstore/internal/analytics"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) RecordSale(ctx context.Context, in analytics.SaleInput) (domain.Sale, error) {
	args := m.Called(ctx, in)
	v, _ := args.Get(0).(domain.Sale)
	return v, args.Error(1)
}

func (m *MockService) SaveAbandonedCart(ctx context.Context, in analytics.CartInput) (domain.AbandonedCart, error) {
	args := m.Called(ctx, in)
	v, _ := args.Get(0).(domain.AbandonedCart)
	return v, args.Error(1)
}

func (m *MockService) Summary(ctx context.Context) (domain.AnalyticsSummary, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).(domain.AnalyticsSummary)
	return v, args.Error(1)
}

func newHandler() (*Handler, *MockService) {
	svc := new(MockService)
	return NewAnalyticsHandler(svc), svc
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

var purchased = time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

func TestRecordSale(t *testing.T) {
	h, svc := newHandler()
	userID, productID := uuid.New(), uuid.New()

	svc.On("RecordSale", mock.Anything, mock.MatchedBy(func(in analytics.SaleInput) bool {
		return in.UserID == userID &&
			len(in.Lines) == 1 &&
			in.Lines[0].PriceAtPurchase.Equal(decimal.NewFromInt(67200)) &&
			in.TotalAmount.Equal(decimal.NewFromInt(67200))
	})).Return(domain.Sale{
		ID:          uuid.New(),
		UserID:      userID,
		Lines:       []domain.SaleLine{{ProductID: productID, Quantity: 1, PriceAtPurchase: decimal.NewFromInt(67200)}},
		TotalAmount: decimal.NewFromInt(67200),
		Status:      domain.SaleCompleted,
		PurchasedAt: purchased,
	}, nil)

	body := `{"user_id":"` + userID.String() + `","products":[{"product_id":"` + productID.String() + `","quantity":1,"price_at_purchase":67200}],"total_amount":"67200"}`
	rr := httptest.NewRecorder()
	h.RecordSale(rr, post(body))

	require.Equal(t, http.StatusCreated, rr.Code)
	var res SaleResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "completed", res.Status)
	require.True(t, res.TotalAmount.Equal(decimal.NewFromInt(67200)))
	svc.AssertExpectations(t)
}

func TestRecordSale_Errors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", analytics.ErrLinesRequired, http.StatusBadRequest, analytics.ErrLinesRequired.Error()},
		{"unknown user", domain.ErrUserNotFound, http.StatusBadRequest, "unknown user"},
		{"internal", errors.New("boom"), http.StatusInternalServerError, "ups, couldn't record sale this time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, svc := newHandler()
			svc.On("RecordSale", mock.Anything, mock.Anything).Return(nil, tc.err)

			rr := httptest.NewRecorder()
			h.RecordSale(rr, post(`{"user_id":"`+uuid.NewString()+`","products":[]}`))

			require.Equal(t, tc.status, rr.Code)
			require.Equal(t, tc.msg, decodeError(t, rr))
		})
	}
}

func TestSaveAbandonedCart(t *testing.T) {
	h, svc := newHandler()
	productID := uuid.New()
	svc.On("SaveAbandonedCart", mock.Anything, analytics.CartInput{
		SessionID: "sess-1",
		Items:     []domain.CartLine{{ProductID: productID, Quantity: 2}},
		Location:  domain.CartLocation{City: "Chennai", Country: "IN"},
	}).Return(domain.AbandonedCart{
		ID:          uuid.New(),
		SessionID:   "sess-1",
		Items:       []domain.CartLine{{ProductID: productID, Quantity: 2}},
		Location:    domain.CartLocation{City: "Chennai", Country: "IN"},
		LastUpdated: purchased,
	}, nil)

	body := `{"session_id":"sess-1","items":[{"product_id":"` + productID.String() + `","quantity":2}],"location":{"city":"Chennai","country":"IN"}}`
	rr := httptest.NewRecorder()
	h.SaveAbandonedCart(rr, post(body))

	require.Equal(t, http.StatusOK, rr.Code)
	var res CartResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "sess-1", res.SessionID)
	require.Nil(t, res.UserID)
	require.Len(t, res.Items, 1)
}

func TestSaveAbandonedCart_MissingSession(t *testing.T) {
	h, svc := newHandler()
	svc.On("SaveAbandonedCart", mock.Anything, mock.Anything).Return(nil, analytics.ErrSessionIDRequired)

	rr := httptest.NewRecorder()
	h.SaveAbandonedCart(rr, post(`{"items":[]}`))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "session id is required", decodeError(t, rr))
}

func TestGetSummary(t *testing.T) {
	h, svc := newHandler()
	productID := uuid.New()
	svc.On("Summary", mock.Anything).Return(domain.AnalyticsSummary{
		TotalSales:     1,
		TotalAbandoned: 1,
		RecentSales: []domain.SaleEntry{{
			Sale:     domain.Sale{ID: uuid.New(), Status: domain.SaleCompleted, TotalAmount: decimal.NewFromInt(100)},
			Customer: &domain.Customer{Name: "Asha", Phone: "1"},
		}},
		RecentAbandoned: []domain.CartEntry{{
			AbandonedCart: domain.AbandonedCart{ID: uuid.New(), SessionID: "s", Items: []domain.CartLine{{ProductID: productID, Quantity: 1}}},
			ProductNames:  map[uuid.UUID]string{productID: "Temple necklace"},
		}},
	}, nil)

	rr := httptest.NewRecorder()
	h.GetSummary(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res SummaryResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, 1, res.SalesCount)
	require.Equal(t, 1, res.AbandonedCount)
	require.Equal(t, "Asha", res.RecentSales[0].Customer.Name)
	require.Nil(t, res.RecentAbandoned[0].Customer)
	require.Equal(t, "Temple necklace", res.RecentAbandoned[0].Items[0].ProductName)
}

func TestGetSummary_Empty(t *testing.T) {
	h, svc := newHandler()
	svc.On("Summary", mock.Anything).Return(domain.AnalyticsSummary{}, nil)

	rr := httptest.NewRecorder()
	h.GetSummary(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.JSONEq(t, `{"sales_count":0,"abandoned_count":0,"recent_sales":[],"recent_abandoned":[]}`, rr.Body.String())
}
