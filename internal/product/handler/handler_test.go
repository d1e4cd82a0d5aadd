package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"jewelstore/internal/domain"
	"jewelstore/internal/pricing"
	"jewelstore/internal/product"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct{ mock.Mock }

func (m *MockService) Create(ctx context.Context, in product.Input) (product.Priced, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(product.Priced)
	return p, args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id uuid.UUID, in product.Input) (product.Priced, error) {
	args := m.Called(ctx, id, in)
	p, _ := args.Get(0).(product.Priced)
	return p, args.Error(1)
}

func (m *MockService) List(ctx context.Context) ([]product.Priced, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]product.Priced)
	return v, args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id uuid.UUID) (product.Lookup, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(product.Lookup)
	return v, args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newHandler() (*Handler, *MockService) {
	svc := new(MockService)
	return NewProductHandler(svc), svc
}

func withID(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error
}

func pricedProduct() product.Priced {
	b := pricing.ComputeDecimal(decimal.NewFromInt(10), decimal.NewFromInt(6000), decimal.NewFromInt(10), decimal.NewFromInt(2))
	return product.Priced{
		Product: domain.Product{
			ID:         uuid.New(),
			Name:       "Ring",
			Code:       "RG-1",
			Instrument: domain.Instrument{Metal: domain.MetalGold, Karat: domain.Karat22},
			Weight:     decimal.NewFromInt(10),
			Price:      b.TotalPrice,
		},
		Breakdown: &b,
	}
}

// --- CreateProduct ---

func TestHandler_CreateProduct_AcceptsNumbersAndStrings(t *testing.T) {
	h, svc := newHandler()
	body := `{"name":"Ring","product_code":"RG-1","karat":"22k","images":["https://x/y.jpg"],
		"category_ids":["c1"],"weight":10,"making_cost_percent":"10","wastage_percent":2.5}`
	rr := httptest.NewRecorder()

	svc.On("Create", mock.Anything, mock.MatchedBy(func(in product.Input) bool {
		return in.Weight == "10" && in.MakingCostPercent == "10" && in.WastagePercent == "2.5" && in.Code == "RG-1"
	})).Return(pricedProduct(), nil).Once()

	h.CreateProduct(rr, httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	var res ProductResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, "RG-1", res.ProductCode)
	require.True(t, res.Price.Equal(decimal.NewFromInt(67200)))
	require.NotNil(t, res.MakingCost)
	require.True(t, res.MakingCost.Equal(decimal.NewFromInt(6000)))
	require.Empty(t, res.Error)
	svc.AssertExpectations(t)
}

func TestHandler_CreateProduct_Errors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "validation", err: fmt.Errorf("%w: %w", product.ErrInvalidProduct, product.ErrNameRequired), wantStatus: http.StatusBadRequest, wantMsg: "invalid product: name is required"},
		{name: "no rate", err: fmt.Errorf("%w for gold/22k", product.ErrRateNotSet), wantStatus: http.StatusBadRequest, wantMsg: "rate not set for gold/22k"},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantMsg: "ups, couldn't create product this time"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, svc := newHandler()
			rr := httptest.NewRecorder()
			svc.On("Create", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			h.CreateProduct(rr, httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"name":"x"}`)))

			require.Equal(t, tc.wantStatus, rr.Code)
			require.Equal(t, tc.wantMsg, decodeError(t, rr))
		})
	}
}

func TestHandler_CreateProduct_InvalidBody(t *testing.T) {
	h, svc := newHandler()
	rr := httptest.NewRecorder()

	h.CreateProduct(rr, httptest.NewRequest(http.MethodPost, "/products", bytes.NewBufferString(`{"weight":`)))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid request body", decodeError(t, rr))
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// --- UpdateProduct ---

func TestHandler_UpdateProduct_InvalidID(t *testing.T) {
	h, svc := newHandler()
	rr := httptest.NewRecorder()

	h.UpdateProduct(rr, withID(httptest.NewRequest(http.MethodPut, "/products/abc", bytes.NewBufferString(`{}`)), "abc"))

	require.Equal(t, http.StatusBadRequest, rr.Code)
	svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_UpdateProduct_NotFound(t *testing.T) {
	h, svc := newHandler()
	id := uuid.New()
	rr := httptest.NewRecorder()
	svc.On("Update", mock.Anything, id, mock.Anything).Return(nil, domain.ErrProductNotFound).Once()

	h.UpdateProduct(rr, withID(httptest.NewRequest(http.MethodPut, "/products/"+id.String(), bytes.NewBufferString(`{}`)), id.String()))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "product not found", decodeError(t, rr))
}

func TestHandler_UpdateProduct_OK(t *testing.T) {
	h, svc := newHandler()
	p := pricedProduct()
	rr := httptest.NewRecorder()
	svc.On("Update", mock.Anything, p.ID, mock.Anything).Return(p, nil).Once()

	h.UpdateProduct(rr, withID(httptest.NewRequest(http.MethodPut, "/products/x", bytes.NewBufferString(`{"name":"Ring"}`)), p.ID.String()))

	require.Equal(t, http.StatusOK, rr.Code)
}

// --- ListProducts / GetProduct ---

func TestHandler_ListProducts_MissingRateCarriesError(t *testing.T) {
	h, svc := newHandler()
	unpriced := pricedProduct()
	unpriced.Breakdown = nil
	rr := httptest.NewRecorder()
	svc.On("List", mock.Anything).Return([]product.Priced{pricedProduct(), unpriced}, nil).Once()

	h.ListProducts(rr, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var res []ProductResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res, 2)
	require.Empty(t, res[0].Error)
	require.Equal(t, "rate not set for gold/22k", res[1].Error)
	require.Nil(t, res[1].MakingCost)
}

func TestHandler_ListProducts_InternalError(t *testing.T) {
	h, svc := newHandler()
	rr := httptest.NewRecorder()
	svc.On("List", mock.Anything).Return(nil, errors.New("boom")).Once()

	h.ListProducts(rr, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Equal(t, "ups, couldn't list products this time", decodeError(t, rr))
}

func TestHandler_GetProduct_SingleObject(t *testing.T) {
	h, svc := newHandler()
	p := pricedProduct()
	rr := httptest.NewRecorder()
	svc.On("Get", mock.Anything, p.ID).Return(product.Lookup{Product: &p}, nil).Once()

	h.GetProduct(rr, withID(httptest.NewRequest(http.MethodGet, "/products/x", nil), p.ID.String()))

	require.Equal(t, http.StatusOK, rr.Code)
	var res ProductResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Equal(t, p.ID, res.ID)
}

func TestHandler_GetProduct_CategoryFallbackIsArray(t *testing.T) {
	h, svc := newHandler()
	categoryID := uuid.New()
	rr := httptest.NewRecorder()
	svc.On("Get", mock.Anything, categoryID).Return(product.Lookup{InCategory: []product.Priced{pricedProduct(), pricedProduct()}}, nil).Once()

	h.GetProduct(rr, withID(httptest.NewRequest(http.MethodGet, "/products/x", nil), categoryID.String()))

	require.Equal(t, http.StatusOK, rr.Code)
	var res []ProductResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &res))
	require.Len(t, res, 2)
}

func TestHandler_GetProduct_NotFound(t *testing.T) {
	h, svc := newHandler()
	id := uuid.New()
	rr := httptest.NewRecorder()
	svc.On("Get", mock.Anything, id).Return(nil, domain.ErrProductNotFound).Once()

	h.GetProduct(rr, withID(httptest.NewRequest(http.MethodGet, "/products/x", nil), id.String()))

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Equal(t, "no products found with this id", decodeError(t, rr))
}

// --- DeleteProduct ---

func TestHandler_DeleteProduct(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusOK},
		{name: "missing", err: domain.ErrProductNotFound, wantStatus: http.StatusNotFound},
		{name: "db error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h, svc := newHandler()
			id := uuid.New()
			rr := httptest.NewRecorder()
			svc.On("Delete", mock.Anything, id).Return(tc.err).Once()

			h.DeleteProduct(rr, withID(httptest.NewRequest(http.MethodDelete, "/products/x", nil), id.String()))

			require.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	var got struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12.50, "b": " 7 ", "c": null}`), &got))
	require.Equal(t, Number("12.50"), got.A)
	require.Equal(t, Number(" 7 "), got.B)
	require.Equal(t, Number(""), got.C)
}
