package handler

import (
	"context"
	"time"

	"jewelstore/internal/analytics"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	RecordSale(ctx context.Context, in analytics.SaleInput) (domain.Sale, error)
	SaveAbandonedCart(ctx context.Context, in analytics.CartInput) (domain.AbandonedCart, error)
	Summary(ctx context.Context) (domain.AnalyticsSummary, error)
}

type Handler struct {
	service Service
}

type SaleLineBody struct {
	ProductID       uuid.UUID       `json:"product_id"`
	Quantity        int             `json:"quantity" example:"1"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase" swaggertype:"string" example:"67200"`
}

type SaleRequest struct {
	UserID        uuid.UUID       `json:"user_id"`
	Products      []SaleLineBody  `json:"products"`
	TotalAmount   decimal.Decimal `json:"total_amount" swaggertype:"string" example:"67200"`
	Status        string          `json:"status,omitempty" example:"completed"`
	PaymentMethod string          `json:"payment_method,omitempty" example:"upi"`
}

type SaleResponse struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Products      []SaleLineBody  `json:"products"`
	TotalAmount   decimal.Decimal `json:"total_amount" swaggertype:"string" example:"67200"`
	Status        string          `json:"status" example:"completed"`
	PaymentMethod string          `json:"payment_method"`
	PurchasedAt   time.Time       `json:"purchased_at"`
	Customer      *CustomerBody   `json:"customer,omitempty"`
}

type CartLineBody struct {
	ProductID   uuid.UUID `json:"product_id"`
	Quantity    int       `json:"quantity" example:"1"`
	ProductName string    `json:"product_name,omitempty" example:"Temple necklace"`
}

type LocationBody struct {
	IP      string  `json:"ip,omitempty"`
	City    string  `json:"city,omitempty" example:"Chennai"`
	Region  string  `json:"region,omitempty"`
	Country string  `json:"country,omitempty" example:"IN"`
	Lat     float64 `json:"lat,omitempty"`
	Lon     float64 `json:"lon,omitempty"`
}

type CartRequest struct {
	SessionID string         `json:"session_id" example:"b6f1c1a2"`
	UserID    *uuid.UUID     `json:"user_id,omitempty"`
	Items     []CartLineBody `json:"items"`
	Location  LocationBody   `json:"location"`
}

type CartResponse struct {
	ID          uuid.UUID      `json:"id"`
	SessionID   string         `json:"session_id"`
	UserID      *uuid.UUID     `json:"user_id,omitempty"`
	Items       []CartLineBody `json:"items"`
	Location    LocationBody   `json:"location"`
	LastUpdated time.Time      `json:"last_updated"`
	IsRecovered bool           `json:"is_recovered"`
	Customer    *CustomerBody  `json:"customer,omitempty"`
}

type CustomerBody struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type SummaryResponse struct {
	SalesCount      int            `json:"sales_count" example:"42"`
	AbandonedCount  int            `json:"abandoned_count" example:"7"`
	RecentSales     []SaleResponse `json:"recent_sales"`
	RecentAbandoned []CartResponse `json:"recent_abandoned"`
}

func (r SaleRequest) input() analytics.SaleInput {
	lines := make([]domain.SaleLine, 0, len(r.Products))
	for _, p := range r.Products {
		lines = append(lines, domain.SaleLine(p))
	}
	return analytics.SaleInput{
		UserID:        r.UserID,
		Lines:         lines,
		TotalAmount:   r.TotalAmount,
		Status:        domain.SaleStatus(r.Status),
		PaymentMethod: r.PaymentMethod,
	}
}

func (r CartRequest) input() analytics.CartInput {
	items := make([]domain.CartLine, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.CartLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return analytics.CartInput{
		SessionID: r.SessionID,
		UserID:    r.UserID,
		Items:     items,
		Location:  domain.CartLocation(r.Location),
	}
}

func toCustomerBody(c *domain.Customer) *CustomerBody {
	if c == nil {
		return nil
	}
	return &CustomerBody{Name: c.Name, Phone: c.Phone}
}

func toSaleResponse(s domain.Sale, customer *domain.Customer) SaleResponse {
	lines := make([]SaleLineBody, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, SaleLineBody(l))
	}
	return SaleResponse{
		ID:            s.ID,
		UserID:        s.UserID,
		Products:      lines,
		TotalAmount:   s.TotalAmount,
		Status:        string(s.Status),
		PaymentMethod: s.PaymentMethod,
		PurchasedAt:   s.PurchasedAt,
		Customer:      toCustomerBody(customer),
	}
}

func toCartResponse(c domain.AbandonedCart, customer *domain.Customer, names map[uuid.UUID]string) CartResponse {
	items := make([]CartLineBody, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartLineBody{ProductID: it.ProductID, Quantity: it.Quantity, ProductName: names[it.ProductID]})
	}
	return CartResponse{
		ID:          c.ID,
		SessionID:   c.SessionID,
		UserID:      c.UserID,
		Items:       items,
		Location:    LocationBody(c.Location),
		LastUpdated: c.LastUpdated,
		IsRecovered: c.IsRecovered,
		Customer:    toCustomerBody(customer),
	}
}

func toSummaryResponse(s domain.AnalyticsSummary) SummaryResponse {
	res := SummaryResponse{
		SalesCount:      s.TotalSales,
		AbandonedCount:  s.TotalAbandoned,
		RecentSales:     make([]SaleResponse, 0, len(s.RecentSales)),
		RecentAbandoned: make([]CartResponse, 0, len(s.RecentAbandoned)),
	}
	for _, e := range s.RecentSales {
		res.RecentSales = append(res.RecentSales, toSaleResponse(e.Sale, e.Customer))
	}
	for _, e := range s.RecentAbandoned {
		res.RecentAbandoned = append(res.RecentAbandoned, toCartResponse(e.AbandonedCart, e.Customer, e.ProductNames))
	}
	return res
}

func NewAnalyticsHandler(service Service) *Handler {
	return &Handler{service: service}
}
