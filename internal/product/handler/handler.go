package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"jewelstore/internal/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Service interface {
	Create(ctx context.Context, in product.Input) (product.Priced, error)
	Update(ctx context.Context, id uuid.UUID, in product.Input) (product.Priced, error)
	List(ctx context.Context) ([]product.Priced, error)
	Get(ctx context.Context, id uuid.UUID) (product.Lookup, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	service Service
}

// Number accepts a JSON number or a numeric string and keeps the raw text.
type Number string

func (n *Number) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if bytes.HasPrefix(b, []byte(`"`)) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = Number(s)
		return nil
	}
	*n = Number(b)
	return nil
}

type ProductRequest struct {
	Name              string   `json:"name" example:"Temple necklace"`
	ProductCode       string   `json:"product_code" example:"NK-01"`
	Metal             string   `json:"metal" example:"gold"`
	Karat             string   `json:"karat" example:"22k"`
	ShortDescription  string   `json:"short_description" example:"Hand finished temple work"`
	Images            []string `json:"images" example:"https://img.example.com/nk01.jpg"`
	Video             string   `json:"video" example:"https://video.example.com/nk01.mp4"`
	CategoryIDs       []string `json:"category_ids"`
	Weight            Number   `json:"weight" swaggertype:"string" example:"12.5"`
	MakingCostPercent Number   `json:"making_cost_percent" swaggertype:"string" example:"10"`
	WastagePercent    Number   `json:"wastage_percent" swaggertype:"string" example:"2.5"`
}

func (r ProductRequest) toInput() product.Input {
	return product.Input{
		Name:              r.Name,
		Code:              r.ProductCode,
		Metal:             r.Metal,
		Karat:             r.Karat,
		ShortDescription:  r.ShortDescription,
		Images:            r.Images,
		Video:             r.Video,
		CategoryIDs:       r.CategoryIDs,
		Weight:            string(r.Weight),
		MakingCostPercent: string(r.MakingCostPercent),
		WastagePercent:    string(r.WastagePercent),
	}
}

type ProductResponse struct {
	ID                uuid.UUID        `json:"id"`
	Name              string           `json:"name" example:"Temple necklace"`
	ProductCode       string           `json:"product_code" example:"NK-01"`
	Metal             string           `json:"metal" example:"gold"`
	Karat             string           `json:"karat" example:"22k"`
	ShortDescription  string           `json:"short_description"`
	Images            []string         `json:"images"`
	Video             string           `json:"video,omitempty"`
	CategoryIDs       []uuid.UUID      `json:"category_ids"`
	Weight            decimal.Decimal  `json:"weight" swaggertype:"string" example:"12.5"`
	MakingCostPercent decimal.Decimal  `json:"making_cost_percent" swaggertype:"string" example:"10"`
	WastagePercent    decimal.Decimal  `json:"wastage_percent" swaggertype:"string" example:"2.5"`
	Price             decimal.Decimal  `json:"price" swaggertype:"string" example:"84000"`
	MakingCost        *decimal.Decimal `json:"making_cost,omitempty" swaggertype:"string" example:"7500"`
	WastageCost       *decimal.Decimal `json:"wastage_cost,omitempty" swaggertype:"string" example:"1875"`
	RatePerGram       *decimal.Decimal `json:"rate_per_gram,omitempty" swaggertype:"string" example:"6000"`
	Error             string           `json:"error,omitempty" example:"rate not set for gold/22k"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func toProductResponse(p product.Priced) ProductResponse {
	res := ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		ProductCode:       p.Code,
		Metal:             string(p.Instrument.Metal),
		Karat:             string(p.Instrument.Karat),
		ShortDescription:  p.ShortDescription,
		Images:            p.Images,
		Video:             p.Video,
		CategoryIDs:       p.CategoryIDs,
		Weight:            p.Weight,
		MakingCostPercent: p.MakingCostPercent,
		WastagePercent:    p.WastagePercent,
		Price:             p.Price,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.Breakdown == nil {
		res.Error = "rate not set for " + p.Instrument.String()
		return res
	}
	res.MakingCost = &p.Breakdown.MakingCost
	res.WastageCost = &p.Breakdown.WastageCost
	res.RatePerGram = &p.Breakdown.EffectiveRatePerGram
	return res
}

func toProductResponses(products []product.Priced) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, toProductResponse(p))
	}
	return res
}

func NewProductHandler(service Service) *Handler {
	return &Handler{service: service}
}
