package product

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"jewelstore/internal/domain"
	"jewelstore/internal/pricing"

	"github.com/google/uuid"
)

var ErrInvalidProduct = errors.New("invalid product")

var (
	ErrNameRequired       = errors.New("name is required")
	ErrCodeRequired       = errors.New("product code is required")
	ErrImagesRequired     = errors.New("at least one image is required")
	ErrCategoriesRequired = errors.New("at least one category is required")
	ErrInvalidImageURL    = errors.New("invalid image URL(s)")
	ErrInvalidVideoURL    = errors.New("invalid video URL")
	ErrInvalidCategoryID  = errors.New("invalid category id")
	ErrInvalidMetal       = errors.New("metal not supported")
	ErrInvalidKarat       = errors.New("karat not supported")
	ErrWeightNotPositive  = errors.New("weight must be positive")
	ErrPercentNegative    = errors.New("making and wastage percentages must not be negative")
)

var urlPattern = regexp.MustCompile(`^https?://\S+$`)

// Input is a product as submitted by the dashboard. Numbers stay raw until validated.
type Input struct {
	Name              string
	Code              string
	Metal             string
	Karat             string
	ShortDescription  string
	Images            []string
	Video             string
	CategoryIDs       []string
	Weight            string
	MakingCostPercent string
	WastagePercent    string
}

type Validator struct {
	metals map[domain.Metal]struct{}
	karats map[domain.Karat]struct{}
}

// Validate turns input into a product without id, price or timestamps.
// Every failure also matches ErrInvalidProduct.
func (v *Validator) Validate(in Input) (domain.Product, error) {
	p, err := v.validate(in)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	return p, nil
}

// A missing metal means gold, the only metal the storefront sold at first.
func (v *Validator) validate(in Input) (domain.Product, error) {
	p := domain.Product{
		Name:             strings.TrimSpace(in.Name),
		Code:             strings.TrimSpace(in.Code),
		ShortDescription: strings.TrimSpace(in.ShortDescription),
		Video:            strings.TrimSpace(in.Video),
	}
	if p.Name == "" {
		return domain.Product{}, ErrNameRequired
	}
	if p.Code == "" {
		return domain.Product{}, ErrCodeRequired
	}
	if len(in.Images) == 0 {
		return domain.Product{}, ErrImagesRequired
	}
	if len(in.CategoryIDs) == 0 {
		return domain.Product{}, ErrCategoriesRequired
	}

	instrument, err := v.instrument(in.Metal, in.Karat)
	if err != nil {
		return domain.Product{}, err
	}
	p.Instrument = instrument

	for _, img := range in.Images {
		if !urlPattern.MatchString(img) {
			return domain.Product{}, ErrInvalidImageURL
		}
	}
	p.Images = append([]string(nil), in.Images...)
	if p.Video != "" && !urlPattern.MatchString(p.Video) {
		return domain.Product{}, ErrInvalidVideoURL
	}

	p.CategoryIDs = make([]uuid.UUID, 0, len(in.CategoryIDs))
	for _, raw := range in.CategoryIDs {
		id, parseErr := uuid.Parse(strings.TrimSpace(raw))
		if parseErr != nil {
			return domain.Product{}, ErrInvalidCategoryID
		}
		p.CategoryIDs = append(p.CategoryIDs, id)
	}

	if p.Weight, err = pricing.ParseDecimal("weight", in.Weight); err != nil {
		return domain.Product{}, err
	}
	if p.MakingCostPercent, err = pricing.ParseDecimal("making cost percent", in.MakingCostPercent); err != nil {
		return domain.Product{}, err
	}
	if p.WastagePercent, err = pricing.ParseDecimal("wastage percent", in.WastagePercent); err != nil {
		return domain.Product{}, err
	}
	if !p.Weight.IsPositive() {
		return domain.Product{}, ErrWeightNotPositive
	}
	if p.MakingCostPercent.IsNegative() || p.WastagePercent.IsNegative() {
		return domain.Product{}, ErrPercentNegative
	}
	return p, nil
}

func (v *Validator) instrument(metal, karat string) (domain.Instrument, error) {
	m := domain.Metal(strings.ToLower(strings.TrimSpace(metal)))
	if m == "" {
		m = domain.MetalGold
	}
	if _, ok := v.metals[m]; !ok {
		return domain.Instrument{}, ErrInvalidMetal
	}
	k := domain.Karat(strings.ToLower(strings.TrimSpace(karat)))
	if _, ok := v.karats[k]; !ok {
		return domain.Instrument{}, ErrInvalidKarat
	}
	return domain.Instrument{Metal: m, Karat: k}, nil
}

func NewValidator(metals []domain.Metal) *Validator {
	v := &Validator{
		metals: make(map[domain.Metal]struct{}, len(metals)),
		karats: make(map[domain.Karat]struct{}, len(domain.Karats)),
	}
	for _, m := range metals {
		v.metals[m] = struct{}{}
	}
	for _, k := range domain.Karats {
		v.karats[k] = struct{}{}
	}
	return v
}
