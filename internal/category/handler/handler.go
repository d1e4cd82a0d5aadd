package handler

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"jewelstore/internal/category"
	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/google/uuid"
)

const maxUploadBytes = 10 << 20

var errInvalidForm = errors.New("invalid form")

type Service interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Category, error)
	Items(ctx context.Context) ([]domain.CategoryItem, error)
	Create(ctx context.Context, in category.CreateInput) (domain.Category, bool, error)
	CreateStyle(ctx context.Context, columnClass string) (domain.Category, error)
	UpdateColumn(ctx context.Context, id uuid.UUID, columnClass string) (domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdateItem(ctx context.Context, categoryID, itemID uuid.UUID, patch category.ItemInput, image *category.Image) (domain.Category, error)
	DeleteItem(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Category, error)
}

type Handler struct {
	service Service
}

type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Link        string    `json:"link" example:"/collections/rings"`
	Description string    `json:"description" example:"Rings for every day"`
	ImageURL    string    `json:"image_url" example:"https://res.cloudinary.com/demo/image/upload/categories/rings.jpg"`
	Label       string    `json:"label" example:"Rings"`
	Background  string    `json:"background" example:"bg-rose-50"`
	HeightClass string    `json:"height_class" example:"h-64"`
}

type CategoryResponse struct {
	ID          uuid.UUID      `json:"id"`
	ColumnClass string         `json:"column_class" example:"col-span-1"`
	Items       []ItemResponse `json:"items"`
}

type ColumnRequest struct {
	ColumnClass string `json:"column_class" example:"col-span-2"`
}

// ItemRequest is the JSON form of a tile; the same fields are accepted as multipart form values.
type ItemRequest struct {
	ID          string `json:"id,omitempty"`
	ColumnClass string `json:"column_class,omitempty"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Label       string `json:"label"`
	Background  string `json:"background"`
	HeightClass string `json:"height_class"`
}

func (r ItemRequest) item() category.ItemInput {
	return category.ItemInput{
		Link:        r.Link,
		Description: r.Description,
		Label:       r.Label,
		Background:  r.Background,
		HeightClass: r.HeightClass,
	}
}

// readItemRequest accepts either multipart/form-data with an optional "image" file or a JSON body.
func readItemRequest(r *http.Request) (ItemRequest, *category.Image, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		var req ItemRequest
		if err := httpserver.DecodeJSON(r, &req); err != nil {
			return ItemRequest{}, nil, errInvalidForm
		}
		return req, nil, nil
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return ItemRequest{}, nil, errInvalidForm
	}
	req := ItemRequest{
		ID:          r.FormValue("id"),
		ColumnClass: r.FormValue("column_class"),
		Link:        r.FormValue("link"),
		Description: r.FormValue("description"),
		Label:       r.FormValue("label"),
		Background:  r.FormValue("background"),
		HeightClass: r.FormValue("height_class"),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, nil
	}
	if err != nil {
		return ItemRequest{}, nil, errInvalidForm
	}
	return req, &category.Image{Filename: header.Filename, Content: file}, nil
}

func parseOptionalID(raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func toItemResponse(it domain.CategoryItem) ItemResponse {
	return ItemResponse(it)
}

func toCategoryResponse(c domain.Category) CategoryResponse {
	items := make([]ItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, toItemResponse(it))
	}
	return CategoryResponse{ID: c.ID, ColumnClass: c.ColumnClass, Items: items}
}

func closeImage(image *category.Image) {
	if image == nil {
		return
	}
	if c, ok := image.Content.(io.Closer); ok {
		_ = c.Close()
	}
}

func NewCategoryHandler(service Service) *Handler {
	return &Handler{service: service}
}
