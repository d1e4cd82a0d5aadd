package category

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"jewelstore/internal/adapters"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
)

const imageFolder = "categories"

// Image is an optional file uploaded together with a tile.
type Image struct {
	Filename string
	Content  io.Reader
}

// CreateInput adds a tile to the column ColumnID, or to a new column when ColumnID is nil.
type CreateInput struct {
	ColumnID    *uuid.UUID
	ColumnClass string
	Item        ItemInput
	Image       *Image
}

type Service struct {
	repo   adapters.CategoryRepository
	images adapters.ImageStore
	now    func() time.Time
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// Items returns the tiles of every column in column order.
func (s *Service) Items(ctx context.Context) ([]domain.CategoryItem, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]domain.CategoryItem, 0, len(categories)*4)
	for _, c := range categories {
		items = append(items, c.Items...)
	}
	return items, nil
}

// Create reports created=true when a new column was made.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Category, bool, error) {
	fields, err := validateNew(in.Item)
	if err != nil {
		return domain.Category{}, false, err
	}
	columnClass := strings.TrimSpace(in.ColumnClass)
	if in.ColumnID == nil && columnClass == "" {
		return domain.Category{}, false, ErrColumnClassRequired
	}

	item := domain.CategoryItem{
		ID:          uuid.New(),
		Link:        fields.Link,
		Description: fields.Description,
		Label:       fields.Label,
		Background:  fields.Background,
		HeightClass: fields.HeightClass,
	}

	if in.ColumnID != nil {
		// Fail on a missing column before uploading anything.
		if _, err = s.repo.GetByID(ctx, *in.ColumnID); err != nil {
			return domain.Category{}, false, err
		}
		if item.ImageURL, err = s.upload(ctx, in.Image); err != nil {
			return domain.Category{}, false, err
		}
		updated, addErr := s.repo.AddItem(ctx, *in.ColumnID, item)
		if addErr != nil {
			return domain.Category{}, false, addErr
		}
		if columnClass != "" && columnClass != updated.ColumnClass {
			updated, err = s.repo.UpdateColumn(ctx, *in.ColumnID, columnClass)
			if err != nil {
				return domain.Category{}, false, err
			}
		}
		return updated, false, nil
	}

	if item.ImageURL, err = s.upload(ctx, in.Image); err != nil {
		return domain.Category{}, false, err
	}
	c := domain.Category{
		ID:          uuid.New(),
		ColumnClass: columnClass,
		Items:       []domain.CategoryItem{item},
		CreatedAt:   s.now().UTC(),
	}
	if err = s.repo.Create(ctx, c); err != nil {
		return domain.Category{}, false, err
	}
	return c, true, nil
}

// CreateStyle makes an empty column.
func (s *Service) CreateStyle(ctx context.Context, columnClass string) (domain.Category, error) {
	columnClass = strings.TrimSpace(columnClass)
	if columnClass == "" {
		return domain.Category{}, ErrColumnClassRequired
	}
	c := domain.Category{ID: uuid.New(), ColumnClass: columnClass, Items: []domain.CategoryItem{}, CreatedAt: s.now().UTC()}
	if err := s.repo.Create(ctx, c); err != nil {
		return domain.Category{}, err
	}
	return c, nil
}

func (s *Service) UpdateColumn(ctx context.Context, id uuid.UUID, columnClass string) (domain.Category, error) {
	columnClass = strings.TrimSpace(columnClass)
	if columnClass == "" {
		return domain.Category{}, ErrColumnClassRequired
	}
	return s.repo.UpdateColumn(ctx, id, columnClass)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// UpdateItem overwrites only the fields that are set in patch.
func (s *Service) UpdateItem(ctx context.Context, categoryID, itemID uuid.UUID, patch ItemInput, image *Image) (domain.Category, error) {
	c, err := s.repo.GetByID(ctx, categoryID)
	if err != nil {
		return domain.Category{}, err
	}
	var item *domain.CategoryItem
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			item = &c.Items[i]
			break
		}
	}
	if item == nil {
		return domain.Category{}, domain.ErrCategoryItemNotFound
	}

	patch = patch.trimmed()
	if err = validateLengths(patch); err != nil {
		return domain.Category{}, err
	}
	setIfPresent(&item.Link, patch.Link)
	setIfPresent(&item.Description, patch.Description)
	setIfPresent(&item.Label, patch.Label)
	setIfPresent(&item.Background, patch.Background)
	setIfPresent(&item.HeightClass, patch.HeightClass)

	url, err := s.upload(ctx, image)
	if err != nil {
		return domain.Category{}, err
	}
	setIfPresent(&item.ImageURL, url)

	return s.repo.UpdateItem(ctx, categoryID, *item)
}

func (s *Service) DeleteItem(ctx context.Context, categoryID, itemID uuid.UUID) (domain.Category, error) {
	if err := s.repo.DeleteItem(ctx, categoryID, itemID); err != nil {
		return domain.Category{}, err
	}
	return s.repo.GetByID(ctx, categoryID)
}

func (s *Service) upload(ctx context.Context, image *Image) (string, error) {
	if image == nil {
		return "", nil
	}
	url, err := s.images.Upload(ctx, imageFolder, image.Filename, image.Content)
	if err != nil {
		return "", fmt.Errorf("failed to upload image %q: %w", image.Filename, err)
	}
	return url, nil
}

func setIfPresent(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func NewService(repo adapters.CategoryRepository, images adapters.ImageStore) *Service {
	return &Service{repo: repo, images: images, now: time.Now}
}
