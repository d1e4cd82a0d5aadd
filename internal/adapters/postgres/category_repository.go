package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categorySelect = `
	select c.id, c.column_class, c.created_at,
	       coalesce(
	           json_agg(json_build_object(
	               'id', i.id, 'link', i.link, 'description', i.description, 'image_url', i.image_url,
	               'label', i.label, 'background', i.background, 'height_class', i.height_class
	           ) order by i.position) filter (where i.id is not null),
	           '[]'::json
	       )
	from categories c left join category_items i on i.category_id = c.id`

type CategoryRepository struct {
	pool *pgxpool.Pool
}

type categoryItemRow struct {
	ID          uuid.UUID `json:"id"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Label       string    `json:"label"`
	Background  string    `json:"background"`
	HeightClass string    `json:"height_class"`
}

func (r *CategoryRepository) Create(ctx context.Context, c domain.Category) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `insert into categories (id, column_class, created_at) values ($1, $2, $3)`, c.ID, c.ColumnClass, c.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	for i, item := range c.Items {
		if err = insertItem(ctx, tx, c.ID, i, item); err != nil {
			return err
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AddItem appends the item after the existing ones of the column.
func (r *CategoryRepository) AddItem(ctx context.Context, categoryID uuid.UUID, item domain.CategoryItem) (domain.Category, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return domain.Category{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var lockedID uuid.UUID
	if err = tx.QueryRow(ctx, `select id from categories where id = $1 for update`, categoryID).Scan(&lockedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, fmt.Errorf("failed to lock category %s: %w", categoryID, err)
	}

	var position int
	if err = tx.QueryRow(ctx, `select coalesce(max(position) + 1, 0) from category_items where category_id = $1`, categoryID).Scan(&position); err != nil {
		return domain.Category{}, fmt.Errorf("failed to get next item position: %w", err)
	}
	if err = insertItem(ctx, tx, categoryID, position, item); err != nil {
		return domain.Category{}, err
	}
	if err = tx.Commit(ctx); err != nil {
		return domain.Category{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return r.GetByID(ctx, categoryID)
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Category, error) {
	q := categorySelect + ` where c.id = $1 group by c.id;`
	c, err := scanCategory(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, fmt.Errorf("failed to select category %s: %w", id, err)
	}
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, categorySelect+` group by c.id order by c.column_class, c.created_at;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0, 16)
	for rows.Next() {
		c, scanErr := scanCategory(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan category: %w", scanErr)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateColumn(ctx context.Context, id uuid.UUID, columnClass string) (domain.Category, error) {
	tag, err := r.pool.Exec(ctx, `update categories set column_class = $2 where id = $1`, id, columnClass)
	if err != nil {
		return domain.Category{}, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from categories where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) UpdateItem(ctx context.Context, categoryID uuid.UUID, item domain.CategoryItem) (domain.Category, error) {
	const q = `
		update category_items set
			link = $3, description = $4, image_url = $5, label = $6, background = $7, height_class = $8
		where id = $2 and category_id = $1;
	`
	tag, err := r.pool.Exec(ctx, q, categoryID, item.ID, item.Link, item.Description, item.ImageURL, item.Label, item.Background, item.HeightClass)
	if err != nil {
		return domain.Category{}, fmt.Errorf("failed to update category item %s: %w", item.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.Category{}, r.missingItemErr(ctx, categoryID)
	}
	return r.GetByID(ctx, categoryID)
}

func (r *CategoryRepository) DeleteItem(ctx context.Context, categoryID, itemID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from category_items where id = $2 and category_id = $1`, categoryID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete category item %s: %w", itemID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.missingItemErr(ctx, categoryID)
	}
	return nil
}

// missingItemErr tells a missing column apart from a missing item of an existing column.
func (r *CategoryRepository) missingItemErr(ctx context.Context, categoryID uuid.UUID) error {
	var exists bool
	if err := r.pool.QueryRow(ctx, `select exists(select 1 from categories where id = $1)`, categoryID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check category %s: %w", categoryID, err)
	}
	if !exists {
		return domain.ErrCategoryNotFound
	}
	return domain.ErrCategoryItemNotFound
}

func insertItem(ctx context.Context, tx pgx.Tx, categoryID uuid.UUID, position int, item domain.CategoryItem) error {
	const q = `
		insert into category_items (id, category_id, position, link, description, image_url, label, background, height_class)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	if _, err := tx.Exec(ctx, q, item.ID, categoryID, position, item.Link, item.Description, item.ImageURL, item.Label, item.Background, item.HeightClass); err != nil {
		return fmt.Errorf("failed to insert category item: %w", err)
	}
	return nil
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var (
		c         domain.Category
		itemsJSON []byte
	)
	if err := row.Scan(&c.ID, &c.ColumnClass, &c.CreatedAt, &itemsJSON); err != nil {
		return domain.Category{}, err
	}
	var items []categoryItemRow
	if err := json.Unmarshal(itemsJSON, &items); err != nil {
		return domain.Category{}, fmt.Errorf("failed to decode category items: %w", err)
	}
	c.Items = make([]domain.CategoryItem, 0, len(items))
	for _, it := range items {
		c.Items = append(c.Items, domain.CategoryItem(it))
	}
	return c, nil
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}
