package postgres

import (
	"context"
	"errors"
	"fmt"

	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `
	id, name, code, metal, karat, short_description, images, video, category_ids,
	weight::text, making_cost_percent::text, wastage_percent::text, price::text, created_at, updated_at`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func (r *ProductRepository) Create(ctx context.Context, p domain.Product) error {
	const q = `
		insert into products (
			id, name, code, metal, karat, short_description, images, video, category_ids,
			weight, making_cost_percent, wastage_percent, price, created_at, updated_at
		) values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::numeric, $11::numeric, $12::numeric, $13::numeric, $14, $14);
	`
	_, err := r.pool.Exec(ctx, q,
		p.ID, p.Name, p.Code, string(p.Instrument.Metal), string(p.Instrument.Karat), p.ShortDescription,
		p.Images, p.Video, p.CategoryIDs,
		p.Weight.String(), p.MakingCostPercent.String(), p.WastagePercent.String(), p.Price.String(), p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product %q: %w", p.Code, err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p domain.Product) error {
	const q = `
		update products set
			name = $2, code = $3, metal = $4, karat = $5, short_description = $6, images = $7, video = $8,
			category_ids = $9, weight = $10::numeric, making_cost_percent = $11::numeric,
			wastage_percent = $12::numeric, price = $13::numeric, updated_at = $14
		where id = $1;
	`
	tag, err := r.pool.Exec(ctx, q,
		p.ID, p.Name, p.Code, string(p.Instrument.Metal), string(p.Instrument.Karat), p.ShortDescription,
		p.Images, p.Video, p.CategoryIDs,
		p.Weight.String(), p.MakingCostPercent.String(), p.WastagePercent.String(), p.Price.String(), p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", p.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `delete from products where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	q := `select ` + productColumns + ` from products where id = $1;`
	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to select product %s: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	return r.query(ctx, `select `+productColumns+` from products order by created_at desc;`)
}

func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]domain.Product, error) {
	return r.query(ctx, `select `+productColumns+` from products where $1 = any(category_ids) order by created_at desc;`, categoryID)
}

func (r *ProductRepository) query(ctx context.Context, q string, args ...any) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, 32)
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan product: %w", scanErr)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p                                   domain.Product
		metal, karat                        string
		weight, making, wastage, priceValue string
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Code, &metal, &karat, &p.ShortDescription, &p.Images, &p.Video, &p.CategoryIDs,
		&weight, &making, &wastage, &priceValue, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return domain.Product{}, err
	}
	p.Instrument = domain.Instrument{Metal: domain.Metal(metal), Karat: domain.Karat(karat)}

	var err error
	if p.Weight, err = decimal.NewFromString(weight); err != nil {
		return domain.Product{}, fmt.Errorf("failed to parse weight: %w", err)
	}
	if p.MakingCostPercent, err = decimal.NewFromString(making); err != nil {
		return domain.Product{}, fmt.Errorf("failed to parse making_cost_percent: %w", err)
	}
	if p.WastagePercent, err = decimal.NewFromString(wastage); err != nil {
		return domain.Product{}, fmt.Errorf("failed to parse wastage_percent: %w", err)
	}
	if p.Price, err = decimal.NewFromString(priceValue); err != nil {
		return domain.Product{}, fmt.Errorf("failed to parse price: %w", err)
	}
	return p, nil
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}
