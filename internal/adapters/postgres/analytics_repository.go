package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func (r *AnalyticsRepository) CreateSale(ctx context.Context, s domain.Sale) error {
	linesJSON, err := json.Marshal(s.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal sale lines: %w", err)
	}
	const q = `
		insert into sales (id, user_id, lines, total_amount, status, payment_method, purchased_at)
		values ($1, $2, $3, $4::numeric, $5, $6, $7);
	`
	_, err = r.pool.Exec(ctx, q, s.ID, s.UserID, json.RawMessage(linesJSON), s.TotalAmount.String(), string(s.Status), s.PaymentMethod, s.PurchasedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to insert sale: %w", err)
	}
	return nil
}

// UpsertAbandonedCart keeps one cart per session; a known user is never cleared by an anonymous update.
func (r *AnalyticsRepository) UpsertAbandonedCart(ctx context.Context, c domain.AbandonedCart) (domain.AbandonedCart, error) {
	itemsJSON, err := json.Marshal(c.Items)
	if err != nil {
		return domain.AbandonedCart{}, fmt.Errorf("failed to marshal cart items: %w", err)
	}
	locationJSON, err := json.Marshal(c.Location)
	if err != nil {
		return domain.AbandonedCart{}, fmt.Errorf("failed to marshal cart location: %w", err)
	}

	const q = `
		insert into abandoned_carts (id, user_id, session_id, items, location, last_updated, is_recovered)
		values ($1, $2, $3, $4, $5, $6, false)
		on conflict (session_id) do update set
			user_id = coalesce(excluded.user_id, abandoned_carts.user_id),
			items = excluded.items,
			location = excluded.location,
			last_updated = excluded.last_updated
		returning id, user_id, session_id, items, location, last_updated, is_recovered;
	`
	var saved domain.AbandonedCart
	var savedItems, savedLocation []byte
	err = r.pool.QueryRow(ctx, q, c.ID, c.UserID, c.SessionID, json.RawMessage(itemsJSON), json.RawMessage(locationJSON), c.LastUpdated).Scan(
		&saved.ID, &saved.UserID, &saved.SessionID, &savedItems, &savedLocation, &saved.LastUpdated, &saved.IsRecovered,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.AbandonedCart{}, domain.ErrUserNotFound
		}
		return domain.AbandonedCart{}, fmt.Errorf("failed to upsert abandoned cart for session %q: %w", c.SessionID, err)
	}
	if err = decodeCart(&saved, savedItems, savedLocation); err != nil {
		return domain.AbandonedCart{}, err
	}
	return saved, nil
}

func (r *AnalyticsRepository) Summary(ctx context.Context, recent int) (domain.AnalyticsSummary, error) {
	var summary domain.AnalyticsSummary
	err := r.pool.QueryRow(ctx, `select (select count(*) from sales), (select count(*) from abandoned_carts)`).Scan(
		&summary.TotalSales, &summary.TotalAbandoned,
	)
	if err != nil {
		return domain.AnalyticsSummary{}, fmt.Errorf("failed to count sales and carts: %w", err)
	}

	if summary.RecentSales, err = r.recentSales(ctx, recent); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	if summary.RecentAbandoned, err = r.recentCarts(ctx, recent); err != nil {
		return domain.AnalyticsSummary{}, err
	}
	return summary, nil
}

func (r *AnalyticsRepository) recentSales(ctx context.Context, limit int) ([]domain.SaleEntry, error) {
	const q = `
		select s.id, s.user_id, s.lines, s.total_amount::text, s.status, s.payment_method, s.purchased_at, u.name, u.phone
		from sales s left join users u on u.id = s.user_id
		order by s.purchased_at desc
		limit $1;
	`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent sales: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.SaleEntry, 0, limit)
	for rows.Next() {
		var (
			e           domain.SaleEntry
			linesJSON   []byte
			total       string
			status      string
			name, phone *string
		)
		if err = rows.Scan(&e.ID, &e.UserID, &linesJSON, &total, &status, &e.PaymentMethod, &e.PurchasedAt, &name, &phone); err != nil {
			return nil, fmt.Errorf("failed to scan sale: %w", err)
		}
		if err = json.Unmarshal(linesJSON, &e.Lines); err != nil {
			return nil, fmt.Errorf("failed to decode sale lines: %w", err)
		}
		if e.TotalAmount, err = decimal.NewFromString(total); err != nil {
			return nil, fmt.Errorf("failed to parse total_amount: %w", err)
		}
		e.Status = domain.SaleStatus(status)
		e.Customer = customer(name, phone)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}
	return entries, nil
}

func (r *AnalyticsRepository) recentCarts(ctx context.Context, limit int) ([]domain.CartEntry, error) {
	const q = `
		select c.id, c.user_id, c.session_id, c.items, c.location, c.last_updated, c.is_recovered, u.name, u.phone,
		       (select json_object_agg(p.id, p.name)
		        from products p
		        where p.id in (select (e ->> 'product_id')::uuid from jsonb_array_elements(c.items) e))
		from abandoned_carts c left join users u on u.id = c.user_id
		order by c.last_updated desc
		limit $1;
	`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent carts: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.CartEntry, 0, limit)
	for rows.Next() {
		var (
			e                                  domain.CartEntry
			itemsJSON, locationJSON, namesJSON []byte
			name, phone                        *string
		)
		if err = rows.Scan(&e.ID, &e.UserID, &e.SessionID, &itemsJSON, &locationJSON, &e.LastUpdated, &e.IsRecovered, &name, &phone, &namesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan cart: %w", err)
		}
		if err = decodeCart(&e.AbandonedCart, itemsJSON, locationJSON); err != nil {
			return nil, err
		}
		e.ProductNames = make(map[uuid.UUID]string)
		if len(namesJSON) > 0 {
			if err = json.Unmarshal(namesJSON, &e.ProductNames); err != nil {
				return nil, fmt.Errorf("failed to decode cart product names: %w", err)
			}
		}
		e.Customer = customer(name, phone)
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating carts: %w", err)
	}
	return entries, nil
}

func decodeCart(c *domain.AbandonedCart, itemsJSON, locationJSON []byte) error {
	if err := json.Unmarshal(itemsJSON, &c.Items); err != nil {
		return fmt.Errorf("failed to decode cart items: %w", err)
	}
	if err := json.Unmarshal(locationJSON, &c.Location); err != nil {
		return fmt.Errorf("failed to decode cart location: %w", err)
	}
	return nil
}

func customer(name, phone *string) *domain.Customer {
	if name == nil && phone == nil {
		return nil
	}
	c := &domain.Customer{}
	if name != nil {
		c.Name = *name
	}
	if phone != nil {
		c.Phone = *phone
	}
	return c
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}
