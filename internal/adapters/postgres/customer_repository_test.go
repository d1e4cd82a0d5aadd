package postgres_test

import (
	"context"
	"testing"
	"time"

	"jewelstore/internal/adapters/postgres"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newUser(phone, email string) domain.User {
	return domain.User{
		ID:        uuid.New(),
		Phone:     phone,
		Name:      "Meena " + phone,
		Email:     email,
		Address:   "12 Car Street",
		Pincode:   "600001",
		CreatedAt: base,
	}
}

func TestUserRepository_CreateAndGetByPhone(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewUserRepository(pool)
	ctx := context.Background()

	u := newUser("9876543210", "meena@example.com")
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByPhone(ctx, u.Phone)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.Pincode, got.Pincode)

	_, err = repo.GetByPhone(ctx, "0000000000")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewUserRepository(pool)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newUser("9876543210", "a@example.com")))
	require.ErrorIs(t, repo.Create(ctx, newUser("9876543210", "b@example.com")), domain.ErrUserExists)
	require.ErrorIs(t, repo.Create(ctx, newUser("9000000000", "a@example.com")), domain.ErrUserExists)
}

func TestUserRepository_List_NewestFirst(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewUserRepository(pool)
	ctx := context.Background()

	first := newUser("1111111111", "first@example.com")
	second := newUser("2222222222", "second@example.com")
	second.CreatedAt = base.Add(time.Hour)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, second.ID, users[0].ID)
}

func TestUserRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewUserRepository(pool)
	ctx := canceledCtx()

	_, err := repo.GetByPhone(ctx, "9876543210")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrUserNotFound)

	err = repo.Create(ctx, newUser("9876543210", "x@example.com"))
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrUserExists)
}

func TestAnalyticsRepository_EmptySummary(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAnalyticsRepository(pool)

	summary, err := repo.Summary(context.Background(), 10)
	require.NoError(t, err)
	require.Zero(t, summary.TotalSales)
	require.Zero(t, summary.TotalAbandoned)
	require.Empty(t, summary.RecentSales)
	require.Empty(t, summary.RecentAbandoned)
}

func TestAnalyticsRepository_SalesSummary(t *testing.T) {
	pool := setupPostgres(t)
	users := postgres.NewUserRepository(pool)
	repo := postgres.NewAnalyticsRepository(pool)
	ctx := context.Background()

	u := newUser("9876543210", "meena@example.com")
	require.NoError(t, users.Create(ctx, u))

	productID := uuid.New()
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateSale(ctx, domain.Sale{
			ID:            uuid.New(),
			UserID:        u.ID,
			Lines:         []domain.SaleLine{{ProductID: productID, Quantity: 1, PriceAtPurchase: decimal.RequireFromString("67200")}},
			TotalAmount:   decimal.RequireFromString("67200.50"),
			Status:        domain.SaleCompleted,
			PaymentMethod: "upi",
			PurchasedAt:   base.Add(time.Duration(i) * time.Hour),
		}))
	}

	summary, err := repo.Summary(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 3, summary.TotalSales)
	require.Len(t, summary.RecentSales, 2)

	latest := summary.RecentSales[0]
	require.True(t, latest.PurchasedAt.Equal(base.Add(2*time.Hour)))
	require.True(t, latest.TotalAmount.Equal(decimal.RequireFromString("67200.5")))
	require.Equal(t, domain.SaleCompleted, latest.Status)
	require.Len(t, latest.Lines, 1)
	require.Equal(t, productID, latest.Lines[0].ProductID)
	require.True(t, latest.Lines[0].PriceAtPurchase.Equal(decimal.NewFromInt(67200)))
	require.Equal(t, &domain.Customer{Name: u.Name, Phone: u.Phone}, latest.Customer)
}

func TestAnalyticsRepository_UpsertAbandonedCart(t *testing.T) {
	pool := setupPostgres(t)
	users := postgres.NewUserRepository(pool)
	products := postgres.NewProductRepository(pool)
	repo := postgres.NewAnalyticsRepository(pool)
	ctx := context.Background()

	u := newUser("9876543210", "meena@example.com")
	require.NoError(t, users.Create(ctx, u))
	p := newProduct("NK-01", uuid.New())
	require.NoError(t, products.Create(ctx, p))

	cart := domain.AbandonedCart{
		ID:          uuid.New(),
		UserID:      &u.ID,
		SessionID:   "sess-1",
		Items:       []domain.CartLine{{ProductID: p.ID, Quantity: 2}},
		Location:    domain.CartLocation{City: "Chennai", Country: "IN"},
		LastUpdated: base,
	}
	saved, err := repo.UpsertAbandonedCart(ctx, cart)
	require.NoError(t, err)
	require.Equal(t, cart.ID, saved.ID)
	require.Equal(t, cart.Items, saved.Items)

	again := cart
	again.ID = uuid.New()
	again.UserID = nil
	again.Items = []domain.CartLine{{ProductID: p.ID, Quantity: 3}}
	again.LastUpdated = base.Add(time.Hour)
	saved, err = repo.UpsertAbandonedCart(ctx, again)
	require.NoError(t, err)
	require.Equal(t, cart.ID, saved.ID)
	require.Equal(t, 3, saved.Items[0].Quantity)
	require.NotNil(t, saved.UserID)
	require.Equal(t, u.ID, *saved.UserID)
	require.True(t, saved.LastUpdated.Equal(again.LastUpdated))

	summary, err := repo.Summary(ctx, 10)
	require.NoError(t, err)
	require.Equal(t, 1, summary.TotalAbandoned)
	require.Len(t, summary.RecentAbandoned, 1)
	entry := summary.RecentAbandoned[0]
	require.Equal(t, "Chennai", entry.Location.City)
	require.Equal(t, p.Name, entry.ProductNames[p.ID])
	require.Equal(t, &domain.Customer{Name: u.Name, Phone: u.Phone}, entry.Customer)
}

func TestAnalyticsRepository_AnonymousCart(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAnalyticsRepository(pool)
	ctx := context.Background()

	_, err := repo.UpsertAbandonedCart(ctx, domain.AbandonedCart{
		ID:          uuid.New(),
		SessionID:   "anon",
		Items:       []domain.CartLine{{ProductID: uuid.New(), Quantity: 1}},
		LastUpdated: base,
	})
	require.NoError(t, err)

	summary, err := repo.Summary(ctx, 10)
	require.NoError(t, err)
	require.Len(t, summary.RecentAbandoned, 1)
	require.Nil(t, summary.RecentAbandoned[0].Customer)
	require.Nil(t, summary.RecentAbandoned[0].UserID)
	require.Empty(t, summary.RecentAbandoned[0].ProductNames)
}

func TestAnalyticsRepository_DBError(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAnalyticsRepository(pool)
	ctx := canceledCtx()

	_, err := repo.Summary(ctx, 10)
	require.Error(t, err)
	require.Error(t, repo.CreateSale(ctx, domain.Sale{ID: uuid.New(), UserID: uuid.New(), Status: domain.SaleCompleted}))
}

func TestAnalyticsRepository_CreateSale_UnknownUser(t *testing.T) {
	pool := setupPostgres(t)
	repo := postgres.NewAnalyticsRepository(pool)

	err := repo.CreateSale(context.Background(), domain.Sale{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Lines:       []domain.SaleLine{{ProductID: uuid.New(), Quantity: 1, PriceAtPurchase: decimal.NewFromInt(100)}},
		TotalAmount: decimal.NewFromInt(100),
		Status:      domain.SaleCompleted,
		PurchasedAt: base,
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
