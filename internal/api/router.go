package api

import (
	"net/http"
	"time"

	_ "jewelstore/docs"
	analyticshandler "jewelstore/internal/analytics/handler"
	authhandler "jewelstore/internal/auth/handler"
	categoryhandler "jewelstore/internal/category/handler"
	producthandler "jewelstore/internal/product/handler"
	ratehandler "jewelstore/internal/rate/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	swagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Rates      *ratehandler.Handler
	Products   *producthandler.Handler
	Categories *categoryhandler.Handler
	Auth       *authhandler.Handler
	Analytics  *analyticshandler.Handler
}

func NewRouter(h Handlers, allowedOrigins []string) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           int((12 * time.Hour).Seconds()),
	}))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/rates", func(r chi.Router) {
			r.Get("/all", h.Rates.GetAll)
			r.Get("/all-trends", h.Rates.GetAllTrends)
			r.Get("/{metal}", h.Rates.GetLatest)
			r.Post("/{metal}", h.Rates.RecordRate)
			r.Get("/{metal}/trends", h.Rates.GetTrends)
			r.Get("/{metal}/history/{karat}", h.Rates.GetHistory)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Products.ListProducts)
			r.Post("/", h.Products.CreateProduct)
			r.Get("/{id}", h.Products.GetProduct)
			r.Put("/{id}", h.Products.UpdateProduct)
			r.Delete("/{id}", h.Products.DeleteProduct)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.Categories.ListCategories)
			r.Post("/", h.Categories.CreateCategory)
			r.Get("/items", h.Categories.ListItems)
			r.Post("/style", h.Categories.CreateStyle)
			r.Get("/{id}", h.Categories.GetCategory)
			r.Put("/{id}", h.Categories.UpdateCategory)
			r.Delete("/{id}", h.Categories.DeleteCategory)
			r.Put("/{categoryId}/items/{itemId}", h.Categories.UpdateItem)
			r.Delete("/{categoryId}/items/{itemId}", h.Categories.DeleteItem)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/send-otp", h.Auth.SendOTP)
			r.Post("/verify-otp", h.Auth.VerifyOTP)
			r.With(h.Auth.RequireToken).Get("/users", h.Auth.ListUsers)
			r.Post("/users", h.Auth.CreateUser)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Post("/sale", h.Analytics.RecordSale)
			r.Post("/abandoned", h.Analytics.SaveAbandonedCart)
			r.Get("/summary", h.Analytics.GetSummary)
		})
	})
	return router
}
