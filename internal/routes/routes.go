package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/storefrontlabs/catalog-backend/internal/config"
	"github.com/storefrontlabs/catalog-backend/internal/handlers"
	"github.com/storefrontlabs/catalog-backend/internal/middleware"
	"github.com/storefrontlabs/catalog-backend/internal/models"
	"github.com/storefrontlabs/catalog-backend/internal/repository"
	"github.com/storefrontlabs/catalog-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	users *repository.UserRepository,
	auth *services.AuthService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	productHandler *handlers.ProductHandler,
	categoryHandler *handlers.LookupHandler[models.Category],
	brandHandler *handlers.LookupHandler[models.Brand],
	colorHandler *handlers.LookupHandler[models.Color],
	sizeHandler *handlers.LookupHandler[models.Size],
	ratingHandler *handlers.RatingHandler,
	orderHandler *handlers.OrderHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public, with a stricter rate limit: 10 req/min per IP
	authGroup := api.Group("/auth")
	authGroup.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Shared middleware chains. AdminRequired resolves and stores the current
	// user itself, so the admin chain skips LoadCurrentUser.
	authenticated := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.LoadCurrentUser(users),
	}
	adminOnly := []fiber.Handler{
		middleware.JWTProtected(cfg),
		middleware.AdminRequired(auth),
	}

	// Users
	usersGroup := api.Group("/users")
	usersGroup.Get("/me", chain(authenticated, userHandler.Me)...)
	usersGroup.Get("/search", chain(adminOnly, userHandler.Search)...)
	usersGroup.Get("/", chain(adminOnly, userHandler.List)...)
	usersGroup.Get("/email/:email", chain(adminOnly, userHandler.GetByEmail)...)
	usersGroup.Get("/:id", chain(authenticated, userHandler.Get)...)
	usersGroup.Put("/:id", chain(authenticated, userHandler.Update)...)
	usersGroup.Put("/:id/superuser", chain(adminOnly, userHandler.SetSuperuser)...)
	usersGroup.Delete("/:id", chain(adminOnly, userHandler.Delete)...)

	// Products: public reads, authenticated mutations
	products := api.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.GetByName)
	products.Get("/:id", productHandler.Get)
	products.Get("/:id/ratings", ratingHandler.ListByProduct)
	products.Post("/", chain(adminOnly, productHandler.Create)...)
	products.Put("/:id", chain(adminOnly, productHandler.Update)...)
	products.Delete("/:id", chain(adminOnly, productHandler.Delete)...)

	// Lookup entities: public reads, admin mutations
	registerLookup(api, "/categories", categoryHandler, adminOnly)
	registerLookup(api, "/brands", brandHandler, adminOnly)
	registerLookup(api, "/colors", colorHandler, adminOnly)
	registerLookup(api, "/sizes", sizeHandler, adminOnly)

	// Ratings: authenticated writes; ownership enforced in the handler
	ratings := api.Group("/ratings")
	ratings.Get("/", chain(adminOnly, ratingHandler.List)...)
	ratings.Get("/mine", chain(authenticated, ratingHandler.ListMine)...)
	ratings.Get("/:id", ratingHandler.Get)
	ratings.Post("/", chain(authenticated, ratingHandler.Create)...)
	ratings.Put("/:id", chain(authenticated, ratingHandler.Update)...)
	ratings.Delete("/:id", chain(authenticated, ratingHandler.Delete)...)

	// Orders
	orders := api.Group("/orders")
	orders.Post("/", chain(authenticated, orderHandler.Create)...)
	orders.Get("/mine", chain(authenticated, orderHandler.ListMine)...)
	orders.Get("/", chain(adminOnly, orderHandler.List)...)
	orders.Get("/:id", chain(authenticated, orderHandler.Get)...)
	orders.Put("/:id/status", chain(adminOnly, orderHandler.UpdateStatus)...)
	orders.Delete("/:id", chain(adminOnly, orderHandler.Delete)...)
}

func registerLookup[T repository.Entity](api fiber.Router, prefix string, h *handlers.LookupHandler[T], adminOnly []fiber.Handler) {
	group := api.Group(prefix)
	group.Get("/", h.List)
	group.Get("/search", h.Search)
	group.Get("/products", h.ListProducts)
	group.Get("/:id", h.Get)
	group.Get("/:id/products", h.Products)
	group.Post("/", chain(adminOnly, h.Create)...)
	group.Put("/:id", chain(adminOnly, h.Update)...)
	group.Delete("/:id", chain(adminOnly, h.Delete)...)
}

func chain(mw []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	out := make([]fiber.Handler, 0, len(mw)+1)
	out = append(out, mw...)
	return append(out, handler)
}
