package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"playgear/internal/admin"
	"playgear/internal/cart"
	"playgear/internal/catalog"
	"playgear/internal/checkout"
	"playgear/internal/config"
	"playgear/internal/http/handlers"
	applog "playgear/internal/log"
	"playgear/internal/repos"
	"playgear/internal/webhook"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			mw := io.MultiWriter(os.Stdout, f)
			log.SetOutput(mw)
		}
	}

	client := webhook.NewClient(cfg.WebhookURL)

	// Catalog: static list, or the sheet's catalog tab when configured.
	cat := catalog.NewStore(catalog.DefaultProducts())
	if cfg.CatalogSource == "remote" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		remote, err := catalog.FromWebhook(ctx, client)
		cancel()
		if err != nil {
			log.Printf("[warn] remote catalog unavailable, using static list: %v", err)
		} else {
			cat = remote
		}
	}

	// Submission journal (best-effort local record of sent orders)
	var journal *repos.JournalRepo
	if db, err := repos.OpenDB(cfg.DBDSN); err != nil {
		log.Printf("[warn] journal disabled, could not open %s: %v", cfg.DBDSN, err)
	} else {
		journal = repos.NewJournalRepo(db)
	}

	carts := cart.NewStore()
	checkoutSvc := checkout.NewService(carts, cat, client, journal)

	var verifier admin.Verifier = admin.PlainVerifier{Secret: cfg.AdminSecret}
	if cfg.AdminSecretHash != "" {
		verifier = admin.BcryptVerifier{Hash: cfg.AdminSecretHash}
	}
	adminSvc := admin.NewService(verifier, client)

	// Templates & app
	engine := html.New("./web/templates", ".html")
	engine.Reload(true)

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			// Avoid leaking internals; best-effort render
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Something went wrong. Please try again.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong. Please try again.")
			}
			return nil
		},
	})
	// Global body size guard
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        60,
		Expiration: time.Minute,
	}))
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		CookieSecure:   false, // set true behind HTTPS
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Security(c, "csrf.fail", nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "Security check failed. Please refresh and try again."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	// ---------- App handlers ----------
	deps := handlers.NewDeps(cat, carts, checkoutSvc, adminSvc)

	// Storefront
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/product/:id", deps.CatalogHandler.Detail)

	// API
	api := app.Group("/api/v1")
	api.Get("/availability", deps.CatalogHandler.Check)

	// Cart & checkout
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Post("/cart/remove", deps.CartHandler.Remove)
	app.Post("/cart/clear", deps.CartHandler.Clear)
	app.Get("/checkout", deps.OrderHandler.CheckoutForm)
	app.Post("/orders", deps.OrderHandler.Place)

	// Order viewer (secret-gated, throttled like a login form)
	app.Get("/admin/orders", deps.AdminHandler.LoginForm)
	app.Post("/admin/orders", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.admin.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("admin_login", fiber.Map{"Err": "Too many attempts. Please try again later."})
		},
	}), deps.AdminHandler.OrdersPage)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Page not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
