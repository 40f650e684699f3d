package main

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/ByteBuilderAI/ByteBuilder-API/internal/ai"
	"github.com/ByteBuilderAI/ByteBuilder-API/internal/catalog"
	"github.com/ByteBuilderAI/ByteBuilder-API/internal/config"
	"github.com/ByteBuilderAI/ByteBuilder-API/internal/models"
	"github.com/ByteBuilderAI/ByteBuilder-API/internal/store"
	"github.com/ByteBuilderAI/ByteBuilder-API/pkg/engine"
	"github.com/ByteBuilderAI/ByteBuilder-API/pkg/scraper"
)

type SearchRequest struct {
	Query string `json:"query"`
}

type CompatibilityRequest struct {
	Components map[string]*models.Listing `json:"components"`
}

type CatalogCheckRequest struct {
	Components map[string]string `json:"components"`
}

type SaveBuildRequest struct {
	Name       string                     `json:"name"`
	Components map[string]*models.Listing `json:"components"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize the scraper
	scrap := scraper.NewScraper(cfg.SearchTimeout, cfg.SearchMaxResults)
	scrap.RandomizeUserAgent()
	scrap.UpdateHeaders("global", map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.9",
	})

	// The analyzer is optional: without a key the heuristic engine serves
	// every request.
	var analyzer engine.Analyzer
	if cfg.AIAPIKey != "" {
		analyzer = ai.New(cfg.AIAPIKey, cfg.AIBaseURL, cfg.AIModel)
		fiberlog.Info("AI compatibility analyzer enabled, model: ", cfg.AIModel)
	}
	checker := engine.NewChecker(analyzer)

	parts, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		log.Fatal(err)
	}
	defer parts.Close()

	builds := store.NewBuildStore()

	// Create a Fiber app
	app := fiber.New()
	app.Use(helmet.New())
	app.Use(logger.New(logger.Config{
		Format: "${pid} | ${time} | ${latency} | [${ip}]:${port} | ${status} - ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "ByteBuilder API",
			"endpoints": fiber.Map{
				"search":              "/api/search",
				"compatibility_check": "/api/compatibility-check",
				"catalog_check":       "/api/catalog-check",
				"catalog_compatible":  "/api/catalog/compatible",
				"builds":              "/api/builds",
			},
		})
	})

	// Endpoint for searching component listings
	app.Post("/api/search", func(c *fiber.Ctx) error {
		var req SearchRequest
		if err := c.BodyParser(&req); err != nil || req.Query == "" {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}

		listings, err := scrap.SearchListings(req.Query)
		if err != nil {
			var noResults *scraper.NoResultsError
			if !errors.As(err, &noResults) {
				fiberlog.Warn("search failed, serving fallback listings: ", err)
			}
			return c.JSON(fiber.Map{
				"query":   req.Query,
				"source":  "fallback",
				"results": scraper.FallbackListings(req.Query),
			})
		}

		return c.JSON(fiber.Map{
			"query":   req.Query,
			"source":  "web",
			"results": listings,
		})
	})

	// Endpoint for checking compatibility of a selected build
	app.Post("/api/compatibility-check", func(c *fiber.Ctx) error {
		var req CompatibilityRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}

		report := checker.GenerateReport(c.UserContext(), req.Components)
		return c.JSON(fiber.Map{
			"status":               "success",
			"compatibility_report": report,
		})
	})

	// Endpoint for checking a build assembled from catalog part names
	app.Post("/api/catalog-check", func(c *fiber.Ctx) error {
		var req CatalogCheckRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}

		report, err := checker.GenerateCatalogReport(c.UserContext(), parts, req.Components)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Error checking catalog build"})
		}
		return c.JSON(fiber.Map{
			"status":               "success",
			"compatibility_report": report,
		})
	})

	// Endpoint for listing catalog parts compatible with a given part
	app.Get("/api/catalog/compatible", func(c *fiber.Ctx) error {
		kind := c.Query("kind")
		name := c.Query("name")
		if kind == "" || name == "" {
			return c.Status(400).JSON(fiber.Map{"error": "kind and name query parameters are required"})
		}

		names, err := parts.FindCompatible(c.UserContext(), kind, name)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Error querying catalog"})
		}
		if names == nil {
			names = []string{}
		}
		return c.JSON(fiber.Map{"base": name, "compatible": names})
	})

	// Endpoints for saved builds
	app.Post("/api/builds", func(c *fiber.Ctx) error {
		var req SaveBuildRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request payload"})
		}

		report := checker.GenerateReport(c.UserContext(), req.Components)
		saved := builds.Save(req.Name, req.Components, &report)
		return c.Status(201).JSON(saved)
	})

	app.Get("/api/builds", func(c *fiber.Ctx) error {
		return c.JSON(builds.List())
	})

	app.Get("/api/builds/:id", func(c *fiber.Ctx) error {
		saved, ok := builds.Get(c.Params("id"))
		if !ok {
			return c.Status(404).JSON(fiber.Map{"error": "Build not found"})
		}
		return c.JSON(saved)
	})

	// Start the server
	log.Fatal(app.Listen(cfg.ListenAddr))
}
