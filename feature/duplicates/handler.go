package duplicates

import (
	"errors"
	"strings"

	"backpack-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for duplicate checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the duplicates routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/duplicates", h.HandleGetDuplicates)
	app.Post("/catalog/refresh", h.HandleRefreshCatalog)
}

// HandleGetDuplicates runs a duplicate check for the accounts in the query string.
// format=text returns the plain-text report instead of JSON.
func (h *Handler) HandleGetDuplicates(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	req := Request{
		Accounts: splitList(c.Query("accounts")),
		Friends:  splitList(c.Query("friends")),
		List:     c.QueryBool("list", false),
		Scrap:    c.QueryBool("scrap", false),
	}

	report, err := h.service.Run(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, ErrNoAccounts) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		l.Error("Duplicate check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if c.Query("format") == "text" {
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return report.WriteText(c)
	}
	return c.JSON(report)
}

// HandleRefreshCatalog forces a catalog fetch and reports its size.
func (h *Handler) HandleRefreshCatalog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	schema, err := h.service.RefreshCatalog(c.UserContext())
	if err != nil {
		l.Error("Catalog refresh failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"items":   schema.Len(),
		"uniques": len(schema.ReferenceSet()),
	})
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
