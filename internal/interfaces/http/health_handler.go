package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Pinger lo implementa *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse cuerpo de GET /api/health.
type HealthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// HealthHandler informa si el backend y la base de datos responden.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler construye el handler; db puede ser nil.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok", Message: "Backend is running", Database: "connected"}
	if h.db == nil {
		resp.Database = "unavailable"
		return c.JSON(resp)
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		zerolog.Ctx(c.UserContext()).Warn().Err(err).Msg("health: la base de datos no responde")
		resp.Database = "unavailable"
	}
	return c.JSON(resp)
}
