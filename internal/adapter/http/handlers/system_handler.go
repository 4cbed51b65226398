package handlers

import (
	"log"
	"net/http"

	response "aurora_motors/internal/adapter/http/dto/response"
	"aurora_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

const rootMessage = "Aurora Motors API running"

// SystemHandler serves liveness, diagnostics and the demo seed.

type SystemHandler struct {
	diagnostics usecase.IDiagnosticsUseCase
	seed        usecase.ISeedUseCase
}

func NewSystemHandler(diagnostics usecase.IDiagnosticsUseCase, seed usecase.ISeedUseCase) *SystemHandler {
	return &SystemHandler{diagnostics: diagnostics, seed: seed}
}

// Root godoc
// @Summary      Liveness message
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.MessageResponse
// @Router       / [get]
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.MessageResponse{Message: rootMessage})
}

// Diagnostics godoc
// @Summary      Backend and storage diagnostics
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.DiagnosticsResponse
// @Router       /test [get]
func (h *SystemHandler) Diagnostics(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromDiagnostics(h.diagnostics.Status(c.Request.Context())))
}

// Seed godoc
// @Summary      Insert demo models and promotions into empty collections
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.SeedResponse
// @Failure      503  {object}  pkg.HTTPError
// @Router       /seed [post]
func (h *SystemHandler) Seed(c *gin.Context) {
	inserted, err := h.seed.Seed(c.Request.Context())
	if err != nil {
		log.Printf("[seed][handler] seed failed inserted=%d err=%v", inserted, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SeedResponse{Inserted: inserted})
}
