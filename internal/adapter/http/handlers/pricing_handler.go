package handlers

import (
	"log"
	"net/http"

	request "aurora_motors/internal/adapter/http/dto/request"
	response "aurora_motors/internal/adapter/http/dto/response"
	"aurora_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// CalculatePrice godoc
// @Summary      Price a configurator selection
// @Tags         configurator
// @Accept       json
// @Produce      json
// @Param        selection  body  request.PriceRequest  true  "Selection"
// @Success      200  {object}  response.PriceQuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /config/price [post]
func (h *PricingHandler) CalculatePrice(c *gin.Context) {
	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSelection.HTTPStatus, errInvalidSelection.ToHTTPError())
		return
	}

	quote, err := h.usecase.Calculate(c.Request.Context(), payload.ToSelection())
	if err != nil {
		log.Printf("[pricing][handler] calculate failed model_slug=%s err=%v", payload.ModelSlug, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPriceQuote(quote))
}
