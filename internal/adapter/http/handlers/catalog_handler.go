package handlers

import (
	"log"
	"net/http"

	request "aurora_motors/internal/adapter/http/dto/request"
	"aurora_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only catalog: models, promotions and dealers.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListModels godoc
// @Summary      List published models
// @Tags         catalog
// @Produce      json
// @Param        body_type  query  string  false  "Exact body type, e.g. SUV"
// @Param        fuel_type  query  string  false  "Exact fuel type, e.g. EV"
// @Success      200  {array}   entities.CarModel
// @Failure      503  {object}  pkg.HTTPError
// @Router       /models [get]
func (h *CatalogHandler) ListModels(c *gin.Context) {
	var q request.ModelQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	models, err := h.usecase.ListModels(c.Request.Context(), q.ToFilter())
	if err != nil {
		log.Printf("[catalog][handler] list models failed body_type=%q fuel_type=%q err=%v", q.BodyType, q.FuelType, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, models)
}

// GetModel godoc
// @Summary      Get a published model by slug
// @Tags         catalog
// @Produce      json
// @Param        slug  path  string  true  "Model slug"
// @Success      200  {object}  entities.CarModel
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /models/{slug} [get]
func (h *CatalogHandler) GetModel(c *gin.Context) {
	slug := c.Param("slug")

	model, err := h.usecase.GetModelBySlug(c.Request.Context(), slug)
	if err != nil {
		log.Printf("[catalog][handler] get model failed slug=%s err=%v", slug, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, model)
}

// ListPromotions godoc
// @Summary      List active promotions
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   entities.Promotion
// @Failure      503  {object}  pkg.HTTPError
// @Router       /promotions [get]
func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	promotions, err := h.usecase.ListPromotions(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list promotions failed err=%v", err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, promotions)
}

// ListDealers godoc
// @Summary      List dealers
// @Tags         catalog
// @Produce      json
// @Param        city  query  string  false  "Case-insensitive substring of the city"
// @Param        zip   query  string  false  "Exact zip code"
// @Success      200  {array}   entities.Dealer
// @Failure      503  {object}  pkg.HTTPError
// @Router       /dealers [get]
func (h *CatalogHandler) ListDealers(c *gin.Context) {
	var q request.DealerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(errInvalidQuery.HTTPStatus, errInvalidQuery.ToHTTPError())
		return
	}

	dealers, err := h.usecase.ListDealers(c.Request.Context(), q.ToFilter())
	if err != nil {
		log.Printf("[catalog][handler] list dealers failed city=%q zip=%q err=%v", q.City, q.Zip, err)
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, dealers)
}
