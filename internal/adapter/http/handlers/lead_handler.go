package handlers

import (
	"log"
	"net/http"

	request "aurora_motors/internal/adapter/http/dto/request"
	response "aurora_motors/internal/adapter/http/dto/response"
	"aurora_motors/internal/usecase"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// CreateLead godoc
// @Summary      Submit a contact, test-drive or quote lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        lead  body  request.LeadRequest  true  "Lead"
// @Success      201  {object}  response.LeadCreatedResponse
// @Failure      422  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[lead][handler] invalid payload err=%v", err)
		c.JSON(errInvalidLead.HTTPStatus, errInvalidLead.ToHTTPError())
		return
	}

	id, err := h.usecase.Submit(c.Request.Context(), payload.ToLead())
	if err != nil {
		appErr := mapError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLeadID(id))
}
