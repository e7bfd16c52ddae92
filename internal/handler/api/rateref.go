package api

import (
	"net/http"

	reqdto "resource-backend/internal/handler/dto/request"
	resdto "resource-backend/internal/handler/dto/response"
	"resource-backend/internal/handler/httperr"
	"resource-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RateRefHandler struct {
	uc usecase.RateRefUseCase
}

func NewRateRefHandler(uc usecase.RateRefUseCase) *RateRefHandler {
	return &RateRefHandler{uc: uc}
}

// @Summary List rate references
// @Description List active rate references of a resource ordered by name
// @Tags rates
// @Produce json
// @Param id path string true "Resource ID"
// @Param position query int false "Number of items to skip"
// @Param size query int false "Maximum number of items to return"
// @Success 200 {array} resdto.RateRefResponse
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/rates [get]
func (h *RateRefHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), c.Param("id"), bindListQuery(c))
	if err != nil {
		abortWithUseCaseError(c, err, "List rate references failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateRefList(items))
}

// @Summary Create rate reference
// @Description Link a resource to a rate catalog entry
// @Tags rates
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param request body reqdto.CreateRateRefRequest true "Create rate reference request"
// @Success 201 {object} resdto.RateRefResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources/{id}/rates [post]
func (h *RateRefHandler) Create(c *gin.Context) {
	var req reqdto.CreateRateRefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rm, err := h.uc.Create(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "Create rate reference failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRateRefRM(rm))
}

// @Summary Get rate reference
// @Description Get an active rate reference of a resource, with the live catalog title
// @Tags rates
// @Produce json
// @Param id path string true "Resource ID"
// @Param rateRefId path string true "Rate reference ID"
// @Success 200 {object} resdto.RateRefResponse
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/rates/{rateRefId} [get]
func (h *RateRefHandler) Read(c *gin.Context) {
	rm, err := h.uc.Read(c.Request.Context(), c.Param("id"), c.Param("rateRefId"))
	if err != nil {
		abortWithUseCaseError(c, err, "Rate reference not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRateRefRM(rm))
}

// @Summary Delete rate reference
// @Description Disable an active rate reference of a resource
// @Tags rates
// @Produce json
// @Param id path string true "Resource ID"
// @Param rateRefId path string true "Rate reference ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /resources/{id}/rates/{rateRefId} [delete]
func (h *RateRefHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id"), c.Param("rateRefId")); err != nil {
		abortWithUseCaseError(c, err, "Delete rate reference failed")
		return
	}
	c.Status(http.StatusNoContent)
}
