package api

import (
	"net/http"

	reqdto "resource-backend/internal/handler/dto/request"
	resdto "resource-backend/internal/handler/dto/response"
	"resource-backend/internal/handler/httperr"
	"resource-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ResourceHandler struct {
	uc usecase.ResourceUseCase
}

func NewResourceHandler(uc usecase.ResourceUseCase) *ResourceHandler {
	return &ResourceHandler{uc: uc}
}

// @Summary List resources
// @Description List active resources ordered by name, paginated by position and size
// @Tags resources
// @Produce json
// @Param position query int false "Number of items to skip"
// @Param size query int false "Maximum number of items to return"
// @Param query query string false "Store filter expression"
// @Param query_type query string false "Store collection to query"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 500 {object} map[string]string
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), bindListQuery(c))
	if err != nil {
		abortWithUseCaseError(c, err, "List resources failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceList(items))
}

// @Summary Create resource
// @Description Create a resource linked to a contact, reusing or creating the contact by name
// @Tags resources
// @Accept json
// @Produce json
// @Param request body reqdto.CreateResourceRequest true "Create resource request"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rm, err := h.uc.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "Create resource failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResourceRM(rm))
}

// @Summary Get resource
// @Description Get an active resource by ID
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [get]
func (h *ResourceHandler) Read(c *gin.Context) {
	rm, err := h.uc.Read(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithUseCaseError(c, err, "Resource not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceRM(rm))
}

// @Summary Update resource
// @Description Overwrite the display name and contact link of an active resource
// @Tags resources
// @Accept json
// @Produce json
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Update resource request"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [put]
func (h *ResourceHandler) Update(c *gin.Context) {
	var req reqdto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rm, err := h.uc.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err, "Update resource failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceRM(rm))
}

// @Summary Delete resource
// @Description Disable an active resource; reads and lists stop returning it
// @Tags resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithUseCaseError(c, err, "Delete resource failed")
		return
	}
	c.Status(http.StatusNoContent)
}
