package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerpos/ledgerpos/internal/application/category/usecases"
	"github.com/ledgerpos/ledgerpos/internal/shared/constants"
	apperrors "github.com/ledgerpos/ledgerpos/internal/shared/errors"
	"github.com/ledgerpos/ledgerpos/internal/shared/logger"
	"github.com/ledgerpos/ledgerpos/internal/shared/utils"
)

type CategoryHandler struct {
	listUC     listCategoriesUseCase
	createUC   createCategoryUseCase
	updateUC   updateCategoryUseCase
	businessID string
	logger     logger.Interface
}

func NewCategoryHandler(
	listUC listCategoriesUseCase,
	createUC createCategoryUseCase,
	updateUC updateCategoryUseCase,
	businessID string,
	logger logger.Interface,
) *CategoryHandler {
	return &CategoryHandler{
		listUC:     listUC,
		createUC:   createUC,
		updateUC:   updateUC,
		businessID: businessID,
		logger:     logger,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	SortOrder   *int    `json:"sort_order"`
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context(), h.businessID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create category", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		BusinessID:  h.businessID,
		ActorID:     c.GetString(constants.ContextKeyUserID),
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID := c.Param("id")
	if categoryID == "" {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("category id is required"))
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update category", "category_id", categoryID, "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCategoryCommand{
		BusinessID:  h.businessID,
		ActorID:     c.GetString(constants.ContextKeyUserID),
		CategoryID:  categoryID,
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Category updated successfully", result)
}
