package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

const defaultCategoryPageSize = 5

type CategoryHandler struct {
	categoryUsecase usecasecontract.ICategoryUseCase
}

func NewCategoryHandler(categoryUsecase usecasecontract.ICategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

func toCategoryInput(req dto.CategoryRequest) usecasecontract.CategoryInput {
	return usecasecontract.CategoryInput{Title: req.Title, Icon: req.Icon, Color: req.Color}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categoryUsecase.Create(c.Request.Context(), toCategoryInput(req))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "category created", category)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	opts := listOptions(c, defaultCategoryPageSize)
	categories, total, err := h.categoryUsecase.List(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	respondList(c, "categories found", categories, total, opts)
}

func (h *CategoryHandler) CountCategories(c *gin.Context) {
	total, err := h.categoryUsecase.Count(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "category count", dto.CountResponse{Count: total})
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	category, err := h.categoryUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "category found", category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	category, err := h.categoryUsecase.Update(c.Request.Context(), c.Param("id"), toCategoryInput(req))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "category updated", category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "category deleted")
}
