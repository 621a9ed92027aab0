package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{commentUsecase: commentUsecase}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	comments, err := h.commentUsecase.List(c.Request.Context(), c.Param("blogPostId"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "comments found", comments)
}

// UpsertComment adds the caller's comment to a post, or replaces the one they already left.
func (h *CommentHandler) UpsertComment(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.CommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, created, err := h.commentUsecase.Upsert(c.Request.Context(), c.Param("blogId"), caller, req.Comment)
	if err != nil {
		RespondError(c, err)
		return
	}
	if created {
		SuccessHandler(c, http.StatusCreated, "comment added", comment)
		return
	}
	SuccessHandler(c, http.StatusOK, "comment updated", comment)
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.UpdateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.Update(c.Request.Context(), c.Param("blogId"), c.Param("commentId"), caller, req.NewComment)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "comment updated", comment)
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	if err := h.commentUsecase.Delete(c.Request.Context(), c.Param("blogId"), c.Param("commentId"), caller); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "comment deleted")
}
