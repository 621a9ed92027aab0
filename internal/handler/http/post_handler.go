package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	"github.com/mikiasgoitom/Quill/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

const defaultPostPageSize = 10

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{postUsecase: postUsecase}
}

// CreatePost publishes a post authored by the caller.
func (h *PostHandler) CreatePost(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUsecase.Create(c.Request.Context(), usecasecontract.CreatePostInput{
		Title:        req.Title,
		Description:  req.Description,
		Images:       req.Images,
		PostedBy:     caller.ID,
		PostedByRole: caller.Role,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "blog created", post)
}

// ListPosts returns a page of posts. ?search filters by title.
func (h *PostHandler) ListPosts(c *gin.Context) {
	opts := listOptions(c, defaultPostPageSize)
	posts, total, err := h.postUsecase.List(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	respondList(c, "blogs found", posts, total, opts)
}

// GetPost returns one post and counts the view.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "blog found", post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	post, err := h.postUsecase.Update(c.Request.Context(), c.Param("id"), usecasecontract.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Images:      req.Images,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "updated", post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "blog deleted")
}

// ToggleReaction likes or dislikes the post named in the body.
func (h *PostHandler) ToggleReaction(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.BlogRefRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	reaction, err := h.postUsecase.ToggleReaction(c.Request.Context(), req.BlogID, caller.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "blog "+string(reaction), dto.ReactionResponse{
		BlogID:   req.BlogID,
		Reaction: string(reaction),
		Like:     reaction == entity.ReactionLiked,
		Dislike:  reaction == entity.ReactionDisliked,
	})
}
