package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

const defaultPrincipalPageSize = 10

// PrincipalHandlerInterface defines the methods for principal handler to allow interface-based dependency injection (for testing/mocking)
type PrincipalHandlerInterface interface {
	Register(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	ChangePassword(*gin.Context)
	ForgotPassword(*gin.Context)
	ResetPassword(*gin.Context)
	GetProfile(*gin.Context)
	UpdateProfile(*gin.Context)
	List(*gin.Context)
	Count(*gin.Context)
	GetByID(*gin.Context)
	UpdateByID(*gin.Context)
	Delete(*gin.Context)
	ToggleSavedPost(*gin.Context)
	GetSavedPosts(*gin.Context)
}

var _ PrincipalHandlerInterface = (*PrincipalHandler)(nil)

// CookieOptions controls the credential cookie set on login.
type CookieOptions struct {
	MaxAge int
	Secure bool
}

// PrincipalHandler serves one principal family. The family decides the cookie
// name and the wording of messages.
type PrincipalHandler struct {
	principalUsecase usecasecontract.IPrincipalUseCase
	cookie           CookieOptions
}

func NewPrincipalHandler(principalUsecase usecasecontract.IPrincipalUseCase, cookie CookieOptions) *PrincipalHandler {
	return &PrincipalHandler{
		principalUsecase: principalUsecase,
		cookie:           cookie,
	}
}

func (h *PrincipalHandler) label() string {
	return h.principalUsecase.Family().Label()
}

func (h *PrincipalHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	principal, err := h.principalUsecase.Register(c.Request.Context(), usecasecontract.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Country:  req.Country,
		City:     req.City,
		Mobile:   req.Mobile,
	})
	if err != nil {
		RespondError(c, err)
		return
	}

	SuccessHandler(c, http.StatusCreated, fmt.Sprintf("%s created successfully", h.label()), dto.ToPrincipalResponse(*principal))
}

// Login verifies credentials and sets the family's credential cookie.
func (h *PrincipalHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	principal, token, err := h.principalUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.principalUsecase.Family().CookieName(), token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	SuccessHandler(c, http.StatusOK, "login successful", dto.LoginResponse{
		Principal: dto.ToPrincipalResponse(*principal),
		Token:     token,
	})
}

// Logout expires the family's credential cookie. The credential itself stays valid until it expires.
func (h *PrincipalHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.principalUsecase.Family().CookieName(), "", -1, "/", "", h.cookie.Secure, true)
	MessageHandler(c, http.StatusOK, "logout successful")
}

func (h *PrincipalHandler) ChangePassword(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.principalUsecase.ChangePassword(c.Request.Context(), caller.ID, req.OldPassword, req.NewPassword); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password changed successfully")
}

func (h *PrincipalHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.principalUsecase.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password reset link sent to your email")
}

func (h *PrincipalHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.principalUsecase.ResetPassword(c.Request.Context(), c.Param("tokenId"), req.NewPassword); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "password reset successfully")
}

// GetProfile returns the caller's own account.
func (h *PrincipalHandler) GetProfile(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	principal, err := h.principalUsecase.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, fmt.Sprintf("%s found", h.label()), dto.ToPrincipalResponse(*principal))
}

func (h *PrincipalHandler) UpdateProfile(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	principal, err := h.principalUsecase.UpdateProfile(c.Request.Context(), caller.ID, toUpdatePrincipalInput(req))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "profile updated", dto.ToPrincipalResponse(*principal))
}

func toUpdatePrincipalInput(req dto.UpdateProfileRequest) usecasecontract.UpdatePrincipalInput {
	return usecasecontract.UpdatePrincipalInput{
		UserName: req.UserName,
		Country:  req.Country,
		City:     req.City,
		Mobile:   req.Mobile,
	}
}

func (h *PrincipalHandler) List(c *gin.Context) {
	opts := listOptions(c, defaultPrincipalPageSize)
	principals, total, err := h.principalUsecase.List(c.Request.Context(), opts)
	if err != nil {
		RespondError(c, err)
		return
	}
	respondList(c, fmt.Sprintf("%s list", h.label()), dto.ToPrincipalResponses(principals), total, opts)
}

func (h *PrincipalHandler) Count(c *gin.Context) {
	total, err := h.principalUsecase.Count(c.Request.Context())
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, fmt.Sprintf("%s count", h.label()), dto.CountResponse{Count: total})
}

func (h *PrincipalHandler) GetByID(c *gin.Context) {
	principal, err := h.principalUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, fmt.Sprintf("%s found", h.label()), dto.ToPrincipalResponse(*principal))
}

func (h *PrincipalHandler) UpdateByID(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	principal, err := h.principalUsecase.UpdateByID(c.Request.Context(), c.Param("id"), toUpdatePrincipalInput(req))
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, fmt.Sprintf("%s updated", h.label()), dto.ToPrincipalResponse(*principal))
}

func (h *PrincipalHandler) Delete(c *gin.Context) {
	if err := h.principalUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		RespondError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, fmt.Sprintf("%s deleted", h.label()))
}

// ToggleSavedPost adds the post to the caller's saved list, or removes it when already there.
func (h *PrincipalHandler) ToggleSavedPost(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.BlogRefRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	saved, err := h.principalUsecase.ToggleSavedPost(c.Request.Context(), caller.ID, req.BlogID)
	if err != nil {
		RespondError(c, err)
		return
	}
	message := "blog removed from saved list"
	if saved {
		message = "blog saved"
	}
	SuccessHandler(c, http.StatusOK, message, dto.SavedToggleResponse{BlogID: req.BlogID, Saved: saved})
}

func (h *PrincipalHandler) GetSavedPosts(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	posts, err := h.principalUsecase.GetSavedPosts(c.Request.Context(), caller.ID)
	if err != nil {
		RespondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "saved blogs", dto.ToPostSummaries(posts))
}
