package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	"github.com/mikiasgoitom/Quill/internal/handler/http/dto"
	"github.com/mikiasgoitom/Quill/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/validator"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
	"github.com/mikiasgoitom/Quill/internal/utils"
)

const maxPageSize = 100

// ErrorHandler centralizes error responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorEnvelope{Status: false, Message: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Message: message, Data: data})
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.Envelope{Status: "success", Message: message})
}

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindUnauthenticated, apperror.KindTokenExpired, apperror.KindInvalidToken:
		return http.StatusUnauthorized
	case apperror.KindForbidden:
		return http.StatusForbidden
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindValidation:
		return http.StatusUnprocessableEntity
	case apperror.KindResetTokenInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as an error envelope. Errors without a kind become 500
// with a generic message.
func RespondError(c *gin.Context, err error) {
	kind := apperror.KindOf(err)
	message := err.Error()
	if kind == apperror.KindInternal {
		message = "internal server error"
	}
	ErrorHandler(c, StatusFor(kind), message)
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		message := validator.FormatErrors(err)
		if errors.Is(err, io.EOF) {
			message = "request body is required"
		}
		ErrorHandler(c, http.StatusUnprocessableEntity, message)
		return err
	}
	return nil
}

// callerFrom reads the identity the auth middleware attached to the request.
func callerFrom(c *gin.Context) (usecasecontract.Caller, bool) {
	id := c.GetString(middleware.ContextUserID)
	role, _ := c.Get(middleware.ContextRole)
	r, ok := role.(entity.Role)
	if id == "" || !ok {
		ErrorHandler(c, http.StatusUnauthorized, "unauthenticated")
		return usecasecontract.Caller{}, false
	}
	return usecasecontract.Caller{ID: id, Role: r}, true
}

// listOptions reads page, limit and search from the query string.
func listOptions(c *gin.Context, defaultLimit int) contract.ListOptions {
	page, limit := utils.ParsePage(c.Query("page"), c.Query("limit"), defaultLimit, maxPageSize)
	return contract.ListOptions{Page: page, Limit: limit, Search: c.Query("search")}
}

func respondList(c *gin.Context, message string, items interface{}, total int64, opts contract.ListOptions) {
	next, prev := utils.PageLinks(opts.Page, opts.Limit, total)
	SuccessHandler(c, http.StatusOK, message, dto.ListPage{
		Items:    items,
		Total:    total,
		Page:     opts.Page,
		Limit:    opts.Limit,
		NextPage: next,
		PrevPage: prev,
	})
}
