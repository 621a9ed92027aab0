package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	handler "github.com/mikiasgoitom/Quill/internal/handler/http"
	dto "github.com/mikiasgoitom/Quill/internal/handler/http/dto"
	"github.com/mikiasgoitom/Quill/internal/handler/http/middleware"
	mocks "github.com/mikiasgoitom/Quill/internal/handler/http/mocks"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

// withCaller stands in for the auth middleware.
func withCaller(id string, role entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, id)
		c.Set(middleware.ContextRole, role)
		c.Next()
	}
}

func setupRouter(h handler.PrincipalHandlerInterface) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.POST("/forgotPassword", h.ForgotPassword)
	r.PUT("/resetPassword/:tokenId", h.ResetPassword)
	r.GET("/users", h.List)
	r.GET("/users/:id", h.GetByID)
	r.DELETE("/users/:id", h.Delete)

	authed := r.Group("/", withCaller("caller-1", entity.RoleUser))
	authed.GET("/getProfile", h.GetProfile)
	authed.PUT("/updateProfile", h.UpdateProfile)
	authed.PUT("/changePassword", h.ChangePassword)
	authed.POST("/save", h.ToggleSavedPost)
	authed.GET("/saved", h.GetSavedPosts)
	return r
}

func doJSON(r http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewBuffer(b)
	} else {
		body = &bytes.Buffer{}
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func validRegisterRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		UserName: "testuser",
		Email:    "test@example.com",
		Password: "secret1",
		Country:  "Ethiopia",
		City:     "Addis Ababa",
		Mobile:   "09123456789",
	}
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{MaxAge: 3600}))

	w := doJSON(r, "POST", "/register", validRegisterRequest())

	assert.Equal(t, http.StatusCreated, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, "success", env["status"])
	assert.Equal(t, "User created successfully", env["message"])
	assert.NotContains(t, w.Body.String(), "secret-hash")
}

func TestRegister_ValidationFail(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))
	payload := validRegisterRequest()
	payload.UserName = "ab"
	payload.Mobile = "12345"

	w := doJSON(r, "POST", "/register", payload)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["status"])
	assert.Contains(t, env["message"], "userName must be at least 3 characters")
	assert.Contains(t, env["message"], "mobile must be an 11 digit number starting with 0")
}

func TestRegister_Conflict(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleAdmin)
	mockUsecase.ShouldFailRegister = true
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "POST", "/register", validRegisterRequest())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "admin with this email already exists")
}

func TestLogin_SetsFamilyCookie(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleSuperAdmin)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{MaxAge: 86400, Secure: true}))

	w := doJSON(r, "POST", "/login", dto.LoginRequest{Email: "test@example.com", Password: "secret1"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "superAdmin", cookies[0].Name)
	assert.Equal(t, "mock_access_token", cookies[0].Value)
	assert.Equal(t, 86400, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}

func TestLogin_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	mockUsecase.ShouldFailLogin = true
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "POST", "/login", dto.LoginRequest{Email: "test@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "incorrect password")
	assert.Empty(t, w.Result().Cookies())
}

func TestLogout_ExpiresCookie(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleAdmin)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "POST", "/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin", cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestForgotAndResetPassword(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "POST", "/forgotPassword", dto.ForgotPasswordRequest{Email: "test@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, "PUT", "/resetPassword/raw-token", dto.ResetPasswordRequest{NewPassword: "newpass1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "raw-token", mockUsecase.LastResetToken)

	mockUsecase.ShouldFailResetPassword = true
	w = doJSON(r, "PUT", "/resetPassword/raw-token", dto.ResetPasswordRequest{NewPassword: "newpass1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "token expired or invalid")
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	mockUsecase.ShouldFailForgotPassword = true
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "POST", "/forgotPassword", dto.ForgotPasswordRequest{Email: "ghost@example.com"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfile_UsesCaller(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "GET", "/getProfile", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "caller-1", mockUsecase.LastPrincipalID)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestGetByID_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	mockUsecase.ShouldFailGetByID = true
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "GET", "/users/unknown", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w)
	assert.Equal(t, false, env["status"])
	assert.Equal(t, "User not found", env["message"])
}

func TestList_Paginates(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleAdmin)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "GET", "/users?page=1&limit=1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w)
	data := env["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	assert.Nil(t, data["nextPage"])
	assert.Nil(t, data["prevPage"])
	assert.Len(t, data["items"], 1)
}

func TestList_InternalErrorIsHidden(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleAdmin)
	mockUsecase.ShouldFailList = true
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "GET", "/users", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateProfile(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))
	name := "renamed"

	w := doJSON(r, "PUT", "/updateProfile", dto.UpdateProfileRequest{UserName: &name})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "renamed")
	assert.Equal(t, "caller-1", mockUsecase.LastPrincipalID)
	assert.Nil(t, mockUsecase.LastUpdate.Mobile)

	mockUsecase.ShouldFailUpdate = true
	mobile := "09000000000"
	w = doJSON(r, "PUT", "/updateProfile", dto.UpdateProfileRequest{Mobile: &mobile})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestChangePassword_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	mockUsecase.ShouldFailChangePassword = true
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "PUT", "/changePassword", dto.ChangePasswordRequest{OldPassword: "wrong1", NewPassword: "newpass1"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestToggleSavedPost(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "POST", "/save", dto.BlogRefRequest{BlogID: "post-1"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "blog saved")

	mockUsecase.Saved = false
	w = doJSON(r, "POST", "/save", dto.BlogRefRequest{BlogID: "post-1"})
	assert.Contains(t, w.Body.String(), "blog removed from saved list")

	w = doJSON(r, "POST", "/save", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "request body is required")

	mockUsecase.ShouldFailToggleSaved = true
	w = doJSON(r, "POST", "/save", dto.BlogRefRequest{BlogID: "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetSavedPosts(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleUser)
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "GET", "/saved", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Saved post")
	assert.Contains(t, w.Body.String(), "admin-1")
}

func TestDelete_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockPrincipalUsecase(entity.RoleAdmin)
	mockUsecase.ShouldFailDelete = true
	r := setupRouter(handler.NewPrincipalHandler(mockUsecase, handler.CookieOptions{}))

	w := doJSON(r, "DELETE", "/users/unknown", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "admin not found")
}
