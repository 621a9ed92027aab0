package dto

// RegisterRequest is the body of POST /<family>/register.
type RegisterRequest struct {
	UserName string `json:"userName" binding:"required,min=3,max=20"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5,max=20"`
	Country  string `json:"country" binding:"required"`
	City     string `json:"city" binding:"required"`
	Mobile   string `json:"mobile" binding:"required,mobile"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest holds the profile fields a principal may change. Absent fields are kept.
type UpdateProfileRequest struct {
	UserName *string `json:"userName" binding:"omitempty,min=3,max=20"`
	Country  *string `json:"country" binding:"omitempty,min=1"`
	City     *string `json:"city" binding:"omitempty,min=1"`
	Mobile   *string `json:"mobile" binding:"omitempty,mobile"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=5,max=20"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=5,max=20"`
}

// BlogRefRequest names a post in the body, as used by the save and reaction toggles.
type BlogRefRequest struct {
	BlogID string `json:"blogId" binding:"required"`
}

type CreatePostRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=120"`
	Description string   `json:"description" binding:"required,min=15"`
	Images      []string `json:"images" binding:"omitempty,dive,required"`
}

type UpdatePostRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=120"`
	Description *string  `json:"description" binding:"omitempty,min=15"`
	Images      []string `json:"images" binding:"omitempty,dive,required"`
}

type CommentRequest struct {
	Comment string `json:"comment" binding:"required,max=500"`
}

type UpdateCommentRequest struct {
	NewComment string `json:"newComment" binding:"required,max=500"`
}

type CategoryRequest struct {
	Title string `json:"title" binding:"required,min=3,max=20"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}
