package usecasecontract

import "github.com/mikiasgoitom/Quill/internal/domain/entity"

// RegisterInput carries a new principal's details.
type RegisterInput struct {
	UserName string `validate:"required,min=3,max=20"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=5,max=20"`
	Country  string `validate:"required"`
	City     string `validate:"required"`
	Mobile   string `validate:"required,mobile"`
}

// UpdatePrincipalInput holds the profile fields a principal may change. Nil fields are left untouched.
type UpdatePrincipalInput struct {
	UserName *string `validate:"omitempty,min=3,max=20"`
	Country  *string `validate:"omitempty,min=1"`
	City     *string `validate:"omitempty,min=1"`
	Mobile   *string `validate:"omitempty,mobile"`
}

type CreatePostInput struct {
	Title        string   `validate:"required,min=3,max=120"`
	Description  string   `validate:"required,min=15"`
	Images       []string `validate:"omitempty,dive,required"`
	PostedBy     string   `validate:"required"`
	PostedByRole entity.Role
}

type UpdatePostInput struct {
	Title       *string  `validate:"omitempty,min=3,max=120"`
	Description *string  `validate:"omitempty,min=15"`
	Images      []string `validate:"omitempty,dive,required"`
}

type CategoryInput struct {
	Title string `validate:"required,min=3,max=20"`
	Icon  string
	Color string
}

// Caller identifies the authenticated principal performing an operation.
type Caller struct {
	ID   string
	Role entity.Role
}
