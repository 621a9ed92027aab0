package dto

import (
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// Envelope wraps every successful response.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorEnvelope wraps every failed response. Status is always false.
type ErrorEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// ListPage is the data of a paginated listing.
type ListPage struct {
	Items    interface{} `json:"items"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	Limit    int         `json:"limit"`
	NextPage *int        `json:"nextPage"`
	PrevPage *int        `json:"prevPage"`
}

// PrincipalResponse is a principal without credentials or reset state.
type PrincipalResponse struct {
	ID         string   `json:"id"`
	UserName   string   `json:"userName"`
	Email      string   `json:"email"`
	Mobile     string   `json:"mobile"`
	Country    string   `json:"country"`
	City       string   `json:"city"`
	Role       string   `json:"role"`
	SavedPosts []string `json:"savedPosts"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

func ToPrincipalResponse(p entity.Principal) PrincipalResponse {
	saved := p.SavedPosts
	if saved == nil {
		saved = []string{}
	}
	return PrincipalResponse{
		ID:         p.ID,
		UserName:   p.UserName,
		Email:      p.Email,
		Mobile:     p.Mobile,
		Country:    p.Country,
		City:       p.City,
		Role:       string(p.Role),
		SavedPosts: saved,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}

func ToPrincipalResponses(ps []entity.Principal) []PrincipalResponse {
	out := make([]PrincipalResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToPrincipalResponse(p))
	}
	return out
}

type LoginResponse struct {
	Principal PrincipalResponse `json:"principal"`
	Token     string            `json:"token"`
}

// PostSummary is the short form of a post used by saved lists.
type PostSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	PostedBy    string `json:"postedBy"`
}

func ToPostSummaries(posts []entity.Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostSummary{
			ID:          p.ID,
			Title:       p.Title,
			Slug:        p.Slug,
			Description: p.Description,
			PostedBy:    p.PostedBy,
		})
	}
	return out
}

// ReactionResponse reports where the caller landed after a reaction toggle.
type ReactionResponse struct {
	BlogID   string `json:"blogId"`
	Reaction string `json:"reaction"`
	Like     bool   `json:"like"`
	Dislike  bool   `json:"dislike"`
}

type SavedToggleResponse struct {
	BlogID string `json:"blogId"`
	Saved  bool   `json:"saved"`
}

type CountResponse struct {
	Count int64 `json:"count"`
}
