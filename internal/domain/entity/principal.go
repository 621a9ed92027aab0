package entity

import (
	"time"
)

// Principal is any account that can authenticate: a reader, an admin or a super admin.
// All three families share this shape and differ only by Role and collection.
type Principal struct {
	ID                string         `bson:"_id,omitempty" json:"id"`
	UserName          string         `bson:"user_name" json:"userName"`
	Email             string         `bson:"email" json:"email"`
	Mobile            string         `bson:"mobile" json:"mobile"`
	Country           string         `bson:"country" json:"country"`
	City              string         `bson:"city" json:"city"`
	PasswordHash      string         `bson:"password_hash" json:"-"`
	Role              Role           `bson:"role" json:"role"`
	SavedPosts        []string       `bson:"saved_posts" json:"savedPosts"`
	PasswordReset     *PasswordReset `bson:"password_reset,omitempty" json:"-"`
	PasswordChangedAt *time.Time     `bson:"password_changed_at,omitempty" json:"passwordChangedAt,omitempty"`
	Version           int64          `bson:"version" json:"-"`
	CreatedAt         time.Time      `bson:"created_at" json:"createdAt"`
	UpdatedAt         time.Time      `bson:"updated_at" json:"updatedAt"`
}

// PasswordReset is present on a principal only while a reset flow is open.
// Only the hash of the emailed token is kept.
type PasswordReset struct {
	TokenHash string    `bson:"token_hash"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// HasActiveReset reports whether an unexpired reset token is pending.
func (p *Principal) HasActiveReset(now time.Time) bool {
	return p.PasswordReset != nil && now.Before(p.PasswordReset.ExpiresAt)
}

// ToggleSavedPost adds postID to the saved list when absent and removes it
// when present. It returns true when the post is saved after the call.
func (p *Principal) ToggleSavedPost(postID string) bool {
	for i, id := range p.SavedPosts {
		if id == postID {
			p.SavedPosts = append(p.SavedPosts[:i], p.SavedPosts[i+1:]...)
			return false
		}
	}
	p.SavedPosts = append(p.SavedPosts, postID)
	return true
}

// HasSaved reports whether postID is on the saved list.
func (p *Principal) HasSaved(postID string) bool {
	return containsID(p.SavedPosts, postID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
