package entity

import (
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
)

// Post is a blog post authored by an admin or super admin.
// Like and Dislike reflect only the most recent reaction recorded on the post,
// not an aggregate over all readers.
type Post struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	PostedBy      string    `bson:"posted_by" json:"postedBy"`
	PostedByRole  Role      `bson:"posted_by_role" json:"postedByRole"`
	Title         string    `bson:"title" json:"title"`
	Slug          string    `bson:"slug" json:"slug"`
	Description   string    `bson:"description" json:"description"`
	Images        []string  `bson:"images" json:"images"`
	Like          bool      `bson:"like" json:"like"`
	Dislike       bool      `bson:"dislike" json:"dislike"`
	LikedUsers    []string  `bson:"liked_users" json:"likedUsers"`
	DislikedUsers []string  `bson:"disliked_users" json:"dislikedUsers"`
	Comments      []Comment `bson:"comments" json:"comments"`
	NumberOfView  int64     `bson:"number_of_view" json:"numberOfView"`
	Version       int64     `bson:"version" json:"-"`
	CreatedAt     time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Comment is embedded in a Post. A post holds at most one comment per principal.
type Comment struct {
	ID              string    `bson:"_id" json:"id"`
	Comment         string    `bson:"comment" json:"comment"`
	CommentedBy     string    `bson:"commented_by" json:"commentedBy"`
	CommentedByRole Role      `bson:"commented_by_role" json:"commentedByRole"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// Reaction is the outcome of toggling a reaction on a post.
type Reaction string

const (
	ReactionLiked    Reaction = "liked"
	ReactionDisliked Reaction = "disliked"
)

// ToggleReaction moves principalID through the like/dislike cycle:
// disliked -> liked, liked -> disliked, none -> liked.
// A principal is never in both LikedUsers and DislikedUsers.
func (p *Post) ToggleReaction(principalID string) Reaction {
	if containsID(p.DislikedUsers, principalID) {
		p.DislikedUsers = removeID(p.DislikedUsers, principalID)
		p.Dislike = false
		p.LikedUsers = append(p.LikedUsers, principalID)
		p.Like = true
		return ReactionLiked
	}

	if containsID(p.LikedUsers, principalID) {
		p.LikedUsers = removeID(p.LikedUsers, principalID)
		p.Like = false
		p.DislikedUsers = append(p.DislikedUsers, principalID)
		p.Dislike = true
		return ReactionDisliked
	}

	p.LikedUsers = append(p.LikedUsers, principalID)
	p.Like = true
	return ReactionLiked
}

// UpsertComment overwrites the text of the principal's existing comment in
// place, or appends a new comment with the given id when there is none.
// The returned bool is true when a new comment was appended.
func (p *Post) UpsertComment(id, principalID string, role Role, text string, now time.Time) (Comment, bool) {
	for i := range p.Comments {
		if p.Comments[i].CommentedBy == principalID {
			p.Comments[i].Comment = text
			p.Comments[i].UpdatedAt = now
			return p.Comments[i], false
		}
	}
	c := Comment{
		ID:              id,
		Comment:         text,
		CommentedBy:     principalID,
		CommentedByRole: role,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.Comments = append(p.Comments, c)
	return c, true
}

// UpdateComment replaces the text of commentID. Only its author may do so.
func (p *Post) UpdateComment(commentID, principalID, text string, now time.Time) (Comment, error) {
	i, err := p.ownedComment(commentID, principalID, "unauthorized to update comment")
	if err != nil {
		return Comment{}, err
	}
	p.Comments[i].Comment = text
	p.Comments[i].UpdatedAt = now
	return p.Comments[i], nil
}

// DeleteComment removes commentID. Only its author may do so.
func (p *Post) DeleteComment(commentID, principalID string) error {
	i, err := p.ownedComment(commentID, principalID, "unauthorized to delete comment")
	if err != nil {
		return err
	}
	p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
	return nil
}

func (p *Post) ownedComment(commentID, principalID, forbidden string) (int, error) {
	for i := range p.Comments {
		if p.Comments[i].ID != commentID {
			continue
		}
		if p.Comments[i].CommentedBy != principalID {
			return -1, apperror.Forbidden(forbidden)
		}
		return i, nil
	}
	return -1, apperror.NotFound("comment not found")
}
