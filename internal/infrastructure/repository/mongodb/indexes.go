package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

func uniqueIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(field + "_unique"),
	}
}

// EnsureIndexes creates the unique indexes backing email, mobile, title and slug uniqueness.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, role := range entity.Roles {
		_, err := db.Collection(role.Collection()).Indexes().CreateMany(ctx, []mongo.IndexModel{
			uniqueIndex("email"),
			uniqueIndex("mobile"),
			{
				Keys:    bson.D{{Key: "password_reset.token_hash", Value: 1}},
				Options: options.Index().SetSparse(true).SetName("reset_token_hash"),
			},
		})
		if err != nil {
			return fmt.Errorf("indexes for %s: %w", role.Collection(), err)
		}
	}

	_, err := db.Collection("posts").Indexes().CreateMany(ctx, []mongo.IndexModel{
		uniqueIndex("title"),
		uniqueIndex("slug"),
		{Keys: bson.D{{Key: "created_at", Value: -1}}, Options: options.Index().SetName("created_at_desc")},
	})
	if err != nil {
		return fmt.Errorf("indexes for posts: %w", err)
	}

	if _, err := db.Collection("categories").Indexes().CreateOne(ctx, uniqueIndex("title")); err != nil {
		return fmt.Errorf("indexes for categories: %w", err)
	}
	return nil
}
