package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
)

// translate maps driver errors onto the repository sentinels.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return contract.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w: %v", op, contract.ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// containsFold matches field values containing search, ignoring case.
func containsFold(search string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
}

// replaceVersioned replaces the document with id only when its stored version
// equals version. doc must already carry version+1.
func replaceVersioned(ctx context.Context, coll *mongo.Collection, id string, version int64, doc interface{}) error {
	res, err := coll.ReplaceOne(ctx, bson.M{"_id": id, "version": version}, doc)
	if err != nil {
		return translate("replace", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}
	n, err := coll.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return translate("replace: check existence", err)
	}
	if n == 0 {
		return contract.ErrNotFound
	}
	return contract.ErrVersionConflict
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	res, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return translate("delete", err)
	}
	if res.DeletedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}
