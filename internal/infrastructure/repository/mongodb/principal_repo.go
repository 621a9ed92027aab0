package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// PrincipalRepository stores one principal family in its own collection.
type PrincipalRepository struct {
	collection *mongo.Collection
}

var _ contract.IPrincipalRepository = (*PrincipalRepository)(nil)

func NewPrincipalRepository(collection *mongo.Collection) *PrincipalRepository {
	return &PrincipalRepository{collection: collection}
}

// NewPrincipalRepositoryForRole opens the collection belonging to role.
func NewPrincipalRepositoryForRole(db *mongo.Database, role entity.Role) *PrincipalRepository {
	return NewPrincipalRepository(db.Collection(role.Collection()))
}

func (r *PrincipalRepository) Create(ctx context.Context, principal *entity.Principal) error {
	if principal.SavedPosts == nil {
		principal.SavedPosts = []string{}
	}
	_, err := r.collection.InsertOne(ctx, principal)
	return translate("create principal", err)
}

func (r *PrincipalRepository) findOne(ctx context.Context, op string, filter bson.M) (*entity.Principal, error) {
	var principal entity.Principal
	if err := r.collection.FindOne(ctx, filter).Decode(&principal); err != nil {
		return nil, translate(op, err)
	}
	return &principal, nil
}

func (r *PrincipalRepository) GetByID(ctx context.Context, id string) (*entity.Principal, error) {
	return r.findOne(ctx, "get principal by id", bson.M{"_id": id})
}

func (r *PrincipalRepository) GetByEmail(ctx context.Context, email string) (*entity.Principal, error) {
	return r.findOne(ctx, "get principal by email", bson.M{"email": email})
}

func (r *PrincipalRepository) GetByMobile(ctx context.Context, mobile string) (*entity.Principal, error) {
	return r.findOne(ctx, "get principal by mobile", bson.M{"mobile": mobile})
}

// GetByResetTokenHash applies the expiry in the query so expired tokens are never matched.
func (r *PrincipalRepository) GetByResetTokenHash(ctx context.Context, hash string, now time.Time) (*entity.Principal, error) {
	return r.findOne(ctx, "get principal by reset token", bson.M{
		"password_reset.token_hash": hash,
		"password_reset.expires_at": bson.M{"$gt": now},
	})
}

func (r *PrincipalRepository) List(ctx context.Context, opts contract.ListOptions) ([]entity.Principal, int64, error) {
	filter := bson.M{}
	if opts.Search != "" {
		filter["user_name"] = containsFold(opts.Search)
	}
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if opts.Limit > 0 {
		findOpts.SetSkip(int64(opts.Skip())).SetLimit(int64(opts.Limit))
	}

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, translate("list principals", err)
	}
	defer cursor.Close(ctx)

	principals := []entity.Principal{}
	if err := cursor.All(ctx, &principals); err != nil {
		return nil, 0, translate("decode principals", err)
	}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translate("count principals", err)
	}
	return principals, total, nil
}

func (r *PrincipalRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, translate("count principals", err)
	}
	return n, nil
}

func (r *PrincipalRepository) Replace(ctx context.Context, principal *entity.Principal) error {
	next := *principal
	next.Version = principal.Version + 1
	if next.SavedPosts == nil {
		next.SavedPosts = []string{}
	}
	if err := replaceVersioned(ctx, r.collection, principal.ID, principal.Version, &next); err != nil {
		return err
	}
	principal.Version = next.Version
	return nil
}

func (r *PrincipalRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
