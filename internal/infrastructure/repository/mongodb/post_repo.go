package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// PostRepository stores posts with their comments embedded.
type PostRepository struct {
	collection *mongo.Collection
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{collection: db.Collection("posts")}
}

func (r *PostRepository) Create(ctx context.Context, post *entity.Post) error {
	_, err := r.collection.InsertOne(ctx, post)
	return translate("create post", err)
}

func (r *PostRepository) findOne(ctx context.Context, op string, filter bson.M) (*entity.Post, error) {
	var post entity.Post
	if err := r.collection.FindOne(ctx, filter).Decode(&post); err != nil {
		return nil, translate(op, err)
	}
	return &post, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	return r.findOne(ctx, "get post by id", bson.M{"_id": id})
}

func (r *PostRepository) GetByTitle(ctx context.Context, title string) (*entity.Post, error) {
	return r.findOne(ctx, "get post by title", bson.M{"title": title})
}

func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (*entity.Post, error) {
	return r.findOne(ctx, "get post by slug", bson.M{"slug": slug})
}

// GetByIDs returns the posts that still exist among ids, newest first.
func (r *PostRepository) GetByIDs(ctx context.Context, ids []string) ([]entity.Post, error) {
	return r.find(ctx, "get posts by ids", bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
}

func (r *PostRepository) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]entity.Post, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, translate(op, err)
	}
	defer cursor.Close(ctx)

	posts := []entity.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, translate(op, err)
	}
	return posts, nil
}

func (r *PostRepository) List(ctx context.Context, opts contract.ListOptions) ([]entity.Post, int64, error) {
	filter := bson.M{}
	if opts.Search != "" {
		filter["title"] = containsFold(opts.Search)
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	posts, err := r.find(ctx, "list posts", filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translate("count posts", err)
	}
	return posts, total, nil
}

// IncrementViews also bumps the version so a concurrent versioned replace cannot
// write back a stale view count.
func (r *PostRepository) IncrementViews(ctx context.Context, id string) (*entity.Post, error) {
	var post entity.Post
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"number_of_view": 1, "version": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		return nil, translate("increment views", err)
	}
	return &post, nil
}

func (r *PostRepository) Replace(ctx context.Context, post *entity.Post) error {
	next := *post
	next.Version = post.Version + 1
	if err := replaceVersioned(ctx, r.collection, post.ID, post.Version, &next); err != nil {
		return err
	}
	post.Version = next.Version
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
