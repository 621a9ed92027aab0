package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

var _ contract.ICategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: db.Collection("categories")}
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	_, err := r.collection.InsertOne(ctx, category)
	return translate("create category", err)
}

func (r *CategoryRepository) findOne(ctx context.Context, op string, filter bson.M) (*entity.Category, error) {
	var category entity.Category
	if err := r.collection.FindOne(ctx, filter).Decode(&category); err != nil {
		return nil, translate(op, err)
	}
	return &category, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	return r.findOne(ctx, "get category by id", bson.M{"_id": id})
}

func (r *CategoryRepository) GetByTitle(ctx context.Context, title string) (*entity.Category, error) {
	return r.findOne(ctx, "get category by title", bson.M{"title": title})
}

func (r *CategoryRepository) List(ctx context.Context, opts contract.ListOptions) ([]entity.Category, int64, error) {
	filter := bson.M{}
	if opts.Search != "" {
		filter["title"] = containsFold(opts.Search)
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(opts.Skip())).
		SetLimit(int64(opts.Limit))

	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, translate("list categories", err)
	}
	defer cursor.Close(ctx)

	categories := []entity.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, 0, translate("decode categories", err)
	}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, translate("count categories", err)
	}
	return categories, total, nil
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, translate("count categories", err)
	}
	return n, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	res, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return translate("update category", err)
	}
	if res.MatchedCount == 0 {
		return contract.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.collection, id)
}
