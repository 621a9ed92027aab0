package mongodb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

func toDoc(t testing.TB, v interface{}) bson.D {
	t.Helper()
	raw, err := bson.Marshal(v)
	require.NoError(t, err)
	var doc bson.D
	require.NoError(t, bson.Unmarshal(raw, &doc))
	return doc
}

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func samplePrincipal() entity.Principal {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return entity.Principal{
		ID:         "p-1",
		UserName:   "reader",
		Email:      "reader@quill.test",
		Mobile:     "09123456789",
		Role:       entity.RoleUser,
		SavedPosts: []string{},
		Version:    2,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestPrincipalRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		p := samplePrincipal()
		p.SavedPosts = nil
		require.NoError(mt, repo.Create(context.Background(), &p))
		assert.NotNil(mt, p.SavedPosts)
	})

	mt.Run("create duplicate", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key error"}))

		p := samplePrincipal()
		err := repo.Create(context.Background(), &p)
		assert.ErrorIs(mt, err, contract.ErrDuplicateKey)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		want := samplePrincipal()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt, want)))

		got, err := repo.GetByEmail(context.Background(), want.Email)
		require.NoError(mt, err)
		assert.Equal(mt, want.ID, got.ID)
		assert.Equal(mt, want.Mobile, got.Mobile)
		assert.Equal(mt, int64(2), got.Version)
	})

	mt.Run("get missing", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		_, err := repo.GetByID(context.Background(), "nope")
		assert.ErrorIs(mt, err, contract.ErrNotFound)
	})

	mt.Run("list", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		a, b := samplePrincipal(), samplePrincipal()
		b.ID = "p-2"
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt, a), toDoc(mt, b)),
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(2)}}),
		)

		got, total, err := repo.List(context.Background(), contract.ListOptions{Page: 1, Limit: 10})
		require.NoError(mt, err)
		assert.Len(mt, got, 2)
		assert.Equal(mt, int64(2), total)
	})

	mt.Run("list counts with the search filter", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt, samplePrincipal())),
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)

		_, total, err := repo.List(context.Background(), contract.ListOptions{Page: 1, Limit: 10, Search: "ali"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), total)

		started := mt.GetAllStartedEvents()
		require.Len(mt, started, 2)
		assert.Equal(mt, "aggregate", started[1].CommandName)
		pipeline := started[1].Command.Lookup("pipeline").Array().String()
		assert.Contains(mt, pipeline, "user_name")
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.Count(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})

	mt.Run("replace bumps version", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}, {Key: "nModified", Value: 1}})

		p := samplePrincipal()
		require.NoError(mt, repo.Replace(context.Background(), &p))
		assert.Equal(mt, int64(3), p.Version)
	})

	mt.Run("replace stale version", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}},
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(1)}}),
		)

		p := samplePrincipal()
		err := repo.Replace(context.Background(), &p)
		assert.ErrorIs(mt, err, contract.ErrVersionConflict)
		assert.Equal(mt, int64(2), p.Version)
	})

	mt.Run("replace missing", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(
			bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}},
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch),
		)

		p := samplePrincipal()
		assert.ErrorIs(mt, repo.Replace(context.Background(), &p), contract.ErrNotFound)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewPrincipalRepository(mt.Coll)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		assert.ErrorIs(mt, repo.Delete(context.Background(), "p-1"), contract.ErrNotFound)
	})
}

func TestPostRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	samplePost := func() entity.Post {
		now := time.Now().UTC().Truncate(time.Millisecond)
		return entity.Post{
			ID:            "post-1",
			PostedBy:      "admin-1",
			PostedByRole:  entity.RoleAdmin,
			Title:         "Hello",
			Slug:          "hello",
			Description:   "a long enough description",
			Images:        []string{},
			LikedUsers:    []string{},
			DislikedUsers: []string{},
			Comments:      []entity.Comment{},
			NumberOfView:  4,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
	}

	mt.Run("increment views", func(mt *mtest.T) {
		repo := &PostRepository{collection: mt.Coll}
		updated := samplePost()
		updated.NumberOfView = 5
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: toDoc(mt, updated)}})

		got, err := repo.IncrementViews(context.Background(), "post-1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(5), got.NumberOfView)
	})

	mt.Run("increment views missing", func(mt *mtest.T) {
		repo := &PostRepository{collection: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		_, err := repo.IncrementViews(context.Background(), "nope")
		assert.ErrorIs(mt, err, contract.ErrNotFound)
	})

	mt.Run("list with total", func(mt *mtest.T) {
		repo := &PostRepository{collection: mt.Coll}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt, samplePost())),
			mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, bson.D{{Key: "n", Value: int32(11)}}),
		)

		posts, total, err := repo.List(context.Background(), contract.ListOptions{Page: 2, Limit: 10, Search: "hel"})
		require.NoError(mt, err)
		assert.Len(mt, posts, 1)
		assert.Equal(mt, int64(11), total)
	})

	mt.Run("get by slug", func(mt *mtest.T) {
		repo := &PostRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt, samplePost())))

		got, err := repo.GetBySlug(context.Background(), "hello")
		require.NoError(mt, err)
		assert.Equal(mt, "Hello", got.Title)
	})
}

func TestCategoryRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("update missing", func(mt *mtest.T) {
		repo := &CategoryRepository{collection: mt.Coll}
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.Update(context.Background(), &entity.Category{ID: "c-1", Title: "Go"})
		assert.ErrorIs(mt, err, contract.ErrNotFound)
	})

	mt.Run("get by title", func(mt *mtest.T) {
		repo := &CategoryRepository{collection: mt.Coll}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch, toDoc(mt, entity.Category{ID: "c-1", Title: "Go"})))

		got, err := repo.GetByTitle(context.Background(), "Go")
		require.NoError(mt, err)
		assert.Equal(mt, "c-1", got.ID)
	})
}

func TestContainsFoldEscapes(t *testing.T) {
	re := containsFold("a.b(c")
	assert.Equal(t, `a\.b\(c`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}
