package repositories

import (
	"amazon-shop/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const productsNamespace = mtest.TestDb + "." + productsCollection

func newMockMongo(t *testing.T) *mtest.T {
	t.Helper()
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func productDoc(id primitive.ObjectID, name string, cents int64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "description", Value: name + " description"},
		{Key: "price", Value: bson.D{{Key: "amount", Value: cents}, {Key: "currency", Value: models.CurrencyUSD}}},
		{Key: "image_url", Value: ""},
	}
}

func TestProductRepositoryFindByID(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)

		_, err := repo.FindByID(context.Background(), "not-hex")
		assert.ErrorIs(t, err, models.ErrProductNotFound)
		assert.Nil(t, mt.GetStartedEvent(), "no query for an id that cannot exist")
	})

	mt.Run("no document", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNamespace, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	mt.Run("found", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNamespace, mtest.FirstBatch, productDoc(id, "Echo Dot", 4999)))

		product, err := repo.FindByID(context.Background(), id.Hex())
		require.NoError(t, err)
		assert.Equal(t, id.Hex(), product.ID)
		assert.Equal(t, "Echo Dot", product.Name)
		assert.Equal(t, models.USD(4999), product.Price)
	})
}

func TestProductRepositoryFindAll(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("decodes every document", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNamespace, mtest.FirstBatch,
			productDoc(first, "Kindle", 8999),
			productDoc(second, "Fire TV Stick", 3999),
		))

		products, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, first.Hex(), products[0].ID)
		assert.Equal(t, "Fire TV Stick", products[1].Name)
		assert.Equal(t, models.USD(3999), products[1].Price)
	})

	mt.Run("empty catalog", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, productsNamespace, mtest.FirstBatch))

		products, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductRepositoryInsertSetsID(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("insert", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		product := &models.Product{Name: "Kindle", Description: "e-reader", Price: models.USD(8999)}
		require.NoError(t, repo.Insert(context.Background(), product))

		oid, err := primitive.ObjectIDFromHex(product.ID)
		require.NoError(t, err)

		sent := mt.GetStartedEvent()
		require.NotNil(t, sent)
		assert.Equal(t, "insert", sent.CommandName)
		assert.Equal(t, oid, sent.Command.Lookup("documents", "0", "_id").ObjectID())
		assert.Equal(t, "Kindle", sent.Command.Lookup("documents", "0", "name").StringValue())
	})

	mt.Run("duplicate name", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		product := &models.Product{Name: "Kindle", Price: models.USD(8999)}
		err := repo.Insert(context.Background(), product)
		require.Error(t, err)
		assert.Empty(t, product.ID)
	})
}

func TestProductRepositoryUpdateDetails(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)

		err := repo.UpdateDetails(context.Background(), "nope", "x", models.USD(1))
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		err := repo.UpdateDetails(context.Background(), primitive.NewObjectID().Hex(), "x", models.USD(1))
		assert.ErrorIs(t, err, models.ErrProductNotFound)
	})

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewProductRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(t, repo.UpdateDetails(context.Background(), id.Hex(), "refreshed", models.USD(7999)))

		sent := mt.GetStartedEvent()
		require.NotNil(t, sent)
		assert.Equal(t, id, sent.Command.Lookup("updates", "0", "q", "_id").ObjectID())
		assert.Equal(t, "refreshed", sent.Command.Lookup("updates", "0", "u", "$set", "description").StringValue())
	})
}
