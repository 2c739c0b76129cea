package repositories

import (
	"amazon-shop/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestOrderRepositoryInsert(t *testing.T) {
	mt := newMockMongo(t)

	mt.Run("sets id and embeds items", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		order := &models.Order{
			UserID:      7,
			Name:        "Alice",
			Address:     "1 Main St",
			PaymentInfo: "************1234",
			Items: []models.CartItem{
				{ProductID: "p1", Name: "Kindle", Price: models.USD(8999), Quantity: 2},
			},
			TotalCost: models.USD(17998),
			OrderTime: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
		}
		require.NoError(t, repo.Insert(context.Background(), order))

		oid, err := primitive.ObjectIDFromHex(order.ID)
		require.NoError(t, err)

		sent := mt.GetStartedEvent()
		require.NotNil(t, sent)
		assert.Equal(t, ordersCollection, sent.Command.Lookup("insert").StringValue())
		doc := sent.Command.Lookup("documents", "0").Document()
		assert.Equal(t, oid, doc.Lookup("_id").ObjectID())
		assert.Equal(t, int64(17998), doc.Lookup("total_cost", "amount").AsInt64())
		assert.Equal(t, "Kindle", doc.Lookup("items", "0", "name").StringValue())
		assert.Equal(t, int64(2), doc.Lookup("items", "0", "quantity").AsInt64())
	})

	mt.Run("write error leaves id empty", func(mt *mtest.T) {
		repo := NewOrderRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		order := &models.Order{Name: "Alice", TotalCost: models.USD(1)}
		require.Error(t, repo.Insert(context.Background(), order))
		assert.Empty(t, order.ID)
	})
}
