package repositories

import (
	"amazon-shop/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const ordersCollection = "orders"

type orderDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      int                `bson:"user_id"`
	Name        string             `bson:"name"`
	Address     string             `bson:"address"`
	PaymentInfo string             `bson:"payment_info"`
	Items       []models.CartItem  `bson:"items"`
	TotalCost   models.Money       `bson:"total_cost"`
	OrderTime   time.Time          `bson:"order_time"`
}

// OrderRepository is append-only. Items are embedded copies of the cart
// lines, not references to products.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	doc := orderDocument{
		UserID:      order.UserID,
		Name:        order.Name,
		Address:     order.Address,
		PaymentInfo: order.PaymentInfo,
		Items:       order.Items,
		TotalCost:   order.TotalCost,
		OrderTime:   order.OrderTime,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid.Hex()
	}
	return nil
}
