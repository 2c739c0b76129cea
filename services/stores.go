package services

import (
	"amazon-shop/models"
	"context"
	"time"
)

// ProductStore is the catalog collection.
type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	UpdateDetails(ctx context.Context, id, description string, price models.Money) error
}

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
}

// UserStore is the credential store.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
}

// SessionStore persists sessions keyed by id.
type SessionStore interface {
	Load(ctx context.Context, id string) (*models.Session, error)
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// CatalogCache holds the rendered product list between catalog reads.
type CatalogCache interface {
	GetProducts(ctx context.Context) ([]models.Product, error)
	SetProducts(ctx context.Context, products []models.Product, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

// ImageUploader hosts a local image and returns its public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, localPath, folder string) (string, error)
}

// OrderNotifier tells a customer their order was received.
type OrderNotifier interface {
	SendOrderConfirmation(toEmail string, order *models.Order) error
}
