package services

import (
	"amazon-shop/metrics"
	"amazon-shop/models"
	"context"
	"errors"
)

var ErrInvalidQuantity = errors.New("quantity must be a positive whole number")

type CartService struct {
	catalog *CatalogService
}

func NewCartService(catalog *CatalogService) *CartService {
	return &CartService{catalog: catalog}
}

// AddToCart appends a new line for the product. Name and price come from
// the catalog at the time of the add.
func (s *CartService) AddToCart(ctx context.Context, cart *models.Cart, productID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	item := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}
	cart.Add(item)
	metrics.CartLinesAdded.Inc()
	return &item, nil
}

func (s *CartService) RemoveFromCart(cart *models.Cart, productID string) bool {
	return cart.Remove(productID)
}

func (s *CartService) View(cart *models.Cart) ([]models.CartItem, models.Money, error) {
	total, err := cart.Total()
	if err != nil {
		return nil, models.Money{}, err
	}
	return cart.Items, total, nil
}
