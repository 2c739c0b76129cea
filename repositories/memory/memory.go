// Package memory holds process-local stores. They back STORAGE_DRIVER=memory,
// stand in for redis when it is unreachable, and serve as test fixtures.
package memory

import (
	"amazon-shop/models"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductStore struct {
	mu       sync.RWMutex
	order    []string
	products map[string]models.Product
}

func NewProductStore() *ProductStore {
	return &ProductStore{products: make(map[string]models.Product)}
}

func (s *ProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		products = append(products, s.products[id])
	}
	return products, nil
}

func (s *ProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	return &p, nil
}

func (s *ProductStore) FindByName(_ context.Context, name string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if s.products[id].Name == name {
			p := s.products[id]
			return &p, nil
		}
	}
	return nil, models.ErrProductNotFound
}

func (s *ProductStore) Insert(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if product.ID == "" {
		product.ID = primitive.NewObjectID().Hex()
	}
	if _, exists := s.products[product.ID]; !exists {
		s.order = append(s.order, product.ID)
	}
	s.products[product.ID] = *product
	return nil
}

func (s *ProductStore) UpdateDetails(_ context.Context, id, description string, price models.Money) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.ErrProductNotFound
	}
	p.Description = description
	p.Price = price
	s.products[id] = p
	return nil
}

type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{}
}

func (s *OrderStore) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	stored := *order
	stored.Items = append([]models.CartItem(nil), order.Items...)
	s.orders = append(s.orders, stored)
	return nil
}

// All returns a copy of every stored order in insertion order.
func (s *OrderStore) All() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...)
}

type UserStore struct {
	mu     sync.RWMutex
	nextID int
	users  map[int]models.User
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1, users: make(map[int]models.User)}
}

func (s *UserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return models.ErrUsernameTaken
		}
	}

	user.ID = s.nextID
	user.CreatedAt = time.Now().UTC()
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (s *UserStore) FindByID(_ context.Context, id int) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return &u, nil
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// SessionStore keeps serialized sessions so callers never share state
// with the stored copy.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]entry
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]entry), now: time.Now}
}

func (s *SessionStore) Load(_ context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	if e.expired(s.now()) {
		delete(s.sessions, id)
		return nil, models.ErrSessionNotFound
	}

	var sess models.Session
	if err := json.Unmarshal(e.data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) Save(_ context.Context, sess *models.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.sessions[sess.ID] = e
	return nil
}

// Len reports how many sessions are stored, expired ones included.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type CatalogCache struct {
	mu    sync.Mutex
	entry *entry
	now   func() time.Time
}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{now: time.Now}
}

func (c *CatalogCache) GetProducts(_ context.Context) ([]models.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entry == nil || c.entry.expired(c.now()) {
		c.entry = nil
		return nil, models.ErrCacheMiss
	}

	var products []models.Product
	if err := json.Unmarshal(c.entry.data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *CatalogCache) SetProducts(_ context.Context, products []models.Product, ttl time.Duration) error {
	data, err := json.Marshal(products)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e := entry{data: data}
	if ttl > 0 {
		e.expiresAt = c.now().Add(ttl)
	}
	c.entry = &e
	return nil
}

func (c *CatalogCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
	return nil
}
