package services

import (
	"amazon-shop/logging"
	"amazon-shop/metrics"
	"amazon-shop/models"
	"amazon-shop/utils"
	"context"
	"errors"
	"fmt"
	"time"
)

const catalogImageFolder = "catalog"

type CatalogService struct {
	products  ProductStore
	cache     CatalogCache
	cacheTTL  time.Duration
	uploader  ImageUploader
	staticDir string
}

// NewCatalogService builds the catalog. cache and uploader may be nil.
func NewCatalogService(products ProductStore, cache CatalogCache, cacheTTL time.Duration) *CatalogService {
	return &CatalogService{
		products: products,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// WithImageUploader hosts images of newly seeded products found under staticDir.
func (s *CatalogService) WithImageUploader(uploader ImageUploader, staticDir string) *CatalogService {
	s.uploader = uploader
	s.staticDir = staticDir
	return s
}

// Seed upserts every entry by name: absent products are inserted, present
// ones get the entry's description and price. Products missing from seed
// are left alone.
func (s *CatalogService) Seed(ctx context.Context, seed []models.SeedProduct) error {
	for _, entry := range seed {
		existing, err := s.products.FindByName(ctx, entry.Name)
		switch {
		case errors.Is(err, models.ErrProductNotFound):
			product := &models.Product{
				Name:        entry.Name,
				Description: entry.Description,
				Price:       entry.Price,
				ImageURL:    s.hostImage(ctx, entry.ImageURL),
			}
			if err := s.products.Insert(ctx, product); err != nil {
				return fmt.Errorf("insert product %q: %w", entry.Name, err)
			}
			logging.Info().Str("product", entry.Name).Msg("catalog product inserted")
		case err != nil:
			return fmt.Errorf("find product %q: %w", entry.Name, err)
		default:
			if err := s.products.UpdateDetails(ctx, existing.ID, entry.Description, entry.Price); err != nil {
				return fmt.Errorf("update product %q: %w", entry.Name, err)
			}
		}
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *CatalogService) hostImage(ctx context.Context, ref string) string {
	if s.uploader == nil {
		return ref
	}

	localPath, err := utils.LocalImagePath(s.staticDir, ref)
	if err != nil {
		return ref
	}

	url, err := s.uploader.UploadImage(ctx, localPath, catalogImageFolder)
	if err != nil {
		logging.Warn().Err(err).Str("image", ref).Msg("image upload failed, keeping local reference")
		return ref
	}
	return url
}

// ListProducts reads the catalog through the cache. Cache errors fall back
// to the store.
func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		products, err := s.cache.GetProducts(ctx)
		switch {
		case err == nil:
			metrics.CatalogCacheRequests.WithLabelValues("hit").Inc()
			return products, nil
		case errors.Is(err, models.ErrCacheMiss):
			metrics.CatalogCacheRequests.WithLabelValues("miss").Inc()
		default:
			metrics.CatalogCacheRequests.WithLabelValues("error").Inc()
			logging.Warn().Err(err).Msg("catalog cache read failed")
		}
	}

	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products, s.cacheTTL); err != nil {
			logging.Warn().Err(err).Msg("catalog cache write failed")
		}
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *CatalogService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logging.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}
