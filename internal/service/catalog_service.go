package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/cache"
	apperrors "storefront/internal/errors"
	"storefront/internal/logger"
	"storefront/internal/model"
	"storefront/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// CreateProductInput carries the fields for a new product.
type CreateProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	PurchasePrice decimal.Decimal
	StockQuantity int
	CategoryID    uint
}

// CatalogService handles product and category operations.
type CatalogService interface {
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id uint) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type catalogService struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	cache      *cache.Client
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(products repository.ProductRepository, categories repository.CategoryRepository, cache *cache.Client) CatalogService {
	return &catalogService{
		products:   products,
		categories: categories,
		cache:      cache,
	}
}

func (s *catalogService) productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

func (s *catalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidation
	}

	category := &model.Category{Name: name}
	if err := s.categories.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrDuplicateCategory
		}
		lg := logger.Get()
		lg.Error().Err(err).Str("name", name).Msg("create category")
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *catalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*model.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.CategoryID == 0 {
		return nil, apperrors.ErrValidation
	}
	if input.Price.IsNegative() || input.PurchasePrice.IsNegative() || input.StockQuantity < 0 {
		return nil, apperrors.ErrValidation
	}

	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}

	product := &model.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		PurchasePrice: input.PurchasePrice,
		StockQuantity: input.StockQuantity,
		CategoryID:    input.CategoryID,
	}
	if err := s.products.Create(ctx, product); err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Str("name", input.Name).Msg("create product")
		return nil, err
	}

	_ = s.cache.Delete(ctx, s.productCacheKey(product.ID))
	return product, nil
}

// GetProduct retrieves a product by ID, cache-aside through Redis.
func (s *catalogService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, s.productCacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProductNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, s.productCacheKey(id), payload, productCacheTTL)
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.products.List(ctx)
}
