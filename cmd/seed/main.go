package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/model"
	"storefront/internal/repository"
)

type seedProduct struct {
	Name          string
	Description   string
	Price         string
	PurchasePrice string
	Stock         int
	Category      string
}

var seedCategories = []string{"Electronics", "Books", "Home & Kitchen"}

var seedProducts = []seedProduct{
	{"Wireless Mouse", "2.4GHz optical mouse", "24.99", "11.50", 120, "Electronics"},
	{"Mechanical Keyboard", "Tenkeyless, brown switches", "89.00", "52.00", 45, "Electronics"},
	{"USB-C Hub", "7-in-1 hub with HDMI and card reader", "39.90", "18.75", 80, "Electronics"},
	{"The Go Programming Language", "Donovan & Kernighan", "44.95", "22.00", 30, "Books"},
	{"Clean Architecture", "Robert C. Martin", "34.99", "16.80", 25, "Books"},
	{"French Press", "1L borosilicate glass", "29.50", "12.40", 60, "Home & Kitchen"},
	{"Chef's Knife", "8 inch stainless steel", "54.00", "27.00", 40, "Home & Kitchen"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Supplier{},
		&model.PurchaseOrder{},
		&model.PurchaseOrderItem{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	categories, err := seedCategoryRows(ctx, gormDB, categoryRepo)
	if err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	created, err := seedProductRows(ctx, gormDB, productRepo, categories)
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}

	if err := seedUsers(ctx, gormDB, userRepo); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Println("Seed completed successfully!")
	log.Printf("  - Categories: %d", len(categories))
	log.Printf("  - New products created: %d", created)
}

// seedCategoryRows creates missing categories and returns all of them by name.
func seedCategoryRows(ctx context.Context, gormDB *gorm.DB, repo repository.CategoryRepository) (map[string]uint, error) {
	byName := make(map[string]uint, len(seedCategories))
	for _, name := range seedCategories {
		var existing model.Category
		err := gormDB.WithContext(ctx).Where("name = ?", name).First(&existing).Error
		if err == nil {
			byName[name] = existing.ID
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("error checking category %s: %w", name, err)
		}

		category := &model.Category{Name: name}
		if err := repo.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("error creating category %s: %w", name, err)
		}
		byName[name] = category.ID
	}
	return byName, nil
}

// seedProductRows creates products that do not exist yet, keyed by name.
func seedProductRows(ctx context.Context, gormDB *gorm.DB, repo repository.ProductRepository, categories map[string]uint) (int, error) {
	created := 0
	for _, item := range seedProducts {
		categoryID, ok := categories[item.Category]
		if !ok {
			return created, fmt.Errorf("unknown category for product %s: %s", item.Name, item.Category)
		}

		var existing model.Product
		err := gormDB.WithContext(ctx).Where("name = ?", item.Name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, fmt.Errorf("error checking product %s: %w", item.Name, err)
		}

		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return created, fmt.Errorf("invalid price for product %s: %w", item.Name, err)
		}
		purchasePrice, err := decimal.NewFromString(item.PurchasePrice)
		if err != nil {
			return created, fmt.Errorf("invalid purchase price for product %s: %w", item.Name, err)
		}

		product := &model.Product{
			Name:          item.Name,
			Description:   item.Description,
			Price:         price,
			PurchasePrice: purchasePrice,
			StockQuantity: item.Stock,
			CategoryID:    categoryID,
		}
		if err := repo.Create(ctx, product); err != nil {
			return created, fmt.Errorf("error creating product %s: %w", item.Name, err)
		}
		created++
	}
	return created, nil
}

// seedUsers creates an admin and a demo customer when they are missing.
// Passwords are fixed and only suitable for local development.
func seedUsers(ctx context.Context, gormDB *gorm.DB, repo repository.UserRepository) error {
	hasher := auth.NewBcryptHasher()

	users := []struct {
		name     string
		email    string
		password string
		role     string
	}{
		{"Admin", "admin@storefront.local", "admin123", model.RoleAdmin},
		{"Demo Customer", "customer@storefront.local", "customer123", model.RoleCustomer},
	}

	for _, u := range users {
		_, err := repo.FindByEmail(ctx, u.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("error checking user %s: %w", u.email, err)
		}

		hash, err := hasher.Hash(u.password)
		if err != nil {
			return fmt.Errorf("error hashing password for %s: %w", u.email, err)
		}
		user := &model.User{
			Name:         u.name,
			Email:        u.email,
			PasswordHash: hash,
			Role:         u.role,
		}
		if err := repo.Create(ctx, user); err != nil {
			return fmt.Errorf("error creating user %s: %w", u.email, err)
		}
		log.Printf("  - Created user %s (%s)", u.email, u.role)
	}
	return nil
}
