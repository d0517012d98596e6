package repository

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/model"
)

// PurchaseOrderRepository defines purchase order persistence operations.
type PurchaseOrderRepository interface {
	// CreateWithItems inserts the order and all of its items in a single
	// transaction; either everything lands or nothing does.
	CreateWithItems(ctx context.Context, po *model.PurchaseOrder, items []model.PurchaseOrderItem) error
	FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id uint, status model.PurchaseOrderStatus) error
}

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository.
func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) CreateWithItems(ctx context.Context, po *model.PurchaseOrder, items []model.PurchaseOrderItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(po).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].PurchaseOrderID = po.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		po.Items = items
		return nil
	})
}

func (r *purchaseOrderRepository) FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	if err := r.db.WithContext(ctx).Preload("Items").First(&po, id).Error; err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *purchaseOrderRepository) UpdateStatus(ctx context.Context, id uint, status model.PurchaseOrderStatus) error {
	res := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
