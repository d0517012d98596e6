package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "storefront/internal/errors"
	"storefront/internal/logger"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// PurchaseOrderItemInput is one restock line of a new purchase order.
type PurchaseOrderItemInput struct {
	ProductID uint
	Quantity  int
	UnitPrice decimal.Decimal
}

// ProcurementService handles suppliers and purchase orders.
type ProcurementService interface {
	CreateSupplier(ctx context.Context, name, contactInfo, address string) (*model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	CreatePurchaseOrder(ctx context.Context, supplierID uint, items []PurchaseOrderItemInput) (*model.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	ReceivePurchaseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error)
}

type procurementService struct {
	suppliers      repository.SupplierRepository
	purchaseOrders repository.PurchaseOrderRepository
	products       repository.ProductRepository
}

// NewProcurementService creates a new procurement service.
func NewProcurementService(
	suppliers repository.SupplierRepository,
	purchaseOrders repository.PurchaseOrderRepository,
	products repository.ProductRepository,
) ProcurementService {
	return &procurementService{
		suppliers:      suppliers,
		purchaseOrders: purchaseOrders,
		products:       products,
	}
}

func (s *procurementService) CreateSupplier(ctx context.Context, name, contactInfo, address string) (*model.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ErrValidation
	}

	supplier := &model.Supplier{
		Name:        name,
		ContactInfo: contactInfo,
		Address:     address,
	}
	if err := s.suppliers.Create(ctx, supplier); err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Str("name", name).Msg("create supplier")
		return nil, err
	}
	return supplier, nil
}

func (s *procurementService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.suppliers.List(ctx)
}

// CreatePurchaseOrder validates the supplier and products, then inserts the
// order and its items in one transaction. Line totals are quantity times
// unit price, computed server-side.
func (s *procurementService) CreatePurchaseOrder(ctx context.Context, supplierID uint, items []PurchaseOrderItemInput) (*model.PurchaseOrder, error) {
	if supplierID == 0 || len(items) == 0 {
		return nil, apperrors.ErrValidation
	}

	if _, err := s.suppliers.FindByID(ctx, supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSupplierNotFound
		}
		return nil, err
	}

	rows := make([]model.PurchaseOrderItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return nil, apperrors.ErrValidation
		}
		if _, err := s.products.FindByID(ctx, item.ProductID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProductNotFound
			}
			return nil, err
		}
		rows = append(rows, model.PurchaseOrderItem{
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	po := &model.PurchaseOrder{
		SupplierID: supplierID,
		Status:     model.PurchaseOrderStatusPending,
	}
	if err := s.purchaseOrders.CreateWithItems(ctx, po, rows); err != nil {
		lg := logger.Get()
		lg.Error().Err(err).Uint("supplier_id", supplierID).Msg("create purchase order")
		return nil, err
	}
	return po, nil
}

func (s *procurementService) GetPurchaseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	po, err := s.purchaseOrders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPurchaseOrderNotFound
		}
		return nil, err
	}
	return po, nil
}

// ReceivePurchaseOrder marks an order received. Stock adjustment is a manual
// follow-up; this endpoint only records the state.
func (s *procurementService) ReceivePurchaseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	if err := s.purchaseOrders.UpdateStatus(ctx, id, model.PurchaseOrderStatusReceived); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPurchaseOrderNotFound
		}
		lg := logger.Get()
		lg.Error().Err(err).Uint("purchase_order_id", id).Msg("update purchase order status")
		return nil, err
	}
	return s.purchaseOrders.FindByID(ctx, id)
}
