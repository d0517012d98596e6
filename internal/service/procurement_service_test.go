package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// MockSupplierRepository is a mock implementation of SupplierRepository.
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *model.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id uint) (*model.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) List(ctx context.Context) ([]model.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Supplier), args.Error(1)
}

// MockPurchaseOrderRepository is a mock implementation of PurchaseOrderRepository.
type MockPurchaseOrderRepository struct {
	mock.Mock
}

func (m *MockPurchaseOrderRepository) CreateWithItems(ctx context.Context, po *model.PurchaseOrder, items []model.PurchaseOrderItem) error {
	args := m.Called(ctx, po, items)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PurchaseOrder), args.Error(1)
}

func (m *MockPurchaseOrderRepository) UpdateStatus(ctx context.Context, id uint, status model.PurchaseOrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func TestProcurementService_CreatePurchaseOrder(t *testing.T) {
	items := []PurchaseOrderItemInput{
		{ProductID: 1, Quantity: 3, UnitPrice: decimal.RequireFromString("11.50")},
		{ProductID: 2, Quantity: 2, UnitPrice: decimal.RequireFromString("52.00")},
	}

	t.Run("success computes line totals", func(t *testing.T) {
		suppliers := new(MockSupplierRepository)
		purchaseOrders := new(MockPurchaseOrderRepository)
		products := new(MockProductRepository)

		suppliers.On("FindByID", mock.Anything, uint(9)).Return(&model.Supplier{Name: "Acme"}, nil)
		products.On("FindByID", mock.Anything, uint(1)).Return(&model.Product{}, nil)
		products.On("FindByID", mock.Anything, uint(2)).Return(&model.Product{}, nil)
		purchaseOrders.On("CreateWithItems", mock.Anything, mock.AnythingOfType("*model.PurchaseOrder"),
			mock.MatchedBy(func(rows []model.PurchaseOrderItem) bool {
				return len(rows) == 2 &&
					rows[0].TotalPrice.Equal(decimal.RequireFromString("34.50")) &&
					rows[1].TotalPrice.Equal(decimal.RequireFromString("104.00"))
			})).Return(nil)

		svc := NewProcurementService(suppliers, purchaseOrders, products)
		po, err := svc.CreatePurchaseOrder(context.Background(), 9, items)

		assert.NoError(t, err)
		require.NotNil(t, po)
		assert.Equal(t, model.PurchaseOrderStatusPending, po.Status)
		purchaseOrders.AssertExpectations(t)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		suppliers := new(MockSupplierRepository)
		suppliers.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProcurementService(suppliers, new(MockPurchaseOrderRepository), new(MockProductRepository))
		_, err := svc.CreatePurchaseOrder(context.Background(), 9, items)

		assert.ErrorIs(t, err, apperrors.ErrSupplierNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		suppliers := new(MockSupplierRepository)
		products := new(MockProductRepository)
		suppliers.On("FindByID", mock.Anything, uint(9)).Return(&model.Supplier{Name: "Acme"}, nil)
		products.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProcurementService(suppliers, new(MockPurchaseOrderRepository), products)
		_, err := svc.CreatePurchaseOrder(context.Background(), 9, items)

		assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
	})

	t.Run("empty items", func(t *testing.T) {
		svc := NewProcurementService(new(MockSupplierRepository), new(MockPurchaseOrderRepository), new(MockProductRepository))
		_, err := svc.CreatePurchaseOrder(context.Background(), 9, nil)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		suppliers := new(MockSupplierRepository)
		suppliers.On("FindByID", mock.Anything, uint(9)).Return(&model.Supplier{Name: "Acme"}, nil)

		bad := []PurchaseOrderItemInput{{ProductID: 1, Quantity: 0, UnitPrice: decimal.RequireFromString("1.00")}}
		svc := NewProcurementService(suppliers, new(MockPurchaseOrderRepository), new(MockProductRepository))
		_, err := svc.CreatePurchaseOrder(context.Background(), 9, bad)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestProcurementService_ReceivePurchaseOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		purchaseOrders := new(MockPurchaseOrderRepository)
		received := &model.PurchaseOrder{Status: model.PurchaseOrderStatusReceived}
		received.ID = 3
		purchaseOrders.On("UpdateStatus", mock.Anything, uint(3), model.PurchaseOrderStatusReceived).Return(nil)
		purchaseOrders.On("FindByID", mock.Anything, uint(3)).Return(received, nil)

		svc := NewProcurementService(new(MockSupplierRepository), purchaseOrders, new(MockProductRepository))
		po, err := svc.ReceivePurchaseOrder(context.Background(), 3)

		assert.NoError(t, err)
		require.NotNil(t, po)
		assert.Equal(t, model.PurchaseOrderStatusReceived, po.Status)
	})

	t.Run("missing order", func(t *testing.T) {
		purchaseOrders := new(MockPurchaseOrderRepository)
		purchaseOrders.On("UpdateStatus", mock.Anything, uint(99), model.PurchaseOrderStatusReceived).Return(gorm.ErrRecordNotFound)

		svc := NewProcurementService(new(MockSupplierRepository), purchaseOrders, new(MockProductRepository))
		_, err := svc.ReceivePurchaseOrder(context.Background(), 99)

		assert.ErrorIs(t, err, apperrors.ErrPurchaseOrderNotFound)
	})
}
