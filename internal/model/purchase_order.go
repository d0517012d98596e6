package model

import "time"

// PurchaseOrderStatus represents the status of a purchase order.
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending  PurchaseOrderStatus = "Pending"
	PurchaseOrderStatusOrdered  PurchaseOrderStatus = "Ordered"
	PurchaseOrderStatusReceived PurchaseOrderStatus = "Received"
)

// PurchaseOrder restocks products from a supplier.
type PurchaseOrder struct {
	ID         uint                `json:"id" gorm:"primaryKey"`
	SupplierID uint                `json:"supplier_id" gorm:"not null;index"`
	Status     PurchaseOrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`

	// Relations
	Supplier Supplier            `json:"-" gorm:"foreignKey:SupplierID"`
	Items    []PurchaseOrderItem `json:"items,omitempty" gorm:"foreignKey:PurchaseOrderID"`
}
