package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/errors"
	"storefront/internal/service"
)

// ProcurementHandler handles supplier and purchase order endpoints.
type ProcurementHandler struct {
	procurementService service.ProcurementService
}

// NewProcurementHandler creates a new procurement handler.
func NewProcurementHandler(procurementService service.ProcurementService) *ProcurementHandler {
	return &ProcurementHandler{procurementService: procurementService}
}

// CreateSupplierRequest represents a new supplier.
type CreateSupplierRequest struct {
	Name        string `json:"name" validate:"required"`
	ContactInfo string `json:"contact_info"`
	Address     string `json:"address"`
}

// PurchaseOrderItemRequest is one restock line.
type PurchaseOrderItemRequest struct {
	ProductID uint   `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	UnitPrice string `json:"unit_price" validate:"required"`
}

// CreatePurchaseOrderRequest represents a new purchase order.
type CreatePurchaseOrderRequest struct {
	SupplierID uint                       `json:"supplier_id" validate:"required"`
	Items      []PurchaseOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreateSupplier godoc
// @Summary Create a supplier
// @Tags procurement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSupplierRequest true "Supplier data"
// @Success 201 {object} model.Supplier
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /suppliers [post]
func (h *ProcurementHandler) CreateSupplier(c echo.Context) error {
	var req CreateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	supplier, err := h.procurementService.CreateSupplier(c.Request().Context(), req.Name, req.ContactInfo, req.Address)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, supplier)
}

// ListSuppliers godoc
// @Summary List suppliers
// @Tags procurement
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Supplier
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /suppliers [get]
func (h *ProcurementHandler) ListSuppliers(c echo.Context) error {
	suppliers, err := h.procurementService.ListSuppliers(c.Request().Context())
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, suppliers)
}

// CreatePurchaseOrder godoc
// @Summary Create a purchase order
// @Tags procurement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePurchaseOrderRequest true "Purchase order data"
// @Success 201 {object} model.PurchaseOrder
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /purchase-orders [post]
func (h *ProcurementHandler) CreatePurchaseOrder(c echo.Context) error {
	var req CreatePurchaseOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_BODY",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	items := make([]service.PurchaseOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		unitPrice, err := decimal.NewFromString(item.UnitPrice)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid unit price format",
				Code:  "INVALID_AMOUNT",
			})
		}
		items = append(items, service.PurchaseOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
		})
	}

	po, err := h.procurementService.CreatePurchaseOrder(c.Request().Context(), req.SupplierID, items)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, po)
}

// GetPurchaseOrder godoc
// @Summary Get a purchase order by ID
// @Tags procurement
// @Produce json
// @Security BearerAuth
// @Param id path int true "Purchase order ID"
// @Success 200 {object} model.PurchaseOrder
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /purchase-orders/{id} [get]
func (h *ProcurementHandler) GetPurchaseOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	po, err := h.procurementService.GetPurchaseOrder(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, po)
}

// ReceivePurchaseOrder godoc
// @Summary Mark a purchase order as received
// @Tags procurement
// @Produce json
// @Security BearerAuth
// @Param id path int true "Purchase order ID"
// @Success 200 {object} model.PurchaseOrder
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /purchase-orders/{id}/receive [put]
func (h *ProcurementHandler) ReceivePurchaseOrder(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	po, err := h.procurementService.ReceivePurchaseOrder(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, po)
}
