package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"storefront/internal/config"
	"storefront/internal/errors"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	catalogHandler *handler.CatalogHandler,
	orderHandler *handler.OrderHandler,
	procurementHandler *handler.ProcurementHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)

	// Secured routes (require a valid bearer token)
	secured := api.Group("", AuthMiddleware(authService))

	secured.GET("/profile", authHandler.Profile)
	secured.PUT("/change-password", authHandler.ChangePassword)
	secured.GET("/cart", orderHandler.GetCart)
	secured.GET("/orders", orderHandler.ListOrders)
	secured.GET("/orders/:id", orderHandler.GetOrder)

	// Admin routes
	admin := secured.Group("", RequireAdmin())

	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.POST("/products", catalogHandler.CreateProduct)
	admin.POST("/suppliers", procurementHandler.CreateSupplier)
	admin.GET("/suppliers", procurementHandler.ListSuppliers)
	admin.POST("/purchase-orders", procurementHandler.CreatePurchaseOrder)
	admin.GET("/purchase-orders/:id", procurementHandler.GetPurchaseOrder)
	admin.PUT("/purchase-orders/:id/receive", procurementHandler.ReceivePurchaseOrder)
}

// AuthMiddleware extracts the bearer token and resolves it to a user through
// the auth service. The resolved user, not the raw token, lands on the
// context under "user".
func AuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return authService.Authenticate(c.Request().Context(), token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "invalid or missing token",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequireAdmin rejects authenticated users that do not hold the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(*model.User)
			if !ok || !user.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "admin role required",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
