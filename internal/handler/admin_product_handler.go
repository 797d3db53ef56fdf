package handler

import (
	"net/http"
	"strconv"

	"storefront/internal/config"
	"storefront/internal/middleware"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 管理者用の商品CRUD
type AdminProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewAdminProductHandler(uc *usecase.ProductUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

type ProductRequest struct {
	Name         string `json:"name"`
	Price        string `json:"price"` // "1234.50" のような10進文字列
	Stock        int64  `json:"stock"`
	StockMinimum int64  `json:"stock_minimum"`
	CategoryID   int64  `json:"category_id"`
	ImagePath    string `json:"image_path"`
}

func (h *AdminProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/admin/products")
	g.Use(middleware.AuthJWT(cfg))
	g.Use(middleware.AdminRoleGuard())

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *AdminProductHandler) bindInput(c echo.Context) (usecase.ProductInput, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return usecase.ProductInput{}, usecase.NewAppError(usecase.KindValidation, "invalid body")
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return usecase.ProductInput{}, usecase.NewAppError(usecase.KindValidation, "invalid price")
	}

	return usecase.ProductInput{
		Name:         req.Name,
		Price:        price,
		Stock:        req.Stock,
		StockMinimum: req.StockMinimum,
		CategoryID:   req.CategoryID,
		ImagePath:    req.ImagePath,
	}, nil
}

func (h *AdminProductHandler) create(c echo.Context) error {
	in, err := h.bindInput(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *AdminProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	in, err := h.bindInput(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.uc.Update(c.Request().Context(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
