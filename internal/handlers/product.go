package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Aben-G/E-commerce-main/internal/logging"
	"github.com/Aben-G/E-commerce-main/internal/models"
	"github.com/Aben-G/E-commerce-main/internal/mykafka"
	"github.com/Aben-G/E-commerce-main/internal/service/search"
)

type ProductHandler struct {
	DB       *gorm.DB
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

type productRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	SKU         string  `json:"sku"`
	Category    string  `json:"category"`
	Stock       uint    `json:"stock"`
	Status      *bool   `json:"status"`
}

func (r *productRequest) status() bool {
	if r.Status == nil {
		return true
	}
	return *r.Status
}

func (h *ProductHandler) publish(c echo.Context, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["productID"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish error", "error", err)
	}
}

func (h *ProductHandler) reindex(c echo.Context, product *models.Product) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.IndexProduct(ctx, h.ES, h.Index, product); err != nil {
		logging.FromContext(c.Request().Context()).Error("es index error", "error", err, "productID", product.ID)
	}
}

func (h *ProductHandler) deindex(c echo.Context, productID uint) {
	if h.ES == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := search.RemoveProduct(ctx, h.ES, h.Index, productID); err != nil {
		logging.FromContext(c.Request().Context()).Error("es remove error", "error", err, "productID", productID)
	}
}

func (h *ProductHandler) GetProducts(c echo.Context) error {
	var products []models.Product
	if err := h.DB.Order("id ASC").Find(&products).Error; err != nil {
		return dbError(err)
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return dbError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Price == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name and price required")
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		SKU:         req.SKU,
		Category:    req.Category,
		Stock:       req.Stock,
		Status:      req.status(),
	}
	if err := h.DB.Create(&product).Error; err != nil {
		return dbError(err)
	}

	h.publish(c, map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})
	h.reindex(c, &product)

	return c.JSON(http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Price == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "name and price required")
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return dbError(err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.ImageURL = req.ImageURL
	product.SKU = req.SKU
	product.Category = req.Category
	product.Stock = req.Stock
	product.Status = req.status()

	if err := h.DB.Save(&product).Error; err != nil {
		return dbError(err)
	}

	h.publish(c, map[string]any{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})
	h.reindex(c, &product)

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		return dbError(err)
	}

	if err := h.DB.Delete(&models.Product{}, id).Error; err != nil {
		return dbError(err)
	}

	h.publish(c, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})
	h.deindex(c, id)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product deleted successfully",
		"product": product,
	})
}
