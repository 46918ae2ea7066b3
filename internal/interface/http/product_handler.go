package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/frontline-homeworks/backend/internal/domain/entity"
	repo "github.com/frontline-homeworks/backend/internal/domain/repository"
	"github.com/frontline-homeworks/backend/pkg/response"
	"github.com/frontline-homeworks/backend/pkg/validation"
)

type ProductHandler struct {
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewProductHandler(products repo.ProductRepository, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Products: products, Logger: logger}
}

type createProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
	// Pointer so "required" means the field is present; 0 is a valid price.
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
}

// List GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	products := h.Products.All()
	response.Success(c, http.StatusOK, products, "products", map[string]any{"count": len(products)})
}

// Get GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid product id", nil)
		return
	}
	p, err := h.Products.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error[any](c, http.StatusNotFound, "product not found", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "failed to fetch product", err.Error())
		return
	}
	response.Success(c, http.StatusOK, p, "product", nil)
}

// ByCategory GET /api/products/category/:category
func (h *ProductHandler) ByCategory(c *gin.Context) {
	products := h.Products.ByCategory(c.Param("category"))
	response.Success(c, http.StatusOK, products, "products", map[string]any{"count": len(products)})
}

// Search GET /api/products/search/:query
func (h *ProductHandler) Search(c *gin.Context) {
	query := c.Param("query")
	products := h.Products.Search(query)
	response.Success(c, http.StatusOK, products, "products", map[string]any{"count": len(products), "query": query})
}

// Create POST /api/products (admin)
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if req.Category == "" {
		req.Category = "uncategorized"
	}
	p := &entity.Product{
		Name:        req.Name,
		Category:    req.Category,
		Price:       *req.Price,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := h.Products.Create(p); err != nil {
		response.Error[any](c, http.StatusInternalServerError, "failed to add product", err.Error())
		return
	}
	h.Logger.WithFields(logrus.Fields{"product_id": p.ID, "name": p.Name}).Info("product added")
	response.Success(c, http.StatusCreated, p, "product added successfully", nil)
}
