package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/frontline-homeworks/backend/internal/interface/http"
	"github.com/frontline-homeworks/backend/internal/interface/middleware"
	"github.com/frontline-homeworks/backend/pkg/helpers"
)

// ProductModule exposes the public catalog and the admin add-product route.
type ProductModule struct {
	Handler *handlers.ProductHandler
	JWT     *helpers.JWTManager
}

func NewProductModule(h *handlers.ProductHandler, jwt *helpers.JWTManager) *ProductModule {
	return &ProductModule{Handler: h, JWT: jwt}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.GET("/products", m.Handler.List)
	rg.GET("/products/:id", m.Handler.Get)
	rg.GET("/products/category/:category", m.Handler.ByCategory)
	rg.GET("/products/search/:query", m.Handler.Search)

	admin := rg.Group("/")
	admin.Use(middleware.Auth(m.JWT), middleware.RequireAdmin())
	{
		admin.POST("/products", m.Handler.Create)
	}
}
