package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thetensy/tensy-api/internal/domain/catalog"
)

// Products returns the product catalog.
func (h *Handler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": catalog.Products()})
}

// Styles returns the design style references.
func (h *Handler) Styles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": catalog.Styles()})
}

// Portfolio returns the published works.
func (h *Handler) Portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"portfolio": catalog.Portfolio()})
}
