package http

import (
	"net/http"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	marketdomain "github.com/Lexv0lk/secondhand-market/internal/market/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

const searchQueryKey = "search"

type createProductRequestBody struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Price       *int64 `json:"price" binding:"required"`
	ImageUrl    string `json:"imageUrl"`
}

type updateProductRequestBody struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"`
	ImageUrl    *string `json:"imageUrl"`
}

type ProductsHandler struct {
	products  domain.ProductsService
	purchases domain.PurchaseService
	metrics   *metrics.Registry
	logger    logging.Logger
}

func NewProductsHandler(
	products domain.ProductsService,
	purchases domain.PurchaseService,
	registry *metrics.Registry,
	logger logging.Logger,
) *ProductsHandler {
	return &ProductsHandler{
		products:  products,
		purchases: purchases,
		metrics:   registry,
		logger:    logger,
	}
}

func (h *ProductsHandler) List(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context(), c.Query(searchQueryKey))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Get(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.products.GetProduct(c.Request.Context(), productID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) Mine(c *gin.Context) {
	products, err := h.products.ListSellerProducts(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var body createProductRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	product, err := h.products.CreateProduct(
		c.Request.Context(),
		currentUserID(c),
		body.Title,
		body.Description,
		*body.Price,
		body.ImageUrl,
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	var body updateProductRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	patch := marketdomain.ProductPatch{
		Title:       body.Title,
		Description: body.Description,
		Price:       body.Price,
		ImageUrl:    body.ImageUrl,
	}

	product, err := h.products.UpdateProduct(c.Request.Context(), currentUserID(c), productID, patch)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) Delete(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	product, err := h.products.DeleteProduct(c.Request.Context(), currentUserID(c), productID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *ProductsHandler) Purchase(c *gin.Context) {
	productID, ok := pathID(c)
	if !ok {
		return
	}

	order, err := h.purchases.Purchase(c.Request.Context(), currentUserID(c), productID)
	if err != nil {
		result := metrics.PurchaseResultRejected
		if status, _ := classifyError(err); status == http.StatusInternalServerError {
			result = metrics.PurchaseResultFailed
		}

		h.metrics.Purchases.WithLabelValues(result).Inc()
		writeError(c, h.logger, err)
		return
	}

	h.metrics.Purchases.WithLabelValues(metrics.PurchaseResultCompleted).Inc()
	c.JSON(http.StatusCreated, order)
}
