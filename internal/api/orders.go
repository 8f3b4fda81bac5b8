package api

import (
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/dto"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/domain/models"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/logger"
	"github.com/phi-h-nguyen/modernfi-take-home/internal/storage"
)

// OrdersHandler provides HTTP handlers for the order blotter.
type OrdersHandler struct {
	repo storage.OrdersRepository
}

// NewOrdersHandler constructs a new OrdersHandler instance.
func NewOrdersHandler(repo storage.OrdersRepository) *OrdersHandler {
	return &OrdersHandler{repo: repo}
}

// ListOrders handles GET /api/orders requests.
//
// ListOrders godoc
// @Summary      List orders
// @Description  Returns all orders, newest first
// @Tags         orders
// @Produce      json
// @Success      200  {object}  dto.ListOrdersResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/orders [get]
func (h *OrdersHandler) ListOrders(c *gin.Context) {
	orders, err := h.repo.ListOrders()
	if err != nil {
		logger.L().Error().Err(err).Msg("list orders failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch orders", err))
		return
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{Orders: orders, Count: len(orders)})
}

// CreateOrder handles POST /api/orders requests.
//
// CreateOrder godoc
// @Summary      Create an order
// @Description  Validates and persists a new trade order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      dto.CreateOrderRequest   true  "Order to create"
// @Success      201    {object}  dto.CreateOrderResponse  "Created"
// @Failure      400    {object}  dto.ErrorResponse        "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/orders [post]
func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid JSON body", err))
		return
	}

	if msg := validateOrder(req); msg != "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msg, nil))
		return
	}

	order := models.Order{
		Side:         req.Side,
		Tenor:        req.Tenor,
		IssuanceType: req.IssuanceType,
		Quantity:     *req.Quantity,
		Yield:        *req.Yield,
		Notes:        req.Notes,
	}

	id, err := h.repo.InsertOrder(order)
	if err != nil {
		logger.L().Error().Err(err).Msg("insert order failed")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create order", err))
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Message: "Order created successfully",
		OrderID: id,
	})
}

// validateOrder checks a create request field by field and returns a
// message naming the first missing or invalid field, or "" when the
// request is valid.
func validateOrder(req dto.CreateOrderRequest) string {
	switch {
	case req.Side == "":
		return "missing required field: side"
	case req.Tenor == "":
		return "missing required field: tenor"
	case req.IssuanceType == "":
		return "missing required field: issuance_type"
	case req.Quantity == nil:
		return "missing required field: quantity"
	case req.Yield == nil:
		return "missing required field: yield"
	}

	if !slices.Contains(models.ValidSides, req.Side) {
		return "side must be 'Buy' or 'Sell'"
	}
	if !slices.Contains(models.ValidTenors, req.Tenor) {
		return fmt.Sprintf("invalid tenor, must be one of: %s", strings.Join(models.ValidTenors, ", "))
	}
	if !slices.Contains(models.ValidIssuanceTypes, req.IssuanceType) {
		return "issuance_type must be 'WI', 'OTR', or 'OFTR'"
	}
	if *req.Quantity <= 0 {
		return "quantity must be a positive number"
	}
	if *req.Yield <= 0 {
		return "yield must be a positive number"
	}
	return ""
}
