package dto

import "github.com/phi-h-nguyen/modernfi-take-home/internal/domain/models"

// CreateOrderRequest is the JSON body accepted by POST /api/orders.
//
// Quantity and Yield are pointers so that "absent" and "zero" are
// distinguishable during validation: a missing field must report
// "missing required field", not "must be positive".
type CreateOrderRequest struct {
	Side         string   `json:"side" example:"Buy"`
	Tenor        string   `json:"tenor" example:"10Y"`
	IssuanceType string   `json:"issuance_type" example:"OTR"`
	Quantity     *float64 `json:"quantity" example:"1000000"`
	Yield        *float64 `json:"yield" example:"4.58"`
	Notes        string   `json:"notes,omitempty"`
}

// CreateOrderResponse is returned with status 201 on successful insert.
type CreateOrderResponse struct {
	Message string `json:"message" example:"Order created successfully"`
	OrderID int64  `json:"order_id" example:"42"`
}

// ListOrdersResponse is the body of GET /api/orders.
type ListOrdersResponse struct {
	Orders []models.Order `json:"orders"`
	Count  int            `json:"count" example:"3"`
}
