// Package servers holds the HTTP bindings of the Fastfood API described in
// openapi.yml: wire types, the ServerInterface implemented by the inbound
// adapter and the echo routing that binds path and query parameters.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	BearerAuthScopes = "bearerAuth.Scopes"
)

// Defines values for OrderStatus.
const (
	OrderStatusAssigned  OrderStatus = "assigned"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusPending   OrderStatus = "pending"
)

// CreatedFood defines model for CreatedFood.
type CreatedFood struct {
	Id openapi_types.UUID `json:"id"`
}

// CreatedOrder defines model for CreatedOrder.
type CreatedOrder struct {
	EstimateMinutes int                `json:"estimateMinutes"`
	Id              openapi_types.UUID `json:"id"`
}

// Currency Price currency. Accepted case-insensitively; "rubl" is an alias of "rub".
type Currency = string

// DeliveryRecord defines model for DeliveryRecord.
type DeliveryRecord struct {
	DeliveredAt     time.Time          `json:"deliveredAt"`
	FoodId          openapi_types.UUID `json:"foodId"`
	Id              openapi_types.UUID `json:"id"`
	Quantity        int                `json:"quantity"`
	StaffId         openapi_types.UUID `json:"staffId"`
	TotalIncome     int64              `json:"totalIncome"`
	TotalIncomeText string             `json:"totalIncomeText"`
}

// DeliveryReport defines model for DeliveryReport.
type DeliveryReport struct {
	Month           int              `json:"month"`
	Records         []DeliveryRecord `json:"records"`
	TotalIncome     int64            `json:"totalIncome"`
	TotalIncomeText string           `json:"totalIncomeText"`
	Year            int              `json:"year"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Food defines model for Food.
type Food struct {
	AverageRating float64            `json:"averageRating"`
	Currency      Currency           `json:"currency"`
	Description   string             `json:"description"`
	Id            openapi_types.UUID `json:"id"`
	Media         []string           `json:"media"`
	Name          string             `json:"name"`
	Pickup        Location           `json:"pickup"`
	Price         int64              `json:"price"`
	RatedUsers    int                `json:"ratedUsers"`
}

// FoodDetails defines model for FoodDetails.
type FoodDetails struct {
	Currency    *Currency `json:"currency,omitempty"`
	Description *string   `json:"description,omitempty"`
	Name        string    `json:"name"`
	Pickup      Location  `json:"pickup"`
	Price       int64     `json:"price"`
}

// Location defines model for Location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// NewFood defines model for NewFood.
type NewFood struct {
	Currency    *Currency `json:"currency,omitempty"`
	Description *string   `json:"description,omitempty"`
	Media       *[]string `json:"media,omitempty"`
	Name        string    `json:"name"`
	Pickup      Location  `json:"pickup"`
	Price       int64     `json:"price"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Destination Location           `json:"destination"`
	FoodId      openapi_types.UUID `json:"foodId"`
	Quantity    int                `json:"quantity"`
}

// Order defines model for Order.
type Order struct {
	CreatedAt       time.Time           `json:"createdAt"`
	Deadline        time.Time           `json:"deadline"`
	Destination     Location            `json:"destination"`
	EstimateMinutes int                 `json:"estimateMinutes"`
	FoodId          openapi_types.UUID  `json:"foodId"`
	Id              openapi_types.UUID  `json:"id"`
	Quantity        int                 `json:"quantity"`
	StaffId         *openapi_types.UUID `json:"staffId,omitempty"`
	Status          OrderStatus         `json:"status"`
	UserId          openapi_types.UUID  `json:"userId"`
}

// OrderStatus defines model for Order.Status.
type OrderStatus string

// Rating defines model for Rating.
type Rating struct {
	Rate int `json:"rate"`
}

// Score defines model for Score.
type Score struct {
	AverageRating float64 `json:"averageRating"`
	RatedUsers    int     `json:"ratedUsers"`
}

// FoodId defines model for FoodId.
type FoodId = openapi_types.UUID

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// ListDeliveriesParams defines parameters for ListDeliveries.
type ListDeliveriesParams struct {
	Year    int                 `form:"year" json:"year"`
	Month   int                 `form:"month" json:"month"`
	StaffId *openapi_types.UUID `form:"staffId,omitempty" json:"staffId,omitempty"`
}

// CreateFoodJSONRequestBody defines body for CreateFood for application/json ContentType.
type CreateFoodJSONRequestBody = NewFood

// UpdateFoodJSONRequestBody defines body for UpdateFood for application/json ContentType.
type UpdateFoodJSONRequestBody = FoodDetails

// RateFoodJSONRequestBody defines body for RateFood for application/json ContentType.
type RateFoodJSONRequestBody = Rating

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder
