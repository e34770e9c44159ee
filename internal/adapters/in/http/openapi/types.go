package openapi

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type NewClient struct {
	Name       string  `json:"name" validate:"required,max=255"`
	Cpf        string  `json:"cpf" validate:"required"`
	Email      string  `json:"email" validate:"required,email,max=255"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	PostalCode string  `json:"postalCode" validate:"required"`
}

type Address struct {
	PostalCode   string `json:"postalCode"`
	Street       string `json:"street,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Complement   string `json:"complement,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
}

type Client struct {
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Cpf       string             `json:"cpf"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Address   Address            `json:"address"`
	CreatedAt time.Time          `json:"createdAt"`
}

// NewOrder accepts amounts as JSON numbers; decimal keeps their literal digits.
type NewOrder struct {
	ClientId       openapi_types.UUID `json:"clientId" validate:"required"`
	Distance       decimal.Decimal    `json:"distance"`
	DistanceRate   decimal.Decimal    `json:"distanceRate"`
	Weight         decimal.Decimal    `json:"weight"`
	WeightRate     decimal.Decimal    `json:"weightRate"`
	DeliveryTypeId int64              `json:"deliveryTypeId" validate:"required,min=1"`
}

// Cost carries money with exactly two decimal places, as strings.
type Cost struct {
	DistanceCost string `json:"distanceCost"`
	WeightCost   string `json:"weightCost"`
	Surcharge    string `json:"surcharge"`
	ExtraFee     string `json:"extraFee"`
	Discount     string `json:"discount"`
	FinalCost    string `json:"finalCost"`
}

type OrderCreated struct {
	OrderId    openapi_types.UUID `json:"orderId"`
	DeliveryId openapi_types.UUID `json:"deliveryId"`
	Cost       Cost               `json:"cost"`
}

type DeliveryStatus string

type OrderSummary struct {
	Id             openapi_types.UUID  `json:"id"`
	ClientId       openapi_types.UUID  `json:"clientId"`
	DeliveryTypeId int64               `json:"deliveryTypeId"`
	DeliveryType   string              `json:"deliveryType"`
	Distance       decimal.Decimal     `json:"distance"`
	DistanceRate   decimal.Decimal     `json:"distanceRate"`
	Weight         decimal.Decimal     `json:"weight"`
	WeightRate     decimal.Decimal     `json:"weightRate"`
	CreatedAt      time.Time           `json:"createdAt"`
	DeliveryId     *openapi_types.UUID `json:"deliveryId,omitempty"`
	Status         *DeliveryStatus     `json:"status,omitempty"`
	FinalCost      *string             `json:"finalCost,omitempty"`
}

type OrderDetails struct {
	OrderSummary
	Delivery *Delivery `json:"delivery,omitempty"`
}

type Delivery struct {
	Id             openapi_types.UUID `json:"id"`
	OrderId        openapi_types.UUID `json:"orderId"`
	DeliveryTypeId int64              `json:"deliveryTypeId"`
	DeliveryType   string             `json:"deliveryType"`
	Status         DeliveryStatus     `json:"status"`
	Cost           Cost               `json:"cost"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type StatusChange struct {
	Status string `json:"status" validate:"required,oneof=InTransit Delivered"`
}

// ListOrdersParams defines the query parameters of ListOrders.
type ListOrdersParams struct {
	ClientId *openapi_types.UUID `form:"clientId,omitempty" json:"clientId,omitempty"`
}
