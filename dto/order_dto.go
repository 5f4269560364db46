package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"luxefurnish/domain"
)

type OrderItemRequest struct {
	ProductID string `json:"productId" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type ShippingRequest struct {
	FirstName string `json:"firstName" binding:"required,notblank,max=50"`
	LastName  string `json:"lastName" binding:"required,notblank,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Address   string `json:"address" binding:"required,notblank"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	ShippingDetails ShippingRequest    `json:"shippingDetails"`
}

func MakeCreateOrderInput(userID string, req *CreateOrderRequest) domain.CreateOrderInput {
	items := make([]domain.OrderLine, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderLine{ProductID: item.ProductID, Quantity: item.Quantity}
	}
	return domain.CreateOrderInput{
		UserID: userID,
		Items:  items,
		Shipping: domain.ShippingDetails{
			FirstName: req.ShippingDetails.FirstName,
			LastName:  req.ShippingDetails.LastName,
			Email:     req.ShippingDetails.Email,
			Address:   req.ShippingDetails.Address,
		},
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,orderstatus"`
}

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// OTPCode accepts the code as a JSON string or a JSON number.
type OTPCode string

func (o *OTPCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*o = OTPCode(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("otp must be a string or a number")
	}
	*o = OTPCode(n.String())
	return nil
}

type VerifyOTPRequest struct {
	Email   string  `json:"email" binding:"required,email"`
	OTP     OTPCode `json:"otp" binding:"required"`
	OrderID string  `json:"orderId" binding:"required"`
}
