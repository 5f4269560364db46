package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusDelivered  = "Delivered"
	StatusCancelled  = "Cancelled"
)

// OrderStatuses lists every value an order status may take.
var OrderStatuses = []string{StatusPending, StatusInProgress, StatusDelivered, StatusCancelled}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Name         string    `gorm:"not null;size:50" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:customer" json:"role"` // customer | admin
	RegisteredAt time.Time `gorm:"autoCreateTime" json:"registeredAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = RoleCustomer
	}
	return nil
}

type Product struct {
	ID        string          `gorm:"primaryKey;type:uuid" json:"id"`
	Name      string          `gorm:"not null;size:100" json:"name"`
	Category  string          `gorm:"size:50;index" json:"category"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	Stock     int             `gorm:"not null;default:0" json:"stock"`
	ImageRef  string          `gorm:"type:text" json:"image"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ShippingDetails is embedded into the orders table as a snapshot taken at checkout.
type ShippingDetails struct {
	FirstName string `gorm:"size:50" json:"firstName"`
	LastName  string `gorm:"size:50" json:"lastName"`
	Email     string `gorm:"size:255" json:"email"`
	Address   string `gorm:"type:text" json:"address"`
}

type Order struct {
	ID              string          `gorm:"primaryKey;type:uuid" json:"id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null;size:32" json:"orderNumber"`
	UserID          string          `gorm:"type:uuid;not null;index" json:"userId"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;" json:"items"`
	TotalAmount     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"totalAmount"`
	ShippingDetails ShippingDetails `gorm:"embedded;embeddedPrefix:shipping_" json:"shippingDetails"`
	Status          string          `gorm:"not null;default:Pending;size:20" json:"status"`
	Verified        bool            `gorm:"not null;default:false" json:"verified"`
	VerifiedAt      *time.Time      `json:"verifiedAt,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}

// OrderItem copies the product name and price so later catalog edits do not
// rewrite past orders.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	OrderID   string          `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string          `gorm:"type:uuid;not null" json:"productId"`
	Name      string          `gorm:"size:100" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unitPrice"`
	Quantity  int             `gorm:"not null" json:"quantity"`
}
