package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"column:user_id;not null;index" json:"user_id"`
	Reference     string          `gorm:"column:reference;unique;not null" json:"reference"`
	PaymentMethod string          `gorm:"column:payment_method;not null" json:"payment_method"`
	TotalPrice    decimal.Decimal `gorm:"column:total_price;type:decimal(10,2);default:0" json:"total_price"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	OrderedAt     time.Time       `gorm:"column:ordered_at;autoCreateTime" json:"ordered_at"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	OrderID    uint     `gorm:"column:order_id;not null;index" json:"order_id"`
	MenuItemID uint     `gorm:"column:menu_item_id;not null" json:"menu_item_id"`
	Quantity   int      `gorm:"column:quantity;not null;default:1" json:"quantity"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID" json:"menu_item"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
