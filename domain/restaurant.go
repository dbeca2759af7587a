package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Restaurant struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"column:name;not null" json:"name"`
	Location  string     `gorm:"column:location;not null" json:"location"`
	Rating    float64    `gorm:"column:rating" json:"rating"`
	Menu      []MenuItem `gorm:"foreignKey:RestaurantID" json:"menu,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

type MenuItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	RestaurantID uint            `gorm:"column:restaurant_id;not null;index" json:"restaurant_id"`
	ItemName     string          `gorm:"column:item_name;not null" json:"item_name"`
	Price        decimal.Decimal `gorm:"column:price;type:decimal(6,2);not null" json:"price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}
