package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart is lazily created on the first add-to-cart call and is never
// deleted by checkout. One cart per user, enforced by the unique index.
type Cart struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Items     []CartItem `gorm:"foreignKey:CartID" json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Cart) TableName() string {
	return "carts"
}

// CartItem pairs a cart with a menu item. Re-adding the same menu item
// increments Quantity instead of inserting a second row, guaranteed by
// the composite unique index.
type CartItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CartID     uint      `gorm:"column:cart_id;not null;uniqueIndex:idx_cart_menu_item" json:"cart_id"`
	MenuItemID uint      `gorm:"column:menu_item_id;not null;uniqueIndex:idx_cart_menu_item" json:"menu_item_id"`
	Quantity   int       `gorm:"column:quantity;not null;default:1" json:"quantity"`
	MenuItem   MenuItem  `gorm:"foreignKey:MenuItemID" json:"menu_item"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// CartLine is the view-layer shape of one cart row with its computed subtotal.
type CartLine struct {
	ID         uint            `json:"id"`
	MenuItemID uint            `json:"menu_item_id"`
	ItemName   string          `json:"item_name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CartView is what view-cart and the final-order summary render.
type CartView struct {
	Lines []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// EmptyCartView keeps the empty-cart response shape stable: an empty
// line list and a total of exactly zero.
func EmptyCartView() CartView {
	return CartView{Lines: []CartLine{}, Total: decimal.Zero}
}

// BuildCartView computes per-line subtotals (unit price × quantity) and
// the aggregate total. All arithmetic stays in decimal, never float.
func BuildCartView(lines []CartItem) CartView {
	view := EmptyCartView()

	for _, line := range lines {
		subtotal := line.MenuItem.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		view.Lines = append(view.Lines, CartLine{
			ID:         line.ID,
			MenuItemID: line.MenuItemID,
			ItemName:   line.MenuItem.ItemName,
			UnitPrice:  line.MenuItem.Price,
			Quantity:   line.Quantity,
			Subtotal:   subtotal,
		})
		view.Total = view.Total.Add(subtotal)
	}

	return view
}
