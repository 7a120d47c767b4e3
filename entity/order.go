package entity

import "time"

// Order rows are created by the public storefront; this service only reads
// them and advances their status.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	TotalAmount     int64       `json:"total_amount"`
	Status          OrderStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	DeliveryAddress string      `json:"delivery_address"`
	Phone           string      `json:"phone"`
	CreatedAt       time.Time   `json:"created_at"`

	UserID *uint `json:"user_id,omitempty"`
	User   *User `json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID       uint  `gorm:"primaryKey" json:"id"`
	OrderID  uint  `json:"order_id"`
	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"` // unit price snapshot at order time

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"`

	MenuItemName string `gorm:"-" json:"menu_item_name,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderRow is an order joined with its customer, as the admin list shows it.
type OrderRow struct {
	Order
	UserName  string `json:"user_name,omitempty"`
	UserEmail string `json:"user_email,omitempty"`
}
