package repository

import (
	"github.com/Tinesuzb/milano-cafe-uzb/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ListOrders returns every order, newest first, with line items and
// customer/menu names attached.
func (r *OrderRepository) ListOrders() ([]entity.OrderRow, error) {
	var orders []entity.Order
	if err := r.DB.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return r.decorate(orders)
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.OrderRow, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	rows, err := r.decorate([]entity.Order{o})
	if err != nil {
		return nil, err
	}
	return &rows[0], nil
}

// ListIDs returns the current order ID set, used by the event feed watcher.
func (r *OrderRepository) ListIDs() ([]uint, error) {
	var ids []uint
	err := r.DB.Model(&entity.Order{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

// UpdateStatusGuard flips the status only while the row still holds `from`,
// so two concurrent updates cannot both win. Returns rows affected.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// SetStatus persists `to` unconditionally. This is the administrator override path.
func (r *OrderRepository) SetStatus(orderID uint, to entity.OrderStatus) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("status", to).Error
}

// decorate resolves customer and menu item names in two batched lookups
// instead of a join per row.
func (r *OrderRepository) decorate(orders []entity.Order) ([]entity.OrderRow, error) {
	userIDs := make([]uint, 0, len(orders))
	menuIDs := make([]uint, 0)
	for _, o := range orders {
		if o.UserID != nil {
			userIDs = append(userIDs, *o.UserID)
		}
		for _, it := range o.Items {
			menuIDs = append(menuIDs, it.MenuItemID)
		}
	}

	users := map[uint]entity.User{}
	if len(userIDs) > 0 {
		var list []entity.User
		if err := r.DB.Where("id IN ?", userIDs).Find(&list).Error; err != nil {
			return nil, err
		}
		for _, u := range list {
			users[u.ID] = u
		}
	}

	menuNames := map[uint]string{}
	if len(menuIDs) > 0 {
		var list []entity.MenuItem
		if err := r.DB.Select("id, name_uz").Where("id IN ?", menuIDs).Find(&list).Error; err != nil {
			return nil, err
		}
		for _, m := range list {
			menuNames[m.ID] = m.NameUz
		}
	}

	out := make([]entity.OrderRow, 0, len(orders))
	for _, o := range orders {
		for i := range o.Items {
			o.Items[i].MenuItemName = menuNames[o.Items[i].MenuItemID]
		}
		row := entity.OrderRow{Order: o}
		if o.UserID != nil {
			if u, ok := users[*o.UserID]; ok {
				row.UserName = u.Name
				row.UserEmail = u.Email
			}
		}
		out = append(out, row)
	}
	return out, nil
}
