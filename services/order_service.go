package services

import (
	"errors"

	"github.com/Tinesuzb/milano-cafe-uzb/entity"
	"github.com/Tinesuzb/milano-cafe-uzb/repository"

	"gorm.io/gorm"
)

var (
	// ErrUnknownStatus: the target is outside the five-state chain.
	ErrUnknownStatus = errors.New("unknown status")
	// ErrInvalidTransition: the target is known but is not the current
	// status's permitted successor.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrConflict: the guarded update matched no row, a concurrent update
	// moved the order first.
	ErrConflict = errors.New("status changed concurrently")
	ErrNotFound = errors.New("order not found")
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(repo *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: repo}
}

func (s *OrderService) List() ([]entity.OrderRow, error) {
	return s.Repo.ListOrders()
}

func (s *OrderService) Get(orderID uint) (*entity.OrderRow, error) {
	row, err := s.Repo.GetOrder(orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return row, err
}

// SetStatus moves an order along the lifecycle chain. Without force the
// target must be next(current) and the write is guarded on the current
// status; with force any known status is persisted (administrator override).
func (s *OrderService) SetStatus(orderID uint, to entity.OrderStatus, force bool) (*entity.OrderRow, error) {
	if !to.Known() {
		return nil, ErrUnknownStatus
	}

	current, err := s.Get(orderID)
	if err != nil {
		return nil, err
	}

	if force {
		if err := s.Repo.SetStatus(orderID, to); err != nil {
			return nil, err
		}
		return s.Get(orderID)
	}

	next, ok := current.Status.Next()
	if !ok || next != to {
		return nil, ErrInvalidTransition
	}

	affected, err := s.Repo.UpdateStatusGuard(orderID, current.Status, to)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrConflict
	}
	return s.Get(orderID)
}
