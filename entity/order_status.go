package entity

// OrderStatus is the closed set of states an order moves through.
// The chain is linear: pending → confirmed → preparing → ready → delivered.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

var statusChain = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// Next returns the successor in the chain. ok is false at delivered,
// there is no further action for a delivered order.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := statusChain[s]
	return next, ok
}

// Known reports whether s is one of the five statuses.
func (s OrderStatus) Known() bool {
	if _, ok := statusChain[s]; ok {
		return true
	}
	return s == StatusDelivered
}

// Label is the display text shown on admin badges.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Yangi buyurtma"
	case StatusConfirmed:
		return "Tasdiqlandi"
	case StatusPreparing:
		return "Tayyorlanmoqda"
	case StatusReady:
		return "Tayyor"
	case StatusDelivered:
		return "Yetkazildi"
	default:
		return string(s)
	}
}

// Color is the badge class set used by the admin dashboard.
func (s OrderStatus) Color() string {
	switch s {
	case StatusPending:
		return "bg-yellow-100 text-yellow-800 border-yellow-200"
	case StatusConfirmed:
		return "bg-blue-100 text-blue-800 border-blue-200"
	case StatusPreparing:
		return "bg-orange-100 text-orange-800 border-orange-200"
	case StatusReady:
		return "bg-green-100 text-green-800 border-green-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}
