package domain

// OrderStatus is the primary fulfillment stage of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusAccepted  OrderStatus = "Accepted"
	OrderStatusRejected  OrderStatus = "Rejected"
	OrderStatusAssigned  OrderStatus = "Assigned"
	OrderStatusDelivered OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusRejected,
		OrderStatusAssigned, OrderStatusDelivered:
		return true
	}
	return false
}

// PaymentStatus tracks money state independently of fulfillment progress.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	}
	return false
}

// PaymentType distinguishes cash-on-delivery from online payments.
type PaymentType string

const (
	PaymentTypeCOD    PaymentType = "Cash on Delivery"
	PaymentTypeOnline PaymentType = "Online"
)

func (t PaymentType) Valid() bool {
	return t == PaymentTypeCOD || t == PaymentTypeOnline
}

// ReturnStatus is the post-delivery return sub-state, layered on a
// Delivered order. Rejected and Completed are terminal.
type ReturnStatus string

const (
	ReturnStatusNone      ReturnStatus = "None"
	ReturnStatusRequested ReturnStatus = "Requested"
	ReturnStatusApproved  ReturnStatus = "Approved"
	ReturnStatusRejected  ReturnStatus = "Rejected"
	ReturnStatusCompleted ReturnStatus = "Completed"
)

func (s ReturnStatus) Valid() bool {
	switch s {
	case ReturnStatusNone, ReturnStatusRequested, ReturnStatusApproved,
		ReturnStatusRejected, ReturnStatusCompleted:
		return true
	}
	return false
}

// List exports for the enums config endpoint.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusAccepted,
	OrderStatusRejected,
	OrderStatusAssigned,
	OrderStatusDelivered,
}

var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusFailed,
}

var ReturnStatuses = []ReturnStatus{
	ReturnStatusNone,
	ReturnStatusRequested,
	ReturnStatusApproved,
	ReturnStatusRejected,
	ReturnStatusCompleted,
}

var PaymentTypes = []PaymentType{
	PaymentTypeCOD,
	PaymentTypeOnline,
}
