package models

import "time"

// Garment types a bill can carry. One Order row is one garment unit.
const (
	GarmentSuit   = "Suit"
	GarmentSafari = "Safari"
	GarmentPant   = "Pant"
	GarmentShirt  = "Shirt"
	GarmentSadri  = "Sadri"
	GarmentJacket = "Jacket"
)

// StatusPending is the only status this backend writes itself; the order
// screens move orders to their other states ("Completed" etc.).
const StatusPending = "Pending"

// Order is a single garment unit of work belonging to a Bill. Reconciliation
// keeps exactly bill.<garment>_qty rows alive per (bill, garment type) pair.
type Order struct {
	ID            int        `json:"id"`
	GarmentType   string     `json:"garment_type"`
	Status        string     `json:"status"`
	OrderDate     time.Time  `json:"-"`
	DueDate       time.Time  `json:"-"`
	TotalAmt      float64    `json:"total_amt"`
	PaymentMode   string     `json:"payment_mode"`
	PaymentStatus string     `json:"payment_status"`
	PaymentAmount float64    `json:"payment_amount"`
	UpdatedAt     *time.Time `json:"-"`
	WorkPay       *float64   `json:"Work_pay"`
	BillNumber    *string    `json:"billnumberinput2"`
	BillID        int        `json:"bill_id"`
}

// OrderShared is the set of fields the reconciler stamps onto every retained
// or newly created order row for a bill submission.
type OrderShared struct {
	OrderDate     time.Time
	DueDate       time.Time
	TotalAmt      float64
	PaymentMode   string
	PaymentStatus string
	PaymentAmount float64
	BillNumber    *string
}

// WorkerRef is the worker summary embedded in order listings.
type WorkerRef struct {
	WorkerID int      `json:"worker_id"`
	Name     string   `json:"name"`
	Rate     *float64 `json:"Rate,omitempty"`
	Suit     *float64 `json:"Suit,omitempty"`
	Jacket   *float64 `json:"Jacket,omitempty"`
	Sadri    *float64 `json:"Sadri,omitempty"`
	Others   *float64 `json:"Others,omitempty"`
}

// OrderDetail is the serialized order for listing and search endpoints,
// with calendar-date strings and assigned worker details.
type OrderDetail struct {
	ID             int         `json:"id"`
	GarmentType    string      `json:"garment_type"`
	Status         string      `json:"status"`
	OrderDate      string      `json:"order_date"`
	DueDate        string      `json:"due_date"`
	TotalAmt       float64     `json:"total_amt"`
	PaymentMode    string      `json:"payment_mode"`
	PaymentStatus  string      `json:"payment_status"`
	PaymentAmount  float64     `json:"payment_amount"`
	BillID         int         `json:"bill_id"`
	BillNumber     *string     `json:"billnumberinput2"`
	Workers        []WorkerRef `json:"workers"`
	WorkPay        *float64    `json:"Work_pay"`
	CustomerMobile *string     `json:"customer_mobile,omitempty"`
}
