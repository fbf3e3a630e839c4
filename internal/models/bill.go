package models

import "time"

// Bill is one customer visit covering one or more garments. The per-garment
// quantity columns drive order reconciliation: re-submitting a bill with new
// quantities converges the order rows for each garment type.
type Bill struct {
	ID            int       `json:"id"`
	CustomerName  string    `json:"customer_name"`
	MobileNumber  string    `json:"mobile_number"`
	DateIssue     time.Time `json:"date_issue"`
	DeliveryDate  time.Time `json:"delivery_date"`
	SuitQty       int       `json:"suit_qty"`
	SafariQty     int       `json:"safari_qty"`
	PantQty       int       `json:"pant_qty"`
	ShirtQty      int       `json:"shirt_qty"`
	SadriQty      int       `json:"sadri_qty"`
	TotalQty      int       `json:"total_qty"`
	TodayDate     time.Time `json:"today_date"`
	DueDate       time.Time `json:"due_date"`
	TotalAmt      float64   `json:"total_amt"`
	PaymentMode   string    `json:"payment_mode"`
	PaymentStatus string    `json:"payment_status"`
	PaymentAmount float64   `json:"payment_amount"`
}

// GarmentQuantities returns the bill's per-garment quantities in the fixed
// reconciliation order.
func (b *Bill) GarmentQuantities() []GarmentQty {
	return []GarmentQty{
		{GarmentSuit, b.SuitQty},
		{GarmentSafari, b.SafariQty},
		{GarmentPant, b.PantQty},
		{GarmentShirt, b.ShirtQty},
		{GarmentSadri, b.SadriQty},
	}
}

type GarmentQty struct {
	Garment string
	Qty     int
}

// NewBillRequest is the POST /api/new-bill payload. It carries the bill
// fields and the customer's measurement fields in one flat document, the way
// the billing screen submits them.
type NewBillRequest struct {
	CustomerName  string   `json:"customerName"`
	MobileNo      string   `json:"mobileNo"`
	DateIssue     string   `json:"dateIssue"`
	DeliveryDate  string   `json:"deliveryDate"`
	TodayDate     string   `json:"todayDate"`
	DueDate       string   `json:"dueDate"`
	SuitQty       int      `json:"suitQty"`
	SafariQty     int      `json:"safariQty"`
	PantQty       int      `json:"pantQty"`
	ShirtQty      int      `json:"shirtQty"`
	SadriQty      int      `json:"sadriQty"`
	TotalQty      int      `json:"totalQty"`
	TotalAmt      float64  `json:"totalAmt"`
	PaymentMode   string   `json:"paymentMode"`
	PaymentStatus string   `json:"paymentStatus"`
	PaymentAmount *float64 `json:"payment_amount"`
	BillNumber    *string  `json:"billnumberinput2"`

	// Pant measurements
	PantLength *float64 `json:"pantLength"`
	PantKamar  *float64 `json:"pantKamar"`
	PantHips   *float64 `json:"pantHips"`
	PantWaist  *float64 `json:"pantWaist"`
	PantGhutna *float64 `json:"pantGhutna"`
	PantBottom *float64 `json:"pantBottom"`
	PantSeat   *float64 `json:"pantSeat"`
	SidePCross *string  `json:"SideP_Cross"`
	Plates     *string  `json:"Plates"`
	Belt       *string  `json:"Belt"`
	BackP      *string  `json:"Back_P"`
	WP         *string  `json:"WP"`

	// Shirt measurements
	ShirtLength   *float64 `json:"shirtLength"`
	ShirtBody     *string  `json:"shirtBody"`
	ShirtLoose    *string  `json:"shirtLoose"`
	ShirtShoulder *float64 `json:"shirtShoulder"`
	ShirtAstin    *float64 `json:"shirtAstin"`
	ShirtCollar   *float64 `json:"shirtCollar"`
	ShirtAloose   *float64 `json:"shirtAloose"`
	Collar        *string  `json:"Callar"`
	Cuff          *string  `json:"Cuff"`
	Pkt           *string  `json:"Pkt"`
	LooseShirt    *string  `json:"LooseShirt"`
	DTTT          *string  `json:"DT_TT"`

	ExtraMeasurements *string `json:"extraMeasurements"`
}

// MeasurementInput extracts the measurement fields of the request as a
// Measurement suitable for merging into the stored row.
func (r *NewBillRequest) MeasurementInput() *Measurement {
	return &Measurement{
		PhoneNumber:       r.MobileNo,
		PantLength:        r.PantLength,
		PantKamar:         r.PantKamar,
		PantHips:          r.PantHips,
		PantWaist:         r.PantWaist,
		PantGhutna:        r.PantGhutna,
		PantBottom:        r.PantBottom,
		PantSeat:          r.PantSeat,
		SidePCross:        r.SidePCross,
		Plates:            r.Plates,
		Belt:              r.Belt,
		BackP:             r.BackP,
		WP:                r.WP,
		ShirtLength:       r.ShirtLength,
		ShirtBody:         r.ShirtBody,
		ShirtLoose:        r.ShirtLoose,
		ShirtShoulder:     r.ShirtShoulder,
		ShirtAstin:        r.ShirtAstin,
		ShirtCollar:       r.ShirtCollar,
		ShirtAloose:       r.ShirtAloose,
		Collar:            r.Collar,
		Cuff:              r.Cuff,
		Pkt:               r.Pkt,
		LooseShirt:        r.LooseShirt,
		DTTT:              r.DTTT,
		ExtraMeasurements: r.ExtraMeasurements,
	}
}
