package models

import "time"

// Measurement holds one customer's recorded measurements, keyed by phone
// number. All measurement fields are nullable: an incoming bill only
// overwrites the fields it actually provides (merge semantics), so a customer
// who ordered only pants keeps their shirt measurements untouched.
type Measurement struct {
	ID          int    `json:"-"`
	PhoneNumber string `json:"phone_number"`

	// Pant measurements
	PantLength *float64 `json:"pant_length"`
	PantKamar  *float64 `json:"pant_kamar"`
	PantHips   *float64 `json:"pant_hips"`
	PantWaist  *float64 `json:"pant_waist"`
	PantGhutna *float64 `json:"pant_ghutna"`
	PantBottom *float64 `json:"pant_bottom"`
	PantSeat   *float64 `json:"pant_seat"`
	SidePCross *string  `json:"SideP_Cross"`
	Plates     *string  `json:"Plates"`
	Belt       *string  `json:"Belt"`
	BackP      *string  `json:"Back_P"`
	WP         *string  `json:"WP"`

	// Shirt measurements
	ShirtLength   *float64 `json:"shirt_length"`
	ShirtBody     *string  `json:"shirt_body"`
	ShirtLoose    *string  `json:"shirt_loose"`
	ShirtShoulder *float64 `json:"shirt_shoulder"`
	ShirtAstin    *float64 `json:"shirt_astin"`
	ShirtCollar   *float64 `json:"shirt_collar"`
	ShirtAloose   *float64 `json:"shirt_aloose"`
	Collar        *string  `json:"Callar"`
	Cuff          *string  `json:"Cuff"`
	Pkt           *string  `json:"Pkt"`
	LooseShirt    *string  `json:"LooseShirt"`
	DTTT          *string  `json:"DT_TT"`

	ExtraMeasurements *string `json:"extra_measurements"`

	CreatedAt time.Time  `json:"-"`
	UpdatedAt *time.Time `json:"-"`
}

// Merge copies every non-nil field of in onto m. Nil fields in the incoming
// payload never erase stored values.
func (m *Measurement) Merge(in *Measurement) {
	floats := []struct {
		dst **float64
		src *float64
	}{
		{&m.PantLength, in.PantLength},
		{&m.PantKamar, in.PantKamar},
		{&m.PantHips, in.PantHips},
		{&m.PantWaist, in.PantWaist},
		{&m.PantGhutna, in.PantGhutna},
		{&m.PantBottom, in.PantBottom},
		{&m.PantSeat, in.PantSeat},
		{&m.ShirtLength, in.ShirtLength},
		{&m.ShirtShoulder, in.ShirtShoulder},
		{&m.ShirtAstin, in.ShirtAstin},
		{&m.ShirtCollar, in.ShirtCollar},
		{&m.ShirtAloose, in.ShirtAloose},
	}
	for _, f := range floats {
		if f.src != nil {
			*f.dst = f.src
		}
	}

	strings := []struct {
		dst **string
		src *string
	}{
		{&m.SidePCross, in.SidePCross},
		{&m.Plates, in.Plates},
		{&m.Belt, in.Belt},
		{&m.BackP, in.BackP},
		{&m.WP, in.WP},
		{&m.ShirtBody, in.ShirtBody},
		{&m.ShirtLoose, in.ShirtLoose},
		{&m.Collar, in.Collar},
		{&m.Cuff, in.Cuff},
		{&m.Pkt, in.Pkt},
		{&m.LooseShirt, in.LooseShirt},
		{&m.DTTT, in.DTTT},
		{&m.ExtraMeasurements, in.ExtraMeasurements},
	}
	for _, s := range strings {
		if s.src != nil {
			*s.dst = s.src
		}
	}
}
