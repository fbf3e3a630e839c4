package models

import "testing"

func fv(v float64) *float64 { return &v }
func sv(v string) *string   { return &v }

func TestMeasurementMerge_KeepsStoredValuesForMissingFields(t *testing.T) {
	stored := &Measurement{
		PhoneNumber: "9876543210",
		PantLength:  fv(40),
		PantKamar:   fv(34),
		ShirtLength: fv(30),
		Collar:      sv("classic"),
	}

	stored.Merge(&Measurement{
		PhoneNumber: "9876543210",
		PantKamar:   fv(36), // updated
		Belt:        sv("yes"),
	})

	if stored.PantLength == nil || *stored.PantLength != 40 {
		t.Fatalf("PantLength lost on merge: %v", stored.PantLength)
	}
	if stored.PantKamar == nil || *stored.PantKamar != 36 {
		t.Fatalf("PantKamar = %v, want 36", stored.PantKamar)
	}
	if stored.Belt == nil || *stored.Belt != "yes" {
		t.Fatalf("Belt not merged: %v", stored.Belt)
	}
	if stored.Collar == nil || *stored.Collar != "classic" {
		t.Fatalf("Collar lost on merge: %v", stored.Collar)
	}
	if stored.ShirtLength == nil || *stored.ShirtLength != 30 {
		t.Fatalf("ShirtLength lost on merge: %v", stored.ShirtLength)
	}
}

func TestDailyExpenseCashCost(t *testing.T) {
	d := &DailyExpense{MaterialCost: fv(200), ChaiPaniCost: fv(20)}
	if got := d.CashCost(); got != 220 {
		t.Fatalf("CashCost = %v, want 220 with nil miscellaneous", got)
	}

	empty := &DailyExpense{}
	if got := empty.CashCost(); got != 0 {
		t.Fatalf("CashCost of empty row = %v, want 0", got)
	}
}
