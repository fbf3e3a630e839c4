package services

import (
	"testing"

	"tailor-backend/internal/models"
)

func rate(v float64) *float64 { return &v }

func TestWorkPayFor_UsesGarmentRateWithGenericFallback(t *testing.T) {
	workers := []*models.Worker{
		{ID: 1, Name: "Ramesh", Rate: rate(100), Suit: rate(400), Jacket: rate(350), Sadri: rate(250)},
		{ID: 2, Name: "Suresh", Rate: rate(80)}, // no dedicated rates
	}

	cases := []struct {
		garment  string
		expected float64
	}{
		{models.GarmentSuit, 480},   // 400 dedicated + 80 fallback
		{models.GarmentJacket, 430}, // 350 + 80
		{models.GarmentSadri, 330},  // 250 + 80
		{models.GarmentPant, 180},   // no dedicated pant rate: 100 + 80
		{models.GarmentShirt, 180},
	}
	for _, tc := range cases {
		if got := WorkPayFor(workers, tc.garment); got != tc.expected {
			t.Fatalf("WorkPayFor(%s) = %v, want %v", tc.garment, got, tc.expected)
		}
	}
}

func TestWorkPayFor_MissingRatesCountZero(t *testing.T) {
	workers := []*models.Worker{{ID: 1, Name: "Naya"}}

	if got := WorkPayFor(workers, models.GarmentSuit); got != 0 {
		t.Fatalf("WorkPayFor with no rates = %v, want 0", got)
	}
	if got := WorkPayFor(nil, models.GarmentSuit); got != 0 {
		t.Fatalf("WorkPayFor with no workers = %v, want 0", got)
	}
}
