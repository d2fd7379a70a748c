package derive_test

import (
	"math"
	"testing"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
)

func TestBMIValue(t *testing.T) {
	t.Parallel()
	got := derive.BMI(70, 175)
	if math.Abs(got-22.857) > 0.01 {
		t.Fatalf("BMI(70, 175) = %.3f, want ~22.857", got)
	}
	if derive.BMI(70, 0) != 0 {
		t.Fatal("zero height must yield 0, not a division panic")
	}
	if derive.BMI(0, 175) != 0 {
		t.Fatal("zero weight must yield 0")
	}
}

func TestBandEdges(t *testing.T) {
	t.Parallel()
	cases := []struct {
		bmi  float64
		want derive.HealthBand
	}{
		{0, derive.BandUnknown},
		{-1, derive.BandUnknown},
		{18.4, derive.BandUnderweight},
		{18.5, derive.BandNormal},
		{24.9, derive.BandNormal},
		{25, derive.BandOverweight},
		{29.9, derive.BandOverweight},
		{30, derive.BandObese1},
		{35, derive.BandObese2},
		{40, derive.BandObese3},
		{55, derive.BandObese3},
	}
	for _, tc := range cases {
		if got := derive.Band(tc.bmi); got != tc.want {
			t.Errorf("Band(%.1f) = %s, want %s", tc.bmi, got, tc.want)
		}
	}
}
