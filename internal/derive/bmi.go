package derive

type HealthBand string

const (
	BandUnknown     HealthBand = "unknown"
	BandUnderweight HealthBand = "underweight"
	BandNormal      HealthBand = "normal"
	BandOverweight  HealthBand = "overweight"
	BandObese1      HealthBand = "obese_class_1"
	BandObese2      HealthBand = "obese_class_2"
	BandObese3      HealthBand = "obese_class_3"
)

// BMI computes body mass index from weight in kilograms and height in
// centimeters. Returns 0 when either value is missing.
func BMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return weightKg / (h * h)
}

// Band maps a BMI value onto the WHO classification used by the profile
// screen: <18.5 underweight, [18.5,25) normal, [25,30) overweight, then
// obesity classes 1-3 in five-point steps.
func Band(bmi float64) HealthBand {
	switch {
	case bmi <= 0:
		return BandUnknown
	case bmi < 18.5:
		return BandUnderweight
	case bmi < 25:
		return BandNormal
	case bmi < 30:
		return BandOverweight
	case bmi < 35:
		return BandObese1
	case bmi < 40:
		return BandObese2
	default:
		return BandObese3
	}
}
