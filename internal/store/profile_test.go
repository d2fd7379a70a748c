package store_test

import (
	"math"
	"testing"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/db"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/derive"
	"github.com/ClaudiuJitea/SnaklessFasting/internal/store"
)

func TestUpdateProfileValidation(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	var verr *store.ValidationError
	if _, err := s.UpdateProfile(db.ProfilePatch{Age: -1}); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error for negative age, got %v", err)
	}
	if _, err := s.UpdateProfile(db.ProfilePatch{Age: 200}); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error for age 200, got %v", err)
	}
	if _, err := s.UpdateProfile(db.ProfilePatch{Height: 400}); !asValidationError(err, &verr) {
		t.Fatalf("expected validation error for height 400, got %v", err)
	}
}

func TestUpdateProfileAndBMI(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	p, err := s.UpdateProfile(db.ProfilePatch{Name: "Sam", Age: 30, Height: 175, Gender: "other"})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if p == nil || p.Name != "Sam" {
		t.Fatalf("unexpected profile %+v", p)
	}
	if got := s.Snapshot().Profile; got == nil || got.Height != 175 {
		t.Fatalf("snapshot profile not updated: %+v", got)
	}

	// No weight recorded yet.
	if bmi, band := s.BMI(); bmi != 0 || band != derive.BandUnknown {
		t.Fatalf("expected unknown BMI without weight, got %v / %s", bmi, band)
	}

	if err := s.AddWeight(70); err != nil {
		t.Fatalf("add weight: %v", err)
	}
	bmi, band := s.BMI()
	if math.Abs(bmi-22.857) > 0.01 {
		t.Fatalf("expected BMI ~22.86, got %v", bmi)
	}
	if band != derive.BandNormal {
		t.Fatalf("expected normal band, got %s", band)
	}
}
