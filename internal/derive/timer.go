// Package derive holds the pure timer, BMI, and statistics computations.
// Nothing in this package touches the database.
package derive

import (
	"time"

	"github.com/ClaudiuJitea/SnaklessFasting/internal/model"
)

type TimerSnapshot struct {
	ElapsedSeconds   int64  `json:"elapsed_seconds"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	TargetSeconds    int64  `json:"target_seconds"`
	IsCompleted      bool   `json:"is_completed"`
	IsExtended       bool   `json:"is_extended"`
	PresetType       string `json:"preset_type"`
	StartTime        string `json:"start_time"`
}

// Timer derives the live timer values for a session started at start under
// the given preset. Elapsed time is clamped to zero so a device clock moved
// backwards never yields a negative reading.
func Timer(start time.Time, presetType string, preset model.Preset, now time.Time) TimerSnapshot {
	elapsed := int64(now.Sub(start).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	snap := TimerSnapshot{
		ElapsedSeconds: elapsed,
		PresetType:     presetType,
		StartTime:      start.UTC().Format(time.RFC3339),
	}

	if preset.IsExtended() {
		snap.TargetSeconds = -1
		snap.RemainingSeconds = 0
		snap.IsCompleted = false
		snap.IsExtended = true
		return snap
	}

	target := int64(preset.FastHours) * 3600
	remaining := target - elapsed
	if remaining < 0 {
		remaining = 0
	}
	snap.TargetSeconds = target
	snap.RemainingSeconds = remaining
	snap.IsCompleted = remaining == 0
	return snap
}
