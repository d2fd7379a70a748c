package model

// ExtendedFastHours marks a preset with no target duration. An extended fast
// runs until the user ends it and is never auto-completed.
const ExtendedFastHours = -1

type Preset struct {
	FastHours int
	EatHours  int
}

// Presets is the fixed, compiled-in fasting schedule table.
var Presets = map[string]Preset{
	"16:8":     {FastHours: 16, EatHours: 8},
	"18:6":     {FastHours: 18, EatHours: 6},
	"20:4":     {FastHours: 20, EatHours: 4},
	"24h":      {FastHours: 24, EatHours: 0},
	"extended": {FastHours: ExtendedFastHours, EatHours: 0},
}

func (p Preset) IsExtended() bool {
	return p.FastHours == ExtendedFastHours
}

// Achievement type keys. Exactly one row per key exists in the achievements
// table after seeding.
const (
	AchievementStreak7         = "streak_7"
	AchievementStreak30        = "streak_30"
	AchievementLongestFast     = "longest_fast"
	AchievementWeightMilestone = "weight_milestone"
)

// AchievementSeed is the canonical set inserted on first run. Repair and
// full-reset paths re-insert exactly these rows.
var AchievementSeed = []Achievement{
	{Type: AchievementStreak7, Title: "7-Day Streak", Description: "Complete 7 consecutive days of fasting"},
	{Type: AchievementStreak30, Title: "30-Day Streak", Description: "Complete 30 consecutive days of fasting"},
	{Type: AchievementLongestFast, Title: "Marathon Faster", Description: "Complete a 24-hour fast"},
	{Type: AchievementWeightMilestone, Title: "Weight Goal", Description: "Reach your target weight"},
}
