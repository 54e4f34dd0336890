package ai

import (
	"strings"
	"testing"
)

func TestWorkoutPromptIncludesProfile(t *testing.T) {
	p := workoutPrompt(WorkoutPlanRequest{
		Motive:      "weight loss",
		Level:       "beginner",
		Suggestions: "no equipment",
		LatestBMI:   &BMIReading{BMI: 27.4, Weight: 82, Height: 173},
	})
	for _, want := range []string{
		"weight loss",
		"beginner",
		"27.4 BMI, 82.0 kg, 173.0 cm",
		`"no equipment"`,
		"7-day weekly workout plan",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestWorkoutPromptDefaults(t *testing.T) {
	p := workoutPrompt(WorkoutPlanRequest{Motive: "bulk", Level: "advanced"})
	if !strings.Contains(p, "Not provided") {
		t.Error("missing BMI placeholder")
	}
	if !strings.Contains(p, `"None"`) {
		t.Error("missing suggestions placeholder")
	}
}

func TestDietPromptIncludesPreferences(t *testing.T) {
	p := dietPrompt(DietPlanRequest{
		Motive:   "muscle gain",
		MealType: "vegetarian",
		Budget:   "low",
	})
	for _, want := range []string{"muscle gain", "vegetarian", "low", `"None"`, "desi khana"} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
