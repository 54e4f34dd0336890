package progress

import (
	"math"
	"strings"
	"time"
)

// BMIRecord is one logged measurement in a member's history. BMI is derived
// from height and weight at log time and stored, not recomputed on read.
type BMIRecord struct {
	ID     string    `firestore:"-" json:"id"`
	Height float64   `firestore:"height" json:"height"` // cm
	Weight float64   `firestore:"weight" json:"weight"` // kg
	BMI    float64   `firestore:"bmi" json:"bmi"`
	Date   time.Time `firestore:"date" json:"date"`
}

// WorkoutEntry is one logged lift: the exercise and the weight moved.
type WorkoutEntry struct {
	ID        string    `firestore:"-" json:"id"`
	UserID    string    `firestore:"userId" json:"userId"`
	Exercise  string    `firestore:"exercise" json:"exercise"`
	Weight    float64   `firestore:"weight" json:"weight"` // kg
	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type LogBMIInput struct {
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
}

type LogWorkoutInput struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
}

func (in *LogWorkoutInput) Trim() {
	in.Exercise = strings.TrimSpace(in.Exercise)
}

// ComputeBMI derives body mass index from weight in kg and height in cm,
// rounded to two decimals.
func ComputeBMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*100) / 100
}

// Category names the standard band a BMI value falls in.
func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
