package ai

import "fmt"

// BMIReading is the user's latest recorded measurement, included in the
// workout prompt when present.
type BMIReading struct {
	BMI    float64 `json:"bmi"`
	Weight float64 `json:"weight"`
	Height float64 `json:"height"`
}

type WorkoutPlanRequest struct {
	Motive      string      `json:"motive"`
	Level       string      `json:"level"`
	Suggestions string      `json:"suggestions,omitempty"`
	LatestBMI   *BMIReading `json:"latestBmi,omitempty"`
}

type DietPlanRequest struct {
	Motive      string `json:"motive"`
	MealType    string `json:"mealType"`
	Budget      string `json:"budget"`
	Suggestions string `json:"suggestions,omitempty"`
}

func workoutPrompt(req WorkoutPlanRequest) string {
	bmi := "Not provided"
	if req.LatestBMI != nil {
		bmi = fmt.Sprintf("%.1f BMI, %.1f kg, %.1f cm", req.LatestBMI.BMI, req.LatestBMI.Weight, req.LatestBMI.Height)
	}
	suggestions := req.Suggestions
	if suggestions == "" {
		suggestions = "None"
	}
	return fmt.Sprintf(`Create a 7-day weekly workout plan in simple, easy-to-understand language (you can use Hinglish terms). Include 2 rest days. The user's profile is:
- Main Goal (Motive): %s
- Level: %s
- Current BMI Data: %s
- User's Special Request: "%s"

Please make the plan very practical for someone in India. Use common exercise names.
For example, instead of complex names, use terms like 'Chest Press (Bench Press)', 'Dand Baithak (Squats)', 'Pull-ups'.
Structure the plan with clear headings for each day. For each exercise, specify sets and reps.
Format the response clearly using markdown. Use '#' for the main title, '##' for day titles, and '*' for list items.`,
		req.Motive, req.Level, bmi, suggestions)
}

func dietPrompt(req DietPlanRequest) string {
	suggestions := req.Suggestions
	if suggestions == "" {
		suggestions = "None"
	}
	return fmt.Sprintf(`Create a simple 7-day Indian diet plan (desi khana) in easy-to-understand language (Hinglish). The user's preferences are:
- Main Goal (Motive): %s
- Food Type: %s
- Budget: %s
- User's Special Request: "%s"

The plan must include common Indian household foods like dal, roti, sabzi, chawal, dahi, paneer, etc.
Structure it with three main meals and two snacks for each day. Use simple meal names like 'Nashta (Breakfast)', 'Dopeher ka Khana (Lunch)', and 'Raat ka Khana (Dinner)'.
For each meal, suggest 2-3 common desi food options.
Include a note about drinking plenty of water (paani).
Format the response clearly using markdown. Use '#' for the main title, '##' for day titles, '###' for meal times, and '*' for food items.`,
		req.Motive, req.MealType, req.Budget, suggestions)
}

const quotePrompt = `Generate a short, powerful, and original motivational quote in Hinglish related to fitness and gym discipline.
The quote should be no more than two sentences long.
Do not include quotation marks in the response.`

const chatGreeting = "Hello! I'm your GymPro AI assistant. How can I help you with your fitness questions today?"

// Canned replies returned when the model call fails. Generation errors are
// logged but never surfaced to the client.
const (
	workoutFallback = "Sorry, abhi workout plan nahi ban pa raha hai. Thodi der baad try karein."
	dietFallback    = "Sorry, abhi diet plan nahi ban pa raha hai. Thodi der baad try karein."
	quoteFallback   = "Jo workout aaj nahi kiya, woh kal bhi nahi hoga. Just do it!"
	chatFallback    = "Sorry, I'm having trouble connecting. Please try again."
)
