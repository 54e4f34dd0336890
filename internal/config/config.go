package config

import (
	"os"
	"strings"
)

type Config struct {
	ProjectID      string
	Port           string
	AllowedOrigins []string

	// Outbound WhatsApp messaging (Twilio)
	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string

	// Payment orders (Razorpay)
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Image uploads (Cloudinary)
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	// AI plan generation (Gemini)
	GeminiAPIKey string

	// Shared secret for the scheduled reminder endpoint
	CronSecret string

	// Prefixed to 10-digit local phone numbers on member intake
	DefaultCountryCode string
}

func Load() Config {
	// FIREBASE_PROJECT_ID or GOOGLE_CLOUD_PROJECT
	projectID := getenv("FIREBASE_PROJECT_ID", "")
	if projectID == "" {
		projectID = getenv("GOOGLE_CLOUD_PROJECT", "")
	}

	port := getenv("PORT", "8080")
	origins := getenv("ALLOWED_ORIGINS", "http://localhost:3000")

	allowed := []string{}
	for _, o := range strings.Split(origins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			allowed = append(allowed, o)
		}
	}

	return Config{
		ProjectID:      projectID,
		Port:           port,
		AllowedOrigins: allowed,

		TwilioAccountSID:     getenv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:      getenv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppNumber: getenv("TWILIO_PHONE_NUMBER", ""),

		RazorpayKeyID:     getenv("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getenv("RAZORPAY_KEY_SECRET", ""),

		CloudinaryCloudName: getenv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getenv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getenv("CLOUDINARY_API_SECRET", ""),

		GeminiAPIKey: getenv("GEMINI_API_KEY", ""),

		CronSecret: getenv("CRON_SECRET", ""),

		DefaultCountryCode: getenv("DEFAULT_COUNTRY_CODE", "+91"),
	}
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
