package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gym-manager/backend/internal/config"
	"gym-manager/backend/internal/domain/ai"
	"gym-manager/backend/internal/domain/attendance"
	"gym-manager/backend/internal/domain/challenge"
	"gym-manager/backend/internal/domain/classes"
	"gym-manager/backend/internal/domain/fees"
	"gym-manager/backend/internal/domain/gym"
	"gym-manager/backend/internal/domain/members"
	"gym-manager/backend/internal/domain/messaging"
	"gym-manager/backend/internal/domain/payments"
	"gym-manager/backend/internal/domain/progress"
	"gym-manager/backend/internal/domain/subscription"
	"gym-manager/backend/internal/firebase"
	"gym-manager/backend/internal/handlers"
	apihttp "gym-manager/backend/internal/http"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	app, err := firebase.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("firebase app init failed: %v", err)
	}

	authClient, err := firebase.NewAuthClient(ctx, app)
	if err != nil {
		log.Fatalf("firebase auth client init failed: %v", err)
	}

	fs, err := firebase.NewFirestore(ctx, app)
	if err != nil {
		log.Fatalf("firestore init failed: %v", err)
	}
	defer fs.Close()

	// Repositories
	gymRepo := gym.NewRepo(fs.Client)
	membersRepo := members.NewRepo(fs.Client)
	attendanceRepo := attendance.NewRepo(fs.Client)
	classesRepo := classes.NewRepo(fs.Client)
	progressRepo := progress.NewRepo(fs.Client)

	// Messaging (optional - only if Twilio is configured)
	var messagingSvc *messaging.Service
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioWhatsAppNumber != "" {
		sender := messaging.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken)
		messagingSvc = messaging.NewService(fs.Client, sender, cfg.TwilioWhatsAppNumber)
		log.Println("Twilio messaging initialized")
	} else {
		log.Println("TWILIO_* not set, messaging disabled")
	}

	// Services
	gymSvc := gym.NewService(gymRepo)
	var notifier members.Notifier
	if messagingSvc != nil {
		notifier = messagingSvc
	}
	membersSvc := members.NewService(membersRepo, notifier, cfg.DefaultCountryCode)
	feesSvc := fees.NewService(fs.Client)
	attendanceSvc := attendance.NewService(attendanceRepo)
	classesSvc := classes.NewService(classesRepo)
	subscriptionSvc := subscription.NewService(fs.Client)
	challengeSvc := challenge.NewService(fs.Client)
	progressSvc := progress.NewService(progressRepo)

	// Payments (optional)
	var paymentsSvc *payments.Service
	if cfg.RazorpayKeyID != "" && cfg.RazorpayKeySecret != "" {
		paymentsSvc = payments.NewService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
		log.Println("Razorpay payments initialized")
	} else {
		log.Println("RAZORPAY_* not set, payments disabled")
	}

	// Image uploads (optional)
	var uploader *handlers.Uploader
	if cfg.CloudinaryCloudName != "" {
		uploader, err = handlers.NewUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatalf("cloudinary init failed: %v", err)
		}
		log.Println("Cloudinary uploads initialized")
	} else {
		log.Println("CLOUDINARY_* not set, uploads disabled")
	}

	// AI plan generation (optional)
	var aiSvc *ai.Service
	if cfg.GeminiAPIKey != "" {
		aiSvc, err = ai.NewService(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatalf("gemini init failed: %v", err)
		}
		defer aiSvc.Close()
		log.Println("Gemini AI initialized")
	} else {
		log.Println("GEMINI_API_KEY not set, AI features disabled")
	}

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:             cfg,
		AuthClient:      authClient,
		GymSvc:          gymSvc,
		MembersSvc:      membersSvc,
		FeesSvc:         feesSvc,
		AttendanceSvc:   attendanceSvc,
		ClassesSvc:      classesSvc,
		SubscriptionSvc: subscriptionSvc,
		ChallengeSvc:    challengeSvc,
		ProgressSvc:     progressSvc,
		MessagingSvc:    messagingSvc,
		PaymentsSvc:     paymentsSvc,
		AISvc:           aiSvc,
		Uploader:        uploader,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	go func() {
		log.Printf("API listening on :%s (project=%s)", cfg.Port, cfg.ProjectID)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 2)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Println("shutting down...")
	_ = srv.Shutdown(ctxShutdown)
}
