package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"

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
	"gym-manager/backend/internal/domain/planparser"
	"gym-manager/backend/internal/domain/progress"
	"gym-manager/backend/internal/domain/subscription"
	"gym-manager/backend/internal/handlers"
	"gym-manager/backend/internal/middleware"
)

type RouterDeps struct {
	Cfg             config.Config
	AuthClient      *auth.Client
	GymSvc          *gym.Service
	MembersSvc      *members.Service
	FeesSvc         *fees.Service
	AttendanceSvc   *attendance.Service
	ClassesSvc      *classes.Service
	SubscriptionSvc *subscription.Service
	ChallengeSvc    *challenge.Service
	ProgressSvc     *progress.Service
	MessagingSvc    *messaging.Service
	PaymentsSvc     *payments.Service
	AISvc           *ai.Service
	Uploader        *handlers.Uploader
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// ===== Serverless-style endpoints (no user auth) =====

	if d.MessagingSvc != nil {
		r.Post("/api/broadcast", func(w http.ResponseWriter, r *http.Request) {
			var in struct {
				GymID   string `json:"gymId"`
				Message string `json:"message"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if in.GymID == "" || strings.TrimSpace(in.Message) == "" {
				Fail(w, 400, "Missing gym ID or message.")
				return
			}
			n, err := d.MessagingSvc.Broadcast(r.Context(), in.GymID, in.Message)
			if err != nil {
				status, msg := mapMessagingError(err)
				Fail(w, status, msg)
				return
			}
			if n == 0 {
				OK(w, "No members to send message to.")
				return
			}
			OK(w, "Message sent to "+strconv.Itoa(n)+" members successfully.")
		})

		r.Post("/api/sendManualReminders", func(w http.ResponseWriter, r *http.Request) {
			var in struct {
				GymID   string `json:"gymId"`
				GymName string `json:"gymName"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if in.GymID == "" || in.GymName == "" {
				Fail(w, 400, "Missing gym information.")
				return
			}
			n, err := d.MessagingSvc.ManualFeeReminders(r.Context(), in.GymID, in.GymName, time.Now().UTC())
			if err != nil {
				status, msg := mapMessagingError(err)
				Fail(w, status, msg)
				return
			}
			if n == 0 {
				OK(w, "No members have upcoming or overdue fees.")
				return
			}
			OK(w, strconv.Itoa(n)+" reminders sent successfully.")
		})

		r.Post("/api/sendWelcomeMessage", func(w http.ResponseWriter, r *http.Request) {
			var in struct {
				MemberName  string `json:"memberName"`
				MemberPhone string `json:"memberPhone"`
				GymName     string `json:"gymName"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.MessagingSvc.Welcome(r.Context(), in.MemberName, in.MemberPhone, in.GymName); err != nil {
				status, msg := mapMessagingError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Welcome message sent successfully.")
		})

		// Invoked by the external scheduler, not by users.
		r.Group(func(cr chi.Router) {
			cr.Use(middleware.WithCronSecret(d.Cfg.CronSecret))
			sendFeeReminders := func(w http.ResponseWriter, r *http.Request) {
				n, err := d.MessagingSvc.ScheduledFeeReminders(r.Context(), time.Now().UTC())
				if err != nil {
					status, msg := mapMessagingError(err)
					Fail(w, status, msg)
					return
				}
				OK(w, strconv.Itoa(n)+" reminders sent successfully.")
			}
			cr.Get("/api/sendFeeReminders", sendFeeReminders)
			cr.Post("/api/sendFeeReminders", sendFeeReminders)
		})
	}

	if d.PaymentsSvc != nil {
		r.Post("/api/createOrder", func(w http.ResponseWriter, r *http.Request) {
			var in payments.CreateOrderInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			order, err := d.PaymentsSvc.CreateOrder(in)
			if err != nil {
				if errors.Is(err, payments.ErrBadRequest) {
					Fail(w, 400, err.Error())
					return
				}
				Fail(w, 500, "Could not create a payment order.")
				return
			}
			WriteJSON(w, 200, order)
		})
	}

	if d.Uploader != nil {
		r.Post("/api/uploadImage", d.Uploader.UploadImage)
	}

	// ===== Protected routes =====
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			WriteJSON(w, 200, map[string]any{
				"uid":    au.UID,
				"email":  au.Email,
				"claims": au.Claims,
			})
		})

		// ===== Accounts and subscription =====
		pr.Post("/v1/users", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			var in subscription.CreateAccountInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.SubscriptionSvc.CreateAccount(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapSubscriptionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/users/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			out, err := d.SubscriptionSvc.Get(r.Context(), au.UID)
			if err != nil {
				status, msg := mapSubscriptionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/v1/subscription/gate", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			u, err := d.SubscriptionSvc.Get(r.Context(), au.UID)
			if err != nil {
				status, msg := mapSubscriptionError(err)
				Fail(w, status, msg)
				return
			}
			now := time.Now().UTC()
			WriteJSON(w, 200, map[string]any{
				"access":    subscription.Gate(*u, now),
				"hoursLeft": subscription.HoursRemaining(*u, now),
			})
		})

		pr.Post("/v1/subscription/activate", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			var in subscription.SubscribeInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.SubscriptionSvc.Activate(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapSubscriptionError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/subscription/cancel", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			if err := d.SubscriptionSvc.Cancel(r.Context(), au.UID); err != nil {
				status, msg := mapSubscriptionError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Subscription canceled.")
		})

		// ===== Gym routes =====
		pr.Post("/v1/gyms", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			var in gym.RegisterInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.GymSvc.Register(r.Context(), au.UID, in)
			if err != nil {
				status, msg := mapGymError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/gyms/search", func(w http.ResponseWriter, r *http.Request) {
			q := strings.TrimSpace(r.URL.Query().Get("q"))
			out, err := d.GymSvc.Browse(r.Context(), q, 20)
			if err != nil {
				status, msg := mapGymError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/v1/gyms/mine", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			out, err := d.GymSvc.Mine(r.Context(), au.UID)
			if err != nil {
				status, msg := mapGymError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Get("/v1/gyms/{gymId}", func(w http.ResponseWriter, r *http.Request) {
			out, err := d.GymSvc.Get(r.Context(), chi.URLParam(r, "gymId"))
			if err != nil {
				status, msg := mapGymError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Put("/v1/gyms/{gymId}/fees", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			var in gym.UpdateFeesInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.GymSvc.UpdateFees(r.Context(), au.UID, chi.URLParam(r, "gymId"), in); err != nil {
				status, msg := mapGymError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Fees updated.")
		})

		pr.Post("/v1/gyms/{gymId}/images", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			var in struct {
				URL string `json:"url"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.GymSvc.AddImage(r.Context(), au.UID, chi.URLParam(r, "gymId"), in.URL); err != nil {
				status, msg := mapGymError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Image added.")
		})

		// ===== Member routes (gym owner) =====
		pr.Post("/v1/gyms/{gymId}/members", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			var in members.DirectAddInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			out, err := d.MembersSvc.DirectAdd(r.Context(), g.ID, g.Name, in)
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/gyms/{gymId}/members", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			out, err := d.MembersSvc.List(r.Context(), g.ID)
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Patch("/v1/gyms/{gymId}/members/{memberId}", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			var in members.UpdateMemberInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if err := d.MembersSvc.Update(r.Context(), g.ID, chi.URLParam(r, "memberId"), in); err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Member updated.")
		})

		pr.Delete("/v1/gyms/{gymId}/members/{memberId}", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			if err := d.MembersSvc.Delete(r.Context(), g.ID, chi.URLParam(r, "memberId")); err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Member removed.")
		})

		// ===== Fee engine =====
		pr.Post("/v1/gyms/{gymId}/members/{memberId}/markPaid", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			next, err := d.FeesSvc.MarkPaid(r.Context(), g.ID, chi.URLParam(r, "memberId"))
			if err != nil {
				status, msg := mapFeesError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, map[string]any{"feeDueDate": next})
		})

		pr.Get("/v1/gyms/{gymId}/fees/dashboard", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			out, err := d.FeesSvc.Dashboard(r.Context(), g.ID, time.Now().UTC())
			if err != nil {
				status, msg := mapFeesError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Join requests =====
		pr.Post("/v1/gyms/{gymId}/joinRequests", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			gymID := chi.URLParam(r, "gymId")
			var in members.CreateJoinRequestInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			if _, err := d.GymSvc.Get(r.Context(), gymID); err != nil {
				status, msg := mapGymError(err)
				Fail(w, status, msg)
				return
			}
			out, err := d.MembersSvc.RequestToJoin(r.Context(), gymID, au.UID, in)
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 201, out)
		})

		pr.Get("/v1/gyms/{gymId}/joinRequests", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			out, err := d.MembersSvc.ListJoinRequests(r.Context(), g.ID)
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/gyms/{gymId}/joinRequests/{requestId}/approve", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			out, err := d.MembersSvc.Approve(r.Context(), g.ID, g.Name, chi.URLParam(r, "requestId"))
			if err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		pr.Post("/v1/gyms/{gymId}/joinRequests/{requestId}/deny", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			if err := d.MembersSvc.Deny(r.Context(), g.ID, chi.URLParam(r, "requestId")); err != nil {
				status, msg := mapMembersError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Join request denied.")
		})

		// ===== Attendance =====
		pr.Post("/v1/gyms/{gymId}/attendance", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			var in attendance.ToggleInput
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			in.GymID = g.ID
			if err := d.AttendanceSvc.Toggle(r.Context(), in); err != nil {
				status, msg := mapAttendanceError(err)
				Fail(w, status, msg)
				return
			}
			OK(w, "Attendance updated.")
		})

		pr.Get("/v1/gyms/{gymId}/attendance", func(w http.ResponseWriter, r *http.Request) {
			g, ok := requireOwnedGym(w, r, d)
			if !ok {
				return
			}
			now := time.Now().UTC()
			year, month := now.Year(), now.Month()
			if v := r.URL.Query().Get("year"); v != "" {
				y, err := strconv.Atoi(v)
				if err != nil {
					Fail(w, 400, "invalid year")
					return
				}
				year = y
			}
			if v := r.URL.Query().Get("month"); v != "" {
				m, err := strconv.Atoi(v)
				if err != nil || m < 1 || m > 12 {
					Fail(w, 400, "invalid month")
					return
				}
				month = time.Month(m)
			}
			out, err := d.AttendanceSvc.Month(r.Context(), g.ID, year, month)
			if err != nil {
				status, msg := mapAttendanceError(err)
				Fail(w, status, msg)
				return
			}
			WriteJSON(w, 200, out)
		})

		// ===== Classes =====
		if d.ClassesSvc != nil {
			pr.Post("/v1/gyms/{gymId}/classes", func(w http.ResponseWriter, r *http.Request) {
				g, ok := requireOwnedGym(w, r, d)
				if !ok {
					return
				}
				var in classes.CreateClassInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				out, err := d.ClassesSvc.Create(r.Context(), g.ID, in)
				if err != nil {
					status, msg := mapClassesError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, out)
			})

			pr.Get("/v1/gyms/{gymId}/classes", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.ClassesSvc.List(r.Context(), chi.URLParam(r, "gymId"))
				if err != nil {
					status, msg := mapClassesError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			pr.Patch("/v1/gyms/{gymId}/classes/{classId}", func(w http.ResponseWriter, r *http.Request) {
				g, ok := requireOwnedGym(w, r, d)
				if !ok {
					return
				}
				var in classes.UpdateClassInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				if err := d.ClassesSvc.Update(r.Context(), g.ID, chi.URLParam(r, "classId"), in); err != nil {
					status, msg := mapClassesError(err)
					Fail(w, status, msg)
					return
				}
				OK(w, "Class updated.")
			})

			pr.Delete("/v1/gyms/{gymId}/classes/{classId}", func(w http.ResponseWriter, r *http.Request) {
				g, ok := requireOwnedGym(w, r, d)
				if !ok {
					return
				}
				if err := d.ClassesSvc.Delete(r.Context(), g.ID, chi.URLParam(r, "classId")); err != nil {
					status, msg := mapClassesError(err)
					Fail(w, status, msg)
					return
				}
				OK(w, "Class removed.")
			})
		}

		// ===== 75-day challenge =====
		if d.ChallengeSvc != nil {
			pr.Post("/v1/challenge/start", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				out, err := d.ChallengeSvc.Start(r.Context(), au.UID)
				if err != nil {
					status, msg := mapChallengeError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, out)
			})

			pr.Post("/v1/challenge/restart", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				out, err := d.ChallengeSvc.Restart(r.Context(), au.UID)
				if err != nil {
					status, msg := mapChallengeError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			pr.Get("/v1/challenge", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				out, err := d.ChallengeSvc.Get(r.Context(), au.UID)
				if err != nil {
					status, msg := mapChallengeError(err)
					Fail(w, status, msg)
					return
				}
				day := challenge.CurrentDay(out.StartDate, time.Now().UTC())
				WriteJSON(w, 200, map[string]any{
					"challenge":  out,
					"currentDay": day,
					"tasks":      out.DayTasks(day),
					"completed":  out.Completed(),
				})
			})

			pr.Post("/v1/challenge/tasks", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				var in struct {
					TaskID string `json:"taskId"`
					Done   bool   `json:"done"`
				}
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				out, err := d.ChallengeSvc.ToggleTask(r.Context(), au.UID, in.TaskID, in.Done)
				if err != nil {
					status, msg := mapChallengeError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})
		}

		// ===== Member progress (BMI readings, workout log) =====
		if d.ProgressSvc != nil {
			pr.Post("/v1/progress/bmi", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				var in progress.LogBMIInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				out, err := d.ProgressSvc.LogBMI(r.Context(), au.UID, in)
				if err != nil {
					status, msg := mapProgressError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, map[string]any{
					"record":   out,
					"category": progress.Category(out.BMI),
				})
			})

			pr.Get("/v1/progress/bmi", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				out, err := d.ProgressSvc.BMIHistory(r.Context(), au.UID)
				if err != nil {
					status, msg := mapProgressError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			pr.Post("/v1/progress/workouts", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				var in progress.LogWorkoutInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				out, err := d.ProgressSvc.LogWorkout(r.Context(), au.UID, in)
				if err != nil {
					status, msg := mapProgressError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, out)
			})

			pr.Get("/v1/progress/workouts", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				out, err := d.ProgressSvc.Workouts(r.Context(), au.UID)
				if err != nil {
					status, msg := mapProgressError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})
		}

		// Plan text parsing is local, no model call involved.
		pr.Post("/v1/ai/parse-plan", func(w http.ResponseWriter, r *http.Request) {
			var in struct {
				Text string `json:"text"`
			}
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				Fail(w, 400, "invalid json")
				return
			}
			WriteJSON(w, 200, planparser.Parse(in.Text))
		})

		// ===== AI coach =====
		if d.AISvc != nil {
			pr.Post("/v1/ai/workout-plan", func(w http.ResponseWriter, r *http.Request) {
				au, _ := middleware.GetAuthUser(r.Context())
				var in ai.WorkoutPlanRequest
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				// The prompt folds in the caller's latest logged reading.
				if in.LatestBMI == nil && d.ProgressSvc != nil {
					if rec, err := d.ProgressSvc.LatestBMI(r.Context(), au.UID); err == nil && rec != nil {
						in.LatestBMI = &ai.BMIReading{BMI: rec.BMI, Weight: rec.Weight, Height: rec.Height}
					}
				}
				WriteJSON(w, 200, map[string]string{"plan": d.AISvc.WorkoutPlan(r.Context(), in)})
			})

			pr.Post("/v1/ai/diet-plan", func(w http.ResponseWriter, r *http.Request) {
				var in ai.DietPlanRequest
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				WriteJSON(w, 200, map[string]string{"plan": d.AISvc.DietPlan(r.Context(), in)})
			})

			pr.Get("/v1/ai/quote", func(w http.ResponseWriter, r *http.Request) {
				WriteJSON(w, 200, map[string]string{"quote": d.AISvc.MotivationalQuote(r.Context())})
			})

			pr.Post("/v1/ai/chat", func(w http.ResponseWriter, r *http.Request) {
				var in struct {
					Message string        `json:"message"`
					History []ai.ChatTurn `json:"history,omitempty"`
				}
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				if strings.TrimSpace(in.Message) == "" {
					Fail(w, 400, "message is required")
					return
				}
				WriteJSON(w, 200, map[string]string{"reply": d.AISvc.Chat(r.Context(), in.Message, in.History)})
			})
		}
	})

	return r
}

// requireOwnedGym loads the gym from the path and checks the caller owns
// it. On failure it has already written the response.
func requireOwnedGym(w http.ResponseWriter, r *http.Request, d RouterDeps) (*gym.Gym, bool) {
	au, _ := middleware.GetAuthUser(r.Context())
	gymID := chi.URLParam(r, "gymId")
	if gymID == "" {
		Fail(w, 400, "missing gymId")
		return nil, false
	}
	g, err := d.GymSvc.Get(r.Context(), gymID)
	if err != nil {
		status, msg := mapGymError(err)
		Fail(w, status, msg)
		return nil, false
	}
	if g.OwnerUID != au.UID {
		Fail(w, 403, "only the gym owner can do this")
		return nil, false
	}
	return g, true
}

func mapGymError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case gym.IsErrUnauthorized(err):
		return 403, err.Error()
	case gym.IsErrNotFound(err):
		return 404, err.Error()
	case gym.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapMembersError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case members.IsErrNotFound(err):
		return 404, err.Error()
	case members.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapFeesError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case fees.IsErrNotFound(err):
		return 404, err.Error()
	case fees.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapAttendanceError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	if attendance.IsErrBadRequest(err) {
		return 400, err.Error()
	}
	return 500, err.Error()
}

func mapClassesError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case classes.IsErrNotFound(err):
		return 404, err.Error()
	case classes.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapSubscriptionError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case subscription.IsErrNotFound(err):
		return 404, err.Error()
	case subscription.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapChallengeError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case challenge.IsErrNotFound(err):
		return 404, err.Error()
	case challenge.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapProgressError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	if progress.IsErrBadRequest(err) {
		return 400, err.Error()
	}
	return 500, err.Error()
}

func mapMessagingError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	if messaging.IsErrBadRequest(err) {
		return 400, err.Error()
	}
	return 500, err.Error()
}
