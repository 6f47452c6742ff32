package http

import (
	"net/http"

	"trainings-module/http/handlers"
	"trainings-module/http/middleware"
	"trainings-module/storage"
	"trainings-module/store"
)

// SetupRoutes configures all HTTP routes and middleware on a fresh mux.
func SetupRoutes(slot storage.Slot, trainings *store.Store, enrollments *store.EnrollmentStore) *http.ServeMux {
	mux := http.NewServeMux()

	trainingService := handlers.NewTrainingService(trainings)
	listingService := handlers.NewListingService(trainings)
	authService := handlers.NewAuthService(slot)
	enrollmentService := handlers.NewEnrollmentService(trainings, enrollments)
	contactService := handlers.NewContactService()

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.EnableCORS(middleware.RequireAdmin(slot, h))
	}

	// Public listing APIs
	mux.HandleFunc("/trainings", middleware.EnableCORS(listingService.List))
	mux.HandleFunc("/training", middleware.EnableCORS(listingService.Get))

	// Enrollment APIs
	mux.HandleFunc("/enroll", middleware.EnableCORS(enrollmentService.Enroll))
	mux.HandleFunc("/enroll/verify", middleware.EnableCORS(enrollmentService.VerifyPayment))

	// Contact API
	mux.HandleFunc("/contact", middleware.EnableCORS(contactService.Submit))

	// Admin session APIs
	mux.HandleFunc("/admin/login", middleware.EnableCORS(authService.Login))
	mux.HandleFunc("/admin/logout", middleware.EnableCORS(authService.Logout))

	// Admin training management APIs
	mux.HandleFunc("/admin/trainings", admin(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			trainingService.List(w, r)
		case http.MethodPost:
			trainingService.Create(w, r)
		case http.MethodPut:
			trainingService.Update(w, r)
		case http.MethodDelete:
			trainingService.Delete(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))
	mux.HandleFunc("/admin/trainings/approve", admin(trainingService.Approve))
	mux.HandleFunc("/admin/trainings/export", admin(trainingService.Export))
	mux.HandleFunc("/admin/trainings/brochure", admin(trainingService.Brochure))

	return mux
}
