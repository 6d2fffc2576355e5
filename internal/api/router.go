package api

import (
	"github.com/gorilla/mux"

	"github.com/SamratSK/better-bites/internal/api/recovery"
	"github.com/SamratSK/better-bites/internal/auth"
	"github.com/SamratSK/better-bites/internal/foods"
	"github.com/SamratSK/better-bites/internal/services"
	"github.com/SamratSK/better-bites/internal/store"
)

// NewRouter wires all HTTP routes. Health and the token-addressed public
// report are reachable without credentials; everything else sits behind the
// bearer-token middleware.
func NewRouter(st store.Store, foodsSvc *foods.Service, az auth.Authorizer) *mux.Router {
	root := mux.NewRouter()
	root.Use(recovery.Middleware)

	streakSvc := services.NewStreakService(st)
	trackingSvc := services.NewTrackingService(st, streakSvc)
	summarySvc := services.NewSummaryService(st)
	profileSvc := services.NewProfileService(st)
	reportSvc := services.NewReportService(st, summarySvc)
	adminSvc := services.NewAdminService(st, reportSvc)
	contentSvc := services.NewContentService(st)

	health := NewHealthHandler(st)
	report := NewReportHandler(reportSvc)
	root.HandleFunc("/api/health", health.Check).Methods("GET")
	root.HandleFunc("/api/reports/{shareToken}", report.GetPublic).Methods("GET")

	authed := root.PathPrefix("/api").Subrouter()
	authed.Use(auth.Middleware(az))

	tracking := NewTrackingHandler(trackingSvc)
	authed.HandleFunc("/users/{userId}/meals", tracking.CreateMeal).Methods("POST")
	authed.HandleFunc("/users/{userId}/meals", tracking.ListMeals).Methods("GET")
	authed.HandleFunc("/users/{userId}/meals/{entryId}", tracking.DeleteMeal).Methods("DELETE")
	authed.HandleFunc("/users/{userId}/water", tracking.CreateWater).Methods("POST")
	authed.HandleFunc("/users/{userId}/water", tracking.ListWater).Methods("GET")
	authed.HandleFunc("/users/{userId}/water/{entryId}", tracking.DeleteWater).Methods("DELETE")
	authed.HandleFunc("/users/{userId}/activity", tracking.CreateActivity).Methods("POST")
	authed.HandleFunc("/users/{userId}/activity", tracking.ListActivities).Methods("GET")
	authed.HandleFunc("/users/{userId}/activity/{entryId}", tracking.DeleteActivity).Methods("DELETE")

	summary := NewSummaryHandler(summarySvc)
	authed.HandleFunc("/users/{userId}/summary", summary.Get).Methods("GET")
	authed.HandleFunc("/users/{userId}/summary/range", summary.Range).Methods("GET")

	profile := NewProfileHandler(profileSvc, streakSvc)
	authed.HandleFunc("/users/{userId}/profile", profile.Get).Methods("GET")
	authed.HandleFunc("/users/{userId}/profile", profile.Put).Methods("PUT")
	authed.HandleFunc("/users/{userId}/goals", profile.GetGoals).Methods("GET")
	authed.HandleFunc("/users/{userId}/goals", profile.PutGoals).Methods("PUT")
	authed.HandleFunc("/users/{userId}/measurements", profile.AddMeasurement).Methods("POST")
	authed.HandleFunc("/users/{userId}/measurements", profile.ListMeasurements).Methods("GET")
	authed.HandleFunc("/users/{userId}/streaks", profile.ListStreaks).Methods("GET")

	authed.HandleFunc("/users/{userId}/report", report.Get).Methods("GET")
	authed.HandleFunc("/users/{userId}/report/share", report.Share).Methods("POST")
	authed.HandleFunc("/users/{userId}/report/share", report.SetShare).Methods("PATCH")

	content := NewContentHandler(contentSvc)
	authed.HandleFunc("/motivation", content.Motivation).Methods("GET")
	authed.HandleFunc("/users/{userId}/flags", content.Flag).Methods("POST")

	admin := NewAdminHandler(adminSvc, contentSvc)
	authed.HandleFunc("/admin/overview", admin.Overview).Methods("GET")
	authed.HandleFunc("/admin/flagged", admin.Flagged).Methods("GET")
	authed.HandleFunc("/admin/report", admin.Report).Methods("POST")
	authed.HandleFunc("/admin/motivation", admin.AddMotivation).Methods("POST")
	authed.HandleFunc("/admin/users/{userId}", admin.DeleteUser).Methods("DELETE")

	if foodsSvc != nil {
		fh := NewFoodsHandler(foodsSvc)
		authed.HandleFunc("/foods/search", fh.Search).Methods("GET")
		authed.HandleFunc("/foods/bulk", fh.Bulk).Methods("POST")
		authed.HandleFunc("/foods/{barcode}", fh.Get).Methods("GET")
		authed.HandleFunc("/foods/{barcode}/refresh", fh.Refresh).Methods("POST")
	}

	return root
}
