package routes

import (
	"net/http"
	"time"

	"dare/enterprisehub/internal/api"
	c "dare/enterprisehub/internal/constants"
	"dare/enterprisehub/internal/middleware"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"
)

// RegisterAPIRoutes registers all API v1 routes and handlers
func RegisterAPIRoutes(r chi.Router, deps *api.Dependencies, h *api.Handlers) {
	svc := deps.Services
	can := func(resource, action string) func(http.Handler) http.Handler {
		return middleware.RequirePermission(svc.RBAC, resource, action)
	}
	loginLimiter := middleware.NewIPRateLimiter(rate.Every(12*time.Second), 5)

	r.Route("/api/v1", func(v1 chi.Router) {
		// Public
		v1.With(loginLimiter.Middleware).Post("/auth/login", h.Login())

		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(svc.Users))

			authed.Get("/me", h.Me())
			authed.With(can(c.ResourceDashboard, c.ActionRead)).Get("/dashboard/stats", h.DashboardStats())

			authed.Route("/users", func(u chi.Router) {
				u.With(can(c.ResourceUsers, c.ActionRead)).Get("/", h.ListUsers())
				u.With(can(c.ResourceUsers, c.ActionCreate)).Post("/", h.CreateUser())
				u.With(can(c.ResourceUsers, c.ActionRead)).Get("/{id}", h.GetUser())
				u.With(can(c.ResourceUsers, c.ActionUpdate)).Patch("/{id}", h.UpdateUser())
				u.With(can(c.ResourceUsers, c.ActionDelete)).Delete("/{id}", h.DeactivateUser())
			})

			authed.Route("/roles", func(ro chi.Router) {
				ro.With(can(c.ResourceRoles, c.ActionRead)).Get("/", h.ListRoles())
				ro.With(can(c.ResourceRoles, c.ActionCreate)).Post("/", h.CreateRole())
				ro.With(can(c.ResourceRoles, c.ActionRead)).Get("/{id}", h.GetRole())
				ro.With(can(c.ResourceRoles, c.ActionUpdate)).Post("/{id}/permissions", h.GrantPermission())
				ro.With(can(c.ResourceRoles, c.ActionUpdate)).Delete("/{id}/permissions", h.RevokePermission())
			})
			authed.With(can(c.ResourceRoles, c.ActionRead)).Get("/permissions", h.ListPermissions())

			authed.Route("/youth", func(y chi.Router) {
				y.With(can(c.ResourceYouth, c.ActionRead)).Get("/", h.ListYouth())
				y.With(can(c.ResourceYouth, c.ActionCreate)).Post("/", h.CreateYouth())
				y.With(can(c.ResourceYouth, c.ActionCreate)).Post("/import", h.ImportYouth())
				y.With(can(c.ResourceYouth, c.ActionRead)).Get("/{id}", h.GetYouth())
				y.With(can(c.ResourceYouth, c.ActionUpdate)).Patch("/{id}", h.UpdateYouth())
				y.With(can(c.ResourceYouth, c.ActionDelete)).Delete("/{id}", h.DeleteYouth())
				y.With(can(c.ResourceYouth, c.ActionRead)).Get("/{id}/businesses", h.YouthBusinesses())
			})

			authed.Route("/businesses", func(b chi.Router) {
				b.With(can(c.ResourceBusinesses, c.ActionRead)).Get("/", h.ListBusinesses())
				b.With(can(c.ResourceBusinesses, c.ActionCreate)).Post("/", h.CreateBusiness())

				b.Route("/{id}", func(one chi.Router) {
					one.With(can(c.ResourceBusinesses, c.ActionRead)).Get("/", h.GetBusiness())
					one.With(can(c.ResourceBusinesses, c.ActionUpdate)).Patch("/", h.UpdateBusiness())
					one.With(can(c.ResourceBusinesses, c.ActionDelete)).Delete("/", h.DeleteBusiness())

					one.With(can(c.ResourceBusinesses, c.ActionRead)).Get("/youth", h.BusinessYouth())
					one.With(can(c.ResourceBusinesses, c.ActionAssign)).Post("/youth", h.AssignYouth())
					one.With(can(c.ResourceBusinesses, c.ActionAssign)).Delete("/youth/{youthId}", h.UnassignYouth())

					one.With(can(c.ResourceBusinesses, c.ActionRead)).Get("/mentors", h.BusinessMentors())
					one.With(can(c.ResourceMentors, c.ActionAssign)).Post("/mentors", h.AssignMentor())
					one.With(can(c.ResourceMentors, c.ActionUpdate)).Patch("/mentors/{mentorId}", h.UpdateMentorship())
					one.With(can(c.ResourceMentors, c.ActionAssign)).Delete("/mentors/{mentorId}", h.UnassignMentor())

					one.With(can(c.ResourceBusinesses, c.ActionRead)).Get("/makerspace", h.BusinessMakerspace())
					one.With(can(c.ResourceMakerspaces, c.ActionAssign)).Put("/makerspace", h.AssignMakerspace())
					one.With(can(c.ResourceMakerspaces, c.ActionAssign)).Delete("/makerspace", h.UnassignMakerspace())

					one.With(can(c.ResourceTracking, c.ActionRead)).Get("/tracking", h.ListTracking())
					one.With(can(c.ResourceTracking, c.ActionCreate)).Post("/tracking", h.RecordTracking())
					one.With(can(c.ResourceTracking, c.ActionRead)).Get("/tracking/summary", h.TrackingSummary())

					mountResources(one, h.BusinessResources(), c.ResourceBusinesses, can)
				})
			})

			authed.Route("/mentors", func(m chi.Router) {
				m.With(can(c.ResourceMentors, c.ActionRead)).Get("/", h.ListMentors())
				m.With(can(c.ResourceMentors, c.ActionCreate)).Post("/", h.CreateMentor())
				m.With(can(c.ResourceMentors, c.ActionRead)).Get("/{id}", h.GetMentor())
				m.With(can(c.ResourceMentors, c.ActionUpdate)).Patch("/{id}", h.UpdateMentor())
				m.With(can(c.ResourceMentors, c.ActionRead)).Get("/{id}/businesses", h.MentorBusinesses())
				m.With(can(c.ResourceMentors, c.ActionRead)).Get("/{id}/businesses/{businessId}/messages", h.ListMessages())
				m.With(can(c.ResourceMentors, c.ActionUpdate)).Post("/{id}/businesses/{businessId}/messages", h.PostMessage())
				m.With(can(c.ResourceMentors, c.ActionRead)).Post("/{id}/businesses/{businessId}/messages/{messageId}/read", h.MarkMessageRead())
			})

			authed.Route("/makerspaces", func(ms chi.Router) {
				ms.With(can(c.ResourceMakerspaces, c.ActionRead)).Get("/", h.ListMakerspaces())
				ms.With(can(c.ResourceMakerspaces, c.ActionCreate)).Post("/", h.CreateMakerspace())

				ms.Route("/{id}", func(one chi.Router) {
					one.With(can(c.ResourceMakerspaces, c.ActionRead)).Get("/", h.GetMakerspace())
					one.With(can(c.ResourceMakerspaces, c.ActionUpdate)).Patch("/", h.UpdateMakerspace())
					one.With(can(c.ResourceMakerspaces, c.ActionDelete)).Delete("/", h.DeactivateMakerspace())
					one.With(can(c.ResourceMakerspaces, c.ActionRead)).Get("/businesses", h.MakerspaceBusinesses())

					mountResources(one, h.MakerspaceResources(), c.ResourceMakerspaces, can)
				})
			})

			authed.Route("/feasibility", func(f chi.Router) {
				f.With(can(c.ResourceFeasibility, c.ActionRead)).Get("/", h.ListAssessments())
				f.With(can(c.ResourceFeasibility, c.ActionCreate)).Post("/", h.CreateAssessment())
				f.With(can(c.ResourceFeasibility, c.ActionRead)).Get("/{id}", h.GetAssessment())
				f.With(can(c.ResourceFeasibility, c.ActionUpdate)).Patch("/{id}", h.UpdateAssessment())
				f.With(can(c.ResourceFeasibility, c.ActionUpdate)).Post("/{id}/status", h.TransitionAssessment())
				f.With(can(c.ResourceFeasibility, c.ActionReview)).Post("/{id}/review", h.ReviewAssessment())
			})

			authed.Route("/tracking", func(t chi.Router) {
				t.With(can(c.ResourceTracking, c.ActionRead)).Get("/{id}", h.GetTracking())
				t.With(can(c.ResourceTracking, c.ActionUpdate)).Patch("/{id}", h.UpdateTracking())
				t.With(can(c.ResourceTracking, c.ActionVerify)).Post("/{id}/verify", h.VerifyTracking())
			})
		})
	})
}

// mountResources registers the resource endpoints under an owner route,
// guarded by the owner's permissions.
func mountResources(r chi.Router, rh api.ResourceHandlers, owner string, can func(string, string) func(http.Handler) http.Handler) {
	r.Route("/resources", func(res chi.Router) {
		res.With(can(owner, c.ActionRead)).Get("/", rh.List)
		res.With(can(owner, c.ActionUpdate)).Post("/", rh.Create)
		res.With(can(owner, c.ActionRead)).Get("/{resourceId}", rh.Get)
		res.With(can(owner, c.ActionUpdate)).Patch("/{resourceId}", rh.Update)
		res.With(can(owner, c.ActionUpdate)).Delete("/{resourceId}", rh.Delete)
		res.With(can(owner, c.ActionUpdate)).Post("/{resourceId}/costs", rh.AddCost)
		res.With(can(owner, c.ActionRead)).Get("/{resourceId}/costs/summary", rh.CostSummary)
	})
}
