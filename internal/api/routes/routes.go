package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jobport/jobport/internal/api/handlers"
	"github.com/jobport/jobport/internal/api/middleware"
)

type Deps struct {
	Auth         *handlers.AuthHandler
	Job          *handlers.JobHandler
	Application  *handlers.ApplicationHandler
	Verification *handlers.VerificationHandler
	Profile      *handlers.ProfileHandler
	WS           *handlers.WSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public: document verification gates these, not the JWT
	r.POST("/auth/register/seeker", d.Auth.RegisterSeeker)
	r.POST("/auth/register/employer", d.Auth.RegisterEmployer)
	r.POST("/auth/login", d.Auth.Login)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	seeker := auth.Group("/", middleware.RequireSeeker())
	seeker.GET("/jobs", d.Job.List)
	seeker.POST("/jobs/:job_id/apply", d.Application.Apply)
	seeker.GET("/applications/me", d.Application.ListMine)
	seeker.POST("/ats/score", d.Verification.ATSScore)
	seeker.POST("/profile/cv", d.Verification.AttachCV)
	seeker.GET("/profile/me", d.Profile.Me)
	seeker.PUT("/profile/update", d.Profile.Update)
	seeker.GET("/ws/notifications", d.WS.Notifications)

	employer := auth.Group("/", middleware.RequireEmployer())
	employer.POST("/jobs", d.Job.Create)
	employer.GET("/jobs/mine", d.Job.Mine)
	employer.GET("/applications/employer", d.Application.ListForEmployer)
	employer.PUT("/applications/:id/decision", d.Application.Decide)

	// Delete is role-dispatched inside the service: each principal can only
	// remove the row in their own store.
	auth.DELETE("/applications/:id", d.Application.Delete)
}
