package routes

import (
	"github.com/gin-gonic/gin"

	"klusmarkt/internal/adapter/http/handlers"
)

const (
	PathJobs         = "/jobs"
	PathFeed         = "/feed"
	PathQuotes       = "/quotes"
	PathAgenda       = "/agenda"
	PathAvailability = "/availability"
	PathChats        = "/chats"
	PathAccount      = "/account"
	PathPlans        = "/plans"
	PathAuth         = "/auth"
	PathProjections  = "/projections"
	PathEvents       = "/events"
)

// Handlers groups everything the /v1 router serves.
type Handlers struct {
	Jobs         *handlers.JobHandler
	Quotes       *handlers.QuoteHandler
	Agenda       *handlers.AgendaHandler
	Availability *handlers.AvailabilityHandler
	Chat         *handlers.ChatHandler
	Account      *handlers.AccountHandler
	Projections  *handlers.ProjectionHandler
	Events       *handlers.EventsHandler
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}

func addJobRoutes(rg *gin.RouterGroup, h *handlers.JobHandler) {
	jobs := rg.Group(PathJobs)
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("", h.CreateJob)
		jobs.GET("/:id", h.GetJob)
		jobs.PATCH("/:id", h.UpdateJob)
		jobs.DELETE("/:id", h.DeleteJob)
		jobs.POST("/:id/publish", h.PublishJob)
		jobs.POST("/:id/fill", h.FillJob)
		jobs.POST("/:id/cancel", h.CancelJob)
	}
	rg.GET(PathFeed, h.Feed)
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.ListQuotes)
		quotes.POST("", h.CreateQuote)
		quotes.GET("/:id", h.GetQuote)
		quotes.PATCH("/:id", h.UpdateQuote)
		quotes.DELETE("/:id", h.DeleteQuote)
		quotes.POST("/:id/accept", h.AcceptQuote)
		quotes.POST("/:id/reject", h.RejectQuote)
		quotes.POST("/:id/payment", h.RecordPayment)
		quotes.POST("/:id/installments/:number/paid", h.MarkInstallmentPaid)
	}
}

func addAgendaRoutes(rg *gin.RouterGroup, h *handlers.AgendaHandler, avail *handlers.AvailabilityHandler) {
	agenda := rg.Group(PathAgenda)
	{
		agenda.GET("", h.ListAgenda)
		agenda.POST("", h.CreateAgendaItem)
		agenda.GET("/upcoming", h.Upcoming)
		agenda.POST("/from-quote", h.ScheduleQuote)
		agenda.GET("/:id", h.GetAgendaItem)
		agenda.PATCH("/:id", h.UpdateAgendaItem)
		agenda.DELETE("/:id", h.DeleteAgendaItem)
		agenda.POST("/:id/start", h.StartAgendaItem)
		agenda.POST("/:id/complete", h.CompleteAgendaItem)
		agenda.POST("/:id/cancel", h.CancelAgendaItem)
	}

	availability := rg.Group(PathAvailability)
	{
		availability.GET("", avail.GetAvailability)
		availability.PUT("", avail.SaveAvailability)
		availability.GET("/slots", avail.Slots)
	}
}

func addChatRoutes(rg *gin.RouterGroup, h *handlers.ChatHandler) {
	chats := rg.Group(PathChats)
	{
		chats.GET("/:chatId/messages", h.Messages)
		chats.POST("/:chatId/messages", h.Send)
		chats.POST("/:chatId/read", h.MarkRead)
	}
}

func addAccountRoutes(rg *gin.RouterGroup, h *handlers.AccountHandler) {
	account := rg.Group(PathAccount)
	{
		account.GET("/profile", h.GetProfile)
		account.PUT("/profile", h.SaveProfile)
		account.GET("/subscription", h.GetSubscription)
		account.POST("/subscription/upgrade", h.Upgrade)
	}
	rg.GET(PathPlans, h.ListPlans)

	auth := rg.Group(PathAuth)
	{
		auth.POST("/signup", h.SignUp)
		auth.POST("/signin", h.SignIn)
	}
}

func addProjectionRoutes(rg *gin.RouterGroup, h *handlers.ProjectionHandler) {
	projections := rg.Group(PathProjections)
	{
		projections.POST("/commission", h.Commission)
		projections.POST("/installments", h.Installments)
	}
}
