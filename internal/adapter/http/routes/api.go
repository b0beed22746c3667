package routes

import (
	"net/http"

	"ongeo_api/internal/adapter/http/handlers"
	"ongeo_api/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI           = "/api"
	PathBudgets       = "/budgets"
	PathBudgetItems   = "/budget-items"
	PathItemTemplates = "/budget-item-templates"
	PathClients       = "/clients"
	PathFormLink      = "/form-link"
	PathFormLinks     = "/form-links"
	PathPayments      = "/payments"
)

func addHealthRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func addPublicRoutes(rg *gin.RouterGroup, h Handlers, guard *middleware.InFlightGuard) {
	link := rg.Group(PathBudgets + "/link/:custom_link")
	{
		link.GET("", h.Budgets.GetPublic)
		link.POST("/approve", h.Budgets.Approve)
		link.POST("/reject", h.Budgets.Reject)
		link.POST("/resubmit", h.Budgets.Resubmit)
	}

	rg.GET(PathFormLinks+"/:slug", h.FormLinks.Resolve)
	rg.POST("/public-budget-request", guard.Handler(), h.FormLinks.SubmitPublicRequest)
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler, guard *middleware.InFlightGuard) {
	rg.POST("/calculate-budget", h.Calculate)

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", guard.Handler(), h.Create)
		budgets.GET("", h.List)
		budgets.GET("/:id", h.Get)
		budgets.PUT("/:id", h.Update)
		budgets.DELETE("/:id", h.Delete)
		budgets.PUT("/:id/link", h.SetCustomLink)
		budgets.POST("/:id/total", h.Totals)
	}
}

func addBudgetItemRoutes(rg *gin.RouterGroup, h *handlers.BudgetItemHandler) {
	rg.GET(PathBudgets+"/:id/items", h.List)
	rg.POST(PathBudgets+"/:id/items", h.Create)
	rg.PUT(PathBudgetItems+"/:item_id", h.Update)
	rg.DELETE(PathBudgetItems+"/:item_id", h.Delete)
	rg.GET(PathItemTemplates, h.ListTemplates)
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.Create)
		clients.GET("", h.List)
		clients.GET("/:id", h.Get)
		clients.PUT("/:id", h.Update)
		clients.DELETE("/:id", h.Delete)
	}
}

func addFormLinkRoutes(rg *gin.RouterGroup, h *handlers.FormLinkHandler) {
	formLink := rg.Group(PathFormLink)
	{
		formLink.POST("", h.Create)
		formLink.GET("", h.GetMine)
		formLink.PUT("", h.Update)
		formLink.PATCH("/active", h.SetActive)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.BudgetPaymentHandler) {
	rg.POST(PathBudgets+"/:id/payments", h.CreatePayment)
	rg.GET(PathBudgets+"/:id/payments", h.ListPayments)
	rg.GET(PathPayments+"/:id", h.GetPayment)
}
