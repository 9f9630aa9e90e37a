package server

import (
	"net/http"

	"bbdap/backend/internal/api/controller"
	"bbdap/backend/internal/api/middleware"
	"bbdap/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Server owns the gin engine and the route table.
type Server struct {
	engine *gin.Engine
}

// NewServer builds the engine, wires the shared middleware and registers all
// routes. Protected routes sit behind the bearer-token gate.
func NewServer(
	tokens *auth.Manager,
	users *controller.UserController,
	reports *controller.ReportController,
	tasks *controller.TaskController,
) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery(), middleware.RequestID(), middleware.Telemetry())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	engine.POST("/register", users.Register)
	engine.POST("/login", users.Login)

	protected := engine.Group("/", middleware.RequireAuth(tokens))
	protected.GET("/dashboard", reports.Dashboard)
	protected.GET("/sales", reports.SalesTrend)
	protected.GET("/forecast", reports.Forecast)
	protected.GET("/stock-alert", reports.StockAlerts)

	protected.POST("/tasks", tasks.Create)
	protected.GET("/tasks", tasks.List)
	protected.PUT("/tasks/:id", tasks.Update)
	protected.DELETE("/tasks/:id", tasks.Delete)

	return &Server{engine: engine}
}

// Engine exposes the underlying gin engine for http.Server and tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}
