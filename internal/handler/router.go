package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"book-rental-tracker/internal/handler/api"
	"book-rental-tracker/internal/handler/middleware"
	"book-rental-tracker/internal/handler/validation"
	"book-rental-tracker/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, bookHandler *api.BookHandler, transactionHandler *api.TransactionHandler) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, bookHandler, transactionHandler)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, bookHandler *api.BookHandler, transactionHandler *api.TransactionHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.NewRateLimitMiddleware(cfg.RateLimit))
	{
		books := apiGroup.Group("/books")
		{
			addRoutes(books, []route{
				{Method: http.MethodGet, Path: "/search/name", Handler: bookHandler.SearchByName},
				{Method: http.MethodGet, Path: "/search/rent", Handler: bookHandler.SearchByRent},
				{Method: http.MethodGet, Path: "/search/category-rent", Handler: bookHandler.SearchByCategoryAndRent},
				{Method: http.MethodGet, Path: "/allUsers", Handler: bookHandler.ListUsers},
				{Method: http.MethodGet, Path: "/allBooks", Handler: bookHandler.ListBooks},
			})
		}

		transactions := apiGroup.Group("/transactions")
		{
			addRoutes(transactions, []route{
				{Method: http.MethodPost, Path: "/issue", Handler: transactionHandler.Issue},
				{Method: http.MethodPost, Path: "/return", Handler: transactionHandler.Return},
				{Method: http.MethodGet, Path: "/issuers", Handler: transactionHandler.Issuers},
				{Method: http.MethodGet, Path: "/rent", Handler: transactionHandler.TotalRent},
				{Method: http.MethodGet, Path: "/userBooks", Handler: transactionHandler.UserBooks},
				{Method: http.MethodGet, Path: "/dateRange", Handler: transactionHandler.DateRange},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
