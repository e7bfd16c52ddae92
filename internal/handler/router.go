package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"resource-backend/internal/handler/api"
	"resource-backend/internal/handler/middleware"
	"resource-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, resourceHandler *api.ResourceHandler, rateRefHandler *api.RateRefHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, resourceHandler, rateRefHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, resourceHandler *api.ResourceHandler, rateRefHandler *api.RateRefHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		resources := apiGroup.Group("/resources")
		{
			addRoutes(resources, []route{
				{Method: http.MethodGet, Path: "", Handler: resourceHandler.List},
				{Method: http.MethodPost, Path: "", Handler: resourceHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: resourceHandler.Read},
				{Method: http.MethodPut, Path: "/:id", Handler: resourceHandler.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: resourceHandler.Delete},
			})

			rates := resources.Group("/:id/rates")
			{
				addRoutes(rates, []route{
					{Method: http.MethodGet, Path: "", Handler: rateRefHandler.List},
					{Method: http.MethodPost, Path: "", Handler: rateRefHandler.Create},
					{Method: http.MethodGet, Path: "/:rateRefId", Handler: rateRefHandler.Read},
					{Method: http.MethodDelete, Path: "/:rateRefId", Handler: rateRefHandler.Delete},
				})
			}
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
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
