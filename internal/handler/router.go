package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookhaven/internal/handler/api"
	"bookhaven/internal/handler/middleware"
	"bookhaven/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, bookHandler *api.BookHandler, lendingHandler *api.LendingHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookHandler, lendingHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, bookHandler *api.BookHandler, lendingHandler *api.LendingHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Catalog reads are public; writes require a librarian or admin.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/books", Handler: bookHandler.List},
			{Method: http.MethodGet, Path: "/books/:id", Handler: bookHandler.Get},
			{Method: http.MethodGet, Path: "/books/genre/:genre", Handler: bookHandler.ListByGenre},
			{Method: http.MethodGet, Path: "/genres", Handler: bookHandler.ListGenres},
		})

		catalogWrites := apiGroup.Group("")
		catalogWrites.Use(authMiddleware.RequireAuth(), authMiddleware.RequireCatalogManager())
		addRoutes(catalogWrites, []route{
			{Method: http.MethodPost, Path: "/books", Handler: bookHandler.Create},
			{Method: http.MethodPut, Path: "/books/:id", Handler: bookHandler.Update},
		})

		lending := apiGroup.Group("")
		lending.Use(authMiddleware.RequireAuth())
		addRoutes(lending, []route{
			{Method: http.MethodPost, Path: "/borrow", Handler: lendingHandler.Borrow},
			{Method: http.MethodPost, Path: "/return", Handler: lendingHandler.Return},
			{Method: http.MethodGet, Path: "/loans", Handler: lendingHandler.ListOwnLoans},
		})
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
