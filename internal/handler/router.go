package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"nft-launchpad/internal/handler/api"
	"nft-launchpad/internal/handler/middleware"
	"nft-launchpad/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	collectionHandler *api.CollectionHandler,
	mintHandler *api.MintHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, collectionHandler, mintHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	collectionHandler *api.CollectionHandler,
	mintHandler *api.MintHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/register", Handler: authHandler.Register},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		collections := apiGroup.Group("/collections")
		{
			addRoutes(collections, []route{
				{Method: http.MethodGet, Path: "/:address", Handler: collectionHandler.GetCollection},
				{Method: http.MethodGet, Path: "/:address/items", Handler: collectionHandler.ListItems},
				// Buyer-facing, no account needed: the wallet is the identity.
				{Method: http.MethodPost, Path: "/:address/mint", Handler: mintHandler.CreateMintRequest},
			})

			creatorOnly := collections.Group("")
			creatorOnly.Use(authMiddleware.RequireAuth())
			addRoutes(creatorOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: collectionHandler.ListMyCollections},
				{Method: http.MethodPost, Path: "", Handler: collectionHandler.CreateCollection},
				{Method: http.MethodPatch, Path: "/:address/status", Handler: collectionHandler.UpdateStatus},
			})
		}

		mintGroup := apiGroup.Group("/mint")
		{
			addRoutes(mintGroup, []route{
				{Method: http.MethodGet, Path: "/:key", Handler: mintHandler.GetMintRequest},
				{Method: http.MethodPost, Path: "/:key/signature", Handler: mintHandler.AttachSignature},
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
