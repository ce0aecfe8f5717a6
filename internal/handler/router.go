package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourbook/internal/domain/user"
	"tourbook/internal/handler/api"
	"tourbook/internal/handler/middleware"
	"tourbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Guide   *api.GuideHandler
	Place   *api.PlaceHandler
	Profile *api.ProfileHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := authMiddleware.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.SignUp},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		places := apiGroup.Group("/places")
		{
			addRoutes(places, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Place.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Place.Get},
			})

			placeWrites := places.Group("")
			placeWrites.Use(authMiddleware.RequireAuth(), adminOnly)
			addRoutes(placeWrites, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Place.Create},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Place.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Place.Delete},
			})
		}

		guides := apiGroup.Group("/guides")
		{
			addRoutes(guides, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Guide.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Guide.Get},
			})

			guideWrites := guides.Group("")
			guideWrites.Use(authMiddleware.RequireAuth())
			addRoutes(guideWrites, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Guide.Create, Mw: []gin.HandlerFunc{adminOnly}},
				// own-record check lives in the handler
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Guide.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Guide.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Booking.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Booking.ListMine},
				{Method: http.MethodGet, Path: "/assigned", Handler: h.Booking.ListAssigned,
					Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleGuide, user.RoleAdmin)}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Booking.Transition},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Booking.Cancel},
			})
		}

		profile := apiGroup.Group("/profile")
		profile.Use(authMiddleware.RequireAuth())
		{
			addRoutes(profile, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Profile.Load},
				{Method: http.MethodPut, Path: "", Handler: h.Profile.Save},
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
