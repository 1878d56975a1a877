// Package web provides the HTTP server for the tickpanel REST API,
// including routing, middleware and background job scheduling.
package web

import (
	"context"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"tickpanel/config"
	"tickpanel/logger"
	"tickpanel/util/common"
	"tickpanel/web/controller"
	"tickpanel/web/job"
	"tickpanel/web/middleware"
	"tickpanel/web/service"
)

// Server is the tickpanel web server with its controllers, services and
// scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	cfg *config.Config

	authService *service.AuthService

	auth    *controller.AuthController
	tickets *controller.TicketController
	users   *controller.UserController
	server  *controller.ServerController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer(cfg *config.Config) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:         cfg,
		authService: service.NewAuthService(cfg, service.NewSMTPMailService(cfg.SMTP)),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// initRouter initializes gin, registers middleware and controllers and
// returns the configured engine.
func (s *Server) initRouter() *gin.Engine {
	if s.cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "%s %s", config.GetName(), config.GetVersion())
	})

	api := engine.Group("/api")

	s.auth = controller.NewAuthController(api, s.authService)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(s.authService.Tokens()))
	{
		s.tickets = controller.NewTicketController(protected)
		s.users = controller.NewUserController(protected)
	}

	admin := api.Group("")
	admin.Use(middleware.AuthRequired(s.authService.Tokens()), middleware.RoleRequired("admin"))
	{
		s.server = controller.NewServerController(admin)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	return engine
}

// startTask schedules background jobs.
func (s *Server) startTask() {
	// Stale reset-token digests are swept once a day
	s.cron.AddJob("@daily", job.NewClearResetTokensJob())
}

// Start initializes and starts the web server.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.cron.Start()

	engine := s.initRouter()

	listenAddr := net.JoinHostPort(s.cfg.Listen, strconv.Itoa(s.cfg.Port))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("Web server running HTTP on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and its cron jobs.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}
	var err1, err2 error
	if s.httpServer != nil {
		err1 = s.httpServer.Shutdown(s.ctx)
	}
	if s.listener != nil {
		err2 = s.listener.Close()
	}
	return common.Combine(err1, err2)
}
