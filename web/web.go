// Package web provides the café site's web server: routing, templates,
// session handling and scheduled maintenance.
package web

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net"
	"net/http"
	"strconv"

	"github.com/vaiicko/cafe-web/config"
	"github.com/vaiicko/cafe-web/logger"
	"github.com/vaiicko/cafe-web/util/common"
	"github.com/vaiicko/cafe-web/web/controller"
	"github.com/vaiicko/cafe-web/web/job"
	"github.com/vaiicko/cafe-web/web/middleware"
	"github.com/vaiicko/cafe-web/web/session"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

//go:embed html/*
var htmlFS embed.FS

// Server is the café web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	index  *controller.IndexController
	auth   *controller.AuthController
	menu   *controller.MenuController
	drink  *controller.DrinkController
	review *controller.ReviewController

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new web server instance with a cancellable context.
func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

func (s *Server) getHtmlTemplate() (*template.Template, error) {
	return template.New("").ParseFS(htmlFS, "html/*.html")
}

func (s *Server) initRouter() (*gin.Engine, error) {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.Default()

	secret := config.GetSessionSecret()
	if secret == "" {
		// sessions won't survive a restart without a configured secret
		secret = uuid.NewString()
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   config.GetSessionMaxAge() * 60,
		HttpOnly: true,
	})
	engine.Use(sessions.Sessions(session.SessionName, store))
	engine.Use(middleware.ResolveIdentity())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	tpl, err := s.getHtmlTemplate()
	if err != nil {
		return nil, err
	}
	engine.SetHTMLTemplate(tpl)

	// uploaded pictures are served from disk
	engine.Static("/images", config.GetUploadFolder())

	g := engine.Group("/")
	s.index = controller.NewIndexController(g)
	s.auth = controller.NewAuthController(g)
	s.menu = controller.NewMenuController(g)
	s.drink = controller.NewDrinkController(g)
	s.review = controller.NewReviewController(g)

	engine.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "error.html", gin.H{
			"title":   "Not found",
			"message": "The requested page does not exist.",
		})
	})

	return engine, nil
}

func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewOrphanUploadJob())
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

	engine, err := s.initRouter()
	if err != nil {
		return err
	}

	listenAddr := net.JoinHostPort(config.GetListen(), strconv.Itoa(config.GetPort()))
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}
	logger.Info("web server running on", listener.Addr())

	s.listener = listener
	s.httpServer = &http.Server{Handler: engine}

	go func() {
		_ = s.httpServer.Serve(listener)
	}()

	s.startTask()

	return nil
}

// Stop gracefully shuts down the web server and the job scheduler.
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

// GetCtx returns the server's context.
func (s *Server) GetCtx() context.Context { return s.ctx }
