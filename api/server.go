package api

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/menulens/menulens-go/api/controllers"
	"github.com/menulens/menulens-go/api/middlewares"
	"github.com/menulens/menulens-go/api/notifyhub"
	"github.com/menulens/menulens-go/gallery"
	"github.com/menulens/menulens-go/lifecycle"
	"github.com/menulens/menulens-go/tool"
)

const DefaultPort = 53517

// Server is the localhost HTTP surface the presentation layer talks to.
type Server struct {
	port      int
	lifecycle *lifecycle.Controller
	gallery   *gallery.Controller
	hub       *notifyhub.Hub
	store     *tool.Store

	engine *gin.Engine
	server *http.Server
	mu     sync.RWMutex
}

func NewServer(port int, lc *lifecycle.Controller, g *gallery.Controller, hub *notifyhub.Hub, store *tool.Store) *Server {
	if port <= 0 {
		port = DefaultPort
	}
	return &Server{
		port:      port,
		lifecycle: lc,
		gallery:   g,
		hub:       hub,
		store:     store,
	}
}

func (s *Server) setupRoutes() *gin.Engine {
	if tool.DefaultLogger.GetLevel() == log.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()
	engine.Use(gin.Recovery())

	translateCtrl := controllers.NewTranslateController(s.lifecycle)
	galleryCtrl := controllers.NewGalleryController(s.gallery)
	settingsCtrl := controllers.NewSettingsController(s.store)

	// One submit per second with a small burst is far more than a human
	// pressing the button; anything past it is a stuck client.
	translateLimiter := rate.NewLimiter(rate.Limit(1), 3)

	engine.GET("/status", controllers.HandleStatus)

	v1 := engine.Group("/api/client/v1", middlewares.OnlyAllowLocal)
	{
		v1.POST("/translate", middlewares.RateLimit(translateLimiter), translateCtrl.HandleTranslate)
		v1.POST("/cancel", translateCtrl.HandleCancel)
		v1.GET("/upload-status", translateCtrl.HandleStatus)

		v1.GET("/gallery", galleryCtrl.HandleSnapshot)
		v1.POST("/gallery/open", galleryCtrl.HandleOpen)
		v1.POST("/gallery/close", galleryCtrl.HandleClose)
		v1.POST("/gallery/next", galleryCtrl.HandleNext)
		v1.POST("/gallery/prev", galleryCtrl.HandlePrev)
		v1.POST("/gallery/drag-start", galleryCtrl.HandleDragStart)
		v1.POST("/gallery/drag-move", galleryCtrl.HandleDragMove)
		v1.POST("/gallery/drag-end", galleryCtrl.HandleDragEnd)

		v1.GET("/settings", settingsCtrl.HandleGet)
		v1.PATCH("/settings", settingsCtrl.HandlePatch)
		v1.GET("/create-qr-code", controllers.GenerateQRCode)
		if s.hub != nil {
			v1.GET("/events-ws", HandleEventsWS(s.hub))
		}
	}

	return engine
}

// Start starts the HTTP server and blocks.
func (s *Server) Start() error {
	engine := s.setupRoutes()

	s.mu.Lock()
	s.engine = engine
	s.server = &http.Server{
		Addr:    s.addr(),
		Handler: engine,
	}
	s.mu.Unlock()

	tool.DefaultLogger.Infof("Starting client API server on http://%s", s.addr())
	return s.server.ListenAndServe()
}

// addr binds the loopback interface only. OnlyAllowLocal already rejects
// remote callers, so there is no reason to be reachable from the LAN at all.
func (s *Server) addr() string {
	return fmt.Sprintf("127.0.0.1:%d", s.port)
}
