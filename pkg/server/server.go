package server

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"straysense/pkg/events"
	"straysense/pkg/flight"
	"straysense/pkg/store"
	"straysense/pkg/utils"
	"straysense/pkg/vision"
)

type Server struct {
	Echo      *echo.Echo
	Extractor vision.Extractor
	Store     store.Store
	Publisher *events.Publisher
	Verifier  *TokenVerifier
	ImageDir  string
	Ctx       context.Context

	visionFlight *flight.Cache[string, *vision.Result]
	uploads      *utils.SyncMap[map[string]upload, string, upload]
}

type upload struct {
	data     []byte
	mimeType string
}

func NewServer(ctx context.Context, extractor vision.Extractor) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	s := &Server{
		Echo:      e,
		Extractor: extractor,
		ImageDir:  "images",
		Ctx:       ctx,
	}
	s.visionFlight = flight.NewCache(s.extractUpload)
	s.uploads = utils.NewSyncMap[map[string]upload]()

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.Echo.GET("/", s.handleGetRoot)
	s.Echo.GET("/health", s.handleGetRoot)

	api := s.Echo.Group("/api", s.identity())
	api.POST("/triage", s.handlePostTriage)  // signals + description -> report
	api.POST("/vision", s.handlePostVision)  // photo -> extracted visual signals
	api.GET("/records", s.handleGetRecords)  // saved reports, newest first
}

func (s *Server) Start(addr string) error {
	return s.Echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.Store != nil {
		s.Store.Close()
	}
	if s.Publisher != nil {
		_ = s.Publisher.Close()
	}
	return s.Echo.Shutdown(ctx)
}
