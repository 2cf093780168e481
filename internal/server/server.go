package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grupocolon/cfdi-fuel/internal/cfdi"
	"github.com/grupocolon/cfdi-fuel/internal/config"
	"github.com/grupocolon/cfdi-fuel/internal/fuel"
	"github.com/grupocolon/cfdi-fuel/internal/identity"
	"github.com/grupocolon/cfdi-fuel/internal/metadata"
	"github.com/grupocolon/cfdi-fuel/internal/model"
	"github.com/grupocolon/cfdi-fuel/internal/report"
)

// Config holds server configuration
type Config struct {
	Address      string
	Identity     config.Config
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	validator *identity.Validator
}

// NewServer creates a new API server
func NewServer(cfg *Config) *Server {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Debug {
		router.Use(gin.Logger())
	}

	ident := cfg.Identity
	if ident.Provider == "" && len(ident.AllowedRFCs) == 0 {
		ident = config.Default()
	}

	s := &Server{
		config:    cfg,
		router:    router,
		validator: identity.NewValidator(ident),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/summarize", s.handleSummarize)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/info", s.handleInfo)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// readDocument reads and parses the request body. Replies with the
// appropriate status on failure and returns nil.
func (s *Server) readDocument(c *gin.Context) *cfdi.Document {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return nil
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return nil
	}

	doc, err := cfdi.Parse(body)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return nil
	}
	return doc
}

func (s *Server) handleSummarize(c *gin.Context) {
	doc := s.readDocument(c)
	if doc == nil {
		return
	}

	validation, err := s.validator.Validate(doc)
	if err != nil {
		s.replyValidationError(c, err)
		return
	}

	if !validation.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":      "invoice failed identity validation",
			"validation": validation,
		})
		return
	}

	totals := fuel.Aggregate(doc)
	meta := metadata.Extract(doc)

	c.JSON(http.StatusOK, SummarizeResponse{
		Summary:    report.Build(totals, meta),
		Totals:     totals,
		Metadata:   meta,
		Validation: validation,
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	doc := s.readDocument(c)
	if doc == nil {
		return
	}

	validation, err := s.validator.Validate(doc)
	if err != nil {
		s.replyValidationError(c, err)
		return
	}

	c.JSON(http.StatusOK, ValidateResponse{
		Valid:  validation.Valid,
		Issues: validation.Issues,
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	doc := s.readDocument(c)
	if doc == nil {
		return
	}

	info := InfoResponse{
		Issuer:       cfdi.Attr(doc.Emisor(), "Nombre"),
		RecipientRFC: cfdi.Attr(doc.Receptor(), "Rfc"),
		Conceptos:    len(doc.Conceptos()),
	}
	if comprobante := doc.Comprobante(); comprobante != nil {
		info.Version = cfdi.Attr(comprobante, "Version")
		info.Folio = cfdi.Attr(comprobante, "Folio")
	}

	c.JSON(http.StatusOK, info)
}

func (s *Server) replyValidationError(c *gin.Context, err error) {
	var missing *model.MissingNodeError
	if errors.As(err, &missing) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        err.Error(),
			"missing_node": missing.Node,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
