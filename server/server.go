// Package server exposes flashcard generation over HTTP.
package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/ByLCY/wordcards/dsl"
	"github.com/ByLCY/wordcards/generator"
	"github.com/ByLCY/wordcards/layout"
)

const (
	headerRequestID = "X-Request-Id"
	headerPairCount = "X-Pair-Count"
	maxBodyBytes    = 2 << 20
	requestIDKey    = "request_id"
)

// Server handles generation requests. It holds no per-request state.
type Server struct {
	gen         *generator.Generator
	logger      *zap.Logger
	defaultMode layout.Mode
	meta        layout.DocumentMeta
}

// New creates a server using gen for every request.
func New(gen *generator.Generator, logger *zap.Logger, defaultMode layout.Mode, meta layout.DocumentMeta) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if defaultMode == "" {
		defaultMode = layout.ModeColor
	}
	return &Server{gen: gen, logger: logger, defaultMode: defaultMode, meta: meta}
}

// Echo builds the echo instance with all routes registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit("2M"))
	e.Use(s.requestID)

	e.GET("/healthz", s.handleHealth)
	api := e.Group("/api")
	api.POST("/flashcards", s.handleFlashcards)
	api.POST("/kits", s.handleKit)
	return e
}

// Start listens on addr until the server fails.
func (s *Server) Start(addr string) error {
	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	return s.Echo().Start(addr)
}

type flashcardRequest struct {
	Text string `json:"text" form:"text"`
	Mode string `json:"mode" form:"mode" query:"mode"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

func (s *Server) requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := uuid.New().String()
		c.Set(requestIDKey, id)
		c.Response().Header().Set(headerRequestID, id)
		return next(c)
	}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleFlashcards accepts free-form text as JSON or form fields.
func (s *Server) handleFlashcards(c echo.Context) error {
	var req flashcardRequest
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "invalid request body")
	}
	mode, err := s.mode(req.Mode)
	if err != nil {
		return s.fail(c, http.StatusBadRequest, err.Error())
	}
	out, err := s.gen.Generate(req.Text, generator.Request{Mode: mode, Meta: s.meta})
	return s.respond(c, out, err)
}

// handleKit accepts a kit file as the raw request body; mode comes from the query.
func (s *Server) handleKit(c echo.Context) error {
	body, err := io.ReadAll(http.MaxBytesReader(c.Response(), c.Request().Body, maxBodyBytes))
	if err != nil {
		return s.fail(c, http.StatusRequestEntityTooLarge, "kit too large")
	}
	kit, err := dsl.ParseKitString(string(body))
	if err != nil {
		return s.fail(c, http.StatusBadRequest, "invalid kit: "+err.Error())
	}
	mode, err := s.mode(c.QueryParam("mode"))
	if err != nil {
		return s.fail(c, http.StatusBadRequest, err.Error())
	}
	meta := s.meta
	meta.Title = ""
	out, err := s.gen.GenerateKit(kit, generator.Request{Mode: mode, Meta: meta})
	return s.respond(c, out, err)
}

func (s *Server) mode(raw string) (layout.Mode, error) {
	if raw == "" {
		return s.defaultMode, nil
	}
	return layout.ParseMode(raw)
}

func (s *Server) respond(c echo.Context, out *generator.Output, err error) error {
	if errors.Is(err, generator.ErrNoValidPairs) {
		return s.fail(c, http.StatusUnprocessableEntity, "no valid pairs")
	}
	if errors.Is(err, layout.ErrInvalidMode) {
		return s.fail(c, http.StatusBadRequest, err.Error())
	}
	if err != nil {
		s.logger.Error("Failed to generate flashcards", zap.String(requestIDKey, requestID(c)), zap.Error(err))
		return s.fail(c, http.StatusInternalServerError, "generation failed")
	}

	s.logger.Info("Flashcards served",
		zap.String(requestIDKey, requestID(c)),
		zap.Int("pairs", out.PairCount),
		zap.Int("pages", out.PageCount),
		zap.Int("dropped", len(out.Dropped)),
	)
	h := c.Response().Header()
	h.Set(headerPairCount, strconv.Itoa(out.PairCount))
	h.Set(echo.HeaderContentDisposition, `attachment; filename="flashcards.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", out.PDF)
}

func (s *Server) fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, errorResponse{Error: msg, RequestID: requestID(c)})
}

func requestID(c echo.Context) string {
	id, _ := c.Get(requestIDKey).(string)
	return id
}
