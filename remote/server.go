// Package remote exposes the player over a small HTTP API so it can be driven from
// scripts, phones or media keys while the terminal UI is running.
package remote

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/naineel1209/golang-mp3-player/logger"
	"github.com/naineel1209/golang-mp3-player/player"
	types "github.com/naineel1209/golang-mp3-player/type-defs"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type StatusResponse struct {
	State     string  `json:"state"`
	Index     int     `json:"index"`
	Title     string  `json:"title,omitempty"`
	Artist    string  `json:"artist,omitempty"`
	Album     string  `json:"album,omitempty"`
	ElapsedMS int64   `json:"elapsed_ms"`
	TotalMS   int64   `json:"total_ms"`
	Timer     string  `json:"timer"`
	Volume    float64 `json:"volume"`
}

type Server struct {
	player types.Controller
	router *gin.Engine
}

func NewServer(ctrl types.Controller) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		player: ctrl,
		router: gin.New(),
	}
	s.router.Use(gin.Recovery(), requestLogger())

	api := s.router.Group("/api/v1")
	{
		api.GET("/health", s.HealthCheck)
		api.GET("/status", s.Status)

		api.POST("/play", s.Play)
		api.POST("/pause", s.simple(ctrl.Pause))
		api.POST("/resume", s.simple(ctrl.Resume))
		api.POST("/stop", s.simple(ctrl.Stop))
		api.POST("/next", s.step(ctrl.Next))
		api.POST("/previous", s.step(ctrl.Previous))
		api.PUT("/volume", s.Volume)
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Logger.Warn().Err(err).Msg("remote shutdown")
		}
	}()

	logger.Logger.Info().Str("addr", addr).Msg("remote control listening")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "remote control server")
	}

	return nil
}

func (s *Server) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{Success: true, Message: "player is running"})
}

func (s *Server) Status(c *gin.Context) {
	c.JSON(http.StatusOK, statusResponse(s.player.Status()))
}

func (s *Server) Play(c *gin.Context) {
	index := s.player.Status().Index
	if index < 0 {
		index = 0
	}

	if raw := c.PostForm("index"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{Message: "index must be an integer"})
			return
		}
		index = parsed
	}

	if err := s.player.Play(index); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, statusResponse(s.player.Status()))
}

func (s *Server) Volume(c *gin.Context) {
	volume, err := strconv.ParseFloat(c.PostForm("value"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, Response{Message: "value must be a number"})
		return
	}

	s.player.SetVolume(volume)
	c.JSON(http.StatusOK, statusResponse(s.player.Status()))
}

func (s *Server) simple(action func()) gin.HandlerFunc {
	return func(c *gin.Context) {
		action()
		c.JSON(http.StatusOK, statusResponse(s.player.Status()))
	}
}

func (s *Server) step(action func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := action(); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, statusResponse(s.player.Status()))
	}
}

func writeError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, player.ErrNoTrack) {
		code = http.StatusConflict
	}

	c.JSON(code, Response{Message: err.Error()})
}

func statusResponse(status types.Status) StatusResponse {
	return StatusResponse{
		State:     status.State.String(),
		Index:     status.Index,
		Title:     status.Track.Title,
		Artist:    status.Track.Artist,
		Album:     status.Track.Album,
		ElapsedMS: status.Elapsed.Milliseconds(),
		TotalMS:   status.Total.Milliseconds(),
		Timer:     player.Timer(status),
		Volume:    status.Volume,
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("remote request")
	}
}
