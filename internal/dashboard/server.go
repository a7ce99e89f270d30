// Package dashboard serves the read-only JSON view of polls and the
// leaderboard for the web dashboard. It only ever reads the document;
// all mutation happens through the bot commands.
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"vibecore-bot/internal/model"
	"vibecore-bot/internal/store"
)

// Server is the dashboard HTTP server.
type Server struct {
	store *store.Store
	http  *http.Server
}

// New creates a dashboard server listening on addr.
func New(st *store.Store, addr string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{store: st}
	router.GET("/api/polls", s.getPolls)
	router.GET("/api/leaderboard", s.getLeaderboard)
	router.GET("/", s.getIndex)

	s.http = &http.Server{Addr: addr, Handler: router}
	return s
}

// getPolls returns every poll with its options and voter lists. The
// JSON is rendered under the store lock so a concurrent vote cannot
// tear the snapshot.
func (s *Server) getPolls(c *gin.Context) {
	data := []byte("[]")
	var err error
	s.store.View(func(doc *model.Document) {
		if len(doc.Polls) > 0 {
			data, err = json.Marshal(doc.Polls)
		}
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render polls"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// getLeaderboard returns the identity→points object in insertion order.
func (s *Server) getLeaderboard(c *gin.Context) {
	var (
		data []byte
		err  error
	)
	s.store.View(func(doc *model.Document) {
		data, err = json.Marshal(doc.Leaderboard)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render leaderboard"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// getIndex serves a minimal status page.
func (s *Server) getIndex(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, `<html><head><title>VibeCore Dashboard</title></head>
<body style="font-family:system-ui"><h1>VibeCore — Dashboard</h1>
<p><a href="/api/polls">Polls</a> · <a href="/api/leaderboard">Leaderboard</a></p>
</body></html>`)
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		log.Info().Str("addr", s.http.Addr).Msg("Dashboard listening")
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Dashboard server failed")
		}
	}()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("Dashboard shutdown failed")
	}
}
