// Package server exposes the training site's HTTP surface: static quiz
// and scenario banks, the password-strength endpoint, and the
// generative proxy routes. Handlers hold no per-request server state;
// everything a client needs across requests travels in its own
// payloads, except the judge session's first-answer lock table.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/phishguard/phishguard/internal/chat"
	"github.com/phishguard/phishguard/internal/config"
	"github.com/phishguard/phishguard/internal/generate"
	"github.com/phishguard/phishguard/internal/scenario"
)

// Server wires the services to their routes.
type Server struct {
	cfg       config.HTTPConfig
	log       *logrus.Logger
	generator *generate.Service
	chatter   *chat.Service
	judge     *scenario.Session
	router    *gin.Engine
}

// New builds a Server. The judge session is preloaded with the static
// scenario banks so /scenarios/judge works out of the box.
func New(cfg config.HTTPConfig, log *logrus.Logger, generator *generate.Service, chatter *chat.Service) *Server {
	judge := scenario.NewSession()
	for _, e := range scenario.EmailBank() {
		judge.AddEmail(e)
	}
	for _, u := range scenario.URLBank() {
		judge.AddURL(u)
	}
	for _, p := range scenario.LoginPageBank() {
		judge.AddLoginPage(p)
	}

	s := &Server{
		cfg:       cfg,
		log:       log,
		generator: generator,
		chatter:   chatter,
		judge:     judge,
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:  s.cfg.AllowOrigins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/healthz", s.handleHealthz)

	// Static training content.
	r.GET("/quiz/password", s.handlePasswordBank)
	r.GET("/quiz/phishing", s.handlePhishingBank)
	r.POST("/quiz/score", s.handleQuizScore)
	r.GET("/scenarios", s.handleScenarioBanks)
	r.POST("/scenarios/judge", s.handleJudge)
	r.POST("/password-strength", s.handlePasswordStrength)

	// Generative proxy.
	r.POST("/chat", s.handleChat)
	r.POST("/detect-phishing", s.handleDetectPhishing)
	r.POST("/generate-scenario", s.handleGenerateScenario)
	r.POST("/generate-url-scenario", s.handleGenerateURLScenario)
	r.POST("/generate-login-scenario", s.handleGenerateLoginScenario)
	r.POST("/generate-password-quiz", s.handleGeneratePasswordQuiz)
	r.POST("/generate-phishing-quiz", s.handleGeneratePhishingQuiz)
	r.POST("/ai-tutor", s.handleTutor)
	r.POST("/generate-simulation-set", s.handleSimulationSet)

	return r
}

// Router returns the gin engine, mainly for httptest.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run serves until ctx is canceled, then drains in-flight requests
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.WithField("addr", srv.Addr).Info("http server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
