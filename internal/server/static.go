package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phishguard/phishguard/internal/quiz"
	"github.com/phishguard/phishguard/internal/scenario"
	"github.com/phishguard/phishguard/internal/strength"
)

// The static banks ship their answer keys and explanations; scoring
// happens client-side, with /quiz/score as a server-side mirror.

func (s *Server) handlePasswordBank(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": quiz.PasswordBank()})
}

func (s *Server) handlePhishingBank(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": quiz.PhishingBank()})
}

func (s *Server) handleQuizScore(c *gin.Context) {
	var req struct {
		Bank    string `json:"bank"`
		Answers []int  `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	var questions []quiz.Question
	switch req.Bank {
	case "password":
		questions = quiz.PasswordBank()
	case "phishing":
		questions = quiz.PhishingBank()
	default:
		badRequest(c, `bank must be "password" or "phishing"`)
		return
	}

	c.JSON(http.StatusOK, quiz.Score(questions, req.Answers))
}

func (s *Server) handleScenarioBanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"emails":     scenario.EmailBank(),
		"urls":       scenario.URLBank(),
		"loginPages": scenario.LoginPageBank(),
	})
}

func (s *Server) handleJudge(c *gin.Context) {
	var req struct {
		ID         string `json:"id"`
		IsPhishing *bool  `json:"isPhishing"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" || req.IsPhishing == nil {
		badRequest(c, "id and isPhishing are required")
		return
	}

	verdict, err := s.judge.Guess(req.ID, *req.IsPhishing)
	switch {
	case errors.Is(err, scenario.ErrAlreadyAnswered):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "scenario already answered",
			"verdict": verdict,
		})
	case errors.Is(err, scenario.ErrUnknownScenario):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown scenario id"})
	case err != nil:
		s.fail(c, err, "Failed to process request")
	default:
		c.JSON(http.StatusOK, gin.H{"verdict": verdict})
	}
}

func (s *Server) handlePasswordStrength(c *gin.Context) {
	var req struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	c.JSON(http.StatusOK, strength.Evaluate(req.Password))
}
