package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phishguard/phishguard/internal/chat"
	"github.com/phishguard/phishguard/internal/generate"
	"github.com/phishguard/phishguard/internal/scenario"
)

func (s *Server) handleChat(c *gin.Context) {
	var req struct {
		Message string      `json:"message"`
		History []chat.Turn `json:"history"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	reply, err := s.chatter.Reply(c.Request.Context(), req.Message, req.History)
	if err != nil {
		s.fail(c, err, "Failed to process request")
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

func (s *Server) handleDetectPhishing(c *gin.Context) {
	var req struct {
		Content string `json:"content"`
		Type    string `json:"type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	analysis, err := s.generator.Detect(c.Request.Context(), req.Content, req.Type)
	if err != nil {
		s.fail(c, err, "Failed to analyze content")
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

func (s *Server) handleGenerateScenario(c *gin.Context) {
	var req struct {
		Difficulty string `json:"difficulty"`
	}
	// An empty body is a valid request for a medium scenario.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}

	sc, err := s.generator.EmailScenario(c.Request.Context(), req.Difficulty)
	if err != nil {
		s.fail(c, err, "Failed to generate scenario")
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenario": sc})
}

func (s *Server) handleGenerateURLScenario(c *gin.Context) {
	sc, err := s.generator.URLScenario(c.Request.Context())
	if err != nil {
		s.fail(c, err, "Failed to generate scenario")
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenario": sc})
}

func (s *Server) handleGenerateLoginScenario(c *gin.Context) {
	sc, err := s.generator.LoginScenario(c.Request.Context())
	if err != nil {
		s.fail(c, err, "Failed to generate scenario")
		return
	}
	c.JSON(http.StatusOK, gin.H{"scenario": sc})
}

func (s *Server) handleGeneratePasswordQuiz(c *gin.Context) {
	questions, err := s.generator.PasswordQuiz(c.Request.Context())
	if err != nil {
		s.fail(c, err, "Failed to generate quiz")
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) handleGeneratePhishingQuiz(c *gin.Context) {
	questions, err := s.generator.PhishingQuiz(c.Request.Context())
	if err != nil {
		s.fail(c, err, "Failed to generate quiz")
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

func (s *Server) handleTutor(c *gin.Context) {
	var req struct {
		Scenario      scenario.Email `json:"scenario"`
		UserAnswer    string         `json:"userAnswer"`
		CorrectAnswer string         `json:"correctAnswer"`
		Context       string         `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	feedback, isCorrect, err := s.generator.Tutor(c.Request.Context(), generate.TutorInput{
		Scenario:      req.Scenario,
		UserAnswer:    req.UserAnswer,
		CorrectAnswer: req.CorrectAnswer,
		Context:       req.Context,
	})
	if err != nil {
		s.fail(c, err, "Failed to get feedback")
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": feedback, "isCorrect": isCorrect})
}

func (s *Server) handleSimulationSet(c *gin.Context) {
	var req struct {
		URLCount   int `json:"urlCount"`
		LoginCount int `json:"loginCount"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid request body")
			return
		}
	}

	set, err := s.generator.SimulationSet(c.Request.Context(), req.URLCount, req.LoginCount)
	if err != nil {
		s.fail(c, err, "Failed to generate scenario")
		return
	}
	c.JSON(http.StatusOK, set)
}
