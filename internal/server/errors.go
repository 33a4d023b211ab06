package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/phishguard/phishguard/internal/llm"
)

// Canned messages for model-call failures. The client shows these
// verbatim, so they stay user-facing and stable.
const (
	msgConfig  = "API configuration error. Please contact support."
	msgNetwork = "Unable to connect to AI service. Please check your network connection."
)

// fail translates a service error into the endpoint's JSON error body.
// The mapping keys off the error's kind, never off message text:
// invalid input is the caller's fault, everything else is a 500 with
// either a canned cause or the endpoint's generic fallback.
func (s *Server) fail(c *gin.Context, err error, fallback string) {
	kind := llm.KindOf(err)

	entry := s.log.WithFields(map[string]any{
		"path": c.FullPath(),
		"kind": kind.String(),
	})

	switch kind {
	case llm.KindInvalidInput:
		entry.WithError(err).Warn("rejected request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case llm.KindAuth:
		entry.Error("model credential missing or rejected")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgConfig})
	case llm.KindNetwork:
		entry.WithError(err).Error("model unreachable")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgNetwork})
	default:
		entry.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// badRequest rejects a request that never reached a service.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
