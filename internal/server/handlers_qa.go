package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"docqa/internal/usecase"
)

type askRequest struct {
	Question    string   `json:"question"`
	DocumentIDs []string `json:"documentIds"`
	DocumentID  string   `json:"documentId"`
}

func (s *Server) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	docIDs := req.DocumentIDs
	if docIDs == nil && req.DocumentID != "" {
		docIDs = []string{req.DocumentID}
	}

	result, err := s.qa.Answer(c.Request.Context(), currentUserID(c), req.Question, docIDs)
	if err != nil {
		var inputErr *usecase.InputError
		if errors.As(err, &inputErr) {
			abortWithError(c, http.StatusBadRequest, inputErr.Reason)
		} else {
			log.Error().Err(err).Msg("question answering failed")
			abortWithError(c, http.StatusInternalServerError, "Failed to process question")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":         result.Answer,
		"relevantChunks": answerChunks(result.RelevantChunks),
		"confidence":     result.Confidence,
		"question":       result.Question,
	})
}

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.qa.Search(currentUserID(c), req.Query)
	if err != nil {
		var inputErr *usecase.InputError
		if errors.As(err, &inputErr) {
			abortWithError(c, http.StatusBadRequest, "Search query is required")
		} else {
			log.Error().Err(err).Msg("chunk search failed")
			abortWithError(c, http.StatusInternalServerError, "Failed to search chunks")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":      result.Query,
		"chunks":     result.Chunks,
		"totalFound": len(result.Chunks),
	})
}

// history is reserved for stored Q&A history.
func (s *Server) history(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": []any{}})
}
