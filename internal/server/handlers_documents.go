package server

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"docqa/internal/domain"
	"docqa/internal/usecase"
)

// maxUploadSize caps uploaded files at 10MB.
const maxUploadSize = 10 << 20

func (s *Server) uploadDocument(c *gin.Context) {
	file, err := c.FormFile("document")
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "No file provided")
		return
	}

	if file.Size > maxUploadSize {
		abortWithError(c, http.StatusBadRequest, "File size must be less than 10MB")
		return
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".txt") {
		abortWithError(c, http.StatusBadRequest, "Only text files (.txt) are allowed")
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open upload")
		abortWithError(c, http.StatusInternalServerError, "Failed to upload document")
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxUploadSize))
	if err != nil {
		log.Error().Err(err).Msg("failed to read upload")
		abortWithError(c, http.StatusInternalServerError, "Failed to upload document")
		return
	}

	doc, err := s.documents.Ingest(currentUserID(c), file.Filename, string(content))
	if err != nil {
		var inputErr *usecase.InputError
		if errors.As(err, &inputErr) {
			abortWithError(c, http.StatusBadRequest, inputErr.Reason)
		} else {
			log.Error().Err(err).Msg("document ingest failed")
			abortWithError(c, http.StatusInternalServerError, "Failed to upload document")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Document uploaded successfully",
		"document": summarize(doc),
	})
}

func (s *Server) listDocuments(c *gin.Context) {
	docs, err := s.documents.List(currentUserID(c))
	if err != nil {
		log.Error().Err(err).Msg("document listing failed")
		abortWithError(c, http.StatusInternalServerError, "Failed to get documents")
		return
	}

	summaries := make([]documentSummary, len(docs))
	for i, doc := range docs {
		summaries[i] = summarize(doc)
	}
	c.JSON(http.StatusOK, gin.H{"documents": summaries})
}

func (s *Server) getDocument(c *gin.Context) {
	doc, err := s.documents.Get(c.Param("documentId"), currentUserID(c))
	if err != nil {
		s.renderDocumentError(c, err, "Failed to get document")
		return
	}
	c.JSON(http.StatusOK, gin.H{"document": doc})
}

func (s *Server) getDocumentChunks(c *gin.Context) {
	doc, err := s.documents.Get(c.Param("documentId"), currentUserID(c))
	if err != nil {
		s.renderDocumentError(c, err, "Failed to get document chunks")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chunks": doc.Chunks,
		"documentInfo": gin.H{
			"id":        doc.ID,
			"filename":  doc.Filename,
			"createdAt": doc.CreatedAt,
		},
	})
}

func (s *Server) deleteDocument(c *gin.Context) {
	if err := s.documents.Delete(c.Param("documentId"), currentUserID(c)); err != nil {
		s.renderDocumentError(c, err, "Failed to delete document")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

func (s *Server) renderDocumentError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, domain.ErrDocumentNotFound):
		abortWithError(c, http.StatusNotFound, "Document not found")
	case errors.Is(err, domain.ErrAccessDenied):
		abortWithError(c, http.StatusForbidden, "Access denied")
	default:
		log.Error().Err(err).Msg(fallback)
		abortWithError(c, http.StatusInternalServerError, fallback)
	}
}
