package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"docqa/internal/adapter/auth"
	"docqa/internal/usecase"
)

// Server wires the use cases into the HTTP API.
type Server struct {
	accounts  *usecase.AccountUseCase
	documents *usecase.DocumentUseCase
	qa        *usecase.QAUseCase
	tokens    *auth.TokenService
}

func New(accounts *usecase.AccountUseCase, documents *usecase.DocumentUseCase, qa *usecase.QAUseCase, tokens *auth.TokenService) *Server {
	return &Server{
		accounts:  accounts,
		documents: documents,
		qa:        qa,
		tokens:    tokens,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), corsMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
		authGroup.GET("/profile", s.authRequired(), s.profile)
	}

	docs := api.Group("/documents")
	docs.Use(s.authRequired())
	{
		docs.POST("/upload", s.uploadDocument)
		docs.GET("", s.listDocuments)
		docs.GET("/:documentId", s.getDocument)
		docs.GET("/:documentId/chunks", s.getDocumentChunks)
		docs.DELETE("/:documentId", s.deleteDocument)
	}

	qa := api.Group("/qa")
	qa.Use(s.authRequired())
	{
		qa.POST("/ask", s.ask)
		qa.POST("/search", s.search)
		qa.GET("/history", s.history)
	}

	return r
}
