package cli

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"docqa/internal/adapter/auth"
	"docqa/internal/adapter/chunker"
	"docqa/internal/adapter/llm"
	"docqa/internal/adapter/retriever"
	"docqa/internal/server"
	"docqa/internal/usecase"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the document Q&A HTTP API.

The API serves registration and login under /api/auth, document management
under /api/documents and question answering under /api/qa. All document and
Q&A routes require a bearer token obtained from /api/auth/login.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	secret := cfg.AuthSecret()
	if secret == "" {
		return fmt.Errorf("token signing secret is not set (export %s)", cfg.Auth.SecretEnv)
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	generator, err := llm.NewClient(cfg.LLM.BaseURL, cfg.APIKey(), cfg.LLM.Model)
	if err != nil {
		return err
	}
	if !generator.IsAvailable() {
		log.Warn().Str("env", cfg.LLM.APIKeyEnv).Msg("no API key set, answers will fall back to raw context")
	}

	tokens := auth.NewTokenService(secret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	accounts := usecase.NewAccountUseCase(st, tokens)
	documents := usecase.NewDocumentUseCase(st, chunker.NewSentenceChunker(cfg.Chunking.MaxChunkSize))
	qa := usecase.NewQAUseCase(st, retriever.NewKeywordRetriever(), generator, cfg.Retrieval.MaxResults)

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(accounts, documents, qa, tokens)

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	log.Info().Str("addr", addr).Str("store", cfg.Store.Path).Msg("starting server")
	return srv.Router().Run(addr)
}
