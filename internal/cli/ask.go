package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"docqa/internal/adapter/llm"
	"docqa/internal/adapter/retriever"
	"docqa/internal/usecase"
)

var (
	askOwner    string
	askQuestion string
	askJSON     bool
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask a question against a user's documents",
	Long: `Run the question-answering pipeline once from the command line.

Examples:
  docqa ask -o alice@example.com -q "What is the refund policy?"
  docqa ask -o alice@example.com -q "Who approved the budget?" --json`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askOwner, "owner", "o", "", "email of the asking user (required)")
	askCmd.Flags().StringVarP(&askQuestion, "question", "q", "", "question to ask (required)")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output as JSON")
	askCmd.MarkFlagRequired("owner")
	askCmd.MarkFlagRequired("question")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	owner, _, err := st.GetUserByEmail(askOwner)
	if err != nil {
		return fmt.Errorf("unknown user %q: %w", askOwner, err)
	}

	generator, err := llm.NewClient(cfg.LLM.BaseURL, cfg.APIKey(), cfg.LLM.Model)
	if err != nil {
		return err
	}

	qa := usecase.NewQAUseCase(st, retriever.NewKeywordRetriever(), generator, cfg.Retrieval.MaxResults)

	result, err := qa.Answer(cmd.Context(), owner.ID, askQuestion, nil)
	if err != nil {
		return err
	}

	if askJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Println(result.Answer)
	if len(result.RelevantChunks) > 0 {
		fmt.Printf("\nSources (confidence: %s):\n", result.Confidence)
		for i, c := range result.RelevantChunks {
			fmt.Printf("  [%d] %s (score: %d)\n", i+1, c.Filename, c.Score)
		}
	}
	return nil
}
