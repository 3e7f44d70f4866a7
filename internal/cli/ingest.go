package cli

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"docqa/internal/adapter/chunker"
	"docqa/internal/usecase"
)

var ingestOwner string

var ingestCmd = &cobra.Command{
	Use:   "ingest [patterns...]",
	Short: "Ingest text files for a registered user",
	Long: `Ingest local .txt files into a user's document collection, bypassing the
HTTP upload route. Patterns support doublestar globs.

Examples:
  docqa ingest -o alice@example.com notes.txt
  docqa ingest -o alice@example.com 'docs/**/*.txt'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVarP(&ingestOwner, "owner", "o", "", "email of the owning user (required)")
	ingestCmd.MarkFlagRequired("owner")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	owner, _, err := st.GetUserByEmail(ingestOwner)
	if err != nil {
		return fmt.Errorf("unknown user %q: %w", ingestOwner, err)
	}

	var files []string
	for _, pattern := range args {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files matched")
	}

	documents := usecase.NewDocumentUseCase(st, chunker.NewSentenceChunker(cfg.Chunking.MaxChunkSize))

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Ingesting"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)

	ingested := 0
	chunksTotal := 0
	var failures []string

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", path, err))
			bar.Add(1)
			continue
		}

		doc, err := documents.Ingest(owner.ID, path, string(content))
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", path, err))
			bar.Add(1)
			continue
		}

		ingested++
		chunksTotal += len(doc.Chunks)
		bar.Add(1)
	}

	fmt.Printf("\nIngest complete:\n")
	fmt.Printf("  Documents: %d\n", ingested)
	fmt.Printf("  Chunks:    %d\n", chunksTotal)

	if len(failures) > 0 {
		fmt.Printf("\nWarnings:\n")
		for _, f := range failures {
			fmt.Printf("  - %s\n", f)
		}
	}

	return nil
}
