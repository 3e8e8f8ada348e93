package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_plagiarism_similarity/internal/adapters/corpusloader"
	"github.com/baditaflorin/go_plagiarism_similarity/pkg/plagiarism"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "plagcheck",
		Short: "Estimate how similar a text is to a reference corpus",
		Long: `plagcheck scores a text against a small reference corpus by word overlap
and reports the best match as a percentage with a risk message.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("corpus", "", "YAML file of reference documents (default: built-in corpus)")

	rootCmd.AddCommand(
		newCheckCmd(),
		newCorpusCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Score a text from arguments, --file, or stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			detector, err := detectorFromFlags(cmd)
			if err != nil {
				return err
			}
			defer detector.Close()

			report, err := detector.Check(text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"percentage": report.Percentage,
					"category":   report.Category,
					"message":    report.Message,
					"best_match": report.BestMatch,
					"words":      report.Words,
				})
			}

			fmt.Fprintf(out, "Similarity: %.1f%% (%s)\n", report.Percentage, report.Category)
			if report.BestMatch != "" {
				fmt.Fprintf(out, "Best match: %s\n", report.BestMatch)
			}
			fmt.Fprintln(out, report.Message)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "Read the text from a file ('-' for stdin)")
	return cmd
}

func newCorpusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corpus",
		Short: "List the reference documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			detector, err := detectorFromFlags(cmd)
			if err != nil {
				return err
			}
			defer detector.Close()

			docs, counts := detector.Documents()
			out := cmd.OutOrStdout()

			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				type entry struct {
					ID    string `json:"id"`
					Words int    `json:"words"`
				}
				entries := make([]entry, len(docs))
				for i, doc := range docs {
					entries[i] = entry{ID: doc.ID, Words: counts[i]}
				}
				return json.NewEncoder(out).Encode(entries)
			}

			for i, doc := range docs {
				fmt.Fprintf(out, "%-24s %d words\n", doc.ID, counts[i])
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				_ = json.NewEncoder(out).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(out, "plagcheck version %s\n", version)
			}
		},
	}
}

// readInput returns the text to check: joined arguments, the --file contents, or stdin.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")
	if len(args) > 0 && file != "" {
		return "", fmt.Errorf("pass text as arguments or with --file, not both")
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	var r io.Reader = cmd.InOrStdin()
	if file != "" && file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return "", fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func detectorFromFlags(cmd *cobra.Command) (*plagiarism.Detector, error) {
	opts := []plagiarism.Option{plagiarism.WithNopLogger()}

	if path, _ := cmd.Flags().GetString("corpus"); path != "" {
		docs, err := corpusloader.LoadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, plagiarism.WithDocuments(docs))
	}

	return plagiarism.New(opts...)
}
