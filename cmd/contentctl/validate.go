package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/logger"
)

const defaultPattern = "**/*.yaml"

var validateCmd = &cobra.Command{
	Use:   "validate [glob...]",
	Short: "Validate content documents",
	Long: `Loads every YAML file matching the given globs (default "**/*.yaml")
and prints each validation problem. Globs support ** for any number of
directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// expandPatterns resolves globs to a sorted, de-duplicated file list.
func expandPatterns(patterns []string) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{defaultPattern}
	}
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob %q", pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", pattern, err)
		}
		logger.Get().Debug("expanded glob", zap.String("pattern", pattern), zap.Int("matches", len(matches)))
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func runValidate(out io.Writer, patterns []string) error {
	files, err := expandPatterns(patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("no content files matched")
	}

	invalid := 0
	for _, f := range files {
		if _, err := content.Load(f); err != nil {
			invalid++
			fmt.Fprintf(out, "FAIL %s\n", f)
			var verrs domain.ValidationErrors
			if errors.As(err, &verrs) {
				for _, v := range verrs {
					fmt.Fprintf(out, "  %s: %s\n", v.Field, v.Message)
				}
			} else {
				fmt.Fprintf(out, "  %v\n", err)
			}
			continue
		}
		fmt.Fprintf(out, "ok   %s\n", f)
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d content files are invalid", invalid, len(files))
	}
	return nil
}
