package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ndmedia/internal/adapter"
	"ndmedia/internal/content"
	"ndmedia/internal/domain"
	"ndmedia/internal/render"
	"ndmedia/internal/repository"
	"ndmedia/internal/service"
)

type renderOptions struct {
	page        string
	contentPath string
	outPath     string
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one page to HTML",
	Long: `Renders a page with fresh view state, exactly as the server would on
first visit, and writes it to --out or stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if renderOpts.outPath != "" {
			f, err := os.Create(renderOpts.outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", renderOpts.outPath, err)
			}
			defer f.Close()
			out = f
		}
		return runRender(cmd.Context(), out, renderOpts, time.Now())
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOpts.page, "page", "p", domain.DefaultPage.String(), "page to render")
	renderCmd.Flags().StringVarP(&renderOpts.contentPath, "content", "c", "", "content file (default: built-in content)")
	renderCmd.Flags().StringVarP(&renderOpts.outPath, "out", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(ctx context.Context, out io.Writer, opts renderOptions, now time.Time) error {
	c, err := content.Load(opts.contentPath)
	if err != nil {
		return err
	}

	viewCache := adapter.NewMemoryCacheAdapter()
	store := service.NewViewStore(repository.NewViewRepository(viewCache, time.Minute))
	views := service.NewViewService(store, viewCache, c, domain.DefaultTrackerSettings)

	view, err := views.Enter(ctx, domain.ParsePage(opts.page))
	if err != nil {
		return err
	}

	renderer, err := render.New(c)
	if err != nil {
		return err
	}
	return renderer.Render(out, renderer.NewPageData(view, now.Year()))
}
