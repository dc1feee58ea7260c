package cmd

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/koki-develop/imgascii/internal/ascii"
	"github.com/koki-develop/imgascii/internal/imageio"
	"github.com/koki-develop/imgascii/internal/resize"
	"github.com/koki-develop/imgascii/internal/terminal"
	"github.com/spf13/cobra"
)

type options struct {
	width       int
	aspectRatio float64
	contrast    float64
	invert      bool
	dense       bool
	filter      string
	fit         bool
	workers     int
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "imgascii <image>",
		Short: "Convert an image into ASCII art",
		Long: `Convert an image into ASCII art.

Reads a PNG, JPEG, GIF, BMP, TIFF or WebP image ("-" for stdin), scales it
to the requested width and prints one line of characters per row.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", ascii.DefaultWidth, "Width of the output in characters")
	cmd.Flags().Float64Var(&opts.aspectRatio, "aspect-ratio", ascii.DefaultAspectRatio, "Aspect ratio correction factor for output")
	cmd.Flags().Float64Var(&opts.contrast, "contrast", ascii.DefaultContrast, "Contrast adjustment (0.5 to 2.0)")
	cmd.Flags().BoolVar(&opts.invert, "invert", false, "Invert colors")
	cmd.Flags().BoolVar(&opts.dense, "dense", false, "Use dense character set")
	cmd.Flags().StringVar(&opts.filter, "filter", string(resize.CatmullRom), "Resampling filter ("+strings.Join(resize.Filters(), ", ")+")")
	cmd.Flags().BoolVar(&opts.fit, "fit", false, "Fit the width to the terminal window")
	cmd.Flags().IntVar(&opts.workers, "workers", 0, "Rows rendered in parallel (0 uses all CPUs)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug logs to stderr")

	return cmd
}

func run(cmd *cobra.Command, opts *options, path string) error {
	slog.SetDefault(newLogger(cmd.ErrOrStderr(), opts.verbose))

	filter, err := resize.ParseFilter(opts.filter)
	if err != nil {
		return err
	}

	cfg := ascii.Config{
		Width:       opts.width,
		AspectRatio: opts.aspectRatio,
		Contrast:    opts.contrast,
		Invert:      opts.invert,
		Dense:       opts.dense,
		Filter:      filter,
		Workers:     opts.workers,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	img, err := imageio.Load(path)
	if err != nil {
		return err
	}

	if opts.fit {
		cfg.Width = fitWidth(img, cfg)
	}

	art, err := ascii.Render(cmd.Context(), img, cfg)
	if err != nil {
		return fmt.Errorf("failed to render %q: %w", path, err)
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	if _, err := art.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return w.Flush()
}

func fitWidth(img image.Image, cfg ascii.Config) int {
	cols, rows, err := terminal.Size(os.Stdout)
	if err != nil {
		slog.Warn("cannot fit to terminal, using --width", "width", cfg.Width, "error", err)
		return cfg.Width
	}

	w := resize.NewResizer(cfg.Filter).FitWidth(img, cols, rows, cfg.AspectRatio)
	slog.Debug("fitted width to terminal", "cols", cols, "rows", rows, "width", w)
	return w
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}
