package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/glyphlab/text2png"
	"github.com/glyphlab/text2png/config"
	"github.com/glyphlab/text2png/handler/dot"
	"github.com/glyphlab/text2png/version"
	"github.com/k1LoW/errors"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var (
	profile    string
	outputDir  string
	fontName   string
	sizeSpec   string
	padding    float64
	background string
	textColor  string
	clobber    bool
	logLevel   string
	watch      bool
)

var rootCmd = &cobra.Command{
	Use:   "text2png [TEXT_FILE]",
	Short: "text2png renders each line of a text file as a PNG image",
	Long: `text2png renders each line of a text file as a PNG image.

Lines starting with '#' (or the full-width '＃') are comments and blank lines
are ignored. One font size is resolved so that every line fits the canvas,
then one image per line is written into the output directory. Existing
images are kept unless --clobber is given.`,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
	Args:         cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		if !flags.Changed("font") && cfg.Font != "" {
			fontName = cfg.Font
		}
		if !flags.Changed("output-dir") && cfg.OutputDir != "" {
			outputDir = cfg.OutputDir
		}
		if !flags.Changed("size") && cfg.Size != "" {
			sizeSpec = cfg.Size
		}
		if !flags.Changed("padding") && cfg.Padding != nil {
			padding = *cfg.Padding
		}
		if !flags.Changed("background") && cfg.Background != "" {
			background = cfg.Background
		}
		if !flags.Changed("text-color") && cfg.TextColor != "" {
			textColor = cfg.TextColor
		}
		if !flags.Changed("log") && cfg.LogLevel != "" {
			logLevel = cfg.LogLevel
		}

		level, err := parseLogLevel(logLevel)
		if err != nil {
			return err
		}
		logger, err := newLogger(level)
		if err != nil {
			return err
		}
		canvas, err := text2png.ParseSize(sizeSpec)
		if err != nil {
			return err
		}
		g, err := text2png.New(
			text2png.WithLogger(logger),
			text2png.WithFont(fontName),
			text2png.WithCanvasSize(canvas),
			text2png.WithPadding(padding),
			text2png.WithBackground(background),
			text2png.WithTextColor(textColor),
			text2png.WithOutputDir(outputDir),
			text2png.WithClobber(clobber),
		)
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		if _, err := g.Run(ctx, file); err != nil {
			return err
		}
		if watch {
			return watchAndRun(ctx, g, file, logger)
		}
		return nil
	},
}

type errorData struct {
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Write stack trace log to state directory
		d := &errorData{
			StackTraces: errors.StackTraces(err),
			CreatedAt:   time.Now(),
			Version:     version.Version,
			Revision:    version.Revision,
		}
		b, err := json.Marshal(d)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		} else if err := os.MkdirAll(config.StateHomePath(), 0o700); err == nil {
			dumpPath := filepath.Join(config.StateHomePath(), "error.json")
			if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "failed to write error.json to %s: %v\n", dumpPath, err)
			}
		}
		os.Exit(1)
	}
}

// newLogger builds the pipeline logger: progress glyphs on stdout, text
// records on stderr at the configured level.
func newLogger(level slog.Level) (*slog.Logger, error) {
	progress, err := dot.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if err != nil {
		return nil, err
	}
	text := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(progress, text)), nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q (want debug, info, warn or error): %w",
			level, text2png.ErrConfiguration)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "profile name")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "d", text2png.DefaultOutputDir, "directory in which to output pictures")
	rootCmd.Flags().StringVarP(&fontName, "font", "", text2png.DefaultFont, "font to use for text (family name or font file path)")
	rootCmd.Flags().StringVarP(&sizeSpec, "size", "", text2png.DefaultCanvasSize.String(), "size in pixels to make all images (e.g. 500x500)")
	rootCmd.Flags().Float64VarP(&padding, "padding", "", text2png.DefaultPadding, "fraction of the canvas dimensions to use as a blank border")
	rootCmd.Flags().StringVarP(&background, "background", "", text2png.DefaultBackground, "color for the background")
	rootCmd.Flags().StringVarP(&textColor, "text-color", "", text2png.DefaultTextColor, "color to use for the text")
	rootCmd.Flags().BoolVarP(&clobber, "clobber", "", false, "overwrite existing files instead of skipping them")
	rootCmd.Flags().StringVarP(&logLevel, "log", "", "warn", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "watch the text file and regenerate on change")
}
