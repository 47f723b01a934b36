package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/olusolaa/lambda-logger/internal/core/ports"
	"github.com/olusolaa/lambda-logger/pkg/logger"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `yaml:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

// NewReporter writes to w, or to stdout when w is nil. Colour is disabled when requested
// or when stdout is not a terminal.
func NewReporter(cfg Config, w io.Writer, logger ports.Logger) (*Reporter, error) {
	if w == nil {
		w = os.Stdout
	}
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	return &Reporter{
		config: cfg,
		writer: w,
		logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, env logger.Environment, cfg logger.Config) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	defer tw.Flush()

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	mode := green("local")
	if env.Hosted() {
		mode = cyan("hosted (AWS Lambda)")
	}

	fmt.Fprintln(tw, "Logging Environment")
	fmt.Fprintln(tw, "===================")
	fmt.Fprintf(tw, "Mode:\t%s\n", mode)
	fmt.Fprintf(tw, "Function:\t%s\n", orUnset(env.FunctionName))
	fmt.Fprintf(tw, "Version:\t%s\n", orUnset(env.FunctionVersion))
	fmt.Fprintf(tw, "Region:\t%s\n", orUnset(env.Region))
	fmt.Fprintf(tw, "Stage:\t%s\n", orUnset(env.Stage))

	fmt.Fprintln(tw, "\nEffective Configuration:")
	fmt.Fprintln(tw, "------------------------")
	fmt.Fprintf(tw, "Level:\t%s\n", yellow(cfg.Level))
	fmt.Fprintf(tw, "Format:\t%s\n", cfg.Format)
	fmt.Fprintf(tw, "Level labels:\t%t\n", cfg.OutputLevels)
	fmt.Fprintf(tw, "Timestamps:\t%t\n", cfg.LogTimestamps)

	overrides := [][2]string{
		{logger.EnvLogLevel, env.LevelOverride},
		{logger.EnvLogFormat, env.FormatOverride},
		{logger.EnvTimestamps, env.TimestampsOverride},
		{logger.EnvOutputLevels, env.OutputLevelsOverride},
	}
	header := false
	for _, o := range overrides {
		if o[1] == "" {
			continue
		}
		if !header {
			fmt.Fprintln(tw, "\nEnvironment Overrides:")
			fmt.Fprintln(tw, "----------------------")
			header = true
		}
		fmt.Fprintf(tw, "%s:\t%s\n", o[0], o[1])
	}

	r.logger.Debug("environment report written", "hosted", env.Hosted())
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "<unset>"
	}
	return s
}
