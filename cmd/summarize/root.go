package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nguyentantai21042004/audio-summarizer/internal/config"
	"github.com/nguyentantai21042004/audio-summarizer/internal/logger"
	"github.com/nguyentantai21042004/audio-summarizer/internal/models"
	"github.com/nguyentantai21042004/audio-summarizer/internal/processor"
	"github.com/spf13/cobra"
)

var version = "dev"

// buildFunc wires a Processor from a validated config.
type buildFunc func(cfg *config.Config, log logger.Logger) (processor.Processor, error)

type deps struct {
	build  buildFunc
	getenv func(string) string
}

type options struct {
	configPath string
	promptType string
	outputDir  string
	debug      bool
	quiet      bool
}

func newRootCommand(d deps) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "summarize <audio_file>",
		Short: "Transcribe an audio file and save a Markdown summary",
		Long: `Transcribe a meeting, presentation or other recording and save a
templated Markdown summary under a YYYYMMDD_HHMM directory.

Files larger than the transcription upload limit are split into 30 minute
chunks and transcribed in order.`,
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd, d, opts, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.promptType, "prompt-type", "p", string(models.PromptGeneral),
		"Summary template: "+promptTypeNames())
	flags.StringVarP(&opts.configPath, "config", "c", "config.yaml", "Path to the YAML config file")
	flags.StringVarP(&opts.outputDir, "output", "o", "", "Root directory for run folders (overrides paths.output)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print the transcript and summary")

	cmd.AddCommand(newWatchCommand(d, opts))

	return cmd
}

func execute(ctx context.Context) error {
	return newRootCommand(deps{build: buildProcessor, getenv: os.Getenv}).ExecuteContext(ctx)
}

func runSummarize(cmd *cobra.Command, d deps, opts *options, audioPath string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd, d, opts)
	if err != nil {
		return err
	}

	log := newLogger(cmd, cfg)
	proc, err := d.build(cfg, log)
	if err != nil {
		return err
	}

	res, err := proc.Process(ctx, audioPath, models.PromptType(opts.promptType))
	if err != nil {
		log.Error(ctx, "Processing failed: %v", err)
		return err
	}

	if !opts.quiet {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "=== 文字起こし ===\n%s\n", res.Transcript.String())
		fmt.Fprintf(out, "\n=== 要約 ===\n%s\n", res.Summary)
	}

	return nil
}

// loadConfig resolves config and credentials. It runs before anything else
// so a missing credential stops the command without side effects.
func loadConfig(cmd *cobra.Command, d deps, opts *options) (*config.Config, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(opts.configPath)
	} else {
		cfg, err = config.LoadOptional(opts.configPath)
	}
	if err != nil {
		return nil, err
	}

	cfg.ReadCredentials(d.getenv)
	if opts.outputDir != "" {
		cfg.Paths.Output = opts.outputDir
	}
	if opts.debug {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	return logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
}

func promptTypeNames() string {
	names := make([]string, 0, len(models.PromptTypes))
	for _, t := range models.PromptTypes {
		names = append(names, string(t))
	}
	return strings.Join(names, "|")
}
