package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/hoanglm42/lecture-notes/internal/config"
	"github.com/hoanglm42/lecture-notes/internal/logger"
	"github.com/hoanglm42/lecture-notes/internal/pipeline"
	"github.com/hoanglm42/lecture-notes/internal/transcript"
	"github.com/hoanglm42/lecture-notes/internal/watcher"
	"github.com/hoanglm42/lecture-notes/pkg/executor"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "lecture-notes",
		Usage: "Turn lecture recordings into structured, summarized notes",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: "config.yaml", Usage: "Configuration file path"},
		},
		Commands: []*cli.Command{
			runCmd(),
			watchCmd(),
			transcribeCmd(),
			cleanCmd(),
			chaptersCmd(),
			summarizeCmd(),
			styleCmd(),
			analyzeCmd(),
			exportCmd(),
			transcriptCmd(),
		},
	}
}

// setup loads configuration and wires the pipeline for one command.
func setup(c *cli.Context) (*config.Config, pipeline.Pipeline, logger.Logger, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	p, err := pipeline.New(cfg, executor.New(), log)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, p, log, nil
}

// openRun resolves the --run flag against the store.
func openRun(c *cli.Context, p pipeline.Pipeline) (*transcript.Run, error) {
	id := c.String("run")
	if id == "" {
		return nil, fmt.Errorf("--run is required")
	}
	return p.Store().OpenRun(id)
}

func runFlag() cli.Flag {
	return &cli.StringFlag{Name: "run", Aliases: []string{"r"}, Usage: "Run ID (directory name under the output root)", Required: true}
}

func runCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Process one recording through the full pipeline",
		ArgsUsage: "<media-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("exactly one media file is required")
			}
			_, p, log, err := setup(c)
			if err != nil {
				return err
			}

			run, err := p.Process(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			log.Info(c.Context, "Notes ready: %s", run.Path(transcript.FileNotes))
			return nil
		},
	}
}

func watchCmd() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Monitor the input directory and process new recordings as they appear",
		Action: func(c *cli.Context) error {
			cfg, p, log, err := setup(c)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
				return fmt.Errorf("create input directory: %w", err)
			}

			handler := func(ctx context.Context, filePath string) error {
				_, err := p.Process(ctx, filePath)
				return err
			}
			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := context.WithCancel(c.Context)
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				if err := w.Start(ctx); err != nil && err != context.Canceled {
					errChan <- err
				}
			}()

			log.Info(ctx, "Monitoring %s, output in %s. Press Ctrl+C to stop.", cfg.Paths.Input, cfg.Paths.Output)

			select {
			case <-sigChan:
				log.Info(ctx, "Shutdown signal received")
			case err := <-errChan:
				return err
			}
			cancel()
			return nil
		},
	}
}

func transcribeCmd() *cli.Command {
	return &cli.Command{
		Name:      "transcribe",
		Usage:     "Transcribe a recording into a new run's span file",
		ArgsUsage: "<media-file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("exactly one media file is required")
			}
			_, p, log, err := setup(c)
			if err != nil {
				return err
			}
			run, err := p.Ingest(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			log.Info(c.Context, "Run created: %s", run.ID())
			return nil
		},
	}
}

func cleanCmd() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Merge and normalize a run's spans into paragraphs",
		Flags: []cli.Flag{runFlag()},
		Action: func(c *cli.Context) error {
			_, p, _, err := setup(c)
			if err != nil {
				return err
			}
			run, err := openRun(c, p)
			if err != nil {
				return err
			}
			return p.RunCleaner(c.Context, run)
		},
	}
}

func chaptersCmd() *cli.Command {
	return &cli.Command{
		Name:  "chapters",
		Usage: "Partition a run's paragraphs into chapters",
		Flags: []cli.Flag{runFlag()},
		Action: func(c *cli.Context) error {
			_, p, _, err := setup(c)
			if err != nil {
				return err
			}
			run, err := openRun(c, p)
			if err != nil {
				return err
			}
			return p.RunSegmenter(c.Context, run)
		},
	}
}

func summarizeCmd() *cli.Command {
	return &cli.Command{
		Name:  "summarize",
		Usage: "Build micro, chapter and global summaries for a run",
		Flags: []cli.Flag{runFlag()},
		Action: func(c *cli.Context) error {
			_, p, _, err := setup(c)
			if err != nil {
				return err
			}
			run, err := openRun(c, p)
			if err != nil {
				return err
			}
			return p.RunSummarizer(c.Context, run)
		},
	}
}

func styleCmd() *cli.Command {
	return &cli.Command{
		Name:  "style",
		Usage: "Re-render a run's chapter summaries in presentation styles",
		Flags: []cli.Flag{
			runFlag(),
			&cli.StringFlag{Name: "styles", Value: "review,exam", Usage: "Comma-separated styles: review, exam"},
		},
		Action: func(c *cli.Context) error {
			_, p, _, err := setup(c)
			if err != nil {
				return err
			}
			run, err := openRun(c, p)
			if err != nil {
				return err
			}
			styles := strings.Split(c.String("styles"), ",")
			for i := range styles {
				styles[i] = strings.TrimSpace(styles[i])
			}
			return p.RunStyler(c.Context, run, styles)
		},
	}
}

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Annotate a run's sentences with importance labels",
		Flags: []cli.Flag{runFlag()},
		Action: func(c *cli.Context) error {
			_, p, _, err := setup(c)
			if err != nil {
				return err
			}
			run, err := openRun(c, p)
			if err != nil {
				return err
			}
			return p.RunAnalyzer(c.Context, run)
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Render a run's persisted outputs into the notes document",
		Flags: []cli.Flag{
			runFlag(),
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Document title (defaults to the run ID)"},
		},
		Action: func(c *cli.Context) error {
			_, p, log, err := setup(c)
			if err != nil {
				return err
			}
			run, err := openRun(c, p)
			if err != nil {
				return err
			}
			title := c.String("title")
			if title == "" {
				title = run.ID()
			}
			if err := p.RunExport(c.Context, run, title); err != nil {
				return err
			}
			log.Info(c.Context, "Notes ready: %s", filepath.Join(run.Dir(), transcript.FileNotes))
			return nil
		},
	}
}

func transcriptCmd() *cli.Command {
	return &cli.Command{
		Name:  "transcript",
		Usage: "Render a run's cleaned paragraphs as a transcript document",
		Flags: []cli.Flag{
			runFlag(),
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Document title (defaults to the run ID)"},
		},
		Action: func(c *cli.Context) error {
			_, p, log, err := setup(c)
			if err != nil {
				return err
			}
			run, err := openRun(c, p)
			if err != nil {
				return err
			}
			title := c.String("title")
			if title == "" {
				title = run.ID()
			}
			if err := p.RunTranscriptExport(c.Context, run, title); err != nil {
				return err
			}
			log.Info(c.Context, "Transcript ready: %s", filepath.Join(run.Dir(), transcript.FileTranscript))
			return nil
		},
	}
}
