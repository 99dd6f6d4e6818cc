// Command simdash drives the dashboard engine from the command line: it
// imports a model, optionally runs a processing job, exports results and
// replays the action journal.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/viant/simdash"
	"github.com/viant/simdash/actions"
	"github.com/viant/simdash/model"
	"github.com/viant/simdash/state"
	"github.com/viant/simdash/store"
)

var (
	configURL  = flag.String("config", "", "config file (yaml or json)")
	envFile    = flag.String("env", ".env", "env file loaded before the config")
	importURL  = flag.String("import", "", "model definition to import")
	sample     = flag.String("sample", "", "bundled sample model to import")
	process    = flag.String("process", "", "processing type to run on the current model")
	export     = flag.Bool("export", false, "export the current model and processed run")
	replay     = flag.Bool("replay", false, "replay the action journal and print the rebuilt state")
	reset      = flag.Bool("reset", false, "delete persisted workspaces, runs and settings before starting")
	debug      = flag.Bool("debug", false, "log state diffs for every action")
	jobTimeout = flag.Duration("timeout", time.Minute, "processing wait timeout")
)

func main() {
	flag.Parse()
	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
			log.Printf("failed to load %v: %v", *envFile, err)
		}
	}
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := run(ctx); err != nil {
		slog.Error("simdash failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	config := simdash.DefaultConfig()
	if *configURL != "" {
		var err error
		if config, err = simdash.LoadConfig(ctx, *configURL); err != nil {
			return err
		}
	}
	config.Debug = config.Debug || *debug

	srv, err := simdash.New(config, simdash.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer srv.Close()
	if *reset {
		if err = srv.ResetStorage(ctx); err != nil {
			return err
		}
	}
	if err = srv.Start(ctx); err != nil {
		return err
	}

	switch {
	case *importURL != "":
		_, err = srv.ImportModel(ctx, *importURL)
	case *sample != "":
		_, err = srv.ImportSample(ctx, *sample)
	}
	if err != nil {
		return err
	}

	runID := ""
	if *process != "" {
		job, err := srv.Submit(ctx, model.ProcessingType(*process), "")
		if err != nil {
			return err
		}
		runID = job.RunID
		if err = waitForRun(ctx, srv.Store(), runID, *jobTimeout); err != nil {
			return err
		}
	}

	if *export {
		if err = srv.Dispatch(ctx, actions.App.ExportModel.Create()); err != nil {
			return err
		}
		if runID != "" {
			if err = srv.Dispatch(ctx, actions.Dashboard.ExportRunValues.Create(actions.IDProps{ID: runID})); err != nil {
				return err
			}
		}
	}

	if *replay {
		replayed, count, err := srv.ReplayJournal(ctx)
		if err != nil {
			return err
		}
		slog.Info("journal replayed", "actions", count)
		return printState(replayed.State())
	}
	return printState(srv.Store().State())
}

func waitForRun(ctx context.Context, aStore *store.Store, runID string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	for {
		if run := state.SelectRunsState(aStore.State()).Lookup(runID); run != nil && run.Data != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("run %v did not complete: %w", runID, ctx.Err())
		case <-ticker.C:
		}
	}
}

func printState(root store.Root) error {
	summary := struct {
		Workspaces []string          `json:"workspaces"`
		Model      *model.Definition `json:"model,omitempty"`
		Runs       []*model.Run      `json:"runs,omitempty"`
	}{
		Workspaces: state.SelectWorkspaceNames(root),
		Model:      state.SelectModel(root),
		Runs:       state.SelectRuns(root),
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(summary)
}
