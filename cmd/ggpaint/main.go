// Command ggpaint replays a scripted editing session and saves the result.
//
//	ggpaint -config editor.toml -script session.yaml -out result.png
//
// Without -config a 800x600 white canvas is used. Without -script the
// blank canvas is written.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/ggpaint"
	"github.com/gogpu/ggpaint/internal/replay"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML editor config")
		scriptPath = flag.String("script", "", "YAML session script")
		output     = flag.String("out", "out.png", "output PNG file")
		verbose    = flag.Bool("verbose", false, "log editor activity to stderr")
	)
	flag.Parse()

	if *verbose {
		ggpaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := replay.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = replay.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	ed, err := replay.NewEditor(cfg, ggpaint.WithNotifier(func(n ggpaint.Notice) {
		log.Printf("%s: %s", n.Kind, n.Message)
	}))
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *scriptPath != "" {
		script, err := replay.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		// Files inserted by the script are resolved next to it.
		fsys := os.DirFS(filepath.Dir(*scriptPath))
		if err := replay.Run(ctx, ed, script, fsys); err != nil {
			log.Fatalf("Replay failed: %v", err)
		}
		log.Printf("Replayed %d steps (%d undo steps held)", len(script.Steps), ed.History().Len())
	}

	if err := save(ed, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Saved %s (%dx%d)", *output, ed.Surface().Width(), ed.Surface().Height())
}

func save(ed *ggpaint.Editor, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return ed.Export(f)
}
