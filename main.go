package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/svanbekk/grantmap/internal/audio"
	"github.com/svanbekk/grantmap/internal/config"
	"github.com/svanbekk/grantmap/internal/dataset"
	"github.com/svanbekk/grantmap/internal/playback"
	"github.com/svanbekk/grantmap/internal/ui"
)

const usage = `usage: grantmap [-export out.wav] <dataset.csv>

Renders geocoded land-grant records as a filterable point cloud with an
auto-play year sweep and procedural sound. -export writes the sweep as a
WAV file instead of starting the viewer.

Environment: GRANTMAP_TICK, GRANTMAP_SOFT_YEARS, GRANTMAP_MUTED,
GRANTMAP_VOLUME.`

func main() {
	var exportPath, dataPath string

	args := os.Args[1:]
	for len(args) > 0 {
		switch {
		case args[0] == "-export" || args[0] == "--export":
			if len(args) < 2 {
				fmt.Fprintln(os.Stderr, usage)
				os.Exit(2)
			}
			exportPath = args[1]
			args = args[2:]
		case args[0] == "-h" || args[0] == "--help":
			fmt.Println(usage)
			return
		default:
			if dataPath != "" {
				fmt.Fprintln(os.Stderr, usage)
				os.Exit(2)
			}
			dataPath = args[0]
			args = args[1:]
		}
	}
	if dataPath == "" {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ds, err := dataset.Load(dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading dataset: %v\n", err)
		os.Exit(1)
	}
	bounds, ok := ds.Histogram.Bounds()
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: %s contains no records dated %d-%d\n",
			dataPath, dataset.DomainMin, dataset.DomainMax)
		os.Exit(1)
	}

	if exportPath != "" {
		if err := exportSweep(ds.Histogram, cfg, exportPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting sweep: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d-%d, %d grants)\n",
			exportPath, bounds.MinYear, bounds.MaxYear, ds.Histogram.Total())
		return
	}

	sink := audio.NewSink(cfg.Volume)
	defer sink.Close()
	synth := audio.NewBurst(sink, time.Now().UnixNano())

	orch := playback.NewOrchestrator(ds.Histogram, synth, cfg.SoftYears, playback.Callbacks{})
	orch.SetMuted(cfg.Muted)

	model := ui.New(orch, sink, ds.Points, bounds, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func exportSweep(h *dataset.Histogram, cfg config.Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := audio.RenderSweep(h, cfg.TickInterval, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
