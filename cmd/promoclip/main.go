package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/ivlev/promoclip/internal/compositions"
	"github.com/ivlev/promoclip/internal/config"
	"github.com/ivlev/promoclip/internal/engine"
	"github.com/ivlev/promoclip/internal/host"
	"github.com/ivlev/promoclip/internal/system"
	"github.com/ivlev/promoclip/internal/timeline"
)

// buildVersion is set with -ldflags "-X main.buildVersion=...".
var buildVersion = "dev"

func main() {
	compositionPtr := flag.String("composition", "", "Composition to render (see -list)")
	listPtr := flag.Bool("list", false, "List registered compositions and exit")
	configPtr := flag.String("config", "", "YAML file with run settings and event copy")
	framesOutPtr := flag.String("frames-out", "", "Write the frame stream as multi-document YAML (\"auto\" for a timestamped file in output/)")
	previewDirPtr := flag.String("preview-dir", "", "Directory for PNG previews and a contact sheet")
	previewEveryPtr := flag.Int("preview-every", 0, "Write a preview every N frames (default from config: 30)")
	fromPtr := flag.Int("from", -1, "First frame (inclusive)")
	toPtr := flag.Int("to", -1, "Last frame (exclusive, 0 = end of composition)")
	workersPtr := flag.Int("workers", 0, "Worker goroutines (0 = number of CPUs)")
	statsPtr := flag.Bool("stats", false, "Print a performance report and append to benchmark.log")
	manifestOutPtr := flag.String("manifest-out", "", "Write the composition manifest to this YAML file")

	flag.Parse()

	if *listPtr {
		for _, id := range compositions.IDs() {
			fmt.Println(id)
		}
		return
	}

	cfg := config.Default()
	if *configPtr != "" {
		loaded, err := config.Load(*configPtr)
		if err != nil {
			log.Fatalf("[-] Config error: %v", err)
		}
		cfg = loaded
		fmt.Printf("[*] Config: %s\n", *configPtr)
	}

	// Flags win over the config file when set explicitly.
	if *compositionPtr != "" {
		cfg.Composition = *compositionPtr
	}
	if *framesOutPtr != "" {
		cfg.FramesOut = *framesOutPtr
	}
	if *previewDirPtr != "" {
		cfg.PreviewDir = *previewDirPtr
	}
	if *previewEveryPtr > 0 {
		cfg.PreviewEvery = *previewEveryPtr
	}
	if *fromPtr >= 0 {
		cfg.From = *fromPtr
	}
	if *toPtr >= 0 {
		cfg.To = *toPtr
	}
	if *workersPtr > 0 {
		cfg.Workers = *workersPtr
	}
	if *statsPtr {
		cfg.ShowStats = true
	}
	if *manifestOutPtr != "" {
		cfg.ManifestOut = *manifestOutPtr
	}
	cfg.BuildVersion = buildVersion

	if err := cfg.Validate(); err != nil {
		log.Fatalf("[-] Invalid settings: %v", err)
	}

	if cfg.ManifestOut != "" {
		m, err := compositions.Manifest(cfg.Event)
		if err != nil {
			log.Fatalf("[-] Manifest error: %v", err)
		}
		if err := timeline.WriteManifest(m, cfg.ManifestOut); err != nil {
			log.Fatalf("[-] Manifest error: %v", err)
		}
		fmt.Printf("[+++] Manifest saved: %s\n", cfg.ManifestOut)
		if cfg.FramesOut == "" && cfg.PreviewDir == "" {
			return
		}
	}

	comp, err := compositions.New(cfg.Composition, cfg.Event)
	if err != nil {
		log.Fatalf("[-] %v (available: %s)", err, strings.Join(compositions.IDs(), ", "))
	}

	var hosts host.MultiHost
	if cfg.FramesOut != "" {
		path := cfg.FramesOut
		if path == "auto" {
			path = system.OutputPath("output", comp.ID, ".yaml", time.Now())
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			log.Fatalf("[-] %v", err)
		}
		yh, err := host.CreateYAMLHost(path)
		if err != nil {
			log.Fatalf("[-] Frame stream error: %v", err)
		}
		hosts = append(hosts, yh)
		fmt.Printf("[*] Frame stream: %s\n", path)
	}
	if cfg.PreviewDir != "" {
		ph, err := host.NewPreviewHost(cfg.PreviewDir, cfg.PreviewEvery, comp.Video)
		if err != nil {
			log.Fatalf("[-] Preview error: %v", err)
		}
		hosts = append(hosts, ph)
		fmt.Printf("[*] Previews: %s (every %d frames)\n", cfg.PreviewDir, cfg.PreviewEvery)
	}
	if len(hosts) == 0 {
		fmt.Println("[!] No output selected (-frames-out, -preview-dir); frames are evaluated and discarded")
		hosts = append(hosts, host.Discard{})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	project := engine.NewProject(cfg, comp, hosts)
	runErr := project.Run(ctx)
	if err := hosts.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		log.Fatalf("[-] Project error: %v", runErr)
	}

	fmt.Printf("[+++] Success! %d frames of %s\n", project.Stats.Frames, comp.ID)
}
