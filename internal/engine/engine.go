package engine

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ivlev/promoclip/internal/compositions"
	"github.com/ivlev/promoclip/internal/config"
	"github.com/ivlev/promoclip/internal/host"
	"github.com/ivlev/promoclip/internal/renderer"
	"github.com/ivlev/promoclip/internal/system"
	"golang.org/x/sync/errgroup"
)

// benchmarkLog receives one line per run when stats are enabled.
var benchmarkLog = "benchmark.log"

type Project struct {
	Config      *config.Config
	Composition *compositions.Composition
	Host        host.Host

	Stats Stats
}

// Stats describes the last Run.
type Stats struct {
	From, To  int
	Frames    int
	Nodes     int
	Evaluate  time.Duration
	Deliver   time.Duration
	Total     time.Duration
	Workers   int
	BatchSize int
}

func (s Stats) FPS() float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Total.Seconds()
}

func NewProject(cfg *config.Config, comp *compositions.Composition, h host.Host) *Project {
	return &Project{
		Config:      cfg,
		Composition: comp,
		Host:        h,
	}
}

// Span resolves the configured frame range against the composition length.
// To == 0 means the end of the composition.
func (p *Project) Span() (int, int, error) {
	total := p.Composition.Video.DurationInFrames
	from, to := p.Config.From, p.Config.To
	if to == 0 || to > total {
		to = total
	}
	if from < 0 {
		from = 0
	}
	if from >= to {
		return 0, 0, fmt.Errorf("empty frame range [%d, %d) for %s (%d frames)", p.Config.From, p.Config.To, p.Composition.ID, total)
	}
	return from, to, nil
}

// Run evaluates every frame of the range in parallel batches and hands them to
// the host in frame order. The host is not closed.
func (p *Project) Run(ctx context.Context) error {
	startTime := time.Now()

	from, to, err := p.Span()
	if err != nil {
		return err
	}

	workers := p.Config.Workers
	if workers <= 0 {
		workers = system.DefaultWorkers()
	}
	batchSize := p.Config.BatchSize
	if batchSize <= 0 {
		batchSize = 64
	}

	v := p.Composition.Video
	fmt.Println("--- [PROJECT: PROMOCLIP] ---")
	fmt.Printf("[*] Composition: %s | Frames: %d..%d of %d\n", p.Composition.ID, from, to-1, v.DurationInFrames)
	fmt.Printf("[*] Canvas: %dx%d @ %d FPS | Workers: %d | Batch: %d\n", v.Width, v.Height, v.FPS, workers, batchSize)
	fmt.Println("-----------------------------")

	stats := Stats{From: from, To: to, Workers: workers, BatchSize: batchSize}
	batch := make([]*renderer.Frame, batchSize)

	for start := from; start < to; start += batchSize {
		n := min(batchSize, to-start)

		evalStart := time.Now()
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(workers)
		for i := range n {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				batch[i] = p.Composition.Render(start + i)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		stats.Evaluate += time.Since(evalStart)

		deliverStart := time.Now()
		for _, f := range batch[:n] {
			if err := p.Host.WriteFrame(ctx, f); err != nil {
				return fmt.Errorf("frame %d: %w", f.Index, err)
			}
			stats.Nodes += len(f.Nodes)
		}
		stats.Deliver += time.Since(deliverStart)
		stats.Frames += n

		fmt.Printf("[>] Ready: %d/%d\n", stats.Frames, to-from)
	}

	stats.Total = time.Since(startTime)
	p.Stats = stats

	if p.Config.ShowStats {
		p.report()
	}
	return nil
}

func (p *Project) report() {
	s := p.Stats
	report := fmt.Sprintf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Total Time: %.2fs\n"+
			"Evaluation (CPU): %.2fs\n"+
			"Delivery (host): %.2fs\n"+
			"Nodes: %d\n"+
			"Memory: %s\n"+
			"Effective FPS: %.2f\n"+
			"----------------------------\n",
		p.Config.BuildVersion, s.Total.Seconds(), s.Evaluate.Seconds(), s.Deliver.Seconds(), s.Nodes, system.MemoryReport(), s.FPS(),
	)
	fmt.Print(report)

	logEntry := fmt.Sprintf("[%s] Build: %s | Composition: %s | Frames: %d | Total: %.2fs | Evaluate: %.2fs | Deliver: %.2fs | FPS: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		p.Composition.ID,
		s.Frames,
		s.Total.Seconds(),
		s.Evaluate.Seconds(),
		s.Deliver.Seconds(),
		s.FPS(),
	)

	f, err := os.OpenFile(benchmarkLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err == nil {
		f.WriteString(logEntry)
		f.Close()
	} else {
		fmt.Printf("[!] Could not write %s: %v\n", benchmarkLog, err)
	}
}
