package system

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// DefaultWorkers is the number of logical CPUs, falling back to the Go
// runtime's view when the host cannot be queried.
func DefaultWorkers() int {
	n, err := cpu.Counts(true)
	if err != nil || n < 1 {
		return runtime.NumCPU()
	}
	return n
}

// MemoryReport is a one-line summary of system memory for the performance report.
func MemoryReport() string {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Sprintf("unavailable (%v)", err)
	}
	return fmt.Sprintf("%.1f%% used, %d MiB available of %d MiB",
		vm.UsedPercent, vm.Available>>20, vm.Total>>20)
}

// OutputPath builds a timestamped file name in dir, e.g.
// output/FundraisingVideo_2026-02-07_13-00-00.yaml.
func OutputPath(dir, name, ext string, now time.Time) string {
	clean := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	timestamp := now.Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("%s_%s%s", clean, timestamp, ext))
}
