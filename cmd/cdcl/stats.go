package main

import (
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/cdclsolver/cdcl/sat"
)

// printStats writes the statistics line to standard error: conflicts,
// decisions, unit propagations, wall-clock seconds, then peak RSS in
// megabytes, in that order.
func printStats(stats sat.Stats, elapsed time.Duration) {
	fmt.Fprintf(os.Stderr, "Conflicts: %d Decisions: %d Unit Propagations: %d %.1fs %.1fMb\n",
		stats.Conflicts, stats.Decisions, stats.Propagations, elapsed.Seconds(), peakRSSMb())
}

// peakRSSMb returns the process's peak resident set size in megabytes. On
// Linux, Getrusage reports Maxrss in kilobytes.
func peakRSSMb() float64 {
	var ru syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &ru); err != nil {
		return 0
	}
	return float64(ru.Maxrss) / 1024.0
}
