package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cdclsolver/cdcl/dimacs"
	"github.com/cdclsolver/cdcl/sat"
)

var (
	flagCPUProfile string
	flagMemProfile string
	flagVerbose    bool
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdcl <instance.cnf>",
		Short: "Solve a DIMACS CNF instance with a DPLL-style CDCL core",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&flagCPUProfile, "cpuprof", "", "save pprof CPU profile to this file")
	cmd.Flags().StringVar(&flagMemProfile, "memprof", "", "save pprof memory profile to this file")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "trace decisions and propagation conflicts")
	return cmd
}

func run(instanceFile string) error {
	if flagCPUProfile != "" {
		f, err := os.Create(flagCPUProfile)
		if err != nil {
			return errors.Wrap(sat.ErrIO, err.Error())
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	gzipped := hasGzipSuffix(instanceFile)
	solver, outcome, err := dimacs.Parse(instanceFile, gzipped)
	if err != nil {
		return err
	}

	if flagVerbose && solver != nil {
		solver.Log.SetLevel(logrus.TraceLevel)
	}

	start := time.Now()
	var result sat.Result
	var stats sat.Stats
	switch outcome {
	case dimacs.OutcomeSAT:
		result = sat.SAT
	case dimacs.OutcomeUNSAT:
		result = sat.UNSAT
	default:
		result, err = solver.Solve()
		if err != nil {
			return err
		}
		stats = solver.Stats()
	}
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stderr, "v %s\n", result)
	printStats(stats, elapsed)

	if flagMemProfile != "" {
		f, err := os.Create(flagMemProfile)
		if err != nil {
			return errors.Wrap(sat.ErrIO, err.Error())
		}
		defer f.Close()
		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}
	return nil
}

func hasGzipSuffix(filename string) bool {
	n := len(filename)
	return n > 3 && filename[n-3:] == ".gz"
}
