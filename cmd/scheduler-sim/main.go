package main

import (
	"fmt"
	"log"

	"github.com/Kurrikov/scheduler"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	tracePath string
	verbose   bool

	numJobs  int
	numCores int
	policy   string
	seed     int64
	outPath  string

	rootCmd = &cobra.Command{
		Use:     "scheduler-sim",
		Short:   "Replay a job trace against the scheduler core",
		Long:    "scheduler-sim drives the scheduler core's event entry points from a JSON job trace and reports the three final averages.",
		Version: Version,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run a trace file against the core and print the final averages",
		RunE:  runTrace,
	}

	genCmd = &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic non-preemptive trace file",
		RunE:  genTrace,
	}
)

func init() {
	runCmd.Flags().StringVarP(&tracePath, "trace", "t", "", "path to the JSON trace file (required)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the queue after every event")
	_ = runCmd.MarkFlagRequired("trace")

	genCmd.Flags().IntVar(&numJobs, "jobs", 20, "number of jobs to generate")
	genCmd.Flags().IntVar(&numCores, "cores", 2, "number of cores in the generated trace")
	genCmd.Flags().StringVar(&policy, "policy", "FCFS", "policy name recorded in the trace")
	genCmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	genCmd.Flags().StringVarP(&outPath, "out", "o", "trace.json", "output path")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(genCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	t, err := loadTrace(tracePath)
	if err != nil {
		return err
	}

	pol, err := parsePolicy(t.Policy)
	if err != nil {
		return err
	}

	s := scheduler.New(t.NumCores, pol)

	for _, ev := range t.Events {
		switch ev.Type {
		case eventArrival:
			s.NewJob(ev.JobID, ev.Time, ev.RunningTime, ev.Priority)
		case eventJobFinished:
			s.JobFinished(ev.CoreID, ev.JobID, ev.Time)
		case eventQuantumExpired:
			s.QuantumExpired(ev.CoreID, ev.Time)
		default:
			return fmt.Errorf("unknown event type %q at t=%d", ev.Type, ev.Time)
		}

		if verbose {
			s.ShowQueue()
		}
	}

	fmt.Printf("policy:            %s\n", pol)
	fmt.Printf("average waiting:    %.2f\n", s.AverageWaitingTime())
	fmt.Printf("average turnaround: %.2f\n", s.AverageTurnaroundTime())
	fmt.Printf("average response:   %.2f\n", s.AverageResponseTime())

	s.CleanUp()
	return nil
}

func genTrace(cmd *cobra.Command, args []string) error {
	t := generateTrace(numJobs, numCores, policy, seed)
	if err := writeTrace(outPath, t); err != nil {
		return err
	}
	fmt.Printf("wrote %d events (run %s) to %s\n", len(t.Events), t.RunID, outPath)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.SetFlags(0)
		log.Fatal(err)
	}
}
