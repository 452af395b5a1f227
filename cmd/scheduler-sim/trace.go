package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/Kurrikov/scheduler"
	"github.com/google/uuid"
)

// Event is one externally-driven occurrence in a trace: an arrival, a job
// completion, or an RR quantum expiry. Traces are pre-computed — exactly
// the way the graded trace files for this assignment's original harness
// work — so this driver never has to re-derive completion times from
// scratch; it only replays them against the core in order and prints the
// final averages. The core's per-event return values are not checked.
type Event struct {
	Type        string `json:"type"`
	Time        int    `json:"time"`
	JobID       int    `json:"job_id"`
	RunningTime int    `json:"running_time,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	CoreID      int    `json:"core_id"`
}

const (
	eventArrival        = "arrival"
	eventJobFinished    = "job_finished"
	eventQuantumExpired = "quantum_expired"
)

// Trace is a complete, self-describing simulation input: how many cores to
// start the scheduler with, which policy to run, and the time-ordered
// sequence of events to replay against it.
type Trace struct {
	RunID    string  `json:"run_id,omitempty"`
	NumCores int     `json:"num_cores"`
	Policy   string  `json:"policy"`
	Events   []Event `json:"events"`
}

// loadTrace reads and decodes a JSON trace file.
func loadTrace(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading trace file: %w", err)
	}

	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing trace file: %w", err)
	}
	return &t, nil
}

func parsePolicy(name string) (scheduler.Policy, error) {
	switch name {
	case "FCFS":
		return scheduler.FCFS, nil
	case "SJF":
		return scheduler.SJF, nil
	case "PSJF":
		return scheduler.PSJF, nil
	case "PRI":
		return scheduler.PRI, nil
	case "PPRI":
		return scheduler.PPRI, nil
	case "RR":
		return scheduler.RR, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", name)
	}
}

// generateTrace produces a synthetic, self-consistent FCFS trace: numJobs
// arrivals at strictly increasing times, each one placed on the core the
// scheduler would give it under FCFS and finishing (uninterrupted) after its
// own running time. Completion events follow FCFS order, so under SJF or PRI
// the core may run waiting jobs in a different order than the trace
// assumes; preemption and RR quantum expiries are not generated.
func generateTrace(numJobs, numCores int, policy string, seed int64) *Trace {
	rng := rand.New(rand.NewSource(seed))

	events := make([]Event, 0, numJobs*2)
	time := 0
	coreFreeAt := make([]int, numCores)
	coreLastJob := make([]int, numCores)

	for jobID := 1; jobID <= numJobs; jobID++ {
		time += 1 + rng.Intn(3)
		runningTime := 1 + rng.Intn(10)
		priority := rng.Intn(5)

		events = append(events, Event{
			Type:        eventArrival,
			Time:        time,
			JobID:       jobID,
			RunningTime: runningTime,
			Priority:    priority,
		})

		// Lowest-indexed idle core; with none idle, the core whose completion
		// is replayed first (earliest finish, then earliest-written event).
		core := 0
		for c := 1; c < numCores && coreFreeAt[core] >= time; c++ {
			if coreFreeAt[c] < coreFreeAt[core] ||
				(coreFreeAt[c] == coreFreeAt[core] && coreLastJob[c] < coreLastJob[core]) {
				core = c
			}
		}
		finishAt := time
		if coreFreeAt[core] > finishAt {
			finishAt = coreFreeAt[core]
		}
		finishAt += runningTime
		coreFreeAt[core] = finishAt
		coreLastJob[core] = jobID

		events = append(events, Event{
			Type:   eventJobFinished,
			Time:   finishAt,
			JobID:  jobID,
			CoreID: core,
		})
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time < events[j].Time
		}
		// Arrivals before completions at the same tick, so idle-core
		// placement is evaluated before the core they'd land on frees up.
		return events[i].Type == eventArrival && events[j].Type != eventArrival
	})

	return &Trace{
		RunID:    uuid.New().String(),
		NumCores: numCores,
		Policy:   policy,
		Events:   events,
	}
}

func writeTrace(path string, t *Trace) error {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing trace file: %w", err)
	}
	return nil
}
