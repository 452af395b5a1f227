package scheduler

import "github.com/Kurrikov/scheduler/priqueue"

// Policy names one of the six scheduling disciplines the core can run. The
// zero value is FCFS.
type Policy int

const (
	FCFS Policy = iota
	SJF
	PSJF
	PRI
	PPRI
	RR
)

// String returns the human-readable name of the policy.
func (p Policy) String() string {
	switch p {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF"
	case PSJF:
		return "PSJF"
	case PRI:
		return "PRI"
	case PPRI:
		return "PPRI"
	case RR:
		return "RR"
	default:
		return "Unknown"
	}
}

// Preemptive reports whether an arriving job under this policy can displace
// a job already running on a core.
func (p Policy) Preemptive() bool {
	return p == PSJF || p == PPRI
}

// comparatorFor returns the wait-queue ordering for a policy. FCFS and RR
// share the "always greater" comparator, which reduces Offer to a tail
// append and makes the wait queue pure FIFO — exactly what RR's quantum
// rotation (scheduler.go, QuantumExpired) relies on.
func comparatorFor(p Policy) priqueue.Comparator[*Job] {
	switch p {
	case FCFS, RR:
		return fcfsComparator
	case SJF, PSJF:
		return remainingTimeComparator
	case PRI, PPRI:
		return priorityComparator
	default:
		panic("scheduler: unknown policy")
	}
}

func fcfsComparator(a, b *Job) int {
	return 1
}

func remainingTimeComparator(a, b *Job) int {
	return a.RemainingTime - b.RemainingTime
}

func priorityComparator(a, b *Job) int {
	if a.Priority != b.Priority {
		return a.Priority - b.Priority
	}
	return a.ArrivalTime - b.ArrivalTime
}
