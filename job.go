package scheduler

// JobState is the lifecycle state of a Job as it moves between the wait
// queue and a core slot.
type JobState int

const (
	// Waiting means the job sits in the wait queue, ready but not running.
	Waiting JobState = iota
	// Running means the job currently occupies a core slot.
	Running
	// Done means the job has completed and its statistics have been folded
	// into the scheduler's running totals.
	Done
)

func (s JobState) String() string {
	switch s {
	case Waiting:
		return "Waiting"
	case Running:
		return "Running"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// unresponded is the sentinel ResponseTime value meaning "never dispatched
// since arrival".
const unresponded = -1

// Job represents one unit of work scheduled by the system. It is created on
// arrival and lives either in a core slot or in the wait queue until it
// completes; a Job is never duplicated or shared between the two.
type Job struct {
	ID          int
	ArrivalTime int
	JobLength   int

	// RemainingTime is service time not yet consumed. It equals JobLength at
	// arrival and is decremented only by PSJF's arrival-time bookkeeping
	// (decayAndFindLongestRemaining in scheduler.go), so under every other
	// policy it stays equal to JobLength. SJF and PSJF order the wait queue
	// by it (policy.go).
	RemainingTime int

	Priority int

	// ResponseTime is unresponded until the job is first dispatched to a
	// core, at which point it becomes time-of-dispatch minus ArrivalTime.
	ResponseTime int

	// LastCheckedTime is the virtual time of the last PSJF remaining-time
	// bookkeeping touch.
	LastCheckedTime int

	State JobState
}

// newJob constructs a Job as it looks the instant it arrives: full
// remaining time, no response yet, last-checked pinned to its own arrival.
func newJob(id, arrivalTime, jobLength, priority int) *Job {
	return &Job{
		ID:              id,
		ArrivalTime:     arrivalTime,
		JobLength:       jobLength,
		RemainingTime:   jobLength,
		Priority:        priority,
		ResponseTime:    unresponded,
		LastCheckedTime: arrivalTime,
		State:           Waiting,
	}
}

// dispatch marks the job as running and, if this is its first dispatch,
// records its response time.
func (j *Job) dispatch(time int) {
	j.State = Running
	j.LastCheckedTime = time
	if j.ResponseTime == unresponded {
		j.ResponseTime = time - j.ArrivalTime
	}
}

// preempt returns the job to the wait queue. If its response time was
// recorded on this very tick its response time is rolled back to
// unresponded so it is recounted the next time it actually runs (spec.md
// §4.2.2 step 2/3).
func (j *Job) preempt(time int) {
	j.State = Waiting
	if j.LastDispatchTime() == time {
		j.ResponseTime = unresponded
	}
}

// LastDispatchTime returns ArrivalTime plus ResponseTime: the time at which
// the job's current response time was recorded, i.e. its first dispatch
// since arrival or since its last response-time reset. Later dispatches
// after a preemption or quantum rotation do not change it. It returns -1
// while the job has the sentinel response time.
func (j *Job) LastDispatchTime() int {
	if j.ResponseTime == unresponded {
		return -1
	}
	return j.ArrivalTime + j.ResponseTime
}
