package scheduler

import (
	"fmt"

	"github.com/Kurrikov/scheduler/priqueue"
)

// Sentinel return values shared by the scheduling entry points. Both read
// as "-1" to a caller but are kept as distinct names so call sites read
// clearly — spec.md §7 treats them as normal values, not errors.
const (
	// NoChange means the arriving job did not trigger any scheduling change.
	NoChange = -1
	// RemainIdle means the freed core should stay empty.
	RemainIdle = -1
)

// Config configures a Scheduler at start-up, mirroring the teacher's
// Config/DefaultConfig pattern.
type Config struct {
	NumCores int
	Policy   Policy
}

// DefaultConfig returns a single-core, first-come-first-served scheduler
// configuration.
func DefaultConfig() Config {
	return Config{
		NumCores: 1,
		Policy:   FCFS,
	}
}

// Statistics accumulates the scheduler's running totals. AverageX methods
// return 0 when no jobs have completed, matching spec.md §4.2.5.
type Statistics struct {
	WaitingSum    float64
	TurnaroundSum float64
	ResponseSum   float64
	CompletedJobs int
}

func (s Statistics) averageWaiting() float64    { return average(s.WaitingSum, s.CompletedJobs) }
func (s Statistics) averageTurnaround() float64 { return average(s.TurnaroundSum, s.CompletedJobs) }
func (s Statistics) averageResponse() float64   { return average(s.ResponseSum, s.CompletedJobs) }

func average(sum float64, count int) float64 {
	if count == 0 {
		return 0.0
	}
	return sum / float64(count)
}

// Scheduler owns the core table, the wait queue, the active policy, and the
// running statistics. It is the only stateful subsystem in this package —
// spec.md §5 treats it as process-wide and single-threaded, so Scheduler
// performs no synchronization of its own.
type Scheduler struct {
	cores     []*Job
	waitQueue *priqueue.Queue[*Job]
	policy    Policy
	stats     Statistics
}

// New creates a Scheduler with the given core count and policy. It panics
// if cores is not positive or policy is not one of the six known policies —
// spec.md §7 treats these as programming errors, not recoverable failures.
func New(cores int, policy Policy) *Scheduler {
	return NewWithConfig(Config{NumCores: cores, Policy: policy})
}

// NewWithConfig creates a Scheduler from a Config value.
func NewWithConfig(config Config) *Scheduler {
	if config.NumCores <= 0 {
		panic(fmt.Sprintf("scheduler: num_cores must be positive, got %d", config.NumCores))
	}

	return &Scheduler{
		cores:     make([]*Job, config.NumCores),
		waitQueue: priqueue.New(comparatorFor(config.Policy)),
		policy:    config.Policy,
	}
}

// NumCores returns the fixed size of the core table.
func (s *Scheduler) NumCores() int {
	return len(s.cores)
}

// Policy returns the active scheduling policy.
func (s *Scheduler) Policy() Policy {
	return s.policy
}

// QueueLen returns the number of jobs currently waiting.
func (s *Scheduler) QueueLen() int {
	return s.waitQueue.Size()
}

func (s *Scheduler) requireValidCore(coreID int) {
	if coreID < 0 || coreID >= len(s.cores) {
		panic(fmt.Sprintf("scheduler: core id %d out of range [0,%d)", coreID, len(s.cores)))
	}
}

// NewJob handles a job arrival (spec.md §4.2.2). It returns the core index
// the job was placed on, or NoChange if it entered the wait queue instead.
func (s *Scheduler) NewJob(jobNumber, time, runningTime, priority int) int {
	job := newJob(jobNumber, time, runningTime, priority)

	// Idle-core rule: the lowest-indexed empty slot always wins, and taking
	// it never preempts anything.
	for i, slot := range s.cores {
		if slot == nil {
			s.cores[i] = job
			job.dispatch(time)
			return i
		}
	}

	switch s.policy {
	case PPRI:
		if idx := s.weakestPriorityCore(time); idx >= 0 && s.cores[idx].Priority > job.Priority {
			s.preemptCore(idx, job, time)
			return idx
		}
	case PSJF:
		if idx := s.decayAndFindLongestRemaining(time); idx >= 0 && s.cores[idx].RemainingTime > job.RemainingTime {
			s.preemptCore(idx, job, time)
			return idx
		}
	}

	s.waitQueue.Offer(job)
	return NoChange
}

// weakestPriorityCore scans the core table left to right and returns the
// index of the running job least worth keeping: highest priority value
// (lowest actual priority), tie broken by earliest arrival. Jobs that
// arrived on this exact tick are not eligible. Returns -1 if no core is
// eligible.
func (s *Scheduler) weakestPriorityCore(time int) int {
	best := -1
	for i, job := range s.cores {
		if job == nil || job.ArrivalTime == time {
			continue
		}
		if best == -1 {
			best = i
			continue
		}
		if job.Priority > s.cores[best].Priority {
			best = i
		} else if job.Priority == s.cores[best].Priority && job.ArrivalTime < s.cores[best].ArrivalTime {
			best = i
		}
	}
	return best
}

// decayAndFindLongestRemaining applies PSJF's remaining-time bookkeeping to
// every running job (spec.md §4.2.2 step 3), then returns the index of the
// eligible running job with the greatest remaining time, or -1 if none is
// eligible.
func (s *Scheduler) decayAndFindLongestRemaining(time int) int {
	best := -1
	for i, job := range s.cores {
		if job == nil {
			continue
		}
		job.RemainingTime -= time - job.LastCheckedTime
		job.LastCheckedTime = time

		if job.ArrivalTime == time {
			continue
		}
		if best == -1 || job.RemainingTime > s.cores[best].RemainingTime {
			best = i
		}
	}
	return best
}

// preemptCore displaces the job running on core idx back into the wait
// queue and dispatches the arriving job onto that core.
func (s *Scheduler) preemptCore(idx int, arriving *Job, time int) {
	displaced := s.cores[idx]
	displaced.preempt(time)
	s.waitQueue.Offer(displaced)

	s.cores[idx] = arriving
	arriving.dispatch(time)
}

// JobFinished handles a job completion (spec.md §4.2.3). It folds the
// completed job's statistics into the running totals and, if the wait
// queue is non-empty, dispatches its head onto the freed core. Returns the
// newly scheduled job's id, or RemainIdle if the core stays empty.
func (s *Scheduler) JobFinished(coreID, jobNumber, time int) int {
	s.requireValidCore(coreID)

	job := s.cores[coreID]
	s.stats.WaitingSum += float64(time - job.ArrivalTime - job.JobLength)
	s.stats.TurnaroundSum += float64(time - job.ArrivalTime)
	s.stats.ResponseSum += float64(job.ResponseTime)
	s.stats.CompletedJobs++
	job.State = Done
	s.cores[coreID] = nil

	next, ok := s.waitQueue.Poll()
	if !ok {
		return RemainIdle
	}

	next.dispatch(time)
	s.cores[coreID] = next
	return next.ID
}

// QuantumExpired handles an RR quantum expiry (spec.md §4.2.4). If the core
// is running a job, that job is rotated to the tail of the wait queue
// before the head of the queue is dispatched onto the core. Returns the
// newly scheduled job's id, or RemainIdle if the core should stay empty.
func (s *Scheduler) QuantumExpired(coreID, time int) int {
	s.requireValidCore(coreID)

	if s.cores[coreID] == nil && s.waitQueue.Size() == 0 {
		return RemainIdle
	}

	if running := s.cores[coreID]; running != nil {
		running.State = Waiting
		s.waitQueue.Offer(running)
		s.cores[coreID] = nil
	}

	next, ok := s.waitQueue.Poll()
	if !ok {
		return RemainIdle
	}

	next.dispatch(time)
	s.cores[coreID] = next
	return next.ID
}

// AverageWaitingTime returns the mean time completed jobs spent ready but
// not running.
func (s *Scheduler) AverageWaitingTime() float64 {
	return s.stats.averageWaiting()
}

// AverageTurnaroundTime returns the mean completion-minus-arrival time of
// completed jobs.
func (s *Scheduler) AverageTurnaroundTime() float64 {
	return s.stats.averageTurnaround()
}

// AverageResponseTime returns the mean first-dispatch delay of completed
// jobs.
func (s *Scheduler) AverageResponseTime() float64 {
	return s.stats.averageResponse()
}

// CleanUp releases the core slots and the wait queue. It is the last
// operation a caller may perform on the Scheduler.
func (s *Scheduler) CleanUp() {
	for i := range s.cores {
		s.cores[i] = nil
	}
	s.waitQueue.Destroy()
}

// ShowQueue is an optional debugging hook (spec.md §4.2.6): it prints the
// job on each core slot and the wait queue contents in schedule order,
// annotating each job with the core index it runs on or -1 if waiting.
func (s *Scheduler) ShowQueue() {
	for i, job := range s.cores {
		if job == nil {
			continue
		}
		fmt.Printf("%d(%d) ", job.ID, i)
	}
	for i := 0; i < s.waitQueue.Size(); i++ {
		if job, ok := s.waitQueue.At(i); ok {
			fmt.Printf("%d(-1) ", job.ID)
		}
	}
	fmt.Println()
}
