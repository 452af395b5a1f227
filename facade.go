package scheduler

// active is the process-wide Scheduler instance behind the package-level
// façade below. At most one such instance is live at a time: StartUp
// enforces that and CleanUpGlobal releases it, after which StartUp may
// create a new one.
var active *Scheduler

// StartUp initializes the process-wide scheduler. It is a thin façade over
// NewWithConfig for callers written against the original global-function
// interface (spec.md §9, "process-wide state → injected scheduler value").
// It panics if called more than once before CleanUpGlobal, matching the
// "called exactly once" precondition of spec.md §6.
func StartUp(cores int, policy Policy) {
	if active != nil {
		panic("scheduler: StartUp called twice without an intervening CleanUpGlobal")
	}
	active = New(cores, policy)
}

func requireActive() *Scheduler {
	if active == nil {
		panic("scheduler: operation called before StartUp")
	}
	return active
}

// NewJobGlobal forwards to the process-wide Scheduler's NewJob.
func NewJobGlobal(jobNumber, time, runningTime, priority int) int {
	return requireActive().NewJob(jobNumber, time, runningTime, priority)
}

// JobFinishedGlobal forwards to the process-wide Scheduler's JobFinished.
func JobFinishedGlobal(coreID, jobNumber, time int) int {
	return requireActive().JobFinished(coreID, jobNumber, time)
}

// QuantumExpiredGlobal forwards to the process-wide Scheduler's
// QuantumExpired.
func QuantumExpiredGlobal(coreID, time int) int {
	return requireActive().QuantumExpired(coreID, time)
}

// AverageWaitingTimeGlobal forwards to the process-wide Scheduler.
func AverageWaitingTimeGlobal() float64 {
	return requireActive().AverageWaitingTime()
}

// AverageTurnaroundTimeGlobal forwards to the process-wide Scheduler.
func AverageTurnaroundTimeGlobal() float64 {
	return requireActive().AverageTurnaroundTime()
}

// AverageResponseTimeGlobal forwards to the process-wide Scheduler.
func AverageResponseTimeGlobal() float64 {
	return requireActive().AverageResponseTime()
}

// ShowQueueGlobal forwards to the process-wide Scheduler.
func ShowQueueGlobal() {
	requireActive().ShowQueue()
}

// CleanUpGlobal releases the process-wide Scheduler so a later StartUp may
// create a new one. It is the last operation on the current instance,
// matching spec.md §6.
func CleanUpGlobal() {
	s := requireActive()
	s.CleanUp()
	active = nil
}
