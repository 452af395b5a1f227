package scheduler

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

// FacadeTestSuite exercises the process-wide, C-style global interface.
// Each test cleans up after itself so the package-level state does not
// leak between tests — the facade only supports one live scheduler at a
// time, same as the library it fronts.
type FacadeTestSuite struct {
	suite.Suite
}

func TestFacadeTestSuite(t *testing.T) {
	suite.Run(t, new(FacadeTestSuite))
}

func (ts *FacadeTestSuite) TearDownTest() {
	if active != nil {
		CleanUpGlobal()
	}
}

func (ts *FacadeTestSuite) TestStartUpTwiceWithoutCleanUpPanics() {
	StartUp(1, FCFS)
	ts.Panics(func() { StartUp(1, FCFS) })
}

func (ts *FacadeTestSuite) TestOperationsBeforeStartUpPanic() {
	ts.Panics(func() { NewJobGlobal(1, 0, 5, 0) })
	ts.Panics(func() { JobFinishedGlobal(0, 1, 5) })
	ts.Panics(func() { QuantumExpiredGlobal(0, 5) })
	ts.Panics(func() { CleanUpGlobal() })
}

func (ts *FacadeTestSuite) TestEndToEndThroughFacade() {
	StartUp(1, FCFS)

	ts.Equal(0, NewJobGlobal(1, 0, 5, 0))
	ts.Equal(RemainIdle, JobFinishedGlobal(0, 1, 5))

	ts.Equal(0.0, AverageWaitingTimeGlobal())
	ts.Equal(5.0, AverageTurnaroundTimeGlobal())
	ts.Equal(0.0, AverageResponseTimeGlobal())

	CleanUpGlobal()
	ts.Nil(active)
}

func (ts *FacadeTestSuite) TestStartUpAgainAfterCleanUp() {
	StartUp(2, RR)
	CleanUpGlobal()

	StartUp(1, SJF)
	ts.Equal(0, NewJobGlobal(1, 0, 3, 0))
}
