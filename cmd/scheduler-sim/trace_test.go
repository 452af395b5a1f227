package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type TraceTestSuite struct {
	suite.Suite
}

func TestTraceTestSuite(t *testing.T) {
	suite.Run(t, new(TraceTestSuite))
}

func (ts *TraceTestSuite) TestGenerateProducesSortedEvents() {
	trace := generateTrace(10, 2, "FCFS", 42)

	ts.Equal(2, trace.NumCores)
	ts.Equal("FCFS", trace.Policy)
	ts.NotEmpty(trace.RunID)
	ts.Len(trace.Events, 20)

	for i := 1; i < len(trace.Events); i++ {
		ts.LessOrEqual(trace.Events[i-1].Time, trace.Events[i].Time)
	}
}

func (ts *TraceTestSuite) TestWriteThenLoadRoundTrips() {
	trace := generateTrace(5, 1, "SJF", 7)

	path := filepath.Join(ts.T().TempDir(), "trace.json")
	ts.Require().NoError(writeTrace(path, trace))

	loaded, err := loadTrace(path)
	ts.Require().NoError(err)

	ts.Equal(trace.NumCores, loaded.NumCores)
	ts.Equal(trace.Policy, loaded.Policy)
	ts.Equal(len(trace.Events), len(loaded.Events))
}

func (ts *TraceTestSuite) TestLoadMissingFile() {
	_, err := loadTrace(filepath.Join(ts.T().TempDir(), "does-not-exist.json"))
	ts.Error(err)
}

func (ts *TraceTestSuite) TestParsePolicy() {
	p, err := parsePolicy("PPRI")
	ts.NoError(err)
	ts.Equal("PPRI", p.String())

	_, err = parsePolicy("NOPE")
	ts.Error(err)
}
