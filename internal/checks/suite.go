package checks

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prettymuchbryce/mobiletest/internal/device"
	"github.com/prettymuchbryce/mobiletest/internal/report"
)

// ErrEvaluationAborted wraps a panic raised while evaluating a rule.
var ErrEvaluationAborted = errors.New("evaluation aborted")

// Suite runs a fixed list of categories against a probe.
type Suite struct {
	probe    device.Probe
	defs     []Definition
	reporter report.Reporter

	// now and newID are replaceable for deterministic tests.
	now   func() time.Time
	newID func() string
}

// NewSuite creates a Suite. If reporter is nil, NullReporter is used.
func NewSuite(probe device.Probe, defs []Definition, reporter report.Reporter) *Suite {
	if reporter == nil {
		reporter = report.NullReporter{}
	}
	return &Suite{
		probe:    probe,
		defs:     defs,
		reporter: reporter,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// runLog collects the human-readable progress lines of one run.
type runLog []string

func (l *runLog) add(msg string, args ...any) {
	line := fmt.Sprintf(msg, args...)
	*l = append(*l, line)
	slog.Info(line)
}

// Run evaluates every category in order and assembles the report.
// A panic inside a rule aborts the run; no partial report is returned.
func (s *Suite) Run() (rep *report.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			rep = nil
			err = fmt.Errorf("%w: %v", ErrEvaluationAborted, r)
		}
	}()

	started := s.now()
	var log runLog
	log.add("Starting mobile responsiveness suite (%d categories, %d breakpoints)", len(s.defs), len(s.probe.Breakpoints()))

	results := make(map[string]report.Category, len(s.defs))
	var tally report.Tally
	for _, d := range s.defs {
		log.add("Testing %s...", d.Title)
		c := d.Evaluate(s.probe, s.reporter)
		results[d.Name] = c
		tally.Add(c)

		if c.Passed {
			log.add("%s passed (%s)", d.Title, c.Score)
		} else {
			log.add("%s failed (%s)", d.Title, c.Score)
		}
	}

	rep = report.Build(s.newID(), started, results, tally, log)
	log.add("Suite finished: %d passed, %d failed, success rate %s",
		rep.Summary.Passed, rep.Summary.Failed, rep.Summary.SuccessRate)
	rep.Log = log
	return rep, nil
}
