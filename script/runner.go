package script

import (
	"github.com/grpc-boot/container/codec"
	"github.com/grpc-boot/container/internal/logger"
	"github.com/grpc-boot/container/monitor"
)

const (
	MetricSteps      = "steps"
	MetricErrors     = "errors"
	MetricEmptyPolls = "empty_polls"
)

type StepResult struct {
	Step   int         `yaml:"step" json:"step"`
	Op     string      `yaml:"op" json:"op"`
	Result interface{} `yaml:"result,omitempty" json:"result,omitempty"`
	Empty  bool        `yaml:"empty,omitempty" json:"empty,omitempty"`
	Error  string      `yaml:"error,omitempty" json:"error,omitempty"`
}

type Report struct {
	Name    string            `yaml:"name" json:"name"`
	Kind    string            `yaml:"kind" json:"kind"`
	Steps   []StepResult      `yaml:"steps" json:"steps"`
	Final   interface{}       `yaml:"final" json:"final"`
	Metrics map[string]uint64 `yaml:"metrics" json:"metrics"`
}

type Runner struct {
	lggr logger.Logger
}

func NewRunner(lggr logger.Logger) *Runner {
	return &Runner{lggr: lggr.Named("runner")}
}

// Run replays every step. A failing step is recorded in the report and the run
// goes on, only a script that cannot build its container returns an error.
func (r *Runner) Run(s *Script) (report *Report, err error) {
	if err = s.Validate(); err != nil {
		return nil, err
	}

	t, err := newTarget(s)
	if err != nil {
		r.lggr.Errorw("build container failed", "script", s.Name, "kind", s.Kind, "err", err)
		return nil, err
	}

	m := monitor.NewMonitor(s.Name, MetricSteps, MetricErrors, MetricEmptyPolls)
	report = &Report{
		Name:  s.Name,
		Kind:  s.Kind,
		Steps: make([]StepResult, 0, len(s.Steps)),
	}

	for index, step := range s.Steps {
		m.Incr(MetricSteps)
		m.Register("op." + step.Op).Add(1)

		sr := StepResult{Step: index, Op: step.Op}
		result, er := t.apply(step)
		_, empty := result.(emptyPoll)
		switch {
		case er != nil:
			m.Incr(MetricErrors)
			sr.Error = er.Error()
			r.lggr.Warnw("step failed", "script", s.Name, "step", index, "op", step.Op, "err", er)
		case empty:
			m.Incr(MetricEmptyPolls)
			sr.Empty = true
			r.lggr.Debugw("step", "script", s.Name, "step", index, "op", step.Op, "empty", true)
		default:
			sr.Result = result
			r.lggr.Debugw("step", "script", s.Name, "step", index, "op", step.Op, "result", result)
		}
		report.Steps = append(report.Steps, sr)
	}

	report.Final = t.state()
	report.Metrics = m.Snapshot()

	errs, _ := m.Get(MetricErrors)
	r.lggr.Infow("script finished", "script", s.Name, "kind", s.Kind, "steps", len(s.Steps), "errors", errs)
	return report, nil
}

// Encode renders report with the named codec, falling back to the script's
// own output setting and then to yaml.
func Encode(report *Report, s *Script, name string) (data []byte, err error) {
	if name == "" {
		name = s.Output
	}
	if name == "" {
		name = codec.YAML.Name()
	}

	c, err := codec.Get(name)
	if err != nil {
		return nil, err
	}
	return c.Marshal(report)
}
