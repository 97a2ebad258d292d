package pipeline

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"fooddash/pkg/frame"
	"fooddash/pkg/restaurant"
)

// StepStat records the row counts around one step.
type StepStat struct {
	Name    string `json:"name" yaml:"name"`
	RowsIn  int    `json:"rows_in" yaml:"rows_in"`
	RowsOut int    `json:"rows_out" yaml:"rows_out"`
}

// Dropped is the number of rows the step removed.
func (s StepStat) Dropped() int { return s.RowsIn - s.RowsOut }

// Report describes one cleaning run.
type Report struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	SourceRows int           `json:"source_rows" yaml:"source_rows"`
	SourceCols []string      `json:"source_columns" yaml:"source_columns"`
	Steps      []StepStat    `json:"steps" yaml:"steps"`
	Rows       int           `json:"rows" yaml:"rows"`
	Elapsed    time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Cleaner runs the cleaning steps over a raw frame.
type Cleaner struct {
	log *zap.Logger
}

// Option configures a Cleaner.
type Option func(*Cleaner)

// WithLogger sets the logger used for run and step records.
func WithLogger(l *zap.Logger) Option {
	return func(c *Cleaner) {
		if l != nil {
			c.log = l
		}
	}
}

// NewCleaner returns a cleaner that logs nothing unless WithLogger is given.
func NewCleaner(opts ...Option) *Cleaner {
	c := &Cleaner{log: zap.NewNop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Clean applies every step to a copy of raw and decodes the result. The
// first failing step aborts the run; there is no per-row recovery.
func (c *Cleaner) Clean(raw *frame.Frame) (restaurant.Dataset, Report, error) {
	start := time.Now()
	rep := Report{
		RunID:      uuid.NewString(),
		SourceRows: raw.Len(),
		SourceCols: append([]string(nil), raw.Columns...),
	}
	log := c.log.With(zap.String("run_id", rep.RunID))

	f := raw.Clone()
	for _, s := range Steps {
		in := f.Len()
		if err := s.Apply(f); err != nil {
			log.Error("cleaning step failed", zap.String("step", s.Name), zap.Error(err))
			return restaurant.Dataset{}, rep, errors.Wrapf(err, "step %s", s.Name)
		}
		rep.Steps = append(rep.Steps, StepStat{Name: s.Name, RowsIn: in, RowsOut: f.Len()})
		log.Debug("cleaning step", zap.String("step", s.Name), zap.Int("rows_in", in), zap.Int("rows_out", f.Len()))
	}

	ds, err := restaurant.FromFrame(f)
	if err != nil {
		return restaurant.Dataset{}, rep, errors.Wrap(err, "step reset_index")
	}
	rep.Steps = append(rep.Steps, StepStat{Name: "reset_index", RowsIn: f.Len(), RowsOut: ds.Len()})
	rep.Rows = ds.Len()
	rep.Elapsed = time.Since(start)

	log.Info("dataset cleaned",
		zap.Int("source_rows", rep.SourceRows),
		zap.Int("rows", rep.Rows),
		zap.Duration("elapsed", rep.Elapsed),
	)
	return ds, rep, nil
}

// Clean runs a default cleaner.
func Clean(raw *frame.Frame) (restaurant.Dataset, error) {
	ds, _, err := NewCleaner().Clean(raw)
	return ds, err
}
