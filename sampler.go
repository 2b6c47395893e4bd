package flowfield

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
)

// Errors reported by [Config.Validate].
var (
	// ErrInvalidSeparation is returned when DSep is not positive and finite.
	ErrInvalidSeparation = errors.New("flowfield: separation distance must be positive")
	// ErrInvalidTestDistance is returned when DTest is not positive and
	// finite.
	ErrInvalidTestDistance = errors.New("flowfield: test distance must be positive")
	// ErrInvalidLineCount is returned when MaxLineCount is negative.
	ErrInvalidLineCount = errors.New("flowfield: maximum line count must not be negative")
	// ErrInvalidStepCount is returned when MaxSteps is negative.
	ErrInvalidStepCount = errors.New("flowfield: maximum step count must not be negative")
	// ErrInvalidJitter is returned when Jitter is negative or infinite.
	ErrInvalidJitter = errors.New("flowfield: seed jitter must not be negative")
)

const (
	// DefaultMaxSteps is the number of samples after which a single growth
	// pass stops.
	DefaultMaxSteps = 200
	// DefaultJitter is the largest random offset, along each axis, of the
	// first seed from the center of the domain.
	DefaultJitter = 20
)

// Config controls the placement of streamlines by a [Sampler].
type Config struct {
	// MaxLineCount is the number of streamlines after which sampling stops.
	MaxLineCount int
	// DSep is the distance, in addition to the width of the probed sample, at
	// which new seeds are probed next to existing samples.
	DSep float64
	// DTest is the minimum distance between a new sample and every
	// previously committed sample.
	DTest float64
	// WidthAwareSpacing adds the width of the sample being placed to DTest.
	WidthAwareSpacing bool
	// MaxSteps caps the number of samples of a single growth pass. Zero means
	// DefaultMaxSteps.
	MaxSteps int
	// Jitter is the largest random offset, along each axis and in either
	// direction, of the first seed from the center of the domain. It is
	// capped at a quarter of the domain's shorter side so that the first seed
	// always lies inside the domain.
	Jitter float64

	// StepLength returns the step length of a freshly taken sample. Nil keeps
	// the sample's default length.
	StepLength func(Sample) float64
	// StepWidth returns the width of a freshly taken sample. Nil keeps the
	// sample's default width.
	StepWidth func(Sample) float64
	// InBounds further restricts where samples may be placed, for example to
	// a circular frame. Positions must always lie inside the flow field's
	// domain as well.
	InBounds func(Point) bool

	// Debug enables logging of every seed probe and growth pass.
	Debug bool
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
	// Rand is the source of the first seed's jitter. Nil uses the global
	// source.
	Rand *rand.Rand
}

// DefaultConfig returns the configuration used when nothing else is known
// about the field.
func DefaultConfig() Config {
	return Config{
		MaxLineCount: 10,
		DSep:         10,
		DTest:        5,
		MaxSteps:     DefaultMaxSteps,
		Jitter:       DefaultJitter,
	}
}

// Validate reports the first configuration error of cfg.
func (cfg Config) Validate() error {
	switch {
	case !(cfg.DSep > 0) || math.IsInf(cfg.DSep, 0):
		return fmt.Errorf("%w: got %g", ErrInvalidSeparation, cfg.DSep)
	case !(cfg.DTest > 0) || math.IsInf(cfg.DTest, 0):
		return fmt.Errorf("%w: got %g", ErrInvalidTestDistance, cfg.DTest)
	case cfg.MaxLineCount < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidLineCount, cfg.MaxLineCount)
	case cfg.MaxSteps < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidStepCount, cfg.MaxSteps)
	case !(cfg.Jitter >= 0) || math.IsInf(cfg.Jitter, 0):
		return fmt.Errorf("%w: got %g", ErrInvalidJitter, cfg.Jitter)
	}
	return nil
}

// State is a state of the [Sampler].
type State int

const (
	// SeekingSeed probes the committed samples for the next seed.
	SeekingSeed State = iota
	// GrowingLine traces a line forward and backward from the seed.
	GrowingLine
	// CommittingLine adds the grown line to the flow field.
	CommittingLine
	// Done is final.
	Done
)

func (st State) String() string {
	switch st {
	case SeekingSeed:
		return "seeking seed"
	case GrowingLine:
		return "growing line"
	case CommittingLine:
		return "committing line"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(st))
	}
}

// Reason explains why a [Sampler] reached [Done].
type Reason int

const (
	// NotDone is the reason of a sampler that is still running.
	NotDone Reason = iota
	// LineBudgetReached means MaxLineCount lines were placed.
	LineBudgetReached
	// NoSeedFound means every committed sample was probed without finding room
	// for another line.
	NoSeedFound
)

func (r Reason) String() string {
	switch r {
	case NotDone:
		return "not done"
	case LineBudgetReached:
		return "line budget reached"
	case NoSeedFound:
		return "no seed position found"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// Stop explains why a single growth pass ended.
type Stop int

const (
	// OutOfBounds means the next position left the domain or the bounds
	// predicate.
	OutOfBounds Stop = iota
	// TooClose means the next position came within DTest of a committed
	// sample.
	TooClose
	// StepLimit means the pass took MaxSteps steps.
	StepLimit
	// InvalidStep means the step length was not positive and finite.
	InvalidStep
)

func (s Stop) String() string {
	switch s {
	case OutOfBounds:
		return "out of bounds"
	case TooClose:
		return "too close to another line"
	case StepLimit:
		return "step limit reached"
	case InvalidStep:
		return "invalid step length"
	default:
		return fmt.Sprintf("Stop(%d)", int(s))
	}
}

// Result summarizes a sampling run. Partial runs are valid results.
type Result struct {
	// Lines is the number of lines committed, including empty ones.
	Lines int
	// Samples is the number of samples committed to the flow field.
	Samples int
	// Probes is the number of candidate seed positions examined.
	Probes int
	// Reason is why sampling ended, or NotDone.
	Reason Reason
}

// Sampler places evenly spaced streamlines in a [FlowField].
//
// It is a state machine: seek a seed next to the committed samples, grow a
// line forward and backward from it, commit the line, and repeat until the
// line budget is spent or no seed can be found. Every call to
// [Sampler.Step] performs one transition, so callers can stop between any
// two steps and keep the samples committed so far.
type Sampler struct {
	ff  *FlowField
	cfg Config
	log *slog.Logger

	state  State
	result Result

	// next is the index of the committed sample to probe next; -1 before the
	// first seed.
	next int
	// side is the side (±1) of the sample that is probed next.
	side float64
	seed Point
	line int

	forward, backward []Sample
	lines             []Streamline
}

// NewSampler returns a sampler that adds streamlines to ff. Samples already
// in ff are treated as committed lines; new lines are numbered after the
// highest line ID among them and do not count against MaxLineCount.
func NewSampler(ff *FlowField, cfg Config) (*Sampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	line := 0
	for _, smp := range ff.Samples() {
		line = max(line, smp.LineID+1)
	}
	return &Sampler{
		ff:   ff,
		cfg:  cfg,
		log:  log,
		next: -1,
		side: 1,
		line: line,
	}, nil
}

// State returns the state the next call to Step will act on.
func (s *Sampler) State() State { return s.state }

// Result returns the summary of the work done so far.
func (s *Sampler) Result() Result { return s.result }

// Streamlines returns the lines committed so far, in commit order.
func (s *Sampler) Streamlines() []Streamline { return s.lines }

// Step performs one state transition and returns the new state. Once the
// sampler is Done, Step does nothing.
func (s *Sampler) Step() State {
	switch s.state {
	case SeekingSeed:
		if s.result.Lines >= s.cfg.MaxLineCount {
			s.finish(LineBudgetReached)
			break
		}
		seed, ok := s.findSeed()
		if !ok {
			s.finish(NoSeedFound)
			break
		}
		s.seed = seed
		s.state = GrowingLine

	case GrowingLine:
		var stop Stop
		s.forward, stop = s.grow(s.seed, 0)
		s.debug("grew forward", "line", s.line, "samples", len(s.forward), "stop", stop)
		s.backward = nil
		// Without a forward step there is no direction to grow backward in.
		if len(s.forward) > 0 {
			start := s.seed.Translate(s.forward[0].Vector().Negate())
			s.backward, stop = s.grow(start, math.Pi)
			s.debug("grew backward", "line", s.line, "samples", len(s.backward), "stop", stop)
		}
		s.state = CommittingLine

	case CommittingLine:
		s.lines = append(s.lines, Streamline{
			ID:       s.line,
			Start:    s.ff.Len(),
			Forward:  len(s.forward),
			Backward: len(s.backward),
		})
		s.ff.AddSamples(s.forward)
		s.ff.AddSamples(s.backward)
		s.result.Samples += len(s.forward) + len(s.backward)
		s.result.Lines++
		s.forward, s.backward = nil, nil
		s.line++
		s.state = SeekingSeed
	}
	return s.state
}

// Run steps the sampler until it is done and returns the result.
func (s *Sampler) Run() Result {
	for s.state != Done {
		s.Step()
	}
	return s.result
}

func (s *Sampler) finish(r Reason) {
	s.state = Done
	s.result.Reason = r
	s.log.Info("flow field sampling finished",
		"reason", r,
		"lines", s.result.Lines,
		"samples", s.result.Samples,
		"probes", s.result.Probes)
}

func (s *Sampler) debug(msg string, args ...any) {
	if s.cfg.Debug {
		s.log.Debug(msg, args...)
	}
}

func (s *Sampler) inBounds(pt Point) bool {
	if !s.ff.InBounds(pt) {
		return false
	}
	return s.cfg.InBounds == nil || s.cfg.InBounds(pt)
}

// crowded reports whether a committed sample lies within DTest of pt, widened
// by width if spacing is width aware.
func (s *Sampler) crowded(pt Point, width float64) bool {
	r := s.cfg.DTest
	if s.cfg.WidthAwareSpacing {
		r += width
	}
	_, ok := s.ff.ClosestSampleWithinRadius(pt, r)
	return ok
}

// jitter returns a random offset in [-j, j), where j is Jitter capped at a
// quarter of the domain's shorter side.
func (s *Sampler) jitter() float64 {
	j := min(s.cfg.Jitter, s.ff.Size().MinSide()/4)
	if j == 0 {
		return 0
	}
	u := rand.Float64
	if s.cfg.Rand != nil {
		u = s.cfg.Rand.Float64
	}
	return (2*u() - 1) * j
}

// findSeed probes the committed samples, starting where the previous search
// left off, for a position perpendicular to a sample that is in bounds and
// not crowded. The side of the probe alternates with every attempt. After a
// hit, the same sample is probed again next time, on its other side.
func (s *Sampler) findSeed() (Point, bool) {
	if s.next < 0 {
		s.next = 0
		if s.ff.Len() == 0 {
			seed := s.ff.Size().Center().Translate(Vec(s.jitter(), s.jitter()))
			s.debug("seeding at center", "seed", seed)
			return seed, true
		}
	}
	for s.next < s.ff.Len() {
		smp := s.ff.At(s.next)
		th := smp.Angle + math.Pi/2*s.side
		candidate := smp.Translate(Polar(s.cfg.DSep+smp.Width, th))
		s.side = -s.side
		s.result.Probes++
		if s.inBounds(candidate) && !s.crowded(candidate, smp.Width) {
			s.debug("found seed", "sample", s.next, "seed", candidate)
			return candidate, true
		}
		s.next++
	}
	return Point{}, false
}

// grow traces a line from start, stepping along the field direction rotated by
// offset, until it leaves the bounds, comes within reach of a committed
// sample, takes MaxSteps steps, or is given an unusable step length.
func (s *Sampler) grow(start Point, offset float64) ([]Sample, Stop) {
	var line []Sample
	pos := start
	width := 0.0
	for {
		if len(line) >= s.cfg.MaxSteps {
			return line, StepLimit
		}
		if !s.inBounds(pos) {
			return line, OutOfBounds
		}
		if s.crowded(pos, width) {
			return line, TooClose
		}

		smp := s.ff.Sample(pos)
		smp.LineID = s.line
		if s.cfg.StepLength != nil {
			smp.Length = s.cfg.StepLength(smp)
		}
		if s.cfg.StepWidth != nil {
			smp.Width = s.cfg.StepWidth(smp)
		}
		if !(smp.Length > 0) || math.IsInf(smp.Length, 0) {
			return line, InvalidStep
		}
		width = smp.Width
		line = append(line, smp)
		pos = pos.Translate(Polar(smp.Length, smp.Angle+offset))
	}
}

// SampleFlowField fills ff with streamlines according to cfg and returns a
// summary of the run. Running out of room for new lines is not an error; the
// only errors are configuration errors, reported before any sample is added.
func SampleFlowField(ff *FlowField, cfg Config) (Result, error) {
	s, err := NewSampler(ff, cfg)
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}

// SeedLattice adds one sample at every interior node of ff's grid, with the
// given step length and width. It is useful for inspecting a field function.
func SeedLattice(ff *FlowField, length, width float64) {
	nx, ny := ff.GridSize()
	cs := ff.CellSize()
	for i := 1; i < nx-1; i++ {
		for j := 1; j < ny-1; j++ {
			smp := ff.Sample(Pt(float64(i)*cs, float64(j)*cs))
			smp.Length = length
			smp.Width = width
			ff.AddSample(smp)
		}
	}
}
