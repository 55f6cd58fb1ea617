package rough

// Options holds the perturbation configuration threaded through every
// drawing operation. The caller owns the value; the only mutation the
// library performs is the lazy attachment of the seeded Random source on
// first use, which keeps one deterministic stream alive across an entire
// multi-shape render session.
//
// An Options value must not be shared between goroutines; clone it (or
// serialize access) for parallel rendering.
type Options struct {
	// Roughness is the magnitude knob for all positional jitter.
	// 0 collapses every perturbation to zero, yielding exact geometry.
	Roughness float64

	// Bowing scales the perpendicular midline displacement of straight lines.
	Bowing float64

	// CurveTightness controls how tightly fitted splines hug their control
	// polygon (Catmull-Rom tension analog). 0 is the classic spline.
	CurveTightness float64

	// CurveStepCount is the baseline number of sample points for a full
	// ellipse; larger shapes scale up from it.
	CurveStepCount float64

	// CurveFitting in (0, 1]: lower fitting quality jitters ellipse radii
	// harder (the jitter is proportional to 1-CurveFitting).
	CurveFitting float64

	// MaxRandomnessOffset bounds endpoint jitter in drawing units.
	MaxRandomnessOffset float64

	// Simplification in (0, 1) enables the path refitting pre-pass in
	// SketchPath; 0 disables it.
	Simplification float64

	// Seed selects the deterministic random stream. 0 means a time-based
	// stream (see Random).
	Seed int64

	rng *Random
}

// Option configures an Options value during creation.
type Option func(*Options)

// NewOptions returns an Options with the default configuration,
// customized by the given functional options.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Roughness:           1,
		Bowing:              1,
		CurveTightness:      0,
		CurveStepCount:      9,
		CurveFitting:        0.95,
		MaxRandomnessOffset: 2,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithSeed sets the deterministic seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRoughness sets the jitter magnitude.
func WithRoughness(r float64) Option {
	return func(o *Options) { o.Roughness = r }
}

// WithBowing sets the midline bowing magnitude.
func WithBowing(b float64) Option {
	return func(o *Options) { o.Bowing = b }
}

// WithCurveTightness sets the spline tension.
func WithCurveTightness(t float64) Option {
	return func(o *Options) { o.CurveTightness = t }
}

// WithCurveStepCount sets the baseline ellipse sample count.
func WithCurveStepCount(n float64) Option {
	return func(o *Options) { o.CurveStepCount = n }
}

// WithCurveFitting sets the ellipse fitting quality in (0, 1].
func WithCurveFitting(f float64) Option {
	return func(o *Options) { o.CurveFitting = f }
}

// WithMaxRandomnessOffset sets the endpoint jitter bound.
func WithMaxRandomnessOffset(m float64) Option {
	return func(o *Options) { o.MaxRandomnessOffset = m }
}

// WithSimplification enables the SketchPath refitting pre-pass.
func WithSimplification(s float64) Option {
	return func(o *Options) { o.Simplification = s }
}

// Clone returns a copy of the Options with its own detached random stream.
// The copy starts a fresh stream from Seed, so a cloned configuration
// replays the same sequence as a brand-new one.
func (o *Options) Clone() *Options {
	c := *o
	c.rng = nil
	return &c
}

// random returns the attached Random source, creating it from Seed on
// first use. Ownership stays with the Options value.
func (o *Options) random() *Random {
	if o.rng == nil {
		o.rng = NewRandom(o.Seed)
	}
	return o.rng
}
