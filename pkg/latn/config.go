package latn

// Config carries the host knobs spec.md §5 names: caps against
// hypothesis explosion and the spatial-scoring pruning cutoff §4.7
// leaves to the host. All fields' zero value means "unbounded" or
// "no pruning" — a Config{} is always a legal, permissive default.
type Config struct {
	// MaxHypotheses caps how many hypotheses a layer's result keeps,
	// after confidence-sorting, 0 meaning unbounded.
	MaxHypotheses int
	// MaxMatchesPerNP caps how many scene candidate matches Layer 2's
	// grounding multiplies into a hypothesis per NP, 0 meaning unbounded.
	MaxMatchesPerNP int
	// MinSpatialScore prunes hypotheses containing a PrepPhrase whose
	// Layer 3 spatial Score falls below this cutoff once ScoreValid is
	// true. 0 disables pruning (the GroundingFailure state itself is
	// never pruned: spec.md §7 requires it never be fatal).
	MinSpatialScore float64
	// ReturnAllMatches requests every scene match per NP (Cartesian
	// grounding) rather than only the single best.
	ReturnAllMatches bool
}

// Option configures a Config via the functional-options idiom, mirroring
// the teacher's explicit-constructor-argument style without hiding
// knobs behind environment variables or global state.
type Option func(*Config)

// WithMaxHypotheses caps the hypothesis count kept after sorting.
func WithMaxHypotheses(n int) Option {
	return func(c *Config) { c.MaxHypotheses = n }
}

// WithMaxMatchesPerNP caps scene candidate matches multiplied per NP.
func WithMaxMatchesPerNP(n int) Option {
	return func(c *Config) { c.MaxMatchesPerNP = n }
}

// WithMinSpatialScore sets the spatial-scoring pruning cutoff.
func WithMinSpatialScore(min float64) Option {
	return func(c *Config) { c.MinSpatialScore = min }
}

// WithReturnAllMatches requests Cartesian grounding across every scene
// match per NP instead of only the single best.
func WithReturnAllMatches() Option {
	return func(c *Config) { c.ReturnAllMatches = true }
}

func newConfig(opts ...Option) Config {
	var c Config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Layer2Config configures ExecuteLayer2.
type Layer2Config struct {
	Config
	Ground bool
}

// Layer3Config configures ExecuteLayer3.
type Layer3Config struct {
	Config
	Ground bool
}

// SceneOption configures AttachScene.
type SceneOption func(*sceneSettings)

type sceneSettings struct {
	buildIndex bool
}

// WithANNAcceleration builds a pkg/sceneindex index over the attached
// scene's entities and keeps it on the Parser. Grounding does not consult
// the index: FindNounPhrase scans the scene's entities the same way
// whether or not it was built.
func WithANNAcceleration() SceneOption {
	return func(s *sceneSettings) { s.buildIndex = true }
}
