package stress

import (
	"github.com/cockroachdb/errors"
)

// Scenario names one consistency check run by the harness.
type Scenario string

const (
	PriorityQueue Scenario = "priority"
	Heapify       Scenario = "heapify"
	Deque         Scenario = "deque"
	ArrayList     Scenario = "arraylist"
	LinkedList    Scenario = "linkedlist"
	HashMap       Scenario = "hashmap"
)

// Scenarios returns every known scenario in run order.
func Scenarios() []Scenario {
	return []Scenario{PriorityQueue, Heapify, Deque, ArrayList, LinkedList, HashMap}
}

// ParseScenario maps a name to its scenario.
func ParseScenario(name string) (Scenario, error) {
	for _, s := range Scenarios() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", errors.Newf("unknown scenario %q", name)
}

// Config defines a stress run.
type Config struct {
	Seed        uint64     // Seed of the random source
	Elements    int        // Elements inserted per round
	RemoveOneIn int        // An iterator removes the current element with probability 1/RemoveOneIn
	Rounds      int        // Rounds per scenario
	Scenarios   []Scenario // Scenarios to run, in order
}

// Option is a function that configures a stress run.
type Option func(*Config)

// WithSeed sets the seed of the random source.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithElements sets the number of elements inserted per round.
func WithElements(n int) Option {
	return func(c *Config) {
		c.Elements = n
	}
}

// WithRemoveOneIn sets the inverse probability of an iterator removal.
func WithRemoveOneIn(n int) Option {
	return func(c *Config) {
		c.RemoveOneIn = n
	}
}

// WithRounds sets the number of rounds per scenario.
func WithRounds(n int) Option {
	return func(c *Config) {
		c.Rounds = n
	}
}

// WithScenarios restricts the run to the given scenarios.
func WithScenarios(s ...Scenario) Option {
	return func(c *Config) {
		c.Scenarios = s
	}
}

func defaultConfig() Config {
	return Config{
		Seed:        31,
		Elements:    1000,
		RemoveOneIn: 4,
		Rounds:      1,
		Scenarios:   Scenarios(),
	}
}

// NewConfig returns the default configuration with opts applied.
func NewConfig(opts ...Option) Config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Elements < 0:
		return errors.Newf("elements must not be negative, got %d", c.Elements)
	case c.RemoveOneIn < 1:
		return errors.Newf("remove-one-in must be at least 1, got %d", c.RemoveOneIn)
	case c.Rounds < 1:
		return errors.Newf("rounds must be at least 1, got %d", c.Rounds)
	case len(c.Scenarios) == 0:
		return errors.New("no scenarios selected")
	}
	return nil
}
