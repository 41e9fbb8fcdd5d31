package priority

const defaultCapacity = 8

// options defines the configuration of a queue.
type options struct {
	capacity int // Number of elements storable before the first growth
}

// Option is a function that configures a queue.
type Option func(*options)

// WithCapacity sets the initial capacity of the queue. Values below one are
// raised to one.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 1)
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		capacity: defaultCapacity,
	}
}
