package poolmap

import "github.com/xyproto/env/v2"

const (
	// DefaultCapacityEnv names the environment variable that overrides
	// the capacity hint used by NewDefault and NewDefaultSet.
	DefaultCapacityEnv = "POOLMAP_DEFAULT_CAPACITY"

	defaultCapacity = 17
)

// DefaultCapacity returns the capacity hint for tables built without one:
// $POOLMAP_DEFAULT_CAPACITY when it holds a non-negative integer, 17 otherwise.
func DefaultCapacity() int {
	if n := env.Int(DefaultCapacityEnv, defaultCapacity); n >= 0 {
		return n
	}

	return defaultCapacity
}
