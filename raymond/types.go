package raymond

import "errors"

var (
	// ErrNotATree indicates edges that are not a connected acyclic graph.
	ErrNotATree = errors.New("raymond: topology must be a connected tree")

	// ErrBadNode indicates a node id outside [0, n).
	ErrBadNode = errors.New("raymond: node id out of range")

	// ErrStopped indicates the cluster is not running.
	ErrStopped = errors.New("raymond: cluster is stopped")
)

// Options configures a Cluster.
//
// Fields:
//   - Buffer — extra capacity added to every node's inbox beyond the
//     8·n baseline. The baseline already exceeds the algorithm's
//     worst-case in-flight message count, so 0 is fine.
type Options struct {
	Buffer int
}

// DefaultOptions returns Buffer=0.
func DefaultOptions() Options {
	return Options{}
}
