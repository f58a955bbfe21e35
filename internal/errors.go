package internal

import "github.com/cockroachdb/errors"

var (
	// ErrCyclicDependency marks panics raised when a node is read during its
	// own evaluation, directly or through intermediate nodes.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrNodeDisposed marks panics raised when a node is used after its
	// owning scope was torn down.
	ErrNodeDisposed = errors.New("node is disposed")
)

func cycleError(what string) error {
	return errors.Mark(errors.Newf("%s read during its own evaluation", what), ErrCyclicDependency)
}

func disposedError(what string) error {
	return errors.Mark(errors.Newf("%s used after disposal", what), ErrNodeDisposed)
}

// asError normalizes a recovered panic value for aggregation.
func asError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	return errors.Newf("computation panicked: %v", v)
}
