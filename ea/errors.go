package ea

import "errors"

// ErrConfiguration is returned by RunnerBuilder.Build when a mandatory
// collaborator (genome, evaluator, selection, or variation operator) is
// missing.
var ErrConfiguration = errors.New("ea: runner configuration is incomplete")

// ErrPoolSizeMismatch is returned by Tournament.Select when its pool-size
// divisibility preconditions are violated.
var ErrPoolSizeMismatch = errors.New("ea: tournament pool size mismatch")

// ErrOffspringSizeMismatch is returned by CopyOffspring.Select when the
// offspring slice is not the same size as the population it replaces.
var ErrOffspringSizeMismatch = errors.New("ea: offspring size does not match population size")
