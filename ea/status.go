package ea

// StatusKind distinguishes why a Runner stopped.
type StatusKind int

const (
	// TargetReached means some individual met the configured target
	// fitness.
	TargetReached StatusKind = iota
	// BudgetReached means the evaluation budget was exhausted before the
	// target was met (or no target was configured).
	BudgetReached
)

func (k StatusKind) String() string {
	switch k {
	case TargetReached:
		return "TargetReached"
	case BudgetReached:
		return "BudgetReached"
	default:
		return "Unknown"
	}
}

// Status is the outcome of Runner.Run: which condition stopped the run,
// and the total number of evaluations performed.
type Status struct {
	Kind        StatusKind
	Evaluations int
}
