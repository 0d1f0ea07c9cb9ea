package domain

// OperationKind distinguishes the per-task mutations the CLI can request.
type OperationKind int

const (
	// OperationIncrement adds minutes to a task.
	OperationIncrement OperationKind = iota
	// OperationReset overwrites a task with a number of hours.
	OperationReset
)

// String returns the operation name for display purposes.
func (k OperationKind) String() string {
	switch k {
	case OperationIncrement:
		return "increment"
	case OperationReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Operations is the set of mutations requested in one invocation.
type Operations struct {
	Clean      bool
	Increments map[string]float64 // minutes
	Resets     map[string]float64 // hours
}

// NewOperations creates an empty Operations value.
func NewOperations() Operations {
	return Operations{
		Increments: make(map[string]float64),
		Resets:     make(map[string]float64),
	}
}

// AddIncrement records an increment in minutes. Repeated increments for the
// same task accumulate.
func (o *Operations) AddIncrement(task string, minutes float64) {
	if o.Increments == nil {
		o.Increments = make(map[string]float64)
	}
	o.Increments[task] += minutes
}

// AddReset records a reset in hours. The last reset for a task wins.
func (o *Operations) AddReset(task string, hours float64) {
	if o.Resets == nil {
		o.Resets = make(map[string]float64)
	}
	o.Resets[task] = hours
}

// IsEmpty reports whether nothing would change the state.
func (o Operations) IsEmpty() bool {
	if o.Clean || len(o.Resets) > 0 {
		return false
	}
	for _, m := range o.Increments {
		if m != 0 {
			return false
		}
	}
	return true
}
