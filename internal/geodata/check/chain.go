package check

// Checker is one stage of the validation pipeline. A checker reads the
// dataset and appends findings; it must not stop at the first defect.
type Checker interface {
	Name() string
	Check(ds Source, res *Result)
}

// Chain runs checkers sequentially against one dataset, collecting all
// findings into a single Result. Later checkers see what earlier ones marked
// undetermined.
type Chain struct {
	name     string
	checkers []Checker
}

// NewChain creates a named checker chain.
func NewChain(name string) *Chain {
	return &Chain{name: name}
}

// Add appends a checker and returns the chain for fluent building.
func (c *Chain) Add(checker Checker) *Chain {
	c.checkers = append(c.checkers, checker)
	return c
}

// Name returns the chain name.
func (c *Chain) Name() string {
	return c.name
}

// Length returns the number of checkers in the chain.
func (c *Chain) Length() int {
	return len(c.checkers)
}

// Run executes every checker in order and returns the combined result.
func (c *Chain) Run(ds Source) *Result {
	res := NewResult()
	for _, checker := range c.checkers {
		checker.Check(ds, res)
	}
	return res
}
