package check

import "testing"

type stubChecker struct {
	name    string
	finding Finding
	order   *[]string
}

func (s *stubChecker) Name() string { return s.name }

func (s *stubChecker) Check(ds Source, res *Result) {
	*s.order = append(*s.order, s.name)
	res.Add(s.finding)
}

func TestChainRunsInOrderAndAccumulates(t *testing.T) {
	var order []string
	chain := NewChain("test").
		Add(&stubChecker{name: "first", finding: Finding{Code: CodeEmptyRow}, order: &order}).
		Add(&stubChecker{name: "second", finding: Finding{Code: CodeDuplicateKey}, order: &order})

	if chain.Length() != 2 {
		t.Errorf("Length() = %d, want 2", chain.Length())
	}
	if chain.Name() != "test" {
		t.Errorf("Name() = %q, want %q", chain.Name(), "test")
	}

	res := chain.Run(nil)

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("execution order = %v", order)
	}
	if res.Count() != 2 {
		t.Errorf("Count() = %d, want 2", res.Count())
	}
	if res.CodeCount(CodeEmptyRow) != 1 || res.CodeCount(CodeDuplicateKey) != 1 {
		t.Errorf("findings = %v", res.Findings)
	}
}
