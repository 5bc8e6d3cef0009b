package check

import (
	"testing"

	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

func runConsistency(t *testing.T, ds Source, res *Result) *Result {
	t.Helper()
	if res == nil {
		res = NewResult()
	}
	NewConsistencyChecker().Check(ds, res)
	return res
}

func TestConsistencyCleanFixture(t *testing.T) {
	res := runConsistency(t, cleanSource(t), nil)
	if !res.OK() {
		t.Errorf("clean fixture produced findings: %v", res.Findings)
	}
}

func TestConsistencyJoinFieldMismatch(t *testing.T) {
	join := "municipality_code,municipality_name,municipality_name_short,county_code,county_name,county_name_short\n" +
		"0180,Stockholms kommun,Stockholm,01,Stockholm län,Stockholm\n" +
		"0380,Uppsala kommun,Uppsala,03,Uppsala län,Uppsala\n"
	ds := newSource(t, cleanCounties, cleanMunicipalities, join, cleanPostal)
	res := runConsistency(t, ds, nil)

	if got := res.CodeCount(CodeJoinFieldMismatch); got != 1 {
		t.Fatalf("JOIN_FIELD_MISMATCH count = %d, want 1: %v", got, res.Findings)
	}
	f := res.Findings[0]
	if f.Column != schema.ColCountyName {
		t.Errorf("Column = %q, want county_name", f.Column)
	}
	if f.Expected != "Stockholms län" || f.Value != "Stockholm län" {
		t.Errorf("expected/value = %q/%q", f.Expected, f.Value)
	}
	if f.Key != "0180" {
		t.Errorf("Key = %q, want 0180", f.Key)
	}
}

func TestConsistencyOrphanJoinRow(t *testing.T) {
	join := cleanJoin +
		"9999,Nowhere kommun,Nowhere,99,Nowhere län,Nowhere\n"
	ds := newSource(t, cleanCounties, cleanMunicipalities, join, cleanPostal)
	res := runConsistency(t, ds, nil)

	// The extra row resolves neither its municipality nor its county.
	if got := res.CodeCount(CodeOrphanJoinRow); got != 2 {
		t.Errorf("ORPHAN_JOIN_ROW count = %d, want 2: %v", got, res.Findings)
	}
	// And it is also surplus coverage.
	if got := res.CodeCount(CodeJoinCoverageMismatch); got != 1 {
		t.Errorf("JOIN_COVERAGE_MISMATCH count = %d, want 1", got)
	}
}

func TestConsistencyCoverageMissingMunicipality(t *testing.T) {
	join := "municipality_code,municipality_name,municipality_name_short,county_code,county_name,county_name_short\n" +
		"0180,Stockholms kommun,Stockholm,01,Stockholms län,Stockholm\n"
	ds := newSource(t, cleanCounties, cleanMunicipalities, join, cleanPostal)
	res := runConsistency(t, ds, nil)

	if got := res.CodeCount(CodeJoinCoverageMismatch); got != 1 {
		t.Fatalf("JOIN_COVERAGE_MISMATCH count = %d, want 1: %v", got, res.Findings)
	}
	var f Finding
	for _, cand := range res.Findings {
		if cand.Code == CodeJoinCoverageMismatch {
			f = cand
		}
	}
	if f.Key != "0380" {
		t.Errorf("Key = %q, want 0380 (the uncovered municipality)", f.Key)
	}
}

func TestConsistencyPostalNameMismatch(t *testing.T) {
	postal := "postal_code,locality,municipality_code,municipality_name\n" +
		"11520,Stockholm,0180,Stockholm kommun\n"
	ds := newSource(t, cleanCounties, cleanMunicipalities, cleanJoin, postal)
	res := runConsistency(t, ds, nil)

	if got := res.CodeCount(CodeJoinFieldMismatch); got != 1 {
		t.Fatalf("JOIN_FIELD_MISMATCH count = %d, want 1: %v", got, res.Findings)
	}
	f := res.Findings[0]
	if f.Table != schema.TablePostal || f.Key != "11520" {
		t.Errorf("finding = %+v", f)
	}
	if f.Expected != "Stockholms kommun" || f.Value != "Stockholm kommun" {
		t.Errorf("expected/value = %q/%q", f.Expected, f.Value)
	}
}

func TestConsistencySkipsUndeterminedJoin(t *testing.T) {
	join := "municipality_code,municipality_name,municipality_name_short,county_code,county_name,county_name_short\n" +
		"9999,Nowhere kommun,Nowhere,99,Nowhere län,Nowhere\n"
	ds := newSource(t, cleanCounties, cleanMunicipalities, join, cleanPostal)

	res := NewResult()
	res.MarkUndetermined(schema.TableMunicipalityCounty)
	runConsistency(t, ds, res)

	if got := res.Count(); got != 0 {
		t.Errorf("findings = %d, want 0 for undetermined join table: %v", got, res.Findings)
	}
}
