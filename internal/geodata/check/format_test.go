package check

import (
	"testing"

	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

func runFormat(t *testing.T, ds Source, res *Result) *Result {
	t.Helper()
	if res == nil {
		res = NewResult()
	}
	NewFormatChecker(schema.All()).Check(ds, res)
	return res
}

func TestFormatCleanFixture(t *testing.T) {
	res := runFormat(t, cleanSource(t), nil)
	if !res.OK() {
		t.Errorf("clean fixture produced findings: %v", res.Findings)
	}
}

func TestFormatCodeViolations(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		column string
	}{
		{"too short", "1", "county_code"},
		{"too long", "011", "county_code"},
		{"non-digit", "0x", "county_code"},
		{"internal space", "0 ", "county_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counties := "county_code,county_name,county_name_short\n" +
				tt.value + ",Stockholms län,Stockholm\n" +
				"03,Uppsala län,Uppsala\n"
			ds := newSource(t, counties, cleanMunicipalities, cleanJoin, cleanPostal)
			res := runFormat(t, ds, nil)

			if got := res.CodeCount(CodeFormatViolation); got != 1 {
				t.Fatalf("FORMAT_VIOLATION count = %d, want 1: %v", got, res.Findings)
			}
			f := res.Findings[0]
			if f.Table != schema.TableCounties || f.Column != tt.column {
				t.Errorf("finding = %+v", f)
			}
			if f.Value != tt.value {
				t.Errorf("Value = %q, want %q", f.Value, tt.value)
			}
			if f.Expected != "2 digits" {
				t.Errorf("Expected = %q, want %q", f.Expected, "2 digits")
			}
		})
	}
}

func TestFormatPostalCodeWithSeparator(t *testing.T) {
	postal := "postal_code,locality,municipality_code,municipality_name\n" +
		"115 20,Stockholm,0180,Stockholms kommun\n"
	ds := newSource(t, cleanCounties, cleanMunicipalities, cleanJoin, postal)
	res := runFormat(t, ds, nil)

	if got := res.CodeCount(CodeFormatViolation); got != 1 {
		t.Fatalf("FORMAT_VIOLATION count = %d, want 1", got)
	}
	f := res.Findings[0]
	if f.Column != schema.ColPostalCode || f.Value != "115 20" {
		t.Errorf("finding = %+v", f)
	}
}

func TestFormatNormalization(t *testing.T) {
	// "Göteborg" with the umlaut as a combining diaeresis (NFD), not the
	// precomposed NFC code point.
	decomposed := "Göteborgs kommun"
	municipalities := "municipality_code,municipality_name,municipality_name_short,county_code\n" +
		"1480," + decomposed + ",Göteborg,14\n"
	counties := "county_code,county_name,county_name_short\n14,Västra Götalands län,Västra Götaland\n"
	join := "municipality_code,municipality_name,municipality_name_short,county_code,county_name,county_name_short\n" +
		"1480," + decomposed + ",Göteborg,14,Västra Götalands län,Västra Götaland\n"
	postal := "postal_code,locality,municipality_code,municipality_name\n" +
		"41103,Göteborg,1480," + decomposed + "\n"

	ds := newSource(t, counties, municipalities, join, postal)
	res := runFormat(t, ds, nil)

	// One per table the decomposed name appears in.
	if got := res.CodeCount(CodeNormalizationViolation); got != 3 {
		t.Errorf("NORMALIZATION_VIOLATION count = %d, want 3: %v", got, res.Findings)
	}
}

func TestFormatSkipsUndeterminedTable(t *testing.T) {
	counties := "county_code,county_name,county_name_short\nXX,Stockholms län,Stockholm\n"
	ds := newSource(t, counties, cleanMunicipalities, cleanJoin, cleanPostal)

	res := NewResult()
	res.MarkUndetermined(schema.TableCounties)
	runFormat(t, ds, res)

	if got := res.CodeCount(CodeFormatViolation); got != 0 {
		t.Errorf("FORMAT_VIOLATION count = %d, want 0 for undetermined table", got)
	}
}
