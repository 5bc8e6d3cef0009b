package check

import (
	"testing"

	"github.com/sjbrg/swedish-geodata/internal/geodata/csvio"
	"github.com/sjbrg/swedish-geodata/internal/geodata/dataset"
	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// Two counties, two municipalities, a matching join, and two postal rows.
// Referentially and structurally clean by construction.
const (
	cleanCounties = "county_code,county_name,county_name_short\n" +
		"01,Stockholms län,Stockholm\n" +
		"03,Uppsala län,Uppsala\n"

	cleanMunicipalities = "municipality_code,municipality_name,municipality_name_short,county_code\n" +
		"0180,Stockholms kommun,Stockholm,01\n" +
		"0380,Uppsala kommun,Uppsala,03\n"

	cleanJoin = "municipality_code,municipality_name,municipality_name_short,county_code,county_name,county_name_short\n" +
		"0180,Stockholms kommun,Stockholm,01,Stockholms län,Stockholm\n" +
		"0380,Uppsala kommun,Uppsala,03,Uppsala län,Uppsala\n"

	cleanPostal = "postal_code,locality,municipality_code,municipality_name\n" +
		"11520,Stockholm,0180,Stockholms kommun\n" +
		"75310,Uppsala,0380,Uppsala kommun\n"
)

func mustParse(t *testing.T, name, content string) *csvio.Table {
	t.Helper()
	table, err := csvio.Parse(name, []byte(content))
	if err != nil {
		t.Fatalf("Parse(%s) error = %v", name, err)
	}
	return table
}

func newSource(t *testing.T, counties, municipalities, join, postal string) *dataset.Dataset {
	t.Helper()
	return &dataset.Dataset{
		Counties:           mustParse(t, schema.TableCounties, counties),
		Municipalities:     mustParse(t, schema.TableMunicipalities, municipalities),
		MunicipalityCounty: mustParse(t, schema.TableMunicipalityCounty, join),
		Postal:             mustParse(t, schema.TablePostal, postal),
	}
}

func cleanSource(t *testing.T) *dataset.Dataset {
	t.Helper()
	return newSource(t, cleanCounties, cleanMunicipalities, cleanJoin, cleanPostal)
}

// fixtureSpecs returns the schema specs with row-count expectations matching
// the loaded fixture, so structural checks are green unless a test breaks
// something on purpose.
func fixtureSpecs(ds *dataset.Dataset) []schema.TableSpec {
	specs := schema.All()
	for i := range specs {
		specs[i].ExpectedRows = len(ds.Table(specs[i].Name).Rows)
	}
	return specs
}

func codes(res *Result) map[Code]int {
	out := make(map[Code]int)
	for _, f := range res.Findings {
		out[f.Code]++
	}
	return out
}
