package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sjbrg/swedish-geodata/internal/geodata/csvio"
)

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func fixtureDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFixture(t, dir, "counties.csv",
		"county_code,county_name,county_name_short\n01,Stockholms län,Stockholm\n")
	writeFixture(t, dir, "municipalities.csv",
		"municipality_code,municipality_name,municipality_name_short,county_code\n0180,Stockholms kommun,Stockholm,01\n")
	writeFixture(t, dir, "municipality_county.csv",
		"municipality_code,municipality_name,municipality_name_short,county_code,county_name,county_name_short\n0180,Stockholms kommun,Stockholm,01,Stockholms län,Stockholm\n")
	writeFixture(t, dir, "postal_to_municipality.csv",
		"postal_code,locality,municipality_code,municipality_name\n11520,Stockholm,0180,Stockholms kommun\n")
	return dir
}

func TestLoad(t *testing.T) {
	ds, err := Load(fixtureDir(t))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got := len(ds.Counties.Rows); got != 1 {
		t.Errorf("counties rows = %d, want 1", got)
	}
	if got := ds.Postal.Rows[0].Value("postal_code"); got != "11520" {
		t.Errorf("postal_code = %q, want 11520", got)
	}
}

func TestLoadMissingFileIsLoadError(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "counties.csv", "county_code,county_name,county_name_short\n")

	_, err := Load(dir)
	var lerr *csvio.LoadError
	if !errors.As(err, &lerr) {
		t.Fatalf("Load() error = %v, want *csvio.LoadError", err)
	}
}

func TestIndexes(t *testing.T) {
	ds, err := Load(fixtureDir(t))
	if err != nil {
		t.Fatal(err)
	}

	counties := ds.CountyByCode()
	if row, ok := counties["01"]; !ok || row.Value("county_name") != "Stockholms län" {
		t.Errorf("CountyByCode()[01] = %v, ok=%v", row.Values, ok)
	}

	munis := ds.MunicipalityByCode()
	if _, ok := munis["0180"]; !ok {
		t.Error("MunicipalityByCode() missing 0180")
	}
}

func TestIndexFirstOccurrenceWins(t *testing.T) {
	dir := fixtureDir(t)
	writeFixture(t, dir, "counties.csv",
		"county_code,county_name,county_name_short\n01,First län,First\n01,Second län,Second\n")

	ds, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got := ds.CountyByCode()["01"].Value("county_name"); got != "First län" {
		t.Errorf("duplicate key resolved to %q, want first occurrence", got)
	}
}
