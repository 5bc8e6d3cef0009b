// Package dataset holds the four loaded tables for one validation run and
// the code indexes the referential and consistency checkers share.
package dataset

import (
	"path/filepath"

	"github.com/sjbrg/swedish-geodata/internal/geodata/csvio"
	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// Dataset is the in-memory snapshot of all four tables. It is immutable once
// loaded; checkers only read from it.
type Dataset struct {
	Counties           *csvio.Table
	Municipalities     *csvio.Table
	MunicipalityCounty *csvio.Table
	Postal             *csvio.Table
}

// Load reads the four CSV files from dir. The first *csvio.LoadError aborts
// the load; without a readable table there is nothing to check.
func Load(dir string) (*Dataset, error) {
	ds := &Dataset{}
	for _, spec := range schema.All() {
		table, err := csvio.Load(spec.Name, filepath.Join(dir, spec.Filename))
		if err != nil {
			return nil, err
		}
		switch spec.Name {
		case schema.TableCounties:
			ds.Counties = table
		case schema.TableMunicipalities:
			ds.Municipalities = table
		case schema.TableMunicipalityCounty:
			ds.MunicipalityCounty = table
		case schema.TablePostal:
			ds.Postal = table
		}
	}
	return ds, nil
}

// Table returns the table for a spec name, or nil.
func (d *Dataset) Table(name string) *csvio.Table {
	switch name {
	case schema.TableCounties:
		return d.Counties
	case schema.TableMunicipalities:
		return d.Municipalities
	case schema.TableMunicipalityCounty:
		return d.MunicipalityCounty
	case schema.TablePostal:
		return d.Postal
	}
	return nil
}

// CountyByCode indexes county rows by county_code. On duplicate keys the
// first occurrence wins; the duplicate itself is reported by the referential
// checker.
func (d *Dataset) CountyByCode() map[string]csvio.Row {
	return indexByColumn(d.Counties, schema.ColCountyCode)
}

// MunicipalityByCode indexes municipality rows by municipality_code.
func (d *Dataset) MunicipalityByCode() map[string]csvio.Row {
	return indexByColumn(d.Municipalities, schema.ColMunicipalityCode)
}

func indexByColumn(t *csvio.Table, column string) map[string]csvio.Row {
	idx := make(map[string]csvio.Row, len(t.Rows))
	for _, row := range t.Rows {
		key := row.Value(column)
		if _, seen := idx[key]; !seen {
			idx[key] = row
		}
	}
	return idx
}
