package check

import "github.com/sjbrg/swedish-geodata/internal/geodata/csvio"

// Source supplies loaded tables and key indexes to checkers. It is satisfied
// by *dataset.Dataset; tests provide fixture implementations.
type Source interface {
	// Table returns the loaded table for a schema table name, or nil.
	Table(name string) *csvio.Table

	// CountyByCode indexes counties by county_code (first occurrence wins).
	CountyByCode() map[string]csvio.Row

	// MunicipalityByCode indexes municipalities by municipality_code.
	MunicipalityByCode() map[string]csvio.Row
}
