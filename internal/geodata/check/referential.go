package check

import (
	"fmt"
	"sort"

	"github.com/sjbrg/swedish-geodata/internal/geodata/csvio"
	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// ReferentialChecker verifies primary-key uniqueness within each table,
// foreign-key existence across tables, and the prefix relationship between
// municipality and county codes.
type ReferentialChecker struct {
	specs []schema.TableSpec
}

// NewReferentialChecker builds the checker for the given table specs.
func NewReferentialChecker(specs []schema.TableSpec) *ReferentialChecker {
	return &ReferentialChecker{specs: specs}
}

func (c *ReferentialChecker) Name() string {
	return "referential"
}

func (c *ReferentialChecker) Check(ds Source, res *Result) {
	for _, spec := range c.specs {
		if res.Undetermined(spec.Name) {
			continue
		}
		if t := ds.Table(spec.Name); t != nil {
			c.checkUniqueness(spec, t, res)
		}
	}

	counties := ds.CountyByCode()
	municipalities := ds.MunicipalityByCode()

	// Municipality.county_code -> County.
	c.checkForeignKey(ds, res, schema.TableMunicipalities, schema.ColCountyCode,
		schema.ColMunicipalityCode, schema.TableCounties, counties)

	// The denormalized join repeats both foreign keys.
	c.checkForeignKey(ds, res, schema.TableMunicipalityCounty, schema.ColCountyCode,
		schema.ColMunicipalityCode, schema.TableCounties, counties)
	c.checkForeignKey(ds, res, schema.TableMunicipalityCounty, schema.ColMunicipalityCode,
		schema.ColMunicipalityCode, schema.TableMunicipalities, municipalities)

	// PostalMapping.municipality_code -> Municipality.
	c.checkForeignKey(ds, res, schema.TablePostal, schema.ColMunicipalityCode,
		schema.ColPostalCode, schema.TableMunicipalities, municipalities)

	// municipality_code[0:2] must equal county_code, in both tables that
	// carry the pair.
	c.checkPrefix(ds, res, schema.TableMunicipalities)
	c.checkPrefix(ds, res, schema.TableMunicipalityCounty)
}

// checkUniqueness reports one DUPLICATE_KEY finding per duplicated key value,
// with every occurrence line enumerated.
func (c *ReferentialChecker) checkUniqueness(spec schema.TableSpec, t *csvio.Table, res *Result) {
	lines := make(map[string][]int)
	order := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		key := row.Value(spec.KeyColumn)
		if key == "" {
			continue // missing keys are malformed-row territory
		}
		if _, seen := lines[key]; !seen {
			order = append(order, key)
		}
		lines[key] = append(lines[key], row.Line)
	}

	for _, key := range order {
		occurrences := lines[key]
		if len(occurrences) > 1 {
			res.Add(Finding{
				Code:    CodeDuplicateKey,
				Table:   spec.Name,
				Line:    occurrences[1],
				Key:     key,
				Column:  spec.KeyColumn,
				Message: fmt.Sprintf("key appears %d times, on lines %v", len(occurrences), occurrences),
			})
		}
	}
}

// checkForeignKey reports a DANGLING_REFERENCE per row whose fkColumn value
// is missing from the referenced table's key set. Skipped when either side
// has an undetermined header.
func (c *ReferentialChecker) checkForeignKey(ds Source, res *Result, table, fkColumn, keyColumn, refTable string, refIndex map[string]csvio.Row) {
	if res.Undetermined(table) || res.Undetermined(refTable) {
		return
	}
	t := ds.Table(table)
	if t == nil {
		return
	}

	for _, row := range t.Rows {
		value := row.Value(fkColumn)
		if _, ok := refIndex[value]; !ok {
			res.Add(Finding{
				Code:     CodeDanglingReference,
				Table:    table,
				Line:     row.Line,
				Key:      row.Value(keyColumn),
				Column:   fkColumn,
				Value:    value,
				Expected: fmt.Sprintf("a key present in %s", refTable),
				Message:  "reference does not resolve",
			})
		}
	}
}

func (c *ReferentialChecker) checkPrefix(ds Source, res *Result, table string) {
	if res.Undetermined(table) {
		return
	}
	t := ds.Table(table)
	if t == nil {
		return
	}

	for _, row := range t.Rows {
		code := row.Value(schema.ColMunicipalityCode)
		county := row.Value(schema.ColCountyCode)
		if len(code) < schema.CountyCodeWidth {
			continue // too short to carry a prefix; the format checker reports it
		}
		if prefix := code[:schema.CountyCodeWidth]; prefix != county {
			res.Add(Finding{
				Code:     CodePrefixMismatch,
				Table:    table,
				Line:     row.Line,
				Key:      code,
				Column:   schema.ColCountyCode,
				Value:    county,
				Expected: prefix,
				Message:  "county_code does not match the municipality code prefix",
			})
		}
	}
}

// sortedKeys returns map keys in lexical order, for deterministic findings.
func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
