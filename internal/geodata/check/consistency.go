package check

import (
	"github.com/sjbrg/swedish-geodata/internal/geodata/csvio"
	"github.com/sjbrg/swedish-geodata/internal/geodata/schema"
)

// ConsistencyChecker verifies that the denormalized join table agrees with
// the two tables it was derived from, covers every municipality exactly once,
// and that the postal table's duplicated municipality_name matches the
// municipality it references.
type ConsistencyChecker struct{}

// NewConsistencyChecker builds the checker.
func NewConsistencyChecker() *ConsistencyChecker {
	return &ConsistencyChecker{}
}

func (c *ConsistencyChecker) Name() string {
	return "consistency"
}

func (c *ConsistencyChecker) Check(ds Source, res *Result) {
	counties := ds.CountyByCode()
	municipalities := ds.MunicipalityByCode()

	c.checkJoin(ds, res, counties, municipalities)
	c.checkCoverage(ds, res)
	c.checkPostalNames(ds, res, municipalities)
}

func (c *ConsistencyChecker) checkJoin(ds Source, res *Result, counties, municipalities map[string]csvio.Row) {
	if res.Undetermined(schema.TableMunicipalityCounty) {
		return
	}
	join := ds.Table(schema.TableMunicipalityCounty)
	if join == nil {
		return
	}

	for _, row := range join.Rows {
		code := row.Value(schema.ColMunicipalityCode)

		if !res.Undetermined(schema.TableMunicipalities) {
			muni, ok := municipalities[code]
			if !ok {
				res.Add(Finding{
					Code:     CodeOrphanJoinRow,
					Table:    schema.TableMunicipalityCounty,
					Line:     row.Line,
					Key:      code,
					Column:   schema.ColMunicipalityCode,
					Value:    code,
					Expected: "a municipality present in " + schema.TableMunicipalities,
					Message:  "join row references no municipality",
				})
			} else {
				c.compareField(res, row, muni, code, schema.ColMunicipalityName)
				c.compareField(res, row, muni, code, schema.ColMunicipalityNameShort)
			}
		}

		if !res.Undetermined(schema.TableCounties) {
			county := row.Value(schema.ColCountyCode)
			ref, ok := counties[county]
			if !ok {
				res.Add(Finding{
					Code:     CodeOrphanJoinRow,
					Table:    schema.TableMunicipalityCounty,
					Line:     row.Line,
					Key:      code,
					Column:   schema.ColCountyCode,
					Value:    county,
					Expected: "a county present in " + schema.TableCounties,
					Message:  "join row references no county",
				})
			} else {
				c.compareField(res, row, ref, code, schema.ColCountyName)
				c.compareField(res, row, ref, code, schema.ColCountyNameShort)
			}
		}
	}
}

// compareField reports a JOIN_FIELD_MISMATCH when a denormalized column
// differs from the source row it was copied from.
func (c *ConsistencyChecker) compareField(res *Result, joinRow, sourceRow csvio.Row, key, column string) {
	want := sourceRow.Value(column)
	got := joinRow.Value(column)
	if got != want {
		res.Add(Finding{
			Code:     CodeJoinFieldMismatch,
			Table:    schema.TableMunicipalityCounty,
			Line:     joinRow.Line,
			Key:      key,
			Column:   column,
			Value:    got,
			Expected: want,
			Message:  "denormalized value differs from its source table",
		})
	}
}

// checkCoverage verifies the join's municipality_code set equals the
// municipality table's set exactly, enumerating each missing and extra code.
func (c *ConsistencyChecker) checkCoverage(ds Source, res *Result) {
	if res.Undetermined(schema.TableMunicipalityCounty) || res.Undetermined(schema.TableMunicipalities) {
		return
	}
	join := ds.Table(schema.TableMunicipalityCounty)
	munis := ds.Table(schema.TableMunicipalities)
	if join == nil || munis == nil {
		return
	}

	joinSet := keySet(join, schema.ColMunicipalityCode)
	muniSet := keySet(munis, schema.ColMunicipalityCode)

	missing := make(map[string]struct{})
	for code := range muniSet {
		if _, ok := joinSet[code]; !ok {
			missing[code] = struct{}{}
		}
	}
	extra := make(map[string]struct{})
	for code := range joinSet {
		if _, ok := muniSet[code]; !ok {
			extra[code] = struct{}{}
		}
	}

	for _, code := range sortedKeys(missing) {
		res.Add(Finding{
			Code:     CodeJoinCoverageMismatch,
			Table:    schema.TableMunicipalityCounty,
			Key:      code,
			Expected: "exactly one join row per municipality",
			Message:  "municipality has no join row",
		})
	}
	for _, code := range sortedKeys(extra) {
		res.Add(Finding{
			Code:     CodeJoinCoverageMismatch,
			Table:    schema.TableMunicipalityCounty,
			Key:      code,
			Expected: "exactly one join row per municipality",
			Message:  "join row has no municipality",
		})
	}
}

// checkPostalNames verifies the postal table's denormalized municipality_name
// against the referenced municipality. Dangling references are reported by
// the referential checker, not here.
func (c *ConsistencyChecker) checkPostalNames(ds Source, res *Result, municipalities map[string]csvio.Row) {
	if res.Undetermined(schema.TablePostal) || res.Undetermined(schema.TableMunicipalities) {
		return
	}
	postal := ds.Table(schema.TablePostal)
	if postal == nil {
		return
	}

	for _, row := range postal.Rows {
		muni, ok := municipalities[row.Value(schema.ColMunicipalityCode)]
		if !ok {
			continue
		}
		want := muni.Value(schema.ColMunicipalityName)
		got := row.Value(schema.ColMunicipalityName)
		if got != want {
			res.Add(Finding{
				Code:     CodeJoinFieldMismatch,
				Table:    schema.TablePostal,
				Line:     row.Line,
				Key:      row.Value(schema.ColPostalCode),
				Column:   schema.ColMunicipalityName,
				Value:    got,
				Expected: want,
				Message:  "denormalized value differs from its source table",
			})
		}
	}
}

func keySet(t *csvio.Table, column string) map[string]struct{} {
	set := make(map[string]struct{}, len(t.Rows))
	for _, row := range t.Rows {
		if v := row.Value(column); v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
