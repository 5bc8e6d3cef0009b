// Package schema declares the four reference tables published by this
// repository: their file names, ordered headers, key columns, fixed-width
// code columns, and expected row counts. Every checker is driven off these
// specs so a schema change is made in exactly one place.
package schema

// Table names used throughout findings and reports. They match the CSV file
// names without extension.
const (
	TableCounties           = "counties"
	TableMunicipalities     = "municipalities"
	TableMunicipalityCounty = "municipality_county"
	TablePostal             = "postal_to_municipality"
)

// Column names shared between tables.
const (
	ColCountyCode            = "county_code"
	ColCountyName            = "county_name"
	ColCountyNameShort       = "county_name_short"
	ColMunicipalityCode      = "municipality_code"
	ColMunicipalityName      = "municipality_name"
	ColMunicipalityNameShort = "municipality_name_short"
	ColPostalCode            = "postal_code"
	ColLocality              = "locality"
)

// Code widths defined by SCB: county codes are two digits, municipality codes
// four (the first two being the county), postal codes five.
const (
	CountyCodeWidth       = 2
	MunicipalityCodeWidth = 4
	PostalCodeWidth       = 5
)

// Expected row counts for the administrative tables. Sweden has 21 counties
// and 290 municipalities; both are stable facts, unlike the postal snapshot
// whose count lives in configuration.
const (
	ExpectedCounties       = 21
	ExpectedMunicipalities = 290
)

// DefaultPostalRows is the row count of the committed postal snapshot. The
// check against it is exact, not a tolerance: the snapshot is a fixed
// artifact, and a refresh updates this number through configuration.
const DefaultPostalRows = 15463

// CodeColumn describes a zero-padded numeric column with a fixed width.
type CodeColumn struct {
	Name  string
	Width int
}

// TableSpec describes one CSV table: where it lives, what its header must be,
// and which columns carry keys, codes, and free-text names.
type TableSpec struct {
	Name     string
	Filename string
	Header   []string

	// KeyColumn is the primary key; its values must be unique.
	KeyColumn string

	// CodeColumns are checked against their fixed-width digit pattern.
	CodeColumns []CodeColumn

	// NameColumns are free-text columns that must be non-empty and NFC
	// normalized.
	NameColumns []string

	// ExpectedRows is the exact row count the table must have. Zero means
	// the count is supplied at runtime (the postal snapshot).
	ExpectedRows int
}

// Counties returns the spec for counties.csv.
func Counties() TableSpec {
	return TableSpec{
		Name:      TableCounties,
		Filename:  "counties.csv",
		Header:    []string{ColCountyCode, ColCountyName, ColCountyNameShort},
		KeyColumn: ColCountyCode,
		CodeColumns: []CodeColumn{
			{Name: ColCountyCode, Width: CountyCodeWidth},
		},
		NameColumns:  []string{ColCountyName, ColCountyNameShort},
		ExpectedRows: ExpectedCounties,
	}
}

// Municipalities returns the spec for municipalities.csv.
func Municipalities() TableSpec {
	return TableSpec{
		Name:     TableMunicipalities,
		Filename: "municipalities.csv",
		Header: []string{
			ColMunicipalityCode,
			ColMunicipalityName,
			ColMunicipalityNameShort,
			ColCountyCode,
		},
		KeyColumn: ColMunicipalityCode,
		CodeColumns: []CodeColumn{
			{Name: ColMunicipalityCode, Width: MunicipalityCodeWidth},
			{Name: ColCountyCode, Width: CountyCodeWidth},
		},
		NameColumns:  []string{ColMunicipalityName, ColMunicipalityNameShort},
		ExpectedRows: ExpectedMunicipalities,
	}
}

// MunicipalityCounty returns the spec for the denormalized join table.
func MunicipalityCounty() TableSpec {
	return TableSpec{
		Name:     TableMunicipalityCounty,
		Filename: "municipality_county.csv",
		Header: []string{
			ColMunicipalityCode,
			ColMunicipalityName,
			ColMunicipalityNameShort,
			ColCountyCode,
			ColCountyName,
			ColCountyNameShort,
		},
		KeyColumn: ColMunicipalityCode,
		CodeColumns: []CodeColumn{
			{Name: ColMunicipalityCode, Width: MunicipalityCodeWidth},
			{Name: ColCountyCode, Width: CountyCodeWidth},
		},
		NameColumns: []string{
			ColMunicipalityName,
			ColMunicipalityNameShort,
			ColCountyName,
			ColCountyNameShort,
		},
		ExpectedRows: ExpectedMunicipalities,
	}
}

// Postal returns the spec for postal_to_municipality.csv. ExpectedRows is
// zero here; the runner fills it in from configuration.
func Postal() TableSpec {
	return TableSpec{
		Name:     TablePostal,
		Filename: "postal_to_municipality.csv",
		Header: []string{
			ColPostalCode,
			ColLocality,
			ColMunicipalityCode,
			ColMunicipalityName,
		},
		KeyColumn: ColPostalCode,
		CodeColumns: []CodeColumn{
			{Name: ColPostalCode, Width: PostalCodeWidth},
			{Name: ColMunicipalityCode, Width: MunicipalityCodeWidth},
		},
		NameColumns:  []string{ColLocality, ColMunicipalityName},
		ExpectedRows: 0,
	}
}

// All returns the four table specs in load order: referenced tables before
// the tables that reference them.
func All() []TableSpec {
	return []TableSpec{Counties(), Municipalities(), MunicipalityCounty(), Postal()}
}
