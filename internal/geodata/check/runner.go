package check

import "github.com/sjbrg/swedish-geodata/internal/geodata/schema"

// Options tunes one validation run. Zero values mean the committed snapshot
// defaults; the counts are exact checks, not tolerances.
type Options struct {
	CountyRows       int
	MunicipalityRows int
	PostalRows       int
}

// Run executes the full checker chain over a dataset and returns every
// finding discovered.
func Run(ds Source, opts Options) *Result {
	if opts.CountyRows <= 0 {
		opts.CountyRows = schema.ExpectedCounties
	}
	if opts.MunicipalityRows <= 0 {
		opts.MunicipalityRows = schema.ExpectedMunicipalities
	}
	if opts.PostalRows <= 0 {
		opts.PostalRows = schema.DefaultPostalRows
	}

	specs := schema.All()
	for i := range specs {
		switch specs[i].Name {
		case schema.TableCounties:
			specs[i].ExpectedRows = opts.CountyRows
		case schema.TableMunicipalities, schema.TableMunicipalityCounty:
			specs[i].ExpectedRows = opts.MunicipalityRows
		case schema.TablePostal:
			specs[i].ExpectedRows = opts.PostalRows
		}
	}

	chain := NewChain("geodata").
		Add(NewStructuralChecker(specs)).
		Add(NewFormatChecker(specs)).
		Add(NewReferentialChecker(specs)).
		Add(NewConsistencyChecker())

	return chain.Run(ds)
}
