package cli

import (
	"errors"
	"fmt"

	"github.com/rshade/bisko/internal/config"
	"github.com/rshade/bisko/internal/refdata"
)

// errPartialTables is returned when only one of the two reference tables
// is configured.
var errPartialTables = errors.New("facts and assumptions tables must be given together")

// referencePaths returns the facts and assumptions tables to use: the flag
// values when set, otherwise the data section of the configuration.
func referencePaths(cfg *config.Config, factsFlag, assumptionsFlag string) (string, string) {
	facts, assumptions := factsFlag, assumptionsFlag
	if facts == "" {
		facts = cfg.Data.Facts
	}
	if assumptions == "" {
		assumptions = cfg.Data.Assumptions
	}
	return facts, assumptions
}

// loadReference opens the reference tables. With neither table configured
// it returns nil and values must come from the input documents.
func loadReference(factsPath, assumptionsPath string) (refdata.Lookup, error) {
	switch {
	case factsPath == "" && assumptionsPath == "":
		return nil, nil //nolint:nilnil // No tables is a valid configuration.
	case factsPath == "" || assumptionsPath == "":
		return nil, errPartialTables
	}
	fa, err := refdata.LoadFactsAndAssumptions(factsPath, assumptionsPath)
	if err != nil {
		return nil, fmt.Errorf("loading reference tables: %w", err)
	}
	return fa, nil
}
