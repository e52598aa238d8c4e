package score

import (
	"errors"
	"fmt"
)

// CheckResults lists problems found in a store
type CheckResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether the check found no errors
func (r CheckResults) OK() bool {
	return len(r.Errors) == 0
}

// Check inspects every counter key. Unreadable or negative values are
// errors, missing keys are warnings; both read back as zero.
func Check(s Store) CheckResults {
	var results CheckResults
	for _, key := range Keys {
		v, err := s.Get(key)
		switch {
		case errors.Is(err, ErrNotFound):
			results.Warnings = append(results.Warnings,
				fmt.Sprintf("%s is not set and will read as 0", key))
		case err != nil:
			results.Errors = append(results.Errors,
				fmt.Sprintf("%s cannot be read (%v) and will read as 0", key, err))
		case v < 0:
			results.Errors = append(results.Errors,
				fmt.Sprintf("%s is negative (%d) and will read as 0", key, v))
		}
	}
	return results
}
