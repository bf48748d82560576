package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnbalancedEntry indicates a draft journal entry whose debits and
// credits do not balance within tolerance. Recovered locally by the
// submission flow; not a system fault.
var ErrUnbalancedEntry = errors.New("journal entry does not balance")

// ErrExportContract indicates the exporter was handed rows that violate its
// contract (e.g., a row with a different column count than the header).
// This is a programming error, not a user-facing condition.
var ErrExportContract = errors.New("export contract violation")
