package queryspec

import (
	"errors"
	"fmt"
)

// ErrInvalidQueryMsgSchema reports a query message schema whose structure
// could not be mapped onto exactly one operation name per alternative. It is
// always returned wrapped with the offending alternative's context.
var ErrInvalidQueryMsgSchema = errors.New("queryspec: the structure of the query message schema was unexpected")

// InconsistentQueriesError reports that the operation names published by the
// query message schema and the names declared by the response map disagree.
// Both full sorted sets are carried so callers can render a precise diff.
type InconsistentQueriesError struct {
	// QueryMsg holds the names derived from the message's own schema.
	QueryMsg []string
	// Responses holds the keys of the declared response map.
	Responses []string
}

func (e *InconsistentQueriesError) Error() string {
	return fmt.Sprintf(
		"queryspec: inconsistent queries - query message schema has %v, but response map declares %v",
		e.QueryMsg, e.Responses,
	)
}
