package ads

import (
	"fmt"
	"strings"
)

// QuerySpec describes a single GAQL query, either as a raw query string or
// as structured parameters. When Query is set it takes precedence and the
// structured fields are ignored.
type QuerySpec struct {
	// Query is a complete GAQL query, passed through verbatim. The caller
	// is responsible for valid syntax.
	Query string

	// Fields are the attributes to select, in the order they should appear.
	Fields []string

	// Resource is the FROM resource, e.g. "campaign".
	Resource string

	// Conditions are WHERE predicates, combined with AND.
	Conditions []string

	// Orderings are ORDER BY expressions, e.g. "metrics.clicks DESC".
	Orderings []string

	// Limit caps the number of rows. Zero means no LIMIT clause.
	Limit int
}

// IsRaw reports whether the spec carries a raw query.
func (s QuerySpec) IsRaw() bool {
	return s.Query != ""
}

// HasStructuredParams reports whether any structured parameter is set.
// Used to surface the ambiguity of a request that supplies both a raw
// query and structured parameters.
func (s QuerySpec) HasStructuredParams() bool {
	return len(s.Fields) > 0 || s.Resource != "" ||
		len(s.Conditions) > 0 || len(s.Orderings) > 0 || s.Limit != 0
}

// Build assembles the GAQL query string. A raw query is returned verbatim.
// The structured form requires non-empty Fields and Resource; WHERE,
// ORDER BY and LIMIT clauses are appended only when their inputs are
// present. Field and resource names are not validated against the Ads
// schema; invalid names surface as API errors at execution time.
func (s QuerySpec) Build() (string, error) {
	if s.IsRaw() {
		return s.Query, nil
	}

	if len(s.Fields) == 0 {
		return "", fmt.Errorf("%w: fields are required", ErrInvalidQuerySpec)
	}
	if s.Resource == "" {
		return "", fmt.Errorf("%w: resource is required", ErrInvalidQuerySpec)
	}
	if s.Limit < 0 {
		return "", fmt.Errorf("%w: limit must be a positive integer, got %d", ErrInvalidQuerySpec, s.Limit)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Fields, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.Resource)

	if len(s.Conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(s.Conditions, " AND "))
	}
	if len(s.Orderings) > 0 {
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(s.Orderings, ", "))
	}
	if s.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", s.Limit)
	}

	return b.String(), nil
}
