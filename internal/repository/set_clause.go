package repository

import (
	"fmt"
	"strings"
)

// setClause accumulates "col = $n" pairs for partial UPDATE statements
type setClause struct {
	cols []string
	args []any
}

func (s *setClause) add(col string, val any) {
	s.args = append(s.args, val)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

func (s *setClause) empty() bool {
	return len(s.cols) == 0
}

// build renders the SET list with updated_at bumped, and returns the
// placeholder index the caller should use for the next argument.
func (s *setClause) build() (string, int) {
	return strings.Join(append(s.cols, "updated_at = NOW()"), ", "), len(s.args) + 1
}
