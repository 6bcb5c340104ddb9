package export

// Table is ordered tabular content ready for rendering. Rows must have
// one cell per column.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}
