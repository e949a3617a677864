package commands

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-vector/engine"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the registered vector SQL functions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "SIGNATURE\tDESCRIPTION")
		for _, f := range engine.Functions() {
			fmt.Fprintf(w, "%s\t%s\n", f.Signature(), f.Doc)
		}
		return w.Flush()
	},
}

var execCmd = &cobra.Command{
	Use:   "exec <sql>",
	Short: "Run a SQL statement with the vector functions registered",
	Long: `Run a SQL statement against the configured database. Statements that
return rows are printed as a tab-separated table.

Example:
  vecsql exec "SELECT vector_cosine_distance('[1, 2, 3]', '[3, 2, 1]')"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		rows, err := db.QueryContext(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		defer rows.Close()
		return printRows(cmd.OutOrStdout(), rows)
	},
}

func printRows(out io.Writer, rows *sql.Rows) error {
	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if len(cols) > 0 {
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return err
		}
		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = formatCell(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if err := rows.Err(); err != nil {
		return err
	}
	return w.Flush()
}

func formatCell(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return fmt.Sprintf("x'%x'", t)
	default:
		return fmt.Sprint(t)
	}
}
