package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/viant/sqlite-vector/store"
	"github.com/viant/sqlite-vector/vector"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage documents in the vector store",
	Long: `Add, search and remove documents in the table configured under store.
Embeddings are vector literals of the configured dimension.`,
}

var storeAddCmd = &cobra.Command{
	Use:   "add <embedding>",
	Short: "Add a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		embedding, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		id, _ := cmd.Flags().GetString("id")
		content, _ := cmd.Flags().GetString("content")
		meta, _ := cmd.Flags().GetString("meta")
		return withStore(cmd, func(s *store.SQLiteStore) error {
			ids, err := s.AddDocuments(cmd.Context(), []store.Document{
				{ID: id, Content: content, Metadata: meta, Embedding: embedding},
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ids[0])
			return nil
		})
	},
}

var storeSearchCmd = &cobra.Command{
	Use:   "search <embedding>",
	Short: "List the documents nearest to an embedding",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := vector.Parse(args[0])
		if err != nil {
			return err
		}
		k, _ := cmd.Flags().GetInt("k")
		return withStore(cmd, func(s *store.SQLiteStore) error {
			docs, err := s.SimilaritySearch(cmd.Context(), query, k)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDISTANCE\tCONTENT\tEMBEDDING")
			for _, d := range docs {
				fmt.Fprintf(w, "%s\t%.6f\t%s\t%s\n", d.ID, d.Distance, d.Content, d.Embedding)
			}
			return w.Flush()
		})
	},
}

var storeRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(s *store.SQLiteStore) error {
			return s.Remove(cmd.Context(), args[0])
		})
	},
}

func withStore(cmd *cobra.Command, fn func(s *store.SQLiteStore) error) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	s, err := store.New(cmd.Context(), db, store.Options{
		Table:     globalConfig.Store.Table,
		Dimension: globalConfig.Store.Dimension,
	})
	if err != nil {
		return err
	}
	return fn(s)
}

func init() {
	storeAddCmd.Flags().String("id", "", "document ID (generated when empty)")
	storeAddCmd.Flags().String("content", "", "document content")
	storeAddCmd.Flags().String("meta", "{}", "document metadata")
	storeSearchCmd.Flags().Int("k", 5, "number of documents to return")

	storeCmd.AddCommand(storeAddCmd)
	storeCmd.AddCommand(storeSearchCmd)
	storeCmd.AddCommand(storeRemoveCmd)
}
