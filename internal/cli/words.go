package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Manage the word list",
	}

	add := &cobra.Command{
		Use:   "add WORD...",
		Short: "Look up definitions for new words and store them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			added, err := c.svc.AddWords(cmd.Context(), args)
			if err != nil {
				return err
			}
			if len(added) == 0 {
				fmt.Fprintln(c.out, "nothing new to add")
				return nil
			}
			for _, word := range added {
				fmt.Fprintf(c.out, "added %s\n", word)
			}
			return nil
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Print every stored word with its definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.svc.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, entry := range entries {
				fmt.Fprintf(c.out, "%s: %s\n", entry.Word, entry.Definition)
			}
			return nil
		},
	}

	cmd.AddCommand(add, list)
	return cmd
}
