package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/d-chambers/prolix/internal/models"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (c *CLI) newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users and their scores",
	}

	set := &cobra.Command{
		Use:   "set NAME",
		Short: "Create a user if needed and make it the current user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := c.svc.SetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "current user is now %s\n", record.Name)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := c.svc.CurrentUser(cmd.Context())
			if err != nil {
				return err
			}
			if name == "" {
				fmt.Fprintln(c.out, "no current user")
				return nil
			}
			fmt.Fprintln(c.out, name)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Remove a user and all of its stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.svc.DeleteUser(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(c.out, "deleted %s\n", args[0])
			return nil
		},
	}

	var statsName string
	stats := &cobra.Command{
		Use:   "stats",
		Short: "Print the per-word scoreboard for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			user, err := c.svc.Resolve(ctx, statsName)
			if err != nil {
				return err
			}
			if user == "" {
				return fmt.Errorf("no user given and no current user set")
			}

			board, err := c.svc.Scoreboard(ctx, user)
			if err != nil {
				return err
			}
			fmt.Fprint(c.out, formatScoreboard(user, board))
			return nil
		},
	}
	stats.Flags().StringVarP(&statsName, "name", "n", "", "name of user")

	cmd.AddCommand(set, show, del, stats)
	return cmd
}

func formatScoreboard(user string, board map[string]models.WordScore) string {
	var sb strings.Builder

	words := lo.Keys(board)
	sort.Strings(words)

	fmt.Fprintf(&sb, "scoreboard for %s\n", user)

	var right, wrong int
	for _, word := range words {
		score := board[word]
		fmt.Fprintf(&sb, "%-20s right %3d  wrong %3d\n", word, score.Right, score.Wrong)
		right += score.Right
		wrong += score.Wrong
	}
	fmt.Fprintf(&sb, "total: %d right, %d wrong\n", right, wrong)

	return sb.String()
}
