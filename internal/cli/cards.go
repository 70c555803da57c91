package cli

import (
	"bufio"
	"fmt"

	"github.com/d-chambers/prolix/internal/models"
	"github.com/spf13/cobra"
)

func (c *CLI) newCardsCmd() *cobra.Command {
	var (
		name string
		side string
	)

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Flip through the word deck as flashcards",
		RunE: func(cmd *cobra.Command, args []string) error {
			startSide, err := models.ParseSide(side)
			if err != nil {
				return err
			}
			return c.runCards(cmd, name, startSide)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of user")
	cmd.Flags().StringVarP(&side, "side", "s", "word", "start cards on \"word\" or \"definition\"")

	return cmd
}

func (c *CLI) runCards(cmd *cobra.Command, name string, side models.Side) error {
	ctx := cmd.Context()

	user, err := c.svc.Resolve(ctx, name)
	if err != nil {
		return err
	}

	session, err := c.svc.StartCardSession(ctx, side, user)
	if err != nil {
		return err
	}
	if session.Done() {
		fmt.Fprintln(c.out, "the deck is empty, add some words first")
		return nil
	}

	fmt.Fprintln(c.out, "enter keeps the card, f flips it, d discards it for good, q quits")

	scanner := bufio.NewScanner(c.in)
	for !session.Done() {
		card := session.Card()
		fmt.Fprintf(c.out, "\n[%s, %d left] %s\n> ", card.Side, session.Remaining(), card.Displayed)

		input, ok := c.readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		switch input {
		case "q":
			fmt.Fprintln(c.out, "bye")
			return nil
		case "f":
			session.Flip()
		case "d":
			if err := session.Discard(ctx); err != nil {
				return err
			}
		default:
			if err := session.Keep(ctx); err != nil {
				return err
			}
		}
	}

	fmt.Fprintln(c.out, "\nno cards left")
	return nil
}
