package cli

import (
	"bufio"
	"fmt"

	"github.com/d-chambers/prolix/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *CLI) newQuizCmd() *cobra.Command {
	var (
		name      string
		questions int
		choices   int
		direction string
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run a multiple-choice quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := models.ParseDirection(direction)
			if err != nil {
				return err
			}
			return c.runQuiz(cmd, name, questions, choices, dir)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "name of user")
	cmd.Flags().IntVarP(&questions, "questions", "q", c.cfg.Quiz.QuestionCount, "number of questions in the quiz")
	cmd.Flags().IntVarP(&choices, "choices", "c", c.cfg.Quiz.ChoiceCount, "number of choices per question")
	cmd.Flags().StringVarP(&direction, "direction", "d", "word", "quiz on \"word\" or \"definition\"")

	return cmd
}

func (c *CLI) runQuiz(cmd *cobra.Command, name string, questions, choices int, dir models.Direction) error {
	ctx := cmd.Context()

	user, err := c.svc.Resolve(ctx, name)
	if err != nil {
		return err
	}
	if user == "" {
		fmt.Fprintln(c.out, "no user set, results will not be recorded")
	}

	session, err := c.svc.StartQuizSession(ctx, questions, user, choices, dir)
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, "answer with a letter or number; f flips mode on the next question; q quits")

	scanner := bufio.NewScanner(c.in)
	reveal := -1
	for !session.Done() {
		quiz := session.Current()

		fmt.Fprintf(c.out, "\n%s\n", quiz.Prompt())
		for i, choice := range quiz.Choices {
			marker := " "
			if i == reveal {
				marker = "*"
			}
			fmt.Fprintf(c.out, " %s%s) %s\n", marker, models.ChoiceLabel(i), choice)
		}
		fmt.Fprint(c.out, "> ")

		input, ok := c.readLine(scanner)
		if !ok {
			return scanner.Err()
		}

		switch input {
		case "":
			continue
		case "q":
			fmt.Fprintln(c.out, "bye")
			return nil
		case "f":
			session.ToggleDirection()
			fmt.Fprintln(c.out, "mode flips starting with the next question")
			continue
		}

		res, err := session.Submit(ctx, input)
		if err != nil {
			c.log.Warn("quiz submission failed", zap.Error(err))
			return err
		}
		if res.Correct {
			fmt.Fprintln(c.out, "correct!")
			reveal = -1
		} else {
			fmt.Fprintln(c.out, "wrong, the right answer is marked")
			reveal = res.CorrectIndex
		}
	}

	fmt.Fprintf(c.out, "\nquiz finished, %d questions answered\n", questions)
	return nil
}
