// Package cli wires the interactive terminal surface: the quiz and
// flashcard loops plus word and user management commands.
package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/d-chambers/prolix/internal/config"
	"github.com/d-chambers/prolix/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type CLI struct {
	cfg *config.Config
	svc *service.Service
	log *zap.Logger

	in  io.Reader
	out io.Writer
}

func New(cfg *config.Config, svc *service.Service, log *zap.Logger) *CLI {
	return &CLI{
		cfg: cfg,
		svc: svc,
		log: log,
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// Root assembles the command tree.
func (c *CLI) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "prolix",
		Short:         "A personal vocabulary trainer: quizzes, flashcards and per-user stats",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		c.newQuizCmd(),
		c.newCardsCmd(),
		c.newWordsCmd(),
		c.newUserCmd(),
	)
	return root
}

// readLine blocks for the next line of user input, lowercased and
// trimmed. ok is false once the input stream is closed.
func (c *CLI) readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(scanner.Text())), true
}
