package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"verse-journal/internal/quiz"
	"verse-journal/internal/repository"

	"github.com/spf13/cobra"
)

func newQuizCmd() *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Practice reciting a user's saved verses",
		Long: `Asks the saved verses one at a time. Type the verse and press enter to be graded.
Commands: :reveal shows the verse, :next skips to another verse, :quit ends the quiz.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			defer db.Close()

			ctx := cmd.Context()
			user, err := repository.NewSQLXUserRepository(db).GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("no user with email %s", email)
			}

			verses, err := repository.NewSQLXVerseRepository(db).ListVersesByUser(ctx, user.ID)
			if err != nil {
				return err
			}
			pool := make([]quiz.Verse, 0, len(verses))
			for _, v := range verses {
				pool = append(pool, v.QuizVerse())
			}
			return runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), pool, quiz.NewSession())
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Email of the user whose verses are quizzed")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

// runQuiz drives session from line-oriented input until :quit or EOF.
func runQuiz(in io.Reader, out io.Writer, pool []quiz.Verse, session *quiz.Session) error {
	q, err := session.Start(pool)
	if err != nil {
		var insufficient *quiz.InsufficientDataError
		if errors.As(err, &insufficient) {
			fmt.Fprintf(out, "Add at least %d verses to start the quiz mode!\n", insufficient.Need)
			return nil
		}
		return err
	}
	ask(out, q)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case ":quit":
			session.End()
			fmt.Fprintln(out, "Bye!")
			return nil
		case ":reveal":
			answer, err := session.Reveal()
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			fmt.Fprintf(out, "%s: %s\n", answer.Reference, answer.Text)
		case ":next":
			q, err := session.Next(pool)
			if err != nil {
				return err
			}
			ask(out, q)
		default:
			res, err := session.Submit(line)
			if err != nil {
				fmt.Fprintln(out, "Type :next for another verse or :reveal to see this one.")
				continue
			}
			fmt.Fprintf(out, "%.0f%% - %s\n", res.Score*100, res.Tier.Message())
			if res.Correction != "" {
				fmt.Fprintf(out, "%s: %s\n", res.Reference, res.Correction)
			}
		}
	}
	session.End()
	return scanner.Err()
}

func ask(out io.Writer, q quiz.Question) {
	fmt.Fprintf(out, "\nRecite %s\n> ", q.Reference)
}
