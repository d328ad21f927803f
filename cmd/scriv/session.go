package main

import (
	"github.com/spf13/cobra"

	"scriv/internal/narrate"
	"scriv/internal/session"
)

// newSessionCmd creates the session subcommand.
func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Drive the session facade over the editing subsystem",
		Long: `Session demonstrates the facade: one call per editing verb, with the
command construction, history bookkeeping, and clipboard plumbing hidden
behind the Session type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessionDemo(narrate.New(cmd.OutOrStdout(), plain))
		},
	}
}

// runSessionDemo walks a fixed editing session through the facade.
func runSessionDemo(n *narrate.Narrator) error {
	n.Header("session facade")
	s := session.New(session.WithContent("Hello World"))
	n.Buffer(s.Text())

	n.Stepf(`Type("!")`)
	if err := s.Type("!"); err != nil {
		return err
	}
	n.Buffer(s.Text())

	n.Stepf(`Rewrite(0, 5, "Greetings")`)
	if err := s.Rewrite(0, 5, "Greetings"); err != nil {
		return err
	}
	n.Buffer(s.Text())

	n.Stepf("Cut(9, 6)")
	if err := s.Cut(9, 6); err != nil {
		return err
	}
	n.Buffer(s.Text())

	n.Stepf("Paste(%d)", s.Len())
	if err := s.Paste(s.Len()); err != nil {
		return err
	}
	n.Buffer(s.Text())

	// Unwind the whole session, one more than was recorded.
	for i := 0; i < 5; i++ {
		n.Stepf("Undo()")
		undone, err := s.Undo()
		if err != nil {
			return err
		}
		if !undone {
			n.Noticef("nothing to undo")
			continue
		}
		n.Buffer(s.Text())
	}

	entries := s.History()
	n.Stepf("History(): %d commands on record", len(entries))
	for i, e := range entries {
		n.Item(i+1, e.Description)
	}

	n.Header("final state")
	n.Buffer(s.Text())
	return nil
}
