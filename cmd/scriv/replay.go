package main

import (
	"errors"

	"github.com/spf13/cobra"

	"scriv/internal/engine/buffer"
	"scriv/internal/engine/history"
	"scriv/internal/narrate"
	"scriv/internal/scenario"
)

// newReplayCmd creates the replay subcommand.
func newReplayCmd() *cobra.Command {
	var scenarioPath string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay an editing scenario through the command history",
		Long: `Replay drives the command pattern directly: every step constructs a
reversible command, hands it to the history invoker for execution, and
narrates the effect on the buffer, the undo stack, and the permanent
command log.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := scenario.Default()
			if scenarioPath != "" {
				loaded, err := scenario.Load(scenarioPath)
				if err != nil {
					return err
				}
				sc = loaded
			}
			return replay(narrate.New(cmd.OutOrStdout(), plain), sc)
		},
	}

	cmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (default: built-in demo)")
	return cmd
}

// replay executes every scenario step against a fresh buffer and
// history, narrating as it goes.
func replay(n *narrate.Narrator, sc *scenario.Scenario) error {
	title := sc.Name
	if title == "" {
		title = "scenario"
	}
	n.Header("replaying " + title)

	buf := buffer.NewFromString(sc.Initial)
	hist := history.NewHistory()
	n.Buffer(buf.Text())

	for _, step := range sc.Steps {
		switch {
		case step.HasCommand():
			c := step.Command()
			n.Stepf("execute: %s", c.Description())
			if err := hist.Execute(buf, c); err != nil {
				return err
			}
			n.Buffer(buf.Text())

		case step.Undo:
			if desc, ok := hist.PeekUndo(); ok {
				n.Stepf("undo: %s", desc)
			} else {
				n.Stepf("undo")
			}
			err := hist.Undo(buf)
			switch {
			case errors.Is(err, history.ErrNothingToUndo):
				n.Noticef("nothing to undo")
			case err != nil:
				return err
			default:
				n.Buffer(buf.Text())
			}

		case step.History:
			n.Stepf("history: %d commands executed, %d undoable",
				hist.LogCount(), hist.UndoCount())
			for i, e := range hist.Entries() {
				n.Item(i+1, e.Description)
			}

		case len(step.Batch) > 0:
			cmds := make([]history.Command, len(step.Batch))
			for i, sub := range step.Batch {
				cmds[i] = sub.Command()
			}
			n.Stepf("execute batch of %d commands", len(cmds))
			if err := hist.ExecuteBatch(buf, cmds...); err != nil {
				return err
			}
			n.Buffer(buf.Text())
		}
	}

	n.Header("final state")
	n.Buffer(buf.Text())
	n.Noticef("%d commands logged, %d still undoable", hist.LogCount(), hist.UndoCount())
	return nil
}
