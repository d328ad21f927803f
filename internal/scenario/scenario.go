package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"scriv/internal/engine/history"
)

// Errors returned by scenario loading.
var (
	ErrEmptyStep     = errors.New("step specifies no operation")
	ErrAmbiguousStep = errors.New("step specifies more than one operation")
	ErrGroupedStep   = errors.New("grouped steps must be edit operations")
)

// Scenario is a demo script: an initial buffer state followed by an
// ordered list of steps to narrate and execute.
type Scenario struct {
	Name    string `yaml:"name"`
	Initial string `yaml:"initial"`
	Steps   []Step `yaml:"steps"`
}

// Step is one scripted operation. Exactly one field may be set.
type Step struct {
	Insert  *InsertStep  `yaml:"insert,omitempty"`
	Append  *AppendStep  `yaml:"append,omitempty"`
	Delete  *DeleteStep  `yaml:"delete,omitempty"`
	Replace *ReplaceStep `yaml:"replace,omitempty"`
	Undo    bool         `yaml:"undo,omitempty"`
	History bool         `yaml:"history,omitempty"`
	Batch   []Step       `yaml:"batch,omitempty"`
	Macro   *MacroStep   `yaml:"macro,omitempty"`
}

// MacroStep groups edit steps into a single compound command that
// executes and undoes as one unit.
type MacroStep struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// InsertStep inserts text at a fixed position.
type InsertStep struct {
	Text string `yaml:"text"`
	Pos  int64  `yaml:"pos"`
}

// AppendStep inserts text at the end of the buffer.
type AppendStep struct {
	Text string `yaml:"text"`
}

// DeleteStep deletes length bytes at pos.
type DeleteStep struct {
	Pos    int64 `yaml:"pos"`
	Length int64 `yaml:"length"`
}

// ReplaceStep replaces length bytes at pos with text.
type ReplaceStep struct {
	Pos    int64  `yaml:"pos"`
	Length int64  `yaml:"length"`
	Text   string `yaml:"text"`
}

// IsEdit returns true if the step builds an edit command, as opposed to
// driving the history (undo, history listing) or grouping (batch).
func (s Step) IsEdit() bool {
	return s.Insert != nil || s.Append != nil || s.Delete != nil || s.Replace != nil
}

func (s Step) setCount() int {
	n := 0
	if s.Insert != nil {
		n++
	}
	if s.Append != nil {
		n++
	}
	if s.Delete != nil {
		n++
	}
	if s.Replace != nil {
		n++
	}
	if s.Undo {
		n++
	}
	if s.History {
		n++
	}
	if len(s.Batch) > 0 {
		n++
	}
	if s.Macro != nil {
		n++
	}
	return n
}

// HasCommand returns true if the step builds a command: an edit or a
// macro. Undo, history, and batch steps drive the invoker instead.
func (s Step) HasCommand() bool {
	return s.IsEdit() || s.Macro != nil
}

// Command builds the history.Command for an edit or macro step.
// Calling Command on any other step returns nil.
func (s Step) Command() history.Command {
	switch {
	case s.Insert != nil:
		return history.NewInsertCommand(s.Insert.Text, s.Insert.Pos)
	case s.Append != nil:
		return history.NewAppendCommand(s.Append.Text)
	case s.Delete != nil:
		return history.NewDeleteCommand(s.Delete.Pos, s.Delete.Length)
	case s.Replace != nil:
		return history.NewReplaceCommand(s.Replace.Pos, s.Replace.Length, s.Replace.Text)
	case s.Macro != nil:
		cmds := make([]history.Command, len(s.Macro.Steps))
		for i, sub := range s.Macro.Steps {
			cmds[i] = sub.Command()
		}
		return history.NewCompoundCommand(s.Macro.Name, cmds...)
	}
	return nil
}

// Validate checks that every step specifies exactly one operation and
// that batches contain only edit steps.
func (sc *Scenario) Validate() error {
	for i, step := range sc.Steps {
		if err := step.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch n := s.setCount(); {
	case n == 0:
		return ErrEmptyStep
	case n > 1:
		return ErrAmbiguousStep
	}
	for j, sub := range s.Batch {
		if sub.setCount() != 1 || !sub.IsEdit() {
			return fmt.Errorf("batch step %d: %w", j+1, ErrGroupedStep)
		}
	}
	if s.Macro != nil {
		for j, sub := range s.Macro.Steps {
			if sub.setCount() != 1 || !sub.IsEdit() {
				return fmt.Errorf("macro step %d: %w", j+1, ErrGroupedStep)
			}
		}
	}
	return nil
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &sc, nil
}

// Default returns the built-in demo scenario: a short editing session
// that exercises insert, append, replace, undo past empty, a batch, a
// macro undone as one unit, and a history dump.
func Default() *Scenario {
	return &Scenario{
		Name:    "editing session",
		Initial: "",
		Steps: []Step{
			{Insert: &InsertStep{Text: "Hello", Pos: 0}},
			{Append: &AppendStep{Text: " World"}},
			{Append: &AppendStep{Text: "!"}},
			{Replace: &ReplaceStep{Pos: 0, Length: 5, Text: "Greetings"}},
			{Undo: true},
			{Undo: true},
			{Undo: true},
			{Undo: true},
			{Undo: true}, // one past empty: narrated as "nothing to undo"
			{Batch: []Step{
				{Append: &AppendStep{Text: "a"}},
				{Append: &AppendStep{Text: "b"}},
				{Append: &AppendStep{Text: "c"}},
			}},
			{Macro: &MacroStep{
				Name: "capitalize and punctuate",
				Steps: []Step{
					{Replace: &ReplaceStep{Pos: 0, Length: 1, Text: "A"}},
					{Append: &AppendStep{Text: "!"}},
				},
			}},
			{Undo: true}, // the whole macro reverts as one unit
			{History: true},
		},
	}
}
