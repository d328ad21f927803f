// Package scenario loads the YAML demo scripts the scriv CLI replays.
//
// A scenario names an initial buffer state and an ordered list of steps:
//
//	name: greeting
//	initial: ""
//	steps:
//	  - insert: {text: "Hello", pos: 0}
//	  - append: {text: " World"}
//	  - replace: {pos: 0, length: 5, text: "Greetings"}
//	  - undo: true
//	  - batch:
//	      - append: {text: "a"}
//	      - append: {text: "b"}
//	  - macro:
//	      name: finishing touches
//	      steps:
//	        - append: {text: "!"}
//	  - history: true
//
// Each step must name exactly one operation. Batch and macro group edit
// steps only; a batch is plain sequential execution while a macro
// becomes a single compound command that undoes as one unit.
package scenario
