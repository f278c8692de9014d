// yahtzeesolver computes the expected optimal Yahtzee score table and
// answers value/best-action queries against it.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yourusername/yahtzeesolver/internal/gamestate"
	"github.com/yourusername/yahtzeesolver/pkg/solver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "solve":
		cmdSolve(args)
	case "value":
		cmdValue(args)
	case "action":
		cmdAction(args)
	case "validate":
		cmdValidate(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`yahtzeesolver - exact Yahtzee value-function solver

Usage: yahtzeesolver <command> [options]

Commands:
  solve     Run the full backward-induction DP and print the expected score
  value     Print V[state] for one packed state
  action    Print the optimal action for a state, hand, and rerolls remaining
  validate  Run consistency invariants against a fully evaluated solver

Use "yahtzeesolver <command> -h" for command-specific help.

A state is packed as (capped_upper << 13) | open_mask; a fresh game is 8191.`)
}

func cmdSolve(args []string) {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	workers := fs.Int("workers", 0, "Worker goroutines per popcount level (0 = all cores)")
	progress := fs.Bool("progress", false, "Log progress per popcount level")
	fs.Parse(args)

	s, err := solver.BuildSolver(solver.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := solver.DefaultDriverOptions()
	if *workers > 0 {
		opts.Workers = *workers
	}
	opts.LogProgress = *progress

	start := time.Now()
	if err := s.RunWith(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error solving: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Expected score (optimal play): %.4f\n", s.ExpectedScore())
	fmt.Printf("Solved in %s\n", time.Since(start))
}

func cmdValue(args []string) {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	stateFlag := fs.Uint("state", uint(gamestate.Fresh), "Packed state")
	fs.Parse(args)

	s, err := solver.BuildSolver(solver.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	v, err := s.Value(uint32(*stateFlag))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("V[%d] = %.4f\n", *stateFlag, v)
}

func cmdAction(args []string) {
	fs := flag.NewFlagSet("action", flag.ExitOnError)
	stateFlag := fs.Uint("state", uint(gamestate.Fresh), "Packed state")
	handFlag := fs.String("hand", "", "Five pips, e.g. '1,2,3,4,5'")
	rerolls := fs.Int("rerolls", 0, "Rerolls remaining (0, 1, or 2)")
	fs.Parse(args)

	hand, err := parseHand(*handFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	s, err := solver.BuildSolver(solver.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	action, err := s.BestAction(uint32(*stateFlag), hand, *rerolls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if action.IsHold {
		fmt.Printf("Hold mask: %05b (value %.4f)\n", action.HoldMask, action.Value)
	} else {
		fmt.Printf("Category: %d (value %.4f)\n", action.Category, action.Value)
	}
}

func cmdValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	fs.Parse(args)

	s, err := solver.BuildSolver(solver.Options{BuildRollTable: true, BuildTensors: true, Evaluate: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := s.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("All invariants hold.")
}

func parseHand(s string) ([5]int8, error) {
	var hand [5]int8
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return hand, fmt.Errorf("hand must have exactly 5 comma-separated pips, got %q", s)
	}
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 1 || v > 6 {
			return hand, fmt.Errorf("pip values must be 1-6, got %q", p)
		}
		hand[i] = int8(v)
	}
	return hand, nil
}
