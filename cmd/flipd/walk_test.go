package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"flipd/internal/config"
)

func decodeLines(t *testing.T, out string) []walkLine {
	t.Helper()
	var lines []walkLine
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var l walkLine
		if err := json.Unmarshal(sc.Bytes(), &l); err != nil {
			t.Fatalf("decode %q: %v", sc.Text(), err)
		}
		lines = append(lines, l)
	}
	return lines
}

func TestRunWalk_FiniteSequence(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.Config{WindowSize: 3, ActiveOffset: 1}
	if err := runWalk(&buf, cfg, 10, []string{"5", "next", "prev", "0"}); err != nil {
		t.Fatalf("walk: %v", err)
	}
	lines := decodeLines(t, buf.String())
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %s", len(lines), buf.String())
	}
	first := lines[0].Plan
	if first == nil || first.Target != 5 || first.Bounds.BoundedStart != 4 || first.Bounds.BoundedEnd != 6 || len(first.Intents) != 3 {
		t.Fatalf("unexpected first plan: %+v", first)
	}
	for _, in := range first.Intents {
		if in.Kind != "enter" || in.From != -1 {
			t.Fatalf("first plan must only enter: %+v", in)
		}
	}
	next := lines[1].Plan
	if next.Target != 6 || next.Resident != 3 {
		t.Fatalf("unexpected next plan: %+v", next)
	}
	if next.Intents[0].Kind != "exit" || next.Intents[0].Logical != 4 {
		t.Fatalf("exit must come first: %+v", next.Intents)
	}
	if last := lines[3].Plan; last.Bounds.BoundedStart != 0 || last.Bounds.BoundedEnd != 1 || last.Resident != 2 {
		t.Fatalf("boundary clamp expected at 0: %+v", last)
	}
}

func TestRunWalk_EmptySequenceReportsError(t *testing.T) {
	var buf bytes.Buffer
	if err := runWalk(&buf, config.Config{WindowSize: 2}, 0, []string{"0"}); err != nil {
		t.Fatalf("walk: %v", err)
	}
	lines := decodeLines(t, buf.String())
	if len(lines) != 1 || lines[0].Error == "" {
		t.Fatalf("expected an error line, got %s", buf.String())
	}
}

func TestRunWalk_Errors(t *testing.T) {
	var buf bytes.Buffer
	if err := runWalk(&buf, config.Config{WindowSize: 2}, 3, []string{"sideways"}); err == nil {
		t.Fatalf("expected error for unknown step")
	}
	if err := runWalk(&buf, config.Config{WindowSize: 2}, -1, []string{"0"}); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if err := runWalk(&buf, config.Config{WindowSize: 2, ActiveOffset: 2}, 3, []string{"0"}); err == nil {
		t.Fatalf("expected invalid window error")
	}
}

func TestWalkCommand_FlagsOverride(t *testing.T) {
	root := buildRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"walk", "--count", "2", "--window", "3", "--offset", "1", "--loop", "0"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	lines := decodeLines(t, out.String())
	if len(lines) != 1 || lines[0].Plan == nil {
		t.Fatalf("unexpected output: %s", out.String())
	}
	// count 2 looping with 3 slots: span 6, window -1..1
	p := lines[0].Plan
	if p.Bounds.Start != -1 || p.Bounds.End != 1 || len(p.Intents) != 3 {
		t.Fatalf("unexpected looping plan: %+v", p)
	}
	if p.Intents[0].SourcePosition != 1 || p.Intents[1].SourcePosition != 0 || p.Intents[2].SourcePosition != 1 {
		t.Fatalf("short loop must repeat items: %+v", p.Intents)
	}
}
