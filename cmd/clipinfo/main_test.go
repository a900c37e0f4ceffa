package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/actioncore/anim"
	"github.com/milk9111/actioncore/fsm"
)

func TestReport(t *testing.T) {
	clips := []anim.Clip{
		{Name: "idle", Frames: 4, FPS: 8, Loop: true},
		{Name: "attack", Tag: fsm.AttackTag, Frames: 4, FPS: 10},
	}
	var buf bytes.Buffer
	if err := report(&buf, clips, fsm.DefaultTunables(), 60); err != nil {
		t.Fatalf("report: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "12..22") || !strings.HasSuffix(strings.TrimSpace(lines[1]), "-") {
		t.Fatalf("unexpected report:\n%s", buf.String())
	}
}

func TestTicksAt(t *testing.T) {
	if got := ticksAt(0.4, 60); got != 24 {
		t.Fatalf("ticksAt(0.4) = %d", got)
	}
	if got := ticksAt(0.36, 60); got != 22 {
		t.Fatalf("ticksAt(0.36) = %d", got)
	}
}
