package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"rice-timer/domain"
)

func TestParseNow(t *testing.T) {
	ref := time.Date(2025, time.January, 15, 9, 41, 0, 0, time.UTC)

	got, err := parseNow("22:00", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := time.Date(2025, time.January, 15, 22, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("parseNow(22:00)=%v, want %v", got, want)
	}

	got, err = parseNow("2025-03-01T06:15:00Z", ref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Day() != 1 || got.Hour() != 6 {
		t.Errorf("parseNow(rfc3339)=%v", got)
	}

	if _, err := parseNow("tonight", ref); err == nil {
		t.Errorf("expected error for unparseable value")
	}
}

func TestCalcCommand(t *testing.T) {
	var out bytes.Buffer

	cmd := newCalcCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--target", "07:30",
		"--cook", "480",
		"--step", "0.5",
		"--now", "2025-01-15T22:00:00Z",
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	text := out.String()
	for _, want := range []string{"1.5 h", "timer starts at 23:30, ready at 07:30 (on time)"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestCalcCommand_InvalidStep(t *testing.T) {
	cmd := newCalcCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--target", "07:30", "--step", "0"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for zero step")
	}
}

func TestWatch_RendersUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out bytes.Buffer
	calls := 0
	calculate := func(context.Context) (domain.Calculation, error) {
		calls++
		if calls == 3 {
			cancel()
		}
		return domain.Calculation{
			Input:       domain.CalculationInput{Now: time.Date(2025, 1, 15, 22, 0, calls, 0, time.UTC)},
			Explanation: domain.Explanation{Headline: "1.5 h", Details: "on time"},
		}, nil
	}

	if err := watch(ctx, &out, time.Millisecond, calculate); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls < 3 {
		t.Fatalf("calls=%d, want at least 3", calls)
	}
	if lines := strings.Count(out.String(), "\n"); lines != calls {
		t.Errorf("rendered %d lines for %d calculations", lines, calls)
	}
	if !strings.HasPrefix(out.String(), "[22:00:01] 1.5 h") {
		t.Errorf("unexpected first line: %q", out.String())
	}
}

func TestWatch_StopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calculate := func(context.Context) (domain.Calculation, error) {
		return domain.Calculation{}, boom
	}

	err := watch(context.Background(), &bytes.Buffer{}, time.Millisecond, calculate)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v, want %v", err, boom)
	}
}

func TestAppShutdown_LogsCloseError(t *testing.T) {
	var logs bytes.Buffer
	a := &app{
		logger: zerolog.New(&logs),
		close:  func() error { return errors.New("connection reset") },
	}

	a.shutdown()

	if !strings.Contains(logs.String(), "connection reset") {
		t.Errorf("expected close error to be logged, got %q", logs.String())
	}
}
