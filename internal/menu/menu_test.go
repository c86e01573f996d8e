package menu

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/quarklab/quantafold/internal/session"
)

// run feeds a scripted input to a fresh loop and returns its output.
func run(t *testing.T, script string) (*session.Session, string) {
	t.Helper()
	var out strings.Builder
	sess := session.New(&out, false)
	sess.Seed = 17
	l := New(strings.NewReader(script), &out, sess)
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("loop returned error: %v", err)
	}
	return sess, out.String()
}

func TestRun_ExitImmediately(t *testing.T) {
	_, out := run(t, "9\n")
	if !strings.Contains(out, "goodbye") {
		t.Errorf("missing exit message:\n%s", out)
	}
}

func TestRun_ExitsOnEOF(t *testing.T) {
	_, out := run(t, "")
	if !strings.Contains(out, "input closed") {
		t.Errorf("missing EOF notice:\n%s", out)
	}
}

func TestRun_CreateSimulateQuit(t *testing.T) {
	// Option 1 with defaults, option 3 with 64 shots, then exit.
	sess, out := run(t, "1\n\n\n3\n64\n9\n")

	if sess.Circuit == nil {
		t.Fatal("expected a circuit after option 1")
	}
	if sess.Circuit.NumQubits != 5 {
		t.Errorf("default qubit count = %d, want 5", sess.Circuit.NumQubits)
	}
	if len(sess.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(sess.History))
	}
	if sess.History[0].Shots != 64 {
		t.Errorf("shots = %d, want 64", sess.History[0].Shots)
	}
	if !strings.Contains(out, "simulation completed") {
		t.Errorf("missing completion notice:\n%s", out)
	}
}

func TestRun_InvalidOptionRecovers(t *testing.T) {
	sess, out := run(t, "banana\n0\n9\n")
	if !strings.Contains(out, "invalid option") {
		t.Errorf("missing invalid-option report:\n%s", out)
	}
	if sess.Circuit != nil {
		t.Error("invalid options must not create state")
	}
}

func TestRun_MalformedNumberRecovers(t *testing.T) {
	// Option 1 with a malformed qubit count, then a valid retry.
	sess, out := run(t, "1\nabc\n1\n4\n\n9\n")
	if !strings.Contains(out, "invalid number") {
		t.Errorf("missing malformed-number report:\n%s", out)
	}
	if sess.Circuit == nil || sess.Circuit.NumQubits != 4 {
		t.Errorf("expected 4-qubit circuit after retry, got %+v", sess.Circuit)
	}
}

func TestRun_OutOfRangeQubitsReported(t *testing.T) {
	sess, out := run(t, "1\n42\ny\n9\n")
	if !strings.Contains(out, "between 2 and 10") {
		t.Errorf("missing range error:\n%s", out)
	}
	if sess.Circuit != nil {
		t.Error("out-of-range creation must not install a circuit")
	}
}

func TestRun_OperatorWorkflow(t *testing.T) {
	// Build operator with defaults, then analyze it.
	sess, out := run(t, "5\n\n\n6\n9\n")
	if sess.Operator == nil {
		t.Fatal("expected operator after option 5")
	}
	if sess.Operator.NumQubits != 4 {
		t.Errorf("operator qubits = %d, want 4", sess.Operator.NumQubits)
	}
	if !strings.Contains(out, "operator analysis") {
		t.Errorf("missing analysis output:\n%s", out)
	}
}

func TestRun_ToggleAndHistory(t *testing.T) {
	sess, out := run(t, "7\n8\n9\n")
	if !sess.Graphics {
		t.Error("expected graphics toggled on")
	}
	if !strings.Contains(out, "history is empty") {
		t.Errorf("missing empty-history notice:\n%s", out)
	}
}

func TestRun_PromptInterruptDoesNotCancelNextOperation(t *testing.T) {
	// An interrupt pending from the menu prompt must redisplay the menu,
	// not cancel the operation dispatched afterwards.
	var out strings.Builder
	sess := session.New(&out, false)
	sess.Seed = 17
	l := New(strings.NewReader("1\n1\n\n\n3\n64\n9\n"), &out, sess)
	l.sigc = make(chan os.Signal, 1)
	l.sigc <- os.Interrupt

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("loop returned error: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "interrupted") {
		t.Errorf("missing interrupt notice:\n%s", got)
	}
	if strings.Contains(got, "context canceled") {
		t.Errorf("stale interrupt cancelled a later operation:\n%s", got)
	}
	if len(sess.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(sess.History))
	}
	if sess.History[0].Shots != 64 {
		t.Errorf("shots = %d, want 64", sess.History[0].Shots)
	}
}

func TestRun_YesNoRejectsUnknownAnswer(t *testing.T) {
	sess, out := run(t, "1\n\ns\n9\n")
	if !strings.Contains(out, `invalid answer "s"`) {
		t.Errorf("missing invalid-answer report:\n%s", out)
	}
	if sess.Circuit != nil {
		t.Error("rejected answer must not create a circuit")
	}
}

func TestRun_VisualizeBeforeSimulateReported(t *testing.T) {
	_, out := run(t, "4\n9\n")
	if !strings.Contains(out, "no simulation results") {
		t.Errorf("missing no-results report:\n%s", out)
	}
}
