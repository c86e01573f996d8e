// Package menu implements the blocking interactive loop: a numbered menu
// read line by line, dispatching to session handlers until the user quits.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/quarklab/quantafold/internal/config"
	"github.com/quarklab/quantafold/internal/session"
	"github.com/quarklab/quantafold/internal/viz"
)

// Loop drives one interactive session over the given reader and writer.
type Loop struct {
	in   *bufio.Reader
	out  io.Writer
	sess *session.Session
	sigc chan os.Signal
}

// New returns a loop reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, sess *session.Session) *Loop {
	return &Loop{in: bufio.NewReader(in), out: out, sess: sess}
}

const banner = `
╔══════════════════════════════════════════════════╗
║        quantafold — protein circuit lab          ║
║   quantum toy models of conformational change    ║
╚══════════════════════════════════════════════════╝`

// Run blocks until the user selects exit or input ends. Handler errors are
// reported and the loop continues; an interrupt during an operation cancels
// that operation and returns to the menu.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, viz.Header(banner))

	if l.sigc == nil {
		l.sigc = make(chan os.Signal, 1)
	}
	signal.Notify(l.sigc, os.Interrupt)
	defer signal.Stop(l.sigc)

	for {
		l.printMenu()

		choice, err := l.readLine("select an option (1-9): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(l.out, viz.Faint("input closed, exiting"))
				return nil
			}
			return err
		}

		// An interrupt raised while blocked at the prompt is stale by the
		// time a choice arrives; discard the choice and redisplay the menu
		// rather than cancelling the next operation with it.
		select {
		case <-l.sigc:
			fmt.Fprintln(l.out, viz.Warn("interrupted"))
			continue
		default:
		}

		if choice == "9" {
			fmt.Fprintln(l.out, viz.Good("goodbye"))
			return nil
		}

		opCtx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		interrupted := make(chan struct{})
		go func() {
			select {
			case <-l.sigc:
				cancel()
				close(interrupted)
			case <-done:
			}
		}()

		opErr := l.dispatch(opCtx, choice)
		close(done)
		cancel()

		// Only this goroutine writes to l.out; the watcher just cancels.
		select {
		case <-interrupted:
			fmt.Fprintln(l.out, viz.Warn("\ninterrupted, returning to menu"))
			if errors.Is(opErr, context.Canceled) {
				continue
			}
		default:
		}
		if opErr != nil {
			fmt.Fprintln(l.out, viz.Warn(fmt.Sprintf("error: %v", opErr)))
		}
	}
}

func (l *Loop) printMenu() {
	g := "off"
	if l.sess.Graphics {
		g = "on"
	}
	fmt.Fprintln(l.out)
	fmt.Fprintln(l.out, viz.Header("main menu"))
	fmt.Fprintln(l.out, viz.Faint("  circuit simulation"))
	fmt.Fprintln(l.out, "  1. create/recreate quantum circuit")
	fmt.Fprintln(l.out, "  2. visualize current circuit")
	fmt.Fprintln(l.out, "  3. simulate protein dynamics")
	fmt.Fprintln(l.out, "  4. visualize simulation results")
	fmt.Fprintln(l.out, viz.Faint("  hamiltonian analysis"))
	fmt.Fprintln(l.out, "  5. create hamiltonian operator (from tensor)")
	fmt.Fprintln(l.out, "  6. analyze current operator")
	fmt.Fprintln(l.out, viz.Faint("  utilities"))
	fmt.Fprintf(l.out, "  7. toggle graphics (currently %s)\n", g)
	fmt.Fprintln(l.out, "  8. view simulation history")
	fmt.Fprintln(l.out, "  9. exit")
}

func (l *Loop) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		qubits, err := l.promptInt("number of qubits (2-10)", config.DefaultQubits)
		if err != nil {
			return err
		}
		complexGates, err := l.promptYesNo("apply complex interactions?", true)
		if err != nil {
			return err
		}
		return l.sess.CreateCircuit(qubits, complexGates)

	case "2":
		return l.sess.VisualizeCircuit()

	case "3":
		shots, err := l.promptInt("number of shots", config.DefaultShots)
		if err != nil {
			return err
		}
		_, err = l.sess.Simulate(ctx, shots)
		return err

	case "4":
		return l.sess.VisualizeResults()

	case "5":
		size, err := l.promptInt("tensor size (n+1)", config.DefaultTensorSize)
		if err != nil {
			return err
		}
		lambda, err := l.promptFloat("lambda (coupling)", config.DefaultLambda)
		if err != nil {
			return err
		}
		return l.sess.BuildOperator(size, lambda)

	case "6":
		return l.sess.AnalyzeOperator()

	case "7":
		if l.sess.ToggleGraphics() {
			fmt.Fprintln(l.out, viz.Good("graphics enabled"))
		} else {
			fmt.Fprintln(l.out, viz.Warn("graphics disabled"))
		}
		return nil

	case "8":
		l.sess.PrintHistory()
		return nil

	default:
		return fmt.Errorf("invalid option %q: choose a number from 1 to 9", choice)
	}
}

// readLine prompts and returns the trimmed input line.
func (l *Loop) readLine(prompt string) (string, error) {
	fmt.Fprint(l.out, prompt)
	line, err := l.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptInt reads an integer, applying def on blank input.
func (l *Loop) promptInt(label string, def int) (int, error) {
	line, err := l.readLine(fmt.Sprintf("%s [%d]: ", label, def))
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return v, nil
}

// promptFloat reads a float, applying def on blank input.
func (l *Loop) promptFloat(label string, def float64) (float64, error) {
	line, err := l.readLine(fmt.Sprintf("%s [%g]: ", label, def))
	if err != nil {
		return 0, err
	}
	if line == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", line)
	}
	return v, nil
}

// promptYesNo reads a y/n answer, applying def on blank input.
func (l *Loop) promptYesNo(label string, def bool) (bool, error) {
	hint := "Y/n"
	if !def {
		hint = "y/N"
	}
	line, err := l.readLine(fmt.Sprintf("%s [%s]: ", label, hint))
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid answer %q", line)
	}
}
