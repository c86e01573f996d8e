// Package viz renders simulation results and circuit diagrams to the
// terminal: asciigraph histograms when graphics are enabled, ranked text
// tables otherwise.
package viz

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"

	"github.com/quarklab/quantafold/internal/backend"
	"github.com/quarklab/quantafold/internal/circuit"
)

// maxBars bounds how many outcomes the histogram draws.
const maxBars = 16

// Histogram draws the outcome distribution as a terminal plot, most
// frequent outcome first, with a legend mapping positions to bitstrings.
func Histogram(w io.Writer, res *backend.Result) error {
	if res == nil || len(res.Counts) == 0 {
		return fmt.Errorf("no counts to plot")
	}

	sorted := res.Sorted()
	if len(sorted) > maxBars {
		sorted = sorted[:maxBars]
	}

	data := make([]float64, len(sorted))
	for i, o := range sorted {
		data[i] = float64(o.Count)
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Caption("conformational state distribution (counts, ranked)"),
	)
	fmt.Fprintln(w, graph)
	fmt.Fprintln(w)

	for i, o := range sorted {
		fmt.Fprintf(w, "  %2d. %s  %s\n", i+1, Strong(o.State),
			Faint(fmt.Sprintf("%d (%.2f%%)", o.Count, res.Probability(o.State)*100)))
	}
	return nil
}

// Table prints the top-10 outcomes as a ranked text table, the fallback
// when plotting is unavailable or disabled.
func Table(w io.Writer, res *backend.Result) {
	if res == nil || len(res.Counts) == 0 {
		fmt.Fprintln(w, Warn("no results to display"))
		return
	}

	fmt.Fprintln(w, Header("simulation results (top 10)"))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATE\tCOUNT\tPROBABILITY")
	sorted := res.Sorted()
	if len(sorted) > 10 {
		sorted = sorted[:10]
	}
	for _, o := range sorted {
		fmt.Fprintf(tw, "%s\t%d\t%.2f%%\n", o.State, o.Count, res.Probability(o.State)*100)
	}
	tw.Flush()
}

// Stats prints the summary block shown after every visualization.
func Stats(w io.Writer, res *backend.Result) {
	if res == nil {
		return
	}
	fmt.Fprintln(w, Header("simulation statistics"))
	fmt.Fprintf(w, "  shots:          %d\n", res.Shots)
	fmt.Fprintf(w, "  unique states:  %d\n", len(res.Counts))
	fmt.Fprintf(w, "  elapsed:        %v\n", res.Elapsed)
	fmt.Fprintf(w, "  circuit depth:  %d\n", res.Depth)
	fmt.Fprintf(w, "  entropy:        %.4f nats\n", res.Entropy())
}

// Render shows a result according to the resolved rendering mode: a plot
// when graphics are on, falling back to the table on plot failure, and the
// table directly otherwise. The stats block is always printed.
func Render(w io.Writer, res *backend.Result, graphics bool) {
	if graphics {
		if err := Histogram(w, res); err != nil {
			fmt.Fprintln(w, Warn(fmt.Sprintf("plot failed (%v); falling back to table", err)))
			Table(w, res)
		}
	} else {
		Table(w, res)
	}
	fmt.Fprintln(w)
	Stats(w, res)
}

// Circuit prints the text diagram of a circuit with a small header.
func Circuit(w io.Writer, c *circuit.Circuit, graphics bool) error {
	if c == nil {
		return circuit.ErrEmptyCircuit
	}
	title := fmt.Sprintf("protein circuit: %d qubits, depth %d", c.NumQubits, c.Depth())
	if graphics {
		fmt.Fprintln(w, Header(title))
	} else {
		fmt.Fprintln(w, title)
	}
	fmt.Fprint(w, c.Diagram())
	return nil
}
