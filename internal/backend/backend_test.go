package backend_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quarklab/quantafold/internal/backend"
	"github.com/quarklab/quantafold/internal/circuit"
)

var _ = Describe("Run", func() {
	var (
		ctx context.Context
		c   *circuit.Circuit
	)

	BeforeEach(func() {
		ctx = context.Background()
		var err error
		c, err = circuit.Protein(5, true)
		Expect(err).NotTo(HaveOccurred())
	})

	It("sums histogram counts exactly to the shot count", func() {
		res, err := backend.Run(ctx, c, backend.Config{Shots: 1024, Seed: 1})
		Expect(err).NotTo(HaveOccurred())

		total := 0
		for _, n := range res.Counts {
			total += n
		}
		Expect(total).To(Equal(1024))
		Expect(res.Shots).To(Equal(1024))
	})

	It("reports bitstrings matching the register width", func() {
		res, err := backend.Run(ctx, c, backend.Config{Shots: 256, Seed: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.NumQubits).To(Equal(5))
		for state := range res.Counts {
			Expect(state).To(HaveLen(5))
		}
	})

	It("records the transpiled depth", func() {
		res, err := backend.Run(ctx, c, backend.Config{Shots: 16, Seed: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Depth).To(BeNumerically(">=", c.Depth()))
	})

	It("reproduces histograms under a fixed seed", func() {
		a, err := backend.Run(ctx, c, backend.Config{Shots: 512, Seed: 99})
		Expect(err).NotTo(HaveOccurred())
		b, err := backend.Run(ctx, c, backend.Config{Shots: 512, Seed: 99})
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Counts).To(Equal(b.Counts))
	})

	It("leaves a simple circuit's deterministic qubits fixed", func() {
		simple, err := circuit.Protein(2, false)
		Expect(err).NotTo(HaveOccurred())

		// Qubit 0 is prepared with X and never touched again, so every
		// outcome ends in 1.
		res, err := backend.Run(ctx, simple, backend.Config{Shots: 200, Seed: 3})
		Expect(err).NotTo(HaveOccurred())
		for state := range res.Counts {
			Expect(state[len(state)-1]).To(Equal(byte('1')))
		}
	})

	It("rejects a nil circuit", func() {
		_, err := backend.Run(ctx, nil, backend.Config{Shots: 10})
		Expect(err).To(MatchError(backend.ErrNoCircuit))
	})

	It("rejects non-positive shot counts", func() {
		_, err := backend.Run(ctx, c, backend.Config{Shots: 0})
		Expect(err).To(HaveOccurred())
	})

	It("rejects registers beyond capacity", func() {
		big, err := circuit.New(backend.MaxQubits + 1)
		Expect(err).NotTo(HaveOccurred())
		big.X(0)
		_, err = backend.Run(ctx, big, backend.Config{Shots: 1})
		Expect(err).To(MatchError(backend.ErrTooLarge))
	})

	It("wraps gate-level failures instead of panicking", func() {
		bad, err := circuit.New(2)
		Expect(err).NotTo(HaveOccurred())
		bad.Gates = append(bad.Gates, circuit.Gate{Name: circuit.GateX, Qubits: []int{7}})
		_, err = backend.Run(ctx, bad, backend.Config{Shots: 8})
		Expect(err).To(HaveOccurred())
	})

	It("stops when the context is canceled", func() {
		canceled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := backend.Run(canceled, c, backend.Config{Shots: 8})
		Expect(err).To(MatchError(context.Canceled))
	})
})

var _ = Describe("Result", func() {
	res := &backend.Result{
		Counts: map[string]int{"00": 512, "11": 384, "01": 128},
		Shots:  1024,
	}

	It("sorts outcomes by frequency", func() {
		sorted := res.Sorted()
		Expect(sorted).To(HaveLen(3))
		Expect(sorted[0].State).To(Equal("00"))
		Expect(sorted[1].State).To(Equal("11"))
		Expect(sorted[2].State).To(Equal("01"))
	})

	It("computes observed probabilities", func() {
		Expect(res.Probability("00")).To(BeNumerically("~", 0.5, 1e-12))
		Expect(res.Probability("10")).To(BeZero())
	})

	It("computes outcome entropy", func() {
		// Uniform two-outcome distribution has entropy ln 2.
		uniform := &backend.Result{Counts: map[string]int{"0": 500, "1": 500}, Shots: 1000}
		Expect(uniform.Entropy()).To(BeNumerically("~", math.Ln2, 1e-9))

		point := &backend.Result{Counts: map[string]int{"0": 100}, Shots: 100}
		Expect(point.Entropy()).To(BeNumerically("~", 0, 1e-12))
	})
})
