package trappist_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/resonancex/internal/integrators"
	"github.com/san-kum/resonancex/internal/trappist"
	"github.com/san-kum/resonancex/internal/units"
)

var _ = Describe("Simulate", Ordered, func() {
	var (
		sol     *trappist.Solution
		masses  []float64
		periods []float64
	)

	BeforeAll(func() {
		sol, masses, periods = trappist.Simulate()
	})

	It("returns seven aligned masses and periods", func() {
		Expect(masses).To(HaveLen(7))
		Expect(periods).To(HaveLen(7))
		Expect(sol.Labels()).To(Equal([]string{"b", "c", "d", "e", "f", "g", "h"}))

		Expect(periods[0]).To(Equal(1.510826))
		Expect(periods[6]).To(Equal(18.772866))
		Expect(masses[0]).To(BeNumerically("~", 1.374*units.EarthMass, 1e-15))
		for i := 1; i < len(periods); i++ {
			Expect(periods[i]).To(BeNumerically(">", periods[i-1]))
		}
	})

	It("covers the full duration", func() {
		Expect(sol.Span()).To(Equal(trappist.Duration))
		Expect(sol.Steps()).To(BeNumerically(">", 66))

		for _, t := range []float64{0, 0.5, 33.3, 99.99, trappist.Duration} {
			pos, err := sol.Positions(t)
			Expect(err).NotTo(HaveOccurred(), "t=%g", t)
			Expect(pos).To(HaveLen(7))
			for _, p := range pos {
				Expect(math.IsNaN(p.X) || math.IsInf(p.X, 0)).To(BeFalse())
				Expect(math.IsNaN(p.Y) || math.IsInf(p.Y, 0)).To(BeFalse())
			}
		}
	})

	It("rejects times outside the interval", func() {
		_, err := sol.Positions(-0.1)
		Expect(errors.Is(err, integrators.ErrOutOfRange)).To(BeTrue())
		_, err = sol.Velocities(trappist.Duration + 1)
		Expect(errors.Is(err, integrators.ErrOutOfRange)).To(BeTrue())
		_, err = sol.State(math.NaN())
		Expect(errors.Is(err, integrators.ErrOutOfRange)).To(BeTrue())
	})

	It("keeps every planet near its Keplerian radius", func() {
		for _, t := range []float64{10, 50, 100} {
			pos, err := sol.Positions(t)
			Expect(err).NotTo(HaveOccurred())
			for i, p := range pos {
				a := units.SemiMajorAxis(periods[i], trappist.StarMass+masses[i])
				Expect(p.Norm()).To(BeNumerically("~", a, 0.02*a), "planet %d at t=%g", i, t)
			}
		}
	})

	It("returns b to its starting longitude after one period", func() {
		start, err := sol.Positions(0)
		Expect(err).NotTo(HaveOccurred())
		later, err := sol.Positions(periods[0])
		Expect(err).NotTo(HaveOccurred())

		d := math.Remainder(later[0].Angle()-start[0].Angle(), 2*math.Pi)
		Expect(math.Abs(d)).To(BeNumerically("<", 0.05))
	})

	It("conserves energy", func() {
		e0, err := sol.Energy(0)
		Expect(err).NotTo(HaveOccurred())
		e1, err := sol.Energy(trappist.Duration)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.Abs((e1 - e0) / e0)).To(BeNumerically("<", 1e-4))
	})

	It("moves planets prograde", func() {
		pos, err := sol.Positions(1)
		Expect(err).NotTo(HaveOccurred())
		vel, err := sol.Velocities(1)
		Expect(err).NotTo(HaveOccurred())
		for i := range pos {
			Expect(pos[i].X*vel[i].Y - pos[i].Y*vel[i].X).To(BeNumerically(">", 0))
		}
	})
})

var _ = Describe("Integrate", func() {
	It("rejects an empty span", func() {
		_, err := trappist.Integrate(0, trappist.Tolerance)
		Expect(err).To(HaveOccurred())
	})

	It("returns a copy of the planet table", func() {
		p := trappist.Planets()
		p[0].PeriodDays = 0
		Expect(trappist.Planets()[0].PeriodDays).To(Equal(1.510826))
	})
})
