package orbits_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/resonancex/internal/orbits"
)

var _ = Describe("Simulate", func() {
	Context("with near-massless planets", func() {
		// Planet-planet forces are negligible, so the only source of period
		// error is the integrator.
		deviation := func(steps int) float64 {
			traj, err := orbits.Simulate(orbits.Params{
				Periods:      []float64{10, 37},
				Masses:       []float64{1e-9, 1e-9},
				DurationDays: 100,
				Steps:        steps,
			})
			Expect(err).NotTo(HaveOccurred())
			return math.Abs(traj.MeasuredPeriod(0)-10) / 10
		}

		It("converges on the nominal period as steps increase", func() {
			prev := math.Inf(1)
			for _, steps := range []int{250, 500, 1000, 2000} {
				d := deviation(steps)
				Expect(d).To(BeNumerically("<", prev), "steps=%d", steps)
				prev = d
			}
			Expect(prev).To(BeNumerically("<", 1e-3))
		})
	})

	Context("in resonant-chain mode", func() {
		var traj *orbits.Trajectory

		BeforeEach(func() {
			var err error
			traj, err = orbits.Simulate(orbits.Params{
				Periods:       []float64{10, 15.1},
				Masses:        []float64{1e-6, 1e-6},
				DurationDays:  300,
				Steps:         3000,
				ResonantChain: true,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("locks the pair to 3:2", func() {
			Expect(traj.Chain).NotTo(BeNil())
			Expect(traj.Periods[1]).To(BeNumerically("~", 15, 1e-12))
		})

		It("sweeps angles in a 3:2 ratio", func() {
			Expect(traj.AngleRatio(0, 1)).To(BeNumerically("~", 1.5, 0.05))
		})

		It("offsets the outer planet by the dominant ratio", func() {
			start, err := traj.Frame(0)
			Expect(err).NotTo(HaveOccurred())

			phase := math.Mod(start[1].Angle()-start[0].Angle()+2*math.Pi, 2*math.Pi)
			Expect(phase).To(BeNumerically("~", 2*math.Pi*2/3, 1e-6))
		})
	})

	DescribeTable("rejects invalid input",
		func(p orbits.Params) {
			traj, err := orbits.Simulate(p)
			Expect(err).To(HaveOccurred())
			Expect(traj).To(BeNil())
		},
		Entry("no planets", orbits.Params{DurationDays: 1, Steps: 1}),
		Entry("single planet", orbits.Params{Periods: []float64{1}, Masses: []float64{1e-6}, DurationDays: 1, Steps: 1}),
		Entry("negative duration", orbits.Params{Periods: []float64{1, 2}, Masses: []float64{1e-6, 1e-6}, DurationDays: -1, Steps: 1}),
		Entry("infinite period", orbits.Params{Periods: []float64{1, math.Inf(1)}, Masses: []float64{1e-6, 1e-6}, DurationDays: 1, Steps: 1}),
	)

	It("keeps orbits finite for every integrator", func() {
		for _, name := range []string{"euler", "rk4", "verlet", "leapfrog"} {
			traj, err := orbits.Simulate(orbits.Params{
				Periods:      []float64{4, 9},
				Masses:       []float64{1e-5, 1e-5},
				DurationDays: 20,
				Steps:        400,
				Integrator:   name,
			})
			Expect(err).NotTo(HaveOccurred(), name)
			Expect(traj.Positions).To(HaveLen(400), name)
		}
	})
})
