package sim_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Storm00212/Solar-system/internal/config"
	"github.com/Storm00212/Solar-system/internal/sim"
)

func TestSimulation(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Simulation Suite")
}

// seeded returns the inner-system preset with deterministic phases.
func seeded(preset string) *config.System {
	cfg := config.GetPreset(preset)
	cfg.Seed = 4242
	return cfg
}

var _ = Describe("Simulation", func() {
	var s *sim.Simulation

	BeforeEach(func() {
		var err error
		s, err = sim.New(seeded("inner"))
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("construction", func() {
		It("builds the configured body count", func() {
			Expect(s.BodyCount()).To(Equal(5))
		})

		It("zeroes total momentum", func() {
			Expect(s.Momentum().Len()).To(BeNumerically("<", 1e-12))
		})

		It("rejects an empty body table", func() {
			cfg := seeded("inner")
			cfg.Bodies = nil
			_, err := sim.New(cfg)
			Expect(err).To(MatchError(sim.ErrInvalidConfig))
		})

		It("rejects non-positive masses", func() {
			cfg := seeded("inner")
			cfg.Bodies[2].Mass = -1
			_, err := sim.New(cfg)
			Expect(err).To(MatchError(sim.ErrInvalidConfig))
		})
	})

	Describe("Advance", func() {
		It("moves the clock by exactly the requested days", func() {
			Expect(s.Advance(5.4)).To(Succeed())
			Expect(s.ElapsedDays()).To(BeNumerically("~", 5.4, 1e-12))
		})

		It("treats a zero request as the identity", func() {
			before := s.Bodies()
			Expect(s.Advance(0)).To(Succeed())
			Expect(s.ElapsedDays()).To(BeZero())
			Expect(s.Bodies()).To(Equal(before))
		})

		It("rejects negative requests without mutating state", func() {
			before := s.Bodies()
			err := s.Advance(-1)
			Expect(err).To(MatchError(sim.ErrNegativeTimestep))
			Expect(s.Bodies()).To(Equal(before))
			Expect(s.ElapsedDays()).To(BeZero())
		})

		It("does nothing while paused", func() {
			s.SetPaused(true)
			before := s.Bodies()
			Expect(s.Advance(10)).To(Succeed())
			Expect(s.Bodies()).To(Equal(before))
			Expect(s.ElapsedDays()).To(BeZero())
		})

		It("appends one trail point per sub-step", func() {
			// 5.4 days at a 0.9-day ceiling is exactly six sub-steps.
			Expect(s.Advance(5.4)).To(Succeed())
			Expect(s.Trail(1)).To(HaveLen(6))
		})

		It("keeps trails within their capacity over long runs", func() {
			cfg := seeded("inner")
			cfg.TrailCapacity = 16
			small, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())

			for i := 0; i < 200; i++ {
				Expect(small.Advance(2.0)).To(Succeed())
			}
			for i := 0; i < small.BodyCount(); i++ {
				Expect(len(small.Trail(i))).To(BeNumerically("<=", 16))
			}
		})

		It("keeps the energy diagnostic bounded at a stable timestep", func() {
			initial := s.Energy().Total
			Expect(initial).To(BeNumerically("<", 0))

			for i := 0; i < 2000; i++ {
				Expect(s.Advance(0.9)).To(Succeed())
			}
			drift := (s.Energy().Total - initial) / initial
			if drift < 0 {
				drift = -drift
			}
			Expect(drift).To(BeNumerically("<", 0.01))
		})
	})

	Describe("Reset", func() {
		It("zeroes the clock, clears trails and rebuilds the registry", func() {
			Expect(s.Advance(42)).To(Succeed())
			Expect(s.ElapsedDays()).NotTo(BeZero())

			Expect(s.Reset(seeded("inner"))).To(Succeed())

			Expect(s.ElapsedDays()).To(BeZero())
			Expect(s.BodyCount()).To(Equal(5))
			for i := 0; i < s.BodyCount(); i++ {
				Expect(s.Trail(i)).To(BeEmpty())
			}
			Expect(s.Momentum().Len()).To(BeNumerically("<", 1e-12))
		})

		It("leaves the simulation untouched when the new config is invalid", func() {
			Expect(s.Advance(3)).To(Succeed())
			before := s.Bodies()
			elapsed := s.ElapsedDays()

			bad := seeded("inner")
			bad.Bodies[0].Mass = 0
			Expect(s.Reset(bad)).To(MatchError(sim.ErrInvalidConfig))

			Expect(s.Bodies()).To(Equal(before))
			Expect(s.ElapsedDays()).To(Equal(elapsed))
		})

		It("re-rolls orbital phases when the seed is zero", func() {
			cfg := config.GetPreset("inner")
			cfg.Seed = 0
			a, err := sim.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			first := a.Bodies()

			Expect(a.Reset(cfg)).To(Succeed())
			second := a.Bodies()

			same := true
			for i := 1; i < len(first); i++ {
				if first[i].Pos != second[i].Pos {
					same = false
				}
			}
			Expect(same).To(BeFalse(), "consecutive unseeded resets should differ in phase")
		})
	})

	Describe("ring clusters", func() {
		It("simulates ring members without granting them trails", func() {
			belt, err := sim.New(seeded("belt"))
			Expect(err).NotTo(HaveOccurred())
			Expect(belt.BodyCount()).To(Equal(302))

			Expect(belt.Advance(1)).To(Succeed())

			trailless := 0
			for i := 0; i < belt.BodyCount(); i++ {
				if belt.Trail(i) == nil {
					trailless++
				}
			}
			Expect(trailless).To(Equal(300))
		})
	})
})
