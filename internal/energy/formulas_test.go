package energy_test

import (
	"errors"
	"math"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/energycalc/internal/energy"
)

func expectInvalid(err error, q energy.Quantity) {
	GinkgoHelper()
	Expect(err).To(MatchError(energy.ErrInvalidArgument))
	var argErr *energy.ArgumentError
	Expect(errors.As(err, &argErr)).To(BeTrue())
	Expect(argErr.Quantity).To(Equal(q))
}

var _ = Describe("Kinetic", func() {
	It("computes half m v squared", func() {
		ke, err := energy.Kinetic(2, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(ke).To(BeNumerically("~", 9.0, 1e-9))
	})

	It("is zero when velocity is zero", func() {
		ke, err := energy.Kinetic(5, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(ke).To(BeZero())
	})

	It("is zero when mass is zero", func() {
		ke, err := energy.Kinetic(0, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(ke).To(BeZero())
	})

	DescribeTable("matches the closed form",
		func(m, v float64) {
			ke, err := energy.Kinetic(m, v)
			Expect(err).NotTo(HaveOccurred())
			Expect(ke).To(Equal(0.5 * m * (v * v)))
		},
		Entry("unit", 1.0, 1.0),
		Entry("car", 1500.0, 25.0),
		Entry("fractional", 0.125, 3.3),
		Entry("large", 1e6, 300.0),
	)

	It("rejects negative mass", func() {
		ke, err := energy.Kinetic(-1, 5)
		expectInvalid(err, energy.Mass)
		Expect(err.Error()).To(Equal("Mass cannot be negative"))
		Expect(ke).To(BeZero())
	})

	It("rejects negative velocity", func() {
		_, err := energy.Kinetic(5, -10)
		expectInvalid(err, energy.Velocity)
		Expect(err.Error()).To(Equal("Velocity cannot be negative"))
	})

	It("reports mass before velocity", func() {
		_, err := energy.Kinetic(-1, -1)
		expectInvalid(err, energy.Mass)
	})
})

var _ = Describe("Potential", func() {
	It("uses standard gravity by default", func() {
		pe, err := energy.StandardPotential(10, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(pe).To(BeNumerically("~", 196.2, 1e-9))
	})

	It("accepts a custom gravity", func() {
		pe, err := energy.Potential(1, 10, 1.62)
		Expect(err).NotTo(HaveOccurred())
		Expect(pe).To(BeNumerically("~", 16.2, 1e-9))
	})

	It("is zero at ground level", func() {
		pe, err := energy.StandardPotential(5, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(pe).To(BeZero())
	})

	It("is zero for a massless body", func() {
		pe, err := energy.StandardPotential(0, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(pe).To(BeZero())
	})

	It("matches m g h exactly", func() {
		m, h, g := 3.7, 12.5, 3.71
		pe, err := energy.Potential(m, h, g)
		Expect(err).NotTo(HaveOccurred())
		Expect(pe).To(Equal(m * g * h))
	})

	DescribeTable("validates in the order mass, height, gravity",
		func(m, h, g float64, want energy.Quantity, msg string) {
			pe, err := energy.Potential(m, h, g)
			expectInvalid(err, want)
			Expect(err.Error()).To(Equal(msg))
			Expect(pe).To(BeZero())
		},
		Entry("negative mass", -1.0, 5.0, 9.81, energy.Mass, "Mass cannot be negative"),
		Entry("negative height", 5.0, -10.0, 9.81, energy.Height, "Height cannot be negative"),
		Entry("negative gravity", 5.0, 10.0, -9.81, energy.Gravity, "Gravitational acceleration cannot be negative"),
		Entry("mass and height negative", -1.0, -1.0, 9.81, energy.Mass, "Mass cannot be negative"),
		Entry("height and gravity negative", 1.0, -1.0, -1.0, energy.Height, "Height cannot be negative"),
	)
})

var _ = Describe("Total", func() {
	It("sums both terms", func() {
		total, err := energy.StandardTotal(2, 3, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically("~", 28.62, 1e-9))
	})

	It("is pure potential energy at rest", func() {
		total, err := energy.StandardTotal(5, 0, 3)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically("~", 5*9.81*3, 1e-9))
	})

	It("is pure kinetic energy at ground level", func() {
		total, err := energy.StandardTotal(4, 2, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(total).To(BeNumerically("~", 8.0, 1e-9))
	})

	DescribeTable("equals Kinetic plus Potential",
		func(m, v, h, g float64) {
			ke, err := energy.Kinetic(m, v)
			Expect(err).NotTo(HaveOccurred())
			pe, err := energy.Potential(m, h, g)
			Expect(err).NotTo(HaveOccurred())
			total, err := energy.Total(m, v, h, g)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(ke + pe))
		},
		Entry("earth", 2.0, 8.0, 10.0, 9.81),
		Entry("moon", 10.0, 1.5, 50.0, 1.62),
		Entry("mars", 0.3, 12.0, 7.0, 3.71),
		Entry("zero gravity", 3.0, 4.0, 100.0, 0.0),
	)

	It("fails through the kinetic path first", func() {
		_, err := energy.StandardTotal(2, -3, 1)
		expectInvalid(err, energy.Velocity)

		_, err = energy.Total(2, -3, -1, -9.81)
		expectInvalid(err, energy.Velocity)
	})

	It("fails through the potential path when kinetic is valid", func() {
		_, err := energy.StandardTotal(2, 3, -1)
		expectInvalid(err, energy.Height)

		_, err = energy.Total(2, 3, 1, -1)
		expectInvalid(err, energy.Gravity)
	})
})

var _ = Describe("Mechanical", func() {
	It("keeps both terms and their sum", func() {
		b, err := energy.Mechanical(2, 8, 10, energy.StandardGravity)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Kinetic).To(BeNumerically("~", 64, 1e-9))
		Expect(b.Potential).To(BeNumerically("~", 196.2, 1e-9))
		Expect(b.Total).To(Equal(b.Kinetic + b.Potential))
	})

	It("agrees with Total", func() {
		b, err := energy.Mechanical(1500, 25, 100, energy.StandardGravity)
		Expect(err).NotTo(HaveOccurred())
		total, err := energy.StandardTotal(1500, 25, 100)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Total).To(Equal(total))
	})

	It("returns an empty breakdown on error", func() {
		b, err := energy.Mechanical(-2, 8, 10, energy.StandardGravity)
		expectInvalid(err, energy.Mass)
		Expect(b).To(Equal(energy.Breakdown{}))
	})
})

var _ = Describe("Energy conservation", func() {
	It("converts all potential energy into kinetic energy at impact", func() {
		const mass, height = 1.0, 10.0

		initialPE, err := energy.StandardPotential(mass, height)
		Expect(err).NotTo(HaveOccurred())
		initialKE, err := energy.Kinetic(mass, 0)
		Expect(err).NotTo(HaveOccurred())

		v, err := energy.ImpactSpeed(height, energy.StandardGravity)
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(BeNumerically("~", 14.0071, 1e-4))
		Expect(v).To(BeNumerically("~", math.Sqrt(196.2), 1e-12))

		finalKE, err := energy.Kinetic(mass, v)
		Expect(err).NotTo(HaveOccurred())

		Expect(initialPE + initialKE).To(BeNumerically("~", 98.1, 1e-9))
		Expect(finalKE).To(BeNumerically("~", initialPE+initialKE, 1e-9))
	})

	It("rejects a negative drop height or gravity", func() {
		_, err := energy.ImpactSpeed(-1, energy.StandardGravity)
		expectInvalid(err, energy.Height)
		_, err = energy.ImpactSpeed(1, -1)
		expectInvalid(err, energy.Gravity)
	})
})

var _ = Describe("Concurrent use", func() {
	It("returns identical results from many goroutines", func() {
		want, err := energy.Total(2, 3, 1, energy.StandardGravity)
		Expect(err).NotTo(HaveOccurred())

		var wg sync.WaitGroup
		results := make([]float64, 64)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], _ = energy.Total(2, 3, 1, energy.StandardGravity)
			}(i)
		}
		wg.Wait()

		for _, got := range results {
			Expect(got).To(Equal(want))
		}
	})
})
