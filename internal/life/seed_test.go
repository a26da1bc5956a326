package life_test

import (
	"github.com/san-kum/torus/internal/life"
	"github.com/san-kum/torus/internal/rng"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type constSource bool

func (c constSource) Bool() bool { return bool(c) }

var _ = Describe("CreateGrid", func() {
	DescribeTable("rejects degenerate dimensions",
		func(height, width int) {
			g, err := life.CreateGrid(height, width, rng.New(1, rng.DefaultProbability))
			Expect(err).To(MatchError(life.ErrConstruction))
			Expect(g).To(BeNil())

			var dimErr *life.DimensionError
			Expect(err).To(BeAssignableToTypeOf(dimErr))
		},
		Entry("single row", 1, 5),
		Entry("single column", 5, 1),
		Entry("zero height", 0, 5),
		Entry("negative width", 5, -3),
	)

	It("builds a grid with height*width cells", func() {
		g, err := life.CreateGrid(5, 5, rng.New(1, rng.DefaultProbability))
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Height()).To(Equal(5))
		Expect(g.Width()).To(Equal(5))
		Expect(g.Cells()).To(HaveLen(25))
	})

	It("makes a cell alive exactly when its draw is true", func() {
		g, err := life.CreateGrid(3, 4, constSource(true))
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Population()).To(Equal(12))

		g, err = life.CreateGrid(3, 4, constSource(false))
		Expect(err).NotTo(HaveOccurred())
		Expect(g.Population()).To(BeZero())
	})

	It("seeds close to the configured probability", func() {
		for seed := int64(1); seed <= 10; seed++ {
			g, err := life.CreateGrid(100, 100, rng.New(seed, rng.DefaultProbability))
			Expect(err).NotTo(HaveOccurred())

			density := float64(g.Population()) / 10000
			Expect(density).To(BeNumerically("~", rng.DefaultProbability, 0.03), "seed %d", seed)
		}
	})
})
