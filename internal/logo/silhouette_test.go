package logo_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/logo"
)

var _ = Describe("Silhouette", func() {
	var sil *logo.Silhouette

	BeforeEach(func() {
		sil = logo.Default()
	})

	It("matches the art dimensions", func() {
		Expect(sil.Rows).To(Equal(len(logo.Art)))
		Expect(sil.Cols).To(Equal(60))
	})

	It("counts every occupied cell", func() {
		n := 0
		for _, line := range logo.Art {
			n += strings.Count(line, "#")
		}
		Expect(sil.Filled()).To(Equal(n))
		Expect(sil.RevealOrder()).To(HaveLen(n))
	})

	It("orders the reveal nearest to the centroid first", func() {
		cr, cc := sil.Centroid()
		dist := func(c logo.Cell) float64 {
			dr := float64(c.Row) - cr
			dc := (float64(c.Col) - cc) / 2
			return dr*dr + dc*dc
		}
		order := sil.RevealOrder()
		for i := 1; i < len(order); i++ {
			Expect(dist(order[i])).To(BeNumerically(">=", dist(order[i-1])))
		}
	})

	It("mirrors the back face around the pivot", func() {
		p := sil.Pivot()
		for r := 0; r < sil.Rows; r++ {
			for c := 0; c < sil.Cols; c++ {
				src := int(math.Round(2*p - float64(c)))
				Expect(sil.Mirrored(r, c)).To(Equal(sil.Occupied(r, src)), "cell %d,%d", r, c)
			}
		}
	})

	It("returns the same value on every call", func() {
		Expect(logo.Default()).To(BeIdenticalTo(sil))
	})

	It("rejects art without occupied cells", func() {
		_, err := logo.NewSilhouette([]string{"   ", "  "})
		Expect(err).To(MatchError(logo.ErrEmptyArt))
		_, err = logo.NewSilhouette(nil)
		Expect(err).To(MatchError(logo.ErrEmptyArt))
	})

	It("pads ragged art to the widest line", func() {
		s, err := logo.NewSilhouette([]string{"#", "  ##"})
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Cols).To(Equal(4))
		Expect(s.Pivot()).To(Equal(1.5))
		Expect([]string(s.Reveal(s.Filled()))).To(Equal([]string{"#   ", "  ##"}))
	})
})
