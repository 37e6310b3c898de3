package logo_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/logo"
)

var _ = Describe("Projection", func() {
	var sil *logo.Silhouette

	BeforeEach(func() {
		sil = logo.Default()
	})

	Describe("Angle", func() {
		It("starts at rest", func() {
			a, eased := logo.Angle(0)
			Expect(a).To(BeZero())
			Expect(eased).To(BeZero())
		})

		It("grows linearly once spun up", func() {
			for _, tick := range []int{30, 31, 100, 5000} {
				a, eased := logo.Angle(tick)
				Expect(eased).To(Equal(1.0))
				Expect(a).To(BeNumerically("~", float64(tick)*0.03, 1e-9))
			}
		})
	})

	Describe("Reveal", func() {
		It("is blank with nothing revealed", func() {
			for _, row := range sil.Reveal(0) {
				Expect(strings.TrimSpace(row)).To(BeEmpty())
			}
		})

		It("fills exactly the occupied cells once complete", func() {
			frame := sil.Reveal(sil.Filled() + 100)
			for r, row := range frame {
				Expect(row).To(HaveLen(sil.Cols))
				for c := 0; c < sil.Cols; c++ {
					if sil.Occupied(r, c) {
						Expect(row[c]).To(Equal(byte('#')))
					} else {
						Expect(row[c]).To(Equal(byte(' ')))
					}
				}
			}
		})
	})

	Describe("Rotated", func() {
		It("draws a single pivot column when edge-on", func() {
			pc := int(math.Round(sil.Pivot()))
			seen := 0
			for tick := 30; tick < 2000; tick++ {
				if !logo.EdgeOn(tick) {
					continue
				}
				seen++
				frame := sil.Rotated(tick)
				for r, row := range frame {
					for c := 0; c < len(row); c++ {
						if c == pc && sil.RowOccupied(r) {
							Expect(row[c]).To(Equal(byte('.')), "tick %d row %d", tick, r)
						} else {
							Expect(row[c]).To(Equal(byte(' ')), "tick %d row %d col %d", tick, r, c)
						}
					}
				}
			}
			Expect(seen).To(BeNumerically(">", 0))
		})

		It("keeps content inside the foreshortened span", func() {
			p := sil.Pivot()
			half := 0.0
			for r := 0; r < sil.Rows; r++ {
				for c := 0; c < sil.Cols; c++ {
					if sil.Occupied(r, c) || sil.Mirrored(r, c) {
						half = math.Max(half, math.Abs(float64(c)-p))
					}
				}
			}
			for tick := 1; tick < 400; tick += 3 {
				if logo.EdgeOn(tick) {
					continue
				}
				a, _ := logo.Angle(tick)
				limit := half*math.Abs(math.Cos(a)) + 2
				for _, row := range sil.Rotated(tick) {
					for c := 0; c < len(row); c++ {
						if row[c] != ' ' {
							Expect(math.Abs(float64(c)-p)).To(BeNumerically("<=", limit), "tick %d col %d", tick, c)
						}
					}
				}
			}
		})

		It("uses only depth, edge and shimmer glyphs", func() {
			allowed := logo.DepthRamp + logo.ShimmerGlyphs + ". "
			for tick := 1; tick < 300; tick += 5 {
				frame := sil.Rotated(tick)
				Expect(frame).To(HaveLen(sil.Rows))
				for _, row := range frame {
					Expect(row).To(HaveLen(sil.Cols))
					for i := 0; i < len(row); i++ {
						Expect(strings.IndexByte(allowed, row[i])).To(BeNumerically(">=", 0))
					}
				}
			}
		})

		It("draws something whenever it is not edge-on", func() {
			for tick := 1; tick < 300; tick += 7 {
				if logo.EdgeOn(tick) {
					continue
				}
				Expect(strings.TrimSpace(strings.Join(sil.Rotated(tick), ""))).NotTo(BeEmpty(), "tick %d", tick)
			}
		})

		Context("with a small asymmetric silhouette", func() {
			// Row 0 spans columns 0-9, row 1 only 0-1, so the pivot is 4.5 and the
			// back face of row 1 occupies columns 8-9.
			var small *logo.Silhouette

			BeforeEach(func() {
				var err error
				small, err = logo.NewSilhouette([]string{"##########", "##"})
				Expect(err).NotTo(HaveOccurred())
				Expect(small.Pivot()).To(Equal(4.5))
			})

			depthGlyph := func(exact, sin float64) byte {
				nd := math.Max(-1, math.Min(1, (exact-4.5)*sin/20))
				return logo.DepthRamp[int(math.Floor((nd+1)/2*float64(len(logo.DepthRamp)-1)))]
			}

			It("shows the back face once cos turns negative", func() {
				// tick 105: angle 3.15, cos -0.99996
				a, _ := logo.Angle(105)
				Expect(math.Cos(a)).To(BeNumerically("<", 0))

				row := small.Rotated(105)[1]
				Expect(small.Occupied(1, 8)).To(BeFalse())
				Expect(small.Mirrored(1, 8)).To(BeTrue())
				Expect(row[8]).To(Equal(byte('*')))
				Expect(row[7]).To(Equal(byte('.')))
				Expect(row[0]).To(Equal(byte(' ')))
				Expect(row[1]).To(Equal(byte(' ')))
			})

			It("shows the front face while cos is positive", func() {
				row := small.Rotated(40)[1]
				Expect(row[3]).To(Equal(byte('*')))
				Expect(strings.TrimSpace(row)).To(Equal("*"))
			})

			It("shades interior cells by signed depth", func() {
				// tick 40: angle 1.2, cos 0.3624, sin 0.9320
				a, _ := logo.Angle(40)
				cos, sin := math.Cos(a), math.Sin(a)
				row := small.Rotated(40)[0]

				Expect(row).To(Equal("   **++   "))
				for _, x := range []int{3, 4, 5, 6} {
					exact := 4.5 + (float64(x)-4.5)/cos
					Expect(row[x]).To(Equal(depthGlyph(exact, sin)), "col %d", x)
				}
				// far side first in the ramp, near side later
				Expect(row[3]).To(Equal(logo.DepthRamp[3]))
				Expect(row[6]).To(Equal(logo.DepthRamp[4]))
			})

			It("flips shading with the sign of sin", func() {
				// tick 105: sin is negative, so the left half reads nearer
				row := small.Rotated(105)[0]
				Expect(row).To(Equal(" ++++**** "))
			})

			It("overlays shimmer glyphs while spinning up", func() {
				// tick 3: cell (0,8) samples source column 8 and its pulse exceeds 0.5
				row := small.Rotated(3)[0]
				Expect(row[8]).To(Equal(logo.ShimmerGlyphs[(3*7+0*13+8*31)%len(logo.ShimmerGlyphs)]))
				Expect(row[8]).To(Equal(byte('^')))
				Expect(row[1]).To(Equal(byte('*')))
			})

			It("stops shimmering once spun up", func() {
				for tick := 30; tick < 400; tick++ {
					if logo.EdgeOn(tick) {
						continue
					}
					for _, row := range small.Rotated(tick) {
						for i := 0; i < len(row); i++ {
							Expect(strings.IndexByte(logo.DepthRamp+" ", row[i])).To(BeNumerically(">=", 0), "tick %d", tick)
						}
					}
				}
			})
		})

		It("is a pure function of tick", func() {
			for _, tick := range []int{1, 29, 52, 105, 777} {
				Expect(sil.Rotated(tick)).To(Equal(sil.Rotated(tick)))
			}
		})
	})
})
