package logo_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/logo"
)

var _ = Describe("Engine", func() {
	var (
		eng *logo.Engine
		now time.Time
	)

	BeforeEach(func() {
		eng = logo.NewEngine(nil, logo.DefaultTiming())
		now = time.Unix(1700000000, 0)
	})

	It("waits without painting until started", func() {
		Expect(eng.Phase()).To(Equal(logo.Waiting{}))
		for i := 0; i < 10; i++ {
			_, ok := eng.Advance(now.Add(time.Duration(i) * time.Second))
			Expect(ok).To(BeFalse())
		}
		Expect(eng.Phase()).To(Equal(logo.Waiting{}))
	})

	It("starts exactly once", func() {
		Expect(eng.Start()).To(BeTrue())
		Expect(eng.Phase()).To(Equal(logo.Revealing{}))
		Expect(eng.Start()).To(BeFalse())
	})

	It("fills the logo after ceil(filled/24) reveal ticks", func() {
		sil := eng.Silhouette()
		steps := (sil.Filled() + 23) / 24
		eng.Start()

		var frame []string
		for i := 0; i < steps; i++ {
			Expect(eng.Phase()).To(BeAssignableToTypeOf(logo.Revealing{}))
			f, ok := eng.Advance(now)
			Expect(ok).To(BeTrue(), "reveal step %d", i)
			frame = f

			_, ok = eng.Advance(now.Add(10 * time.Millisecond))
			Expect(ok).To(BeFalse(), "throttled within the reveal interval")
			now = now.Add(25 * time.Millisecond)
		}

		Expect(eng.Phase()).To(Equal(logo.Rotating{}))
		Expect(frame).To(Equal([]string(sil.Reveal(sil.Filled()))))
	})

	It("reveals 24 more cells per tick", func() {
		sil := eng.Silhouette()
		eng.Start()
		f, ok := eng.Advance(now)
		Expect(ok).To(BeTrue())
		Expect(f).To(Equal(sil.Reveal(24)))
		Expect(eng.Phase()).To(Equal(logo.Revealing{Count: 24}))
	})

	It("rotates every 70ms once revealed", func() {
		sil := eng.Silhouette()
		eng.Start()
		for {
			_, ok := eng.Advance(now)
			Expect(ok).To(BeTrue())
			now = now.Add(25 * time.Millisecond)
			if _, rotating := eng.Phase().(logo.Rotating); rotating {
				break
			}
		}

		now = now.Add(20 * time.Millisecond) // 45ms after the last reveal
		_, ok := eng.Advance(now)
		Expect(ok).To(BeFalse())

		now = now.Add(25 * time.Millisecond)
		f, ok := eng.Advance(now)
		Expect(ok).To(BeTrue())
		Expect(f).To(Equal(sil.Rotated(1)))
		Expect(eng.Phase()).To(Equal(logo.Rotating{Tick: 1}))

		for tick := 2; tick <= 5; tick++ {
			now = now.Add(70 * time.Millisecond)
			f, ok = eng.Advance(now)
			Expect(ok).To(BeTrue())
			Expect(f).To(Equal(sil.Rotated(tick)))
		}
		Expect(eng.Phase().Name()).To(Equal("rotating"))
	})

	It("fills in default timing for zero values", func() {
		e := logo.NewEngine(nil, logo.Timing{})
		e.Start()
		_, ok := e.Advance(now)
		Expect(ok).To(BeTrue())
		Expect(e.Phase()).To(Equal(logo.Revealing{Count: 24}))
	})

	It("keeps separate state per engine", func() {
		other := logo.NewEngine(nil, logo.DefaultTiming())
		eng.Start()
		Expect(other.Phase()).To(Equal(logo.Waiting{}))
		Expect(other.Blank()).To(HaveLen(other.Silhouette().Rows))
	})
})
