package viewstate_test

import (
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"witnessconsole/internal/viewstate"
)

var _ = Describe("Gallery", func() {
	Describe("DecodeGallery", func() {
		It("should use defaults for an empty URL", func() {
			g := viewstate.DecodeGallery(url.Values{})

			Expect(g.Page).To(Equal(1))
			Expect(g.Limit).To(Equal(24))
			Expect(g.Technologies).To(BeEmpty())
			Expect(g.Status).To(BeEmpty())
			Expect(g.Perception).To(BeFalse())
			Expect(g.Failed).To(BeTrue())
		})

		It("should read every key", func() {
			v, _ := url.ParseQuery("page=3&limit=48&technologies=nginx,PHP&status=200,404&perception=true&failed=false")
			g := viewstate.DecodeGallery(v)

			Expect(g.Page).To(Equal(3))
			Expect(g.Limit).To(Equal(48))
			Expect(g.Technologies).To(Equal([]string{"nginx", "PHP"}))
			Expect(g.Status).To(Equal([]int{200, 404}))
			Expect(g.Perception).To(BeTrue())
			Expect(g.Failed).To(BeFalse())
		})

		It("should fall back on malformed values", func() {
			v, _ := url.ParseQuery("page=-2&limit=25&status=abc,301&technologies=,a,,a")
			g := viewstate.DecodeGallery(v)

			Expect(g.Page).To(Equal(1))
			Expect(g.Limit).To(Equal(24))
			Expect(g.Status).To(Equal([]int{301}))
			Expect(g.Technologies).To(Equal([]string{"a"}))
		})

		It("should only hide failed results on an explicit false", func() {
			for _, raw := range []string{"true", "0", "no", "FALSE"} {
				g := viewstate.DecodeGallery(url.Values{"failed": {raw}})
				Expect(g.Failed).To(BeTrue(), raw)
			}
		})
	})

	Describe("Encode", func() {
		It("should round trip through URL values", func() {
			g := viewstate.Gallery{
				Page:         2,
				Limit:        96,
				Technologies: []string{"React", "nginx"},
				Status:       []int{500},
				Perception:   true,
				Failed:       false,
			}
			v := g.Encode(url.Values{})

			Expect(viewstate.DecodeGallery(v)).To(Equal(g))
		})

		It("should leave foreign keys alone and drop defaults", func() {
			v := url.Values{"tab": {"grid"}, "page": {"4"}}
			out := viewstate.DefaultGallery().Encode(v)

			Expect(out.Get("tab")).To(Equal("grid"))
			Expect(out.Has("page")).To(BeFalse())
			Expect(out.Has("limit")).To(BeFalse())
			Expect(v.Get("page")).To(Equal("4"), "input must not be modified")
		})
	})

	Describe("state changes", func() {
		var (
			start viewstate.Gallery
			v     url.Values
		)

		BeforeEach(func() {
			v, _ = url.ParseQuery("page=5&limit=48&technologies=nginx&sort=title")
			start = viewstate.DecodeGallery(v)
		})

		It("should change only the page on SetPage", func() {
			g, out := start.SetPage(v, 6)

			Expect(g.Page).To(Equal(6))
			Expect(out.Get("page")).To(Equal("6"))
			Expect(out.Get("limit")).To(Equal("48"))
			Expect(out.Get("technologies")).To(Equal("nginx"))
			Expect(out.Get("sort")).To(Equal("title"))
		})

		It("should reset the page when a filter changes", func() {
			g, out := start.ToggleStatus(v, 404)

			Expect(g.Page).To(Equal(1))
			Expect(out.Has("page")).To(BeFalse())
			Expect(out.Get("status")).To(Equal("404"))
			Expect(out.Get("limit")).To(Equal("48"))
		})

		It("should reset the page on perception and failed toggles", func() {
			g, out := start.SetPerception(v, true)
			Expect(g.Page).To(Equal(1))
			Expect(out.Get("perception")).To(Equal("true"))

			g, out = start.SetFailed(v, false)
			Expect(g.Page).To(Equal(1))
			Expect(out.Get("failed")).To(Equal("false"))
		})

		It("should reset the page and validate the limit on SetLimit", func() {
			g, out := start.SetLimit(v, 12)
			Expect(g.Limit).To(Equal(12))
			Expect(g.Page).To(Equal(1))
			Expect(out.Get("limit")).To(Equal("12"))

			g, out = start.SetLimit(v, 13)
			Expect(g.Limit).To(Equal(24))
			Expect(out.Has("limit")).To(BeFalse())
		})

		It("should remove a technology that is already selected", func() {
			g, out := start.ToggleTechnology(v, "nginx")

			Expect(g.Technologies).To(BeEmpty())
			Expect(out.Has("technologies")).To(BeFalse())
		})

		It("should restore the original set after toggling twice", func() {
			g, out := start.ToggleTechnology(v, "PHP")
			Expect(g.Technologies).To(Equal([]string{"nginx", "PHP"}))
			Expect(out.Get("technologies")).To(Equal("nginx,PHP"))

			g, _ = g.ToggleTechnology(out, "PHP")
			Expect(viewstate.SameTechnologies(g.Technologies, start.Technologies)).To(BeTrue())
		})

		It("should not share slices with the previous state", func() {
			g, _ := start.ToggleTechnology(v, "PHP")
			g.Technologies[0] = "changed"

			Expect(start.Technologies).To(Equal([]string{"nginx"}))
		})
	})

	Describe("SameTechnologies", func() {
		It("should ignore order", func() {
			Expect(viewstate.SameTechnologies([]string{"a", "b"}, []string{"b", "a"})).To(BeTrue())
			Expect(viewstate.SameTechnologies([]string{"a"}, []string{"a", "b"})).To(BeFalse())
		})
	})
})
