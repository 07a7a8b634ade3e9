package viewstate_test

import (
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"witnessconsole/internal/api"
	"witnessconsole/internal/viewstate"
)

var _ = Describe("Table", func() {
	var rows []api.ListRow

	BeforeEach(func() {
		rows = []api.ListRow{
			{ID: 1, URL: "a.com", Title: "Alpha", ResponseCode: 200},
			{ID: 2, URL: "b.com", Title: "Beta", ResponseCode: 500},
		}
	})

	Describe("ApplyTable", func() {
		It("should keep only errors with the error filter", func() {
			out := viewstate.ApplyTable(rows, viewstate.TableView{Filter: viewstate.FilterError})

			Expect(out).To(HaveLen(1))
			Expect(out[0].URL).To(Equal("b.com"))
		})

		It("should search url and title case-insensitively", func() {
			for _, term := range []string{"alpha", "ALPHA", "AlPhA"} {
				out := viewstate.ApplyTable(rows, viewstate.TableView{Filter: viewstate.FilterAll, Search: term})

				Expect(out).To(HaveLen(1), term)
				Expect(out[0].URL).To(Equal("a.com"))
			}

			out := viewstate.ApplyTable(rows, viewstate.TableView{Search: "B.CO"})
			Expect(out).To(HaveLen(1))
			Expect(out[0].ID).To(Equal(uint(2)))
		})

		It("should treat failed rows as errors", func() {
			rows = append(rows, api.ListRow{ID: 3, URL: "c.com", ResponseCode: 0, Failed: true})

			Expect(viewstate.ApplyTable(rows, viewstate.TableView{Filter: viewstate.FilterError})).To(HaveLen(2))
			Expect(viewstate.ApplyTable(rows, viewstate.TableView{Filter: viewstate.FilterSuccess})).To(HaveLen(1))
		})

		It("should filter before searching before sorting", func() {
			rows = append(rows,
				api.ListRow{ID: 3, URL: "alpha.net", Title: "Zed", ResponseCode: 404},
				api.ListRow{ID: 4, URL: "alpha.org", Title: "Omega", ResponseCode: 503},
			)
			view := viewstate.TableView{
				Filter: viewstate.FilterError,
				Search: "alpha",
				Sort:   viewstate.TableSort{Column: viewstate.SortResponseCode, Direction: viewstate.Desc},
			}

			out := viewstate.ApplyTable(rows, view)
			Expect(out).To(HaveLen(2))
			Expect(out[0].ID).To(Equal(uint(4)))
			Expect(out[1].ID).To(Equal(uint(3)))
		})

		It("should sort strings ignoring case and keep input untouched", func() {
			rows = append(rows, api.ListRow{ID: 3, URL: "c.com", Title: "alpha two"})

			out := viewstate.ApplyTable(rows, viewstate.TableView{
				Sort: viewstate.TableSort{Column: viewstate.SortTitle, Direction: viewstate.Asc},
			})
			Expect([]uint{out[0].ID, out[1].ID, out[2].ID}).To(Equal([]uint{1, 3, 2}))
			Expect(rows[2].ID).To(Equal(uint(3)))
		})
	})

	Describe("TableSort", func() {
		It("should flip direction on the active column", func() {
			s := viewstate.TableSort{}.Click(viewstate.SortURL)
			Expect(s).To(Equal(viewstate.TableSort{Column: viewstate.SortURL, Direction: viewstate.Asc}))

			s = s.Click(viewstate.SortURL)
			Expect(s.Direction).To(Equal(viewstate.Desc))

			s = s.Click(viewstate.SortURL)
			Expect(s.Direction).To(Equal(viewstate.Asc))
		})

		It("should start a new column ascending", func() {
			s := viewstate.TableSort{Column: viewstate.SortURL, Direction: viewstate.Desc}.Click(viewstate.SortTitle)
			Expect(s).To(Equal(viewstate.TableSort{Column: viewstate.SortTitle, Direction: viewstate.Asc}))
		})
	})

	Describe("DecodeTable", func() {
		It("should parse filter, search and sort", func() {
			v, _ := url.ParseQuery("status=error&q=+alpha+&sort=title&dir=desc")
			view := viewstate.DecodeTable(v)

			Expect(view.Filter).To(Equal(viewstate.FilterError))
			Expect(view.Search).To(Equal("alpha"))
			Expect(view.Sort).To(Equal(viewstate.TableSort{Column: viewstate.SortTitle, Direction: viewstate.Desc}))
		})

		It("should ignore unknown values", func() {
			v, _ := url.ParseQuery("status=weird&sort=html")
			view := viewstate.DecodeTable(v)

			Expect(view.Filter).To(Equal(viewstate.FilterAll))
			Expect(view.Sort.Column).To(Equal(viewstate.SortNone))
		})
	})
})
