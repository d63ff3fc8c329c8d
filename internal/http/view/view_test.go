package view_test

import (
	"bytes"
	"grocery/internal/core"
	"grocery/internal/http/view"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Renderer", func() {
	var (
		renderer *view.Renderer
		buf      *bytes.Buffer
		admin    *core.UserRecord
	)

	BeforeEach(func() {
		var err error
		renderer, err = view.NewRenderer()
		Expect(err).NotTo(HaveOccurred())
		buf = new(bytes.Buffer)
		admin = &core.UserRecord{ID: "admin-id", Username: "admin", Name: "admin", IsAdmin: true}
	})

	It("should show flashes on the login page", func() {
		err := renderer.Render(buf, view.Login, view.Page{
			Flashes: []string{"Error: please login first."},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("<li>Error: please login first.</li>"))
		Expect(buf.String()).To(ContainSubstring(`action="/"`))
	})

	It("should escape user supplied values", func() {
		err := renderer.Render(buf, view.UserDashboard, view.Page{
			User: &core.UserRecord{Name: "<script>alert(1)</script>"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).NotTo(ContainSubstring("<script>alert(1)</script>"))
		Expect(buf.String()).To(ContainSubstring("&lt;script&gt;"))
	})

	It("should list categories on the admin dashboard", func() {
		err := renderer.Render(buf, view.AdminDashboard, view.Page{
			User: admin,
			Data: []core.CategoryRecord{{ID: 3, Name: "Dairy"}},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring(`<a href="/category/3/show">Dairy</a>`))
	})

	It("should preselect the requested category on the product form", func() {
		err := renderer.Render(buf, view.ProductAdd, view.Page{
			User: admin,
			Data: map[string]any{
				"Selected":   uint(2),
				"Categories": []core.CategoryRecord{{ID: 1, Name: "Bakery"}, {ID: 2, Name: "Dairy"}},
				"Units":      []core.UnitRecord{{ID: 1, Name: "piece"}},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring(`<option value="2" selected>Dairy</option>`))
		Expect(buf.String()).To(ContainSubstring(`<option value="1">Bakery</option>`))
	})

	It("should render every page", func() {
		pages := map[string]any{
			view.Login:          nil,
			view.Register:       nil,
			view.UserDashboard:  []core.CategoryRecord{},
			view.UserCart:       nil,
			view.Orders:         nil,
			view.AdminDashboard: []core.CategoryRecord{},
			view.CategoryAdd:    nil,
			view.CategoryEdit:   core.CategoryRecord{ID: 1, Name: "Dairy"},
			view.CategoryShow:   core.CategoryDetails{Category: core.CategoryRecord{ID: 1, Name: "Dairy"}},
			view.ProductDelete:  core.ProductRecord{ID: 5, Name: "Milk"},
		}
		for name, data := range pages {
			buf.Reset()
			Expect(renderer.Render(buf, name, view.Page{User: admin, Data: data})).To(Succeed(), name)
		}
	})

	It("should refuse unknown pages", func() {
		Expect(renderer.Render(buf, "missing", view.Page{})).To(MatchError(`unknown page "missing"`))
	})
})
