package payload_test

import (
	"errors"
	"grocery/internal/core"
	"grocery/internal/http/payload"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	Describe("LoginRequest", func() {
		var req payload.LoginRequest

		BeforeEach(func() {
			req = payload.LoginRequest{}
		})

		It("should bind and convert a valid form", func() {
			err := dv.DecodeAndValidateForm(formRequest(url.Values{
				"username": {" alice "},
				"password": {"pw123"},
			}), &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.ToMessage()).To(Equal(core.AuthMessage{Username: "alice", Password: "pw123"}))
		})

		DescribeTable("rejects empty credentials",
			func(username, password string) {
				err := dv.DecodeAndValidateForm(formRequest(url.Values{
					"username": {username},
					"password": {password},
				}), &req)
				Expect(err).To(HaveOccurred())
				Expect(payload.Message(err)).To(Equal("username or password cannot be empty."))
			},
			Entry("empty username", "", "pw123"),
			Entry("blank username", "   ", "pw123"),
			Entry("empty password", "alice", ""),
		)
	})

	Describe("RegisterRequest", func() {
		It("should keep the display name", func() {
			var req payload.RegisterRequest
			err := dv.DecodeAndValidateForm(formRequest(url.Values{
				"username": {"alice"},
				"name":     {"Alice A."},
				"password": {"pw123"},
			}), &req)
			Expect(err).NotTo(HaveOccurred())
			Expect(req.ToMessage()).To(Equal(core.RegisterMessage{Username: "alice", Name: "Alice A.", Password: "pw123"}))
		})

		DescribeTable("validates field lengths",
			func(username, name, password, message string) {
				var req payload.RegisterRequest
				err := dv.DecodeAndValidateForm(formRequest(url.Values{
					"username": {username},
					"name":     {name},
					"password": {password},
				}), &req)
				if message == "" {
					Expect(err).NotTo(HaveOccurred())
					return
				}
				Expect(payload.Message(err)).To(Equal(message))
			},
			Entry("255 character username", strings.Repeat("u", 255), "", "pw", ""),
			Entry("256 character username", strings.Repeat("u", 256), "", "pw", "username cannot be longer than 255 characters."),
			Entry("256 character name", "alice", strings.Repeat("n", 256), "pw", "name cannot be longer than 255 characters."),
			Entry("72 byte password", "alice", "", strings.Repeat("p", 72), ""),
			Entry("73 byte password", "alice", "", strings.Repeat("p", 73), "password cannot be longer than 72 bytes."),
			Entry("37 two-byte runes in the password", "alice", "", strings.Repeat("é", 37), "password cannot be longer than 72 bytes."),
			Entry("empty credentials come first", "", "", strings.Repeat("p", 73), "username or password cannot be empty."),
		)
	})

	Describe("CategoryRequest", func() {
		DescribeTable("validates the name",
			func(name, message string) {
				var req payload.CategoryRequest
				err := dv.DecodeAndValidateForm(formRequest(url.Values{"name": {name}}), &req)
				if message == "" {
					Expect(err).NotTo(HaveOccurred())
					return
				}
				Expect(payload.Message(err)).To(Equal(message))
			},
			Entry("valid", "Dairy", ""),
			Entry("exactly 64 characters", strings.Repeat("a", 64), ""),
			Entry("64 multibyte characters", strings.Repeat("é", 64), ""),
			Entry("empty", "", "category name cannot be empty."),
			Entry("65 characters", strings.Repeat("a", 65), "category name cannot be longer than 64 characters."),
		)
	})

	Describe("ProductRequest", func() {
		var values url.Values

		BeforeEach(func() {
			values = url.Values{
				"name":           {"Milk"},
				"price_per_unit": {"60"},
				"quantity":       {"10"},
				"category":       {"2"},
			}
		})

		It("should convert a valid form", func() {
			var req payload.ProductRequest
			Expect(dv.DecodeAndValidateForm(formRequest(values), &req)).To(Succeed())
			Expect(req.ToMessage()).To(Equal(core.ProductMessage{
				Name:         "Milk",
				PricePerUnit: 60,
				Quantity:     10,
				CategoryID:   2,
			}))
		})

		DescribeTable("reports the first failing check",
			func(field, value, message string) {
				values.Set(field, value)
				var req payload.ProductRequest
				err := dv.DecodeAndValidateForm(formRequest(values), &req)
				Expect(payload.Message(err)).To(Equal(message))
			},
			Entry("missing name", "name", "", "All the fields are required."),
			Entry("missing price", "price_per_unit", "", "All the fields are required."),
			Entry("missing category", "category", "", "All the fields are required."),
			Entry("quantity not a number", "quantity", "ten", "quantity must be a number."),
			Entry("negative quantity", "quantity", "-1", "quantity must be a number."),
			Entry("price not a number", "price_per_unit", "1.5", "price_per_unit must be a number."),
			Entry("category not a number", "category", "dairy", "category does not exist."),
			Entry("256 character name", "name", strings.Repeat("m", 256), "product name cannot be longer than 255 characters."),
			Entry("unit not a number", "unit", "kg", "unit does not exist."),
		)

		It("should accept a 255 character name", func() {
			values.Set("name", strings.Repeat("m", 255))
			var req payload.ProductRequest
			Expect(dv.DecodeAndValidateForm(formRequest(values), &req)).To(Succeed())
		})

		It("should check quantity before price", func() {
			values.Set("quantity", "x")
			values.Set("price_per_unit", "y")
			var req payload.ProductRequest
			err := dv.DecodeAndValidateForm(formRequest(values), &req)
			Expect(payload.Message(err)).To(Equal("quantity must be a number."))
		})
	})

	Describe("Message", func() {
		It("should fall back for errors that are not validation failures", func() {
			Expect(payload.Message(errors.New("boom"))).To(Equal("the submitted form is not valid."))
		})
	})
})
