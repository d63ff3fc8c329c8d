package session_test

import (
	"context"
	"grocery/internal/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Session", func() {
	var s *session.Session

	BeforeEach(func() {
		s = session.New()
	})

	It("should start anonymous", func() {
		id, ok := s.CurrentUserID()
		Expect(ok).To(BeFalse())
		Expect(id).To(BeEmpty())
	})

	It("should bind and unbind a user", func() {
		s.Start("user-1")
		id, ok := s.CurrentUserID()
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal("user-1"))

		s.End()
		_, ok = s.CurrentUserID()
		Expect(ok).To(BeFalse())
	})

	It("should allow binding another user while authenticated", func() {
		s.Start("user-1")
		s.Start("user-2")
		id, _ := s.CurrentUserID()
		Expect(id).To(Equal("user-2"))
	})

	It("should stay anonymous when ended twice", func() {
		s.End()
		s.End()
		_, ok := s.CurrentUserID()
		Expect(ok).To(BeFalse())
	})

	It("should pop flashes once", func() {
		s.AddFlash("first")
		s.AddFlash("second")
		Expect(s.Flashes()).To(Equal([]string{"first", "second"}))
		Expect(s.Flashes()).To(BeEmpty())
	})

	Describe("context", func() {
		It("should round trip through a context", func() {
			ctx := session.NewContext(context.Background(), s)
			got, ok := session.FromContext(ctx)
			Expect(ok).To(BeTrue())
			Expect(got).To(BeIdenticalTo(s))
		})

		It("should report a missing session", func() {
			_, ok := session.FromContext(context.Background())
			Expect(ok).To(BeFalse())
		})
	})
})
