package middleware_test

import (
	"errors"
	"grocery/internal/core"
	"grocery/internal/http/handler/middleware"
	"grocery/internal/http/handler/middleware/fake"
	"grocery/internal/session"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("GuardMiddleware", func() {
	var (
		fakeSaver  *fake.SessionSaver
		fakeUsers  *fake.UserFinder
		guard      *middleware.GuardMiddleware
		sess       *session.Session
		w          *httptest.ResponseRecorder
		req        *http.Request
		nextCalled bool
		next       http.Handler
	)

	BeforeEach(func() {
		fakeSaver = new(fake.SessionSaver)
		fakeUsers = new(fake.UserFinder)
		guard = middleware.NewGuardMiddleware(zap.NewNop().Sugar(), fakeSaver, fakeUsers)

		sess = session.New()
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/admin_dashboard", nil)

		nextCalled = false
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		})
	})

	withSession := func() *http.Request {
		return req.WithContext(session.NewContext(req.Context(), sess))
	}

	expectRedirectWith := func(notice string) {
		Expect(nextCalled).To(BeFalse())
		Expect(w.Code).To(Equal(http.StatusFound))
		Expect(w.Header().Get("Location")).To(Equal(middleware.LoginPath))
		Expect(fakeSaver.SaveCallCount()).To(Equal(1))
		Expect(sess.Flashes()).To(Equal([]string{notice}))
	}

	Describe("AuthRequired", func() {
		JustBeforeEach(func() {
			guard.AuthRequired(next).ServeHTTP(w, withSession())
		})

		When("the session is anonymous", func() {
			It("should redirect to login with a notice", func() {
				expectRedirectWith(middleware.NoticeLoginRequired)
			})
		})

		When("the session is bound to a user", func() {
			BeforeEach(func() {
				sess.Start("user-1")
			})

			It("should call the handler", func() {
				Expect(nextCalled).To(BeTrue())
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(fakeSaver.SaveCallCount()).To(Equal(0))
			})
		})

		When("the session cannot be saved", func() {
			BeforeEach(func() {
				fakeSaver.SaveReturns(errors.New("redis down"))
			})

			It("should answer 500", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
			})
		})
	})

	Describe("AdminRequired", func() {
		JustBeforeEach(func() {
			guard.AdminRequired(next).ServeHTTP(w, withSession())
		})

		When("the session is anonymous", func() {
			It("should redirect to login without looking up a user", func() {
				expectRedirectWith(middleware.NoticeLoginRequired)
				Expect(fakeUsers.UserByIDCallCount()).To(Equal(0))
			})
		})

		When("the user is an admin", func() {
			BeforeEach(func() {
				sess.Start("admin-id")
				fakeUsers.UserByIDReturns(core.UserRecord{ID: "admin-id", Username: "admin", IsAdmin: true}, nil)
			})

			It("should call the handler", func() {
				Expect(nextCalled).To(BeTrue())
				_, userID := fakeUsers.UserByIDArgsForCall(0)
				Expect(userID).To(Equal("admin-id"))
			})
		})

		When("the user is not an admin", func() {
			BeforeEach(func() {
				sess.Start("alice-id")
				fakeUsers.UserByIDReturns(core.UserRecord{ID: "alice-id", Username: "alice"}, nil)
			})

			It("should redirect with the authorisation notice and keep the login", func() {
				expectRedirectWith(middleware.NoticeNotAuthorised)
				id, ok := sess.CurrentUserID()
				Expect(ok).To(BeTrue())
				Expect(id).To(Equal("alice-id"))
			})
		})

		When("the user no longer exists", func() {
			BeforeEach(func() {
				sess.Start("gone-id")
				fakeUsers.UserByIDReturns(core.UserRecord{}, core.ErrUserNotFound)
			})

			It("should end the session and redirect to login", func() {
				expectRedirectWith(middleware.NoticeLoginRequired)
				_, ok := sess.CurrentUserID()
				Expect(ok).To(BeFalse())
			})
		})

		When("the user lookup fails", func() {
			BeforeEach(func() {
				sess.Start("admin-id")
				fakeUsers.UserByIDReturns(core.UserRecord{}, errors.New("db down"))
			})

			It("should answer 500", func() {
				Expect(nextCalled).To(BeFalse())
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(fakeSaver.SaveCallCount()).To(Equal(0))
			})
		})
	})

	When("no session middleware ran", func() {
		It("should treat the request as anonymous", func() {
			guard.AuthRequired(next).ServeHTTP(w, req)
			Expect(nextCalled).To(BeFalse())
			Expect(w.Code).To(Equal(http.StatusFound))
		})
	})
})
