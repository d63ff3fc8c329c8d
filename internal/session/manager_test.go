package session_test

import (
	"context"
	"errors"
	"grocery/internal/session"
	"grocery/internal/session/fake"
	"grocery/pkg/jwt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/alicebob/miniredis/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var _ = Describe("Manager", func() {
	var (
		mr      *miniredis.Miniredis
		tokens  *jwt.JWTService
		manager *session.Manager
		ctx     context.Context
		ttl     time.Duration
	)

	BeforeEach(func() {
		var err error
		mr, err = miniredis.Run()
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(mr.Close)

		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		DeferCleanup(rdb.Close)

		ttl = time.Hour
		tokens = jwt.NewJWTService([]byte("session-secret"))
		manager = session.NewManager(zap.NewNop().Sugar(), session.NewRedisStore(rdb), tokens, ttl, true)
		ctx = context.Background()
	})

	// save persists s and returns the cookie set on the response, if any.
	save := func(s *session.Session) *http.Cookie {
		w := httptest.NewRecorder()
		Expect(manager.Save(ctx, w, s)).To(Succeed())
		cookies := w.Result().Cookies()
		if len(cookies) == 0 {
			return nil
		}
		return cookies[0]
	}

	load := func(cookie *http.Cookie) *session.Session {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != nil {
			r.AddCookie(cookie)
		}
		s, err := manager.Load(ctx, r)
		Expect(err).NotTo(HaveOccurred())
		return s
	}

	It("should load an anonymous session without a cookie", func() {
		s := load(nil)
		_, ok := s.CurrentUserID()
		Expect(ok).To(BeFalse())
	})

	It("should not set a cookie for an untouched anonymous session", func() {
		Expect(save(session.New())).To(BeNil())
		Expect(mr.Keys()).To(BeEmpty())
	})

	It("should persist a login across requests", func() {
		s := load(nil)
		s.Start("user-1")
		cookie := save(s)

		Expect(cookie).NotTo(BeNil())
		Expect(cookie.Name).To(Equal(session.CookieName))
		Expect(cookie.HttpOnly).To(BeTrue())
		Expect(cookie.Secure).To(BeTrue())
		Expect(cookie.Path).To(Equal("/"))
		Expect(cookie.MaxAge).To(Equal(int(ttl.Seconds())))
		Expect(mr.Keys()).To(HaveLen(1))

		again := load(cookie)
		id, ok := again.CurrentUserID()
		Expect(ok).To(BeTrue())
		Expect(id).To(Equal("user-1"))
	})

	It("should keep the session id opaque to the client", func() {
		s := session.New()
		s.Start("user-1")
		cookie := save(s)

		sid, err := tokens.Subject(cookie.Value)
		Expect(err).NotTo(HaveOccurred())
		Expect(sid).NotTo(Equal("user-1"))
		Expect(mr.Exists("session:" + sid)).To(BeTrue())
	})

	It("should rotate the session id on login", func() {
		s := session.New()
		s.AddFlash("hello")
		before := save(s)
		oldID, err := tokens.Subject(before.Value)
		Expect(err).NotTo(HaveOccurred())

		s = load(before)
		s.Start("user-1")
		after := save(s)
		newID, err := tokens.Subject(after.Value)
		Expect(err).NotTo(HaveOccurred())

		Expect(newID).NotTo(Equal(oldID))
		Expect(mr.Exists("session:" + oldID)).To(BeFalse())
		Expect(mr.Exists("session:" + newID)).To(BeTrue())
	})

	It("should carry flashes to the next request only", func() {
		s := session.New()
		s.AddFlash("Error: please login first.")
		cookie := save(s)

		next := load(cookie)
		Expect(next.Flashes()).To(Equal([]string{"Error: please login first."}))
		cleared := save(next)

		Expect(cleared.MaxAge).To(BeNumerically("<", 0))
		Expect(mr.Keys()).To(BeEmpty())
	})

	It("should delete the record and expire the cookie on logout", func() {
		s := session.New()
		s.Start("user-1")
		cookie := save(s)

		s = load(cookie)
		s.End()
		expired := save(s)
		Expect(expired).NotTo(BeNil())
		Expect(expired.MaxAge).To(BeNumerically("<", 0))
		Expect(mr.Keys()).To(BeEmpty())

		s = load(cookie)
		_, ok := s.CurrentUserID()
		Expect(ok).To(BeFalse())
	})

	It("should stay anonymous when logging out twice", func() {
		s := session.New()
		s.End()
		save(s)
		s.End()
		save(s)
		_, ok := s.CurrentUserID()
		Expect(ok).To(BeFalse())
	})

	It("should treat a tampered cookie as a fresh anonymous session", func() {
		s := session.New()
		s.Start("user-1")
		cookie := save(s)
		cookie.Value += "x"

		tampered := load(cookie)
		_, ok := tampered.CurrentUserID()
		Expect(ok).To(BeFalse())

		expired := save(tampered)
		Expect(expired).NotTo(BeNil())
		Expect(expired.MaxAge).To(BeNumerically("<", 0))
	})

	It("should treat an expired record as a fresh anonymous session", func() {
		s := session.New()
		s.Start("user-1")
		cookie := save(s)
		mr.FastForward(ttl + time.Second)

		expired := load(cookie)
		_, ok := expired.CurrentUserID()
		Expect(ok).To(BeFalse())
	})

	It("should slide the TTL on every save", func() {
		s := session.New()
		s.Start("user-1")
		cookie := save(s)
		sid, _ := tokens.Subject(cookie.Value)

		mr.FastForward(30 * time.Minute)
		save(load(cookie))

		Expect(mr.TTL("session:" + sid)).To(Equal(ttl))
	})

	When("the store fails", func() {
		var fakeStore *fake.Store

		BeforeEach(func() {
			fakeStore = new(fake.Store)
			fakeStore.GetReturns(nil, errors.New("connection refused"))
			fakeStore.SetReturns(errors.New("connection refused"))
			manager = session.NewManager(zap.NewNop().Sugar(), fakeStore, tokens, ttl, false)
		})

		It("should report the error on load", func() {
			token, err := tokens.Issue(jwt.TokenInfo{Subject: "sid-1", Expiration: ttl})
			Expect(err).NotTo(HaveOccurred())

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
			_, err = manager.Load(ctx, r)
			Expect(err).To(MatchError(ContainSubstring("connection refused")))
		})

		It("should report the error on save without setting a cookie", func() {
			s := session.New()
			s.Start("user-1")
			w := httptest.NewRecorder()
			Expect(manager.Save(ctx, w, s)).To(MatchError(ContainSubstring("store session")))
			Expect(w.Result().Cookies()).To(BeEmpty())
		})

		It("should ignore corrupt records", func() {
			fakeStore.GetReturns([]byte("not json"), nil)
			token, _ := tokens.Issue(jwt.TokenInfo{Subject: "sid-1", Expiration: ttl})

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
			s, err := manager.Load(ctx, r)
			Expect(err).NotTo(HaveOccurred())
			_, ok := s.CurrentUserID()
			Expect(ok).To(BeFalse())
		})
	})
})
