package config_test

import (
	"os"
	"time"

	"grocery/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	var (
		cfg config.App
		err error
	)

	setenv := func(key, value string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Setenv(key, value)).To(Succeed())
		DeferCleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
				return
			}
			_ = os.Unsetenv(key)
		})
	}

	unsetenv := func(key string) {
		prev, had := os.LookupEnv(key)
		Expect(os.Unsetenv(key)).To(Succeed())
		DeferCleanup(func() {
			if had {
				_ = os.Setenv(key, prev)
			}
		})
	}

	BeforeEach(func() {
		for _, key := range []string{"API_PORT", "REDIS_ADDR", "SESSION_TTL", "ADMIN_USERNAME", "ADMIN_PASSWORD", "COOKIE_SECURE"} {
			unsetenv(key)
		}
		setenv("DB_CONNECTION_URL", "postgres://grocery@localhost/grocery")
		setenv("SESSION_SECRET", "secret")
	})

	JustBeforeEach(func() {
		cfg, err = config.NewApp()
	})

	When("only required variables are set", func() {
		It("should apply defaults", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("8080"))
			Expect(cfg.Redis.Addr).To(Equal("localhost:6379"))
			Expect(cfg.Session.TTL).To(Equal(24 * time.Hour))
			Expect(cfg.Session.CookieSecure).To(BeFalse())
			Expect(cfg.Admin.UsesDefaults()).To(BeTrue())
		})
	})

	When("overrides are present", func() {
		BeforeEach(func() {
			setenv("API_PORT", "9000")
			setenv("SESSION_TTL", "30m")
			setenv("ADMIN_PASSWORD", "s3cret")
		})

		It("should read them", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Port).To(Equal("9000"))
			Expect(cfg.Session.TTL).To(Equal(30 * time.Minute))
			Expect(cfg.Admin.UsesDefaults()).To(BeFalse())
		})
	})

	When("the database url is missing", func() {
		BeforeEach(func() {
			unsetenv("DB_CONNECTION_URL")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("read env")))
		})
	})

	When("the session ttl is not positive", func() {
		BeforeEach(func() {
			setenv("SESSION_TTL", "0s")
		})

		It("should return an error", func() {
			Expect(err).To(MatchError(ContainSubstring("SESSION_TTL must be positive")))
		})
	})
})
