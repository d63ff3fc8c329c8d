package server_test

import (
	"grocery/internal/http/server"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("HTTPServer", func() {
	It("should report ErrServerClosed after a graceful shutdown", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "0")
		errChan := srv.Run()

		Consistently(errChan, "100ms").ShouldNot(Receive())
		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(Equal(http.ErrServerClosed)))
	})

	It("should report a listen failure", func() {
		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), "not-a-port")
		Eventually(srv.Run()).Should(Receive(HaveOccurred()))
	})
})
