package config_test

import (
	"os"
	"time"

	"cosmosexplorer/internal/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("NewApp", func() {
	BeforeEach(func() {
		for _, key := range []string{
			"EXPLORER_API_URL",
			"EXPLORER_API_TIMEOUT_MS",
			"EXPLORER_PORT",
			"EXPLORER_POLL_INTERVAL_MS",
			"EXPLORER_NOTIFY_TTL_MS",
			"LOG_LEVEL",
		} {
			if v, ok := os.LookupEnv(key); ok {
				DeferCleanup(os.Setenv, key, v)
			} else {
				DeferCleanup(os.Unsetenv, key)
			}
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})

	It("falls back to the defaults", func() {
		cfg, err := config.NewApp("", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg).To(Equal(config.Default()))
		Expect(cfg.API.BaseURL).To(Equal(config.DefaultAPIURL))
		Expect(cfg.APITimeout()).To(Equal(10 * time.Second))
		Expect(cfg.NotifyTTL()).To(Equal(3 * time.Second))
	})

	It("overlays the file and then the environment", func() {
		GinkgoT().Setenv("EXPLORER_PORT", "7070")

		cfg, err := config.NewApp("testdata/config.yaml", "testdata/test.env")
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.API.BaseURL).To(Equal("http://localhost:9000/api"))
		Expect(cfg.APITimeout()).To(Equal(2500 * time.Millisecond))
		Expect(cfg.PollInterval()).To(Equal(5 * time.Second))
		Expect(cfg.Server.Port).To(Equal("7070"))
		Expect(cfg.NotifyTTL()).To(Equal(1500 * time.Millisecond))
		Expect(cfg.Logger.Level).To(Equal("debug"))
		Expect(cfg.Pages.Blocks).To(Equal(25))
		Expect(cfg.Pages.Transactions).To(Equal(50))
	})

	It("rejects a malformed number", func() {
		GinkgoT().Setenv("EXPLORER_POLL_INTERVAL_MS", "soon")

		_, err := config.NewApp("", "")
		Expect(err).To(MatchError(ContainSubstring("EXPLORER_POLL_INTERVAL_MS")))
	})

	It("rejects a relative api url", func() {
		GinkgoT().Setenv("EXPLORER_API_URL", "/api")

		_, err := config.NewApp("", "")
		Expect(err).To(MatchError(ContainSubstring("must be an absolute URL")))
	})

	It("rejects a port out of range", func() {
		GinkgoT().Setenv("EXPLORER_PORT", "70000")

		_, err := config.NewApp("", "")
		Expect(err).To(MatchError(ContainSubstring("must be a valid port number")))
	})

	It("reports a missing config file", func() {
		_, err := config.NewApp("testdata/missing.yaml", "")
		Expect(err).To(MatchError(ContainSubstring("read config file")))
	})
})
