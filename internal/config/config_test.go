package config_test

import (
	"testing"

	"github.com/okian/pavilion/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestNewConfig(t *testing.T) {
	convey.Convey("Given a new default config", t, func() {
		cfg := config.New()

		convey.Convey("Then defaults should be sensible", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.MatchesPath, convey.ShouldNotBeEmpty)
			convey.So(cfg.DeliveriesPath, convey.ShouldNotBeEmpty)
			convey.So(cfg.DefaultLimit, convey.ShouldBeGreaterThan, 0)
			convey.So(cfg.MaxLimit, convey.ShouldBeGreaterThanOrEqualTo, cfg.DefaultLimit)
		})
	})
}
