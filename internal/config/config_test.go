package config_test

import (
	"testing"

	"github.com/openfloor/scorecast/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":3000")
			convey.So(cfg.CacheTTLSeconds, convey.ShouldEqual, 300)
			convey.So(cfg.QueryRetryAttempts, convey.ShouldEqual, 3)
			convey.So(cfg.QueryRetryDelayMS, convey.ShouldEqual, 500)
			convey.So(cfg.VideoRoot, convey.ShouldEqual, "videos")
			convey.So(cfg.AllowedOrigin, convey.ShouldEqual, "*")
		})
	})
}
