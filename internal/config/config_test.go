package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/explorer/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.MaxSessions, convey.ShouldEqual, 10_000)
			convey.So(cfg.SessionTTL(), convey.ShouldEqual, 30*time.Minute)
			convey.So(cfg.SweepInterval(), convey.ShouldEqual, time.Minute)
			convey.So(cfg.HighlightStyle, convey.ShouldEqual, "monokai")
			convey.So(cfg.LineNumbers, convey.ShouldBeFalse)
			convey.So(cfg.HighlightCacheSize, convey.ShouldEqual, 64)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with invalid fields", t, func() {
		cases := map[string]func(*config.Config){
			"addr":                   func(c *config.Config) { c.Addr = "" },
			"max_sessions":           func(c *config.Config) { c.MaxSessions = -1 },
			"session_ttl_seconds":    func(c *config.Config) { c.SessionTTLSeconds = 0 },
			"sweep_interval_seconds": func(c *config.Config) { c.SweepIntervalSeconds = -5 },
			"highlight_cache_size":   func(c *config.Config) { c.HighlightCacheSize = -1 },
		}

		for field, mutate := range cases {
			cfg := config.New()
			mutate(cfg)
			err := cfg.Validate()

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, field)
		}
	})
}
