package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/pavilion/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "data/matches.csv")
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "data/deliveries.csv")
				convey.So(cfg.DefaultLimit, convey.ShouldEqual, 10)
				convey.So(cfg.MaxLimit, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("PAVILION_ADDR", ":8080")
			_ = os.Setenv("PAVILION_MATCHES_PATH", "/srv/data/matches.csv")
			_ = os.Setenv("PAVILION_DELIVERIES_PATH", "/srv/data/deliveries.csv")
			_ = os.Setenv("PAVILION_DEFAULT_LIMIT", "5")
			_ = os.Setenv("PAVILION_MAX_LIMIT", "50")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "/srv/data/matches.csv")
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "/srv/data/deliveries.csv")
				convey.So(cfg.DefaultLimit, convey.ShouldEqual, 5)
				convey.So(cfg.MaxLimit, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
addr: ":9090"
matches_path: "fixtures/matches.csv"
deliveries_path: "fixtures/deliveries.csv"
default_limit: 7
max_limit: 25
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("PAVILION_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.MatchesPath, convey.ShouldEqual, "fixtures/matches.csv")
				convey.So(cfg.DeliveriesPath, convey.ShouldEqual, "fixtures/deliveries.csv")
				convey.So(cfg.DefaultLimit, convey.ShouldEqual, 7)
				convey.So(cfg.MaxLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
default_limit: 7
max_limit: 25
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("PAVILION_CONFIG", tmpFile)
			_ = os.Setenv("PAVILION_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080") // env wins
				convey.So(cfg.DefaultLimit, convey.ShouldEqual, 7)
				convey.So(cfg.MaxLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When the config file does not exist", func() {
			_ = os.Setenv("PAVILION_CONFIG", "/path/that/does/not/exist.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the config is invalid", func() {
			_ = os.Setenv("PAVILION_MAX_LIMIT", "1")
			_ = os.Setenv("PAVILION_DEFAULT_LIMIT", "10")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"PAVILION_CONFIG",
		"PAVILION_ADDR",
		"PAVILION_LOG_LEVEL",
		"PAVILION_MATCHES_PATH",
		"PAVILION_DELIVERIES_PATH",
		"PAVILION_DEFAULT_LIMIT",
		"PAVILION_MAX_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(content string) string {
	f, err := os.CreateTemp("", "pavilion-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := f.WriteString(content); err != nil {
		panic(err)
	}
	_ = f.Close()
	return f.Name()
}
