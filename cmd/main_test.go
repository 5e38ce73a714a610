package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"

	"github.com/okian/explorer/internal/config"
	"github.com/okian/explorer/pkg/logger"
)

func initTestLogger(t *testing.T) {
	t.Helper()
	if err := logger.InitWithWriter(io.Discard, logger.FormatText); err != nil {
		t.Fatalf("init logger: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	convey.Convey("Given a command with a config flag", t, func() {
		t.Setenv(config.EnvConfigFile, "")
		t.Setenv("EXPLORER_ADDR", "")
		_ = os.Unsetenv("EXPLORER_ADDR")

		cmd := &cobra.Command{Use: "test"}
		cmd.Flags().StringP("config", "c", "", "")

		convey.Convey("When no file is given", func() {
			cfg, err := loadConfig(context.Background(), cmd)

			convey.Convey("Then defaults should be used", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.HighlightStyle, convey.ShouldEqual, "monokai")
			})
		})

		convey.Convey("When a YAML file is given", func() {
			path := filepath.Join(t.TempDir(), "explorer.yaml")
			convey.So(os.WriteFile(path, []byte("addr: \":7070\"\nmax_sessions: 5\n"), 0o600), convey.ShouldBeNil)
			convey.So(cmd.Flags().Set("config", path), convey.ShouldBeNil)

			cfg, err := loadConfig(context.Background(), cmd)

			convey.Convey("Then the file should be layered over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.MaxSessions, convey.ShouldEqual, 5)
				convey.So(os.Getenv(config.EnvConfigFile), convey.ShouldEqual, path)
			})
		})

		convey.Convey("When the file does not exist", func() {
			convey.So(cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")), convey.ShouldBeNil)
			_, err := loadConfig(context.Background(), cmd)

			convey.Convey("Then loading should fail", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestNewMux(t *testing.T) {
	initTestLogger(t)

	convey.Convey("Given the assembled HTTP mux", t, func() {
		ctx := context.Background()
		svc := newService(config.New(), logger.Get())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()
		mux := newMux(ctx, svc)

		get := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, http.NoBody))
			return w
		}

		convey.Convey("Then every surface should be routed", func() {
			for _, path := range []string{"/", "/static/style.css", "/api/catalog", "/openapi.yaml", "/api-docs", "/healthz", "/stats"} {
				convey.So(get(path).Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("And the page should render the explorer", func() {
			convey.So(get("/").Body.String(), convey.ShouldContainSubstring, "Les Endpoints API en JavaScript")
		})

		convey.Convey("And unknown paths should 404", func() {
			convey.So(get("/nope").Code, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestNewTerminalExplorer(t *testing.T) {
	convey.Convey("Given a terminal explorer", t, func() {
		e := newTerminalExplorer(context.Background(), config.New(), logger.Discard())

		convey.Convey("Then it should browse the default catalog", func() {
			convey.So(e.Catalog().Len(), convey.ShouldEqual, 4)
			convey.So(e.Selected(), convey.ShouldEqual, 0)
		})

		convey.Convey("And showing code should produce ANSI output", func() {
			e.ToggleCodeVisibility()
			v := e.View()
			convey.So(v.HighlightErr, convey.ShouldBeNil)
			convey.So(v.Highlighted, convey.ShouldContainSubstring, "\x1b[")
		})
	})
}

func TestCommands(t *testing.T) {
	convey.Convey("Given the root command", t, func() {
		names := map[string]bool{}
		for _, c := range rootCmd.Commands() {
			names[c.Name()] = true
		}

		convey.Convey("Then serve and tui should be registered", func() {
			convey.So(names["serve"], convey.ShouldBeTrue)
			convey.So(names["tui"], convey.ShouldBeTrue)
			convey.So(rootCmd.PersistentFlags().Lookup("config"), convey.ShouldNotBeNil)
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("Then a single update should not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})

		convey.Convey("And the updater should stop with its context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx)
				close(done)
			}()
			cancel()
			<-done
			convey.So(ctx.Err(), convey.ShouldNotBeNil)
		})
	})
}
