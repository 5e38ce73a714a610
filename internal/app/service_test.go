package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/okian/explorer/internal/adapters/repository"
	service "github.com/okian/explorer/internal/app"
	"github.com/okian/explorer/internal/domain/catalog"
	"github.com/okian/explorer/internal/domain/explorer"
	"github.com/okian/explorer/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	err := logger.Init()
	if err != nil {
		panic(err)
	}
}

// upperHighlighter is a deterministic stand-in for chroma.
type upperHighlighter struct{ calls int }

func (h *upperHighlighter) Highlight(source, _ string) (string, error) {
	h.calls++
	return strings.ToUpper(source), nil
}

func TestService_New(t *testing.T) {
	Convey("Given a new service with default options", t, func() {
		svc := service.New()

		Convey("Then it should have sensible defaults", func() {
			So(svc, ShouldNotBeNil)
			stats := svc.GetStats()
			So(stats["started"], ShouldEqual, false)
			So(stats["endpoints"], ShouldEqual, 4)
		})
	})

	Convey("Given a new service with custom options", t, func() {
		svc := service.New(
			service.WithMaxSessions(5),
			service.WithSessionTTL(time.Minute),
			service.WithSweepInterval(time.Second),
			service.WithHighlightStyle("github"),
			service.WithLineNumbers(true),
			service.WithHighlightCacheSize(8),
			service.WithLogger(logger.Discard()),
		)

		Convey("Then it should be created successfully", func() {
			So(svc, ShouldNotBeNil)
			So(svc.GetStats()["maxSessions"], ShouldEqual, 5)
		})
	})
}

func TestService_Lifecycle(t *testing.T) {
	Convey("Given a service that is not started", t, func() {
		ctx := context.Background()
		svc := service.New()

		Convey("Then session operations should fail with ErrNotStarted", func() {
			_, err := svc.NewSession(ctx)
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, err = svc.RestoreSession(ctx, explorer.State{})
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			_, err = svc.SelectNext(ctx, "x")
			So(errors.Is(err, service.ErrNotStarted), ShouldBeTrue)
			So(errors.Is(svc.EndSession(ctx, "x"), service.ErrNotStarted), ShouldBeTrue)
		})

		Convey("When starting and stopping twice", func() {
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.Start(ctx), ShouldBeNil)
			So(svc.GetStats()["started"], ShouldEqual, true)
			So(svc.GetStats()["sessions"], ShouldEqual, 0)
			svc.Stop()
			svc.Stop()

			Convey("Then it should end stopped", func() {
				So(svc.GetStats()["started"], ShouldEqual, false)
			})
		})
	})
}

func TestService_Transitions(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		h := &upperHighlighter{}
		svc := service.New(service.WithHighlighter(h), service.WithLogger(logger.Discard()))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		sess, err := svc.NewSession(ctx)
		So(err, ShouldBeNil)

		Convey("Then the new session should start at GET /api/users with code hidden", func() {
			So(sess.ID, ShouldNotBeEmpty)
			So(sess.View.Title, ShouldEqual, "GET /api/users")
			So(sess.View.CodeVisible, ShouldBeFalse)
			So(svc.GetStats()["sessions"], ShouldEqual, 1)
		})

		Convey("When toggling the code", func() {
			view, err := svc.ToggleCode(ctx, sess.ID)

			Convey("Then the highlighted GET sample should be visible", func() {
				So(err, ShouldBeNil)
				So(view.CodeVisible, ShouldBeTrue)
				So(view.Code, ShouldStartWith, "// Récupérer tous les utilisateurs")
				So(view.Highlighted, ShouldStartWith, "// RÉCUPÉRER")
				So(h.calls, ShouldEqual, 1)
			})
		})

		Convey("When selecting next four times", func() {
			var last int
			for i := 0; i < 4; i++ {
				view, err := svc.SelectNext(ctx, sess.ID)
				So(err, ShouldBeNil)
				last = view.Index
			}

			Convey("Then the selection should stop at DELETE", func() {
				So(last, ShouldEqual, 3)
				view, _ := svc.View(ctx, sess.ID)
				So(view.Title, ShouldEqual, "DELETE /api/users/:id")
				So(view.CanNext, ShouldBeFalse)
			})

			Convey("And previous should move back", func() {
				view, err := svc.SelectPrevious(ctx, sess.ID)
				So(err, ShouldBeNil)
				So(view.Index, ShouldEqual, 2)
			})
		})

		Convey("When selecting directly", func() {
			view, err := svc.SelectDirect(ctx, sess.ID, 2)

			Convey("Then the PUT description should be shown", func() {
				So(err, ShouldBeNil)
				So(view.Description, ShouldEqual, "Met à jour un utilisateur existant")
			})

			Convey("And an invalid index should be rejected", func() {
				_, err := svc.SelectDirect(ctx, sess.ID, 7)
				So(errors.Is(err, catalog.ErrIndexOutOfRange), ShouldBeTrue)
				view, _ := svc.View(ctx, sess.ID)
				So(view.Index, ShouldEqual, 2)
			})
		})

		Convey("When ending the session", func() {
			So(svc.EndSession(ctx, sess.ID), ShouldBeNil)

			Convey("Then it should no longer be found", func() {
				_, err := svc.View(ctx, sess.ID)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When restoring a saved state", func() {
			restored, err := svc.RestoreSession(ctx, explorer.State{Selected: 3, CodeVisible: true})

			Convey("Then a separate session should open at that state", func() {
				So(err, ShouldBeNil)
				So(restored.ID, ShouldNotEqual, sess.ID)
				So(restored.View.Title, ShouldEqual, "DELETE /api/users/:id")
				So(restored.View.Highlighted, ShouldStartWith, "// SUPPRIMER")
				So(svc.GetStats()["sessions"], ShouldEqual, 2)
			})

			Convey("And a negative selection should clamp to the first entry", func() {
				restored, err := svc.RestoreSession(ctx, explorer.State{Selected: -3})
				So(err, ShouldBeNil)
				So(restored.View.Index, ShouldEqual, 0)
			})
		})

		Convey("When listing the catalog", func() {
			descs := svc.Catalog(ctx)

			Convey("Then it should return the four descriptors", func() {
				So(len(descs), ShouldEqual, 4)
				So(descs[1].Method, ShouldEqual, catalog.MethodPost)
			})
		})
	})
}

func TestService_DefaultHighlighter(t *testing.T) {
	Convey("Given a service with the default chroma highlighter", t, func() {
		ctx := context.Background()
		svc := service.New(service.WithLogger(logger.Discard()))
		So(svc.Start(ctx), ShouldBeNil)
		defer svc.Stop()

		sess, _ := svc.NewSession(ctx)

		Convey("When showing the code", func() {
			view, err := svc.ToggleCode(ctx, sess.ID)

			Convey("Then the view should carry HTML markup", func() {
				So(err, ShouldBeNil)
				So(view.HighlightErr, ShouldBeNil)
				So(view.Highlighted, ShouldStartWith, "<pre")
			})
		})
	})
}
