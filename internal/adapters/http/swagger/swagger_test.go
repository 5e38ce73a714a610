package swagger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestSwaggerHandler(t *testing.T) {
	convey.Convey("Given a swagger handler", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()

		convey.Convey("When registering the swagger handler", func() {
			Register(ctx, mux)

			convey.Convey("Then it should handle /openapi.yaml route", func() {
				req := httptest.NewRequest("GET", "/openapi.yaml", http.NoBody)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
				convey.So(w.Body.Bytes(), convey.ShouldResemble, OpenAPI)
			})

			convey.Convey("And it should handle /api-docs route", func() {
				req := httptest.NewRequest("GET", "/api-docs", http.NoBody)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "text/html; charset=utf-8")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "redoc-container")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, RedocURL)
			})

			convey.Convey("And it should reject writes", func() {
				req := httptest.NewRequest("POST", "/openapi.yaml", http.NoBody)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusMethodNotAllowed)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	convey.Convey("Given the embedded OpenAPI document", t, func() {
		doc, err := Load(context.Background())

		convey.Convey("Then it should be valid", func() {
			convey.So(err, convey.ShouldBeNil)
			convey.So(doc.Info.Title, convey.ShouldEqual, "Endpoint Explorer API")
		})

		convey.Convey("And it should describe every session route", func() {
			for _, path := range []string{
				"/api/catalog",
				"/api/sessions",
				"/api/sessions/{id}",
				"/api/sessions/{id}/select",
				"/api/sessions/{id}/previous",
				"/api/sessions/{id}/next",
				"/api/sessions/{id}/code/toggle",
			} {
				convey.So(doc.Paths.Find(path), convey.ShouldNotBeNil)
			}
			convey.So(doc.Paths.Find("/api/sessions/{id}").Delete, convey.ShouldNotBeNil)
		})

		convey.Convey("And the select body should require an index", func() {
			schema := doc.Components.Schemas["SelectRequest"].Value
			convey.So(schema.Required, convey.ShouldResemble, []string{"index"})
		})

		convey.Convey("And session creation should accept a saved state", func() {
			body := doc.Paths.Find("/api/sessions").Post.RequestBody.Value
			convey.So(body.Required, convey.ShouldBeFalse)
			convey.So(doc.Components.Schemas["RestoreRequest"].Value.Properties, convey.ShouldContainKey, "code_visible")
		})
	})
}

func TestSwaggerErrors(t *testing.T) {
	convey.Convey("Given swagger error constants", t, func() {
		convey.Convey("Then ErrDocument should be defined", func() {
			convey.So(ErrDocument, convey.ShouldNotBeNil)
			convey.So(ErrDocument.Error(), convey.ShouldEqual, "invalid openapi document")
		})
	})
}

func TestSwaggerHandlerWithNilMux(t *testing.T) {
	convey.Convey("Given a nil mux", t, func() {
		ctx := context.Background()

		convey.Convey("When registering the swagger handler", func() {
			convey.Convey("Then it should panic", func() {
				convey.So(func() {
					Register(ctx, nil)
				}, convey.ShouldPanic)
			})
		})
	})
}
