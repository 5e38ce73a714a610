package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestErrorClassification(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		Convey("Then error types should be classified", func() {
			So(errorType(http.StatusServiceUnavailable), ShouldEqual, "unavailable")
			So(errorType(http.StatusInternalServerError), ShouldEqual, "server_error")
			So(errorType(http.StatusNotFound), ShouldEqual, "not_found")
			So(errorType(http.StatusMethodNotAllowed), ShouldEqual, "method_not_allowed")
			So(errorType(http.StatusBadRequest), ShouldEqual, "client_error")
			So(errorType(http.StatusOK), ShouldEqual, "unknown")
		})

		Convey("And severities should follow the status class", func() {
			So(errorSeverity(http.StatusBadGateway), ShouldEqual, "high")
			So(errorSeverity(http.StatusConflict), ShouldEqual, "medium")
			So(errorSeverity(http.StatusOK), ShouldEqual, "low")
		})
	})
}

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given a wrapped handler", t, func() {
		called := false
		h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			called = true
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("short and stout"))
		}, "test")

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest("GET", "/", http.NoBody))

		Convey("Then the inner handler should run unchanged", func() {
			So(called, ShouldBeTrue)
			So(w.Code, ShouldEqual, http.StatusTeapot)
			So(w.Body.String(), ShouldEqual, "short and stout")
		})
	})
}

func TestWriteServiceError(t *testing.T) {
	Convey("Given an unclassified error", t, func() {
		w := httptest.NewRecorder()
		writeServiceError(w, "api.test", http.ErrBodyNotAllowed)

		Convey("Then it should be reported as internal", func() {
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(w.Body.String(), ShouldContainSubstring, `"code":"internal_error"`)
		})
	})
}
