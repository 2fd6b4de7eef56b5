package root_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/encircleuk/civicrm.extendedreport/pkg/controllers/root"
	"github.com/encircleuk/civicrm.extendedreport/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	w := httptest.NewRecorder()
	_, r := gin.CreateTestContext(w)
	r.OPTIONS("/", root.Options)

	req, _ := http.NewRequest(http.MethodOptions, "http://example.com/", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "OPTIONS, GET", w.Header().Get("allow"))
}

func TestGet(t *testing.T) {
	t.Setenv("API_URL", "https://example.com/api")

	recorder := test.Request(t, http.MethodGet, "https://example.com/")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response root.Response
	test.DecodeResponse(t, &recorder, &response)

	assert.Equal(t, root.Response{
		Links: root.Links{
			Docs:    "https://example.com/api/docs/index.html",
			Healthz: "https://example.com/api/healthz",
			Version: "https://example.com/api/version",
			Metrics: "https://example.com/api/metrics",
			V1:      "https://example.com/api/v1",
			Reports: "https://example.com/api/v1/reports",
		},
	}, response)
}
