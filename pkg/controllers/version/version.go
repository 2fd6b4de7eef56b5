package version

import (
	"net/http"
	"runtime/debug"

	"github.com/encircleuk/civicrm.extendedreport/pkg/httputil"
	"github.com/gin-gonic/gin"
)

// Set at build time with -ldflags, passed in by the router.
var apiVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"` // Data object for the version endpoint
}

type Object struct {
	Version   string `json:"version" example:"1.1.0"`                // the running version of the report service
	Revision  string `json:"revision,omitempty" example:"5e1f7a3"`   // VCS revision the binary was built from
	GoVersion string `json:"goVersion,omitempty" example:"go1.25.5"` // Go toolchain the binary was built with
}

func RegisterRoutes(r *gin.RouterGroup, version string) {
	apiVersion = version

	r.GET("", Get)
	r.OPTIONS("", Options)
}

// build reads the revision and toolchain from the embedded build info.
// Both are empty for test binaries.
func build() (revision, goVersion string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			revision = s.Value
		}
	}
	return revision, info.GoVersion
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		API version
// @Description	Returns the software version of the report service and the build it runs
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	revision, goVersion := build()

	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version:   apiVersion,
			Revision:  revision,
			GoVersion: goVersion,
		},
	})
}
