package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/encircleuk/civicrm.extendedreport/pkg/models"
	"github.com/encircleuk/civicrm.extendedreport/pkg/pivot"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) || errors.Is(err, pivot.ErrDiscovery) || errors.Is(err, pivot.ErrAggregateQuery) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, pivot.ErrUnknownReport) || errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// message returns the error message for the response. Database errors are
// logged, but not returned to the client.
func message(c *gin.Context, err error) string {
	if status(err) != http.StatusInternalServerError {
		return err.Error()
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())

	stage := "the request"
	var buildErr *pivot.BuildError
	if errors.As(err, &buildErr) {
		stage = string(buildErr.Stage)
	}

	return fmt.Sprintf("the report could not be built during %s, please contact your server administrator. The request id is '%s'", stage, requestid.Get(c))
}

// Report query errors
var (
	errStartRange = errors.New("the startFrom parameter must not be after the startTo parameter")
)
