package v1

import (
	"net/http"

	"github.com/encircleuk/civicrm.extendedreport/pkg/httputil"
	"github.com/encircleuk/civicrm.extendedreport/pkg/models"
	"github.com/encircleuk/civicrm.extendedreport/pkg/pivot"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

var (
	formatter     pivot.Formatter
	hiddenColumns []string
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup, f pivot.Formatter, hidden []string) {
	formatter = f
	hiddenColumns = hidden

	{
		r.OPTIONS("", OptionsReportList)
		r.GET("", GetReports)
		r.OPTIONS("/:name", OptionsReport)
		r.GET("/:name", GetReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports [options]
func OptionsReportList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Failure		404	{object}	httputil.HTTPError
// @Param			name	path	string	true	"Name of the report"
// @Router			/v1/reports/{name} [options]
func OptionsReport(c *gin.Context) {
	_, err := pivot.Lookup(c.Param("name"))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		List reports
// @Description	Returns all available reports
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	ReportListResponse
// @Router			/v1/reports [get]
func GetReports(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	definitions := pivot.Definitions()
	data := make([]ReportDefinition, 0, len(definitions))
	for _, d := range definitions {
		data = append(data, ReportDefinition{
			Name:        d.Name,
			Label:       d.Label,
			Description: d.Description,
			Component:   d.Component,
			Links: ReportLinks{
				Self: url + "/v1/reports/" + d.Name,
			},
		})
	}

	c.JSON(http.StatusOK, ReportListResponse{
		Data: data,
	})
}

// @Summary		Get report
// @Description	Builds the report. Every row is one membership, with one column for every price field option used by membership line items.
// @Tags			Reports
// @Produce		json
// @Success		200				{object}	ReportResponse
// @Failure		400				{object}	ReportResponse
// @Failure		404				{object}	ReportResponse
// @Failure		500				{object}	ReportResponse
// @Param			name			path		string	true	"Name of the report"
// @Param			status			query		[]uint	false	"Membership status IDs"
// @Param			membershipType	query		[]uint	false	"Membership type IDs"
// @Param			contact			query		[]uint	false	"Contact IDs"
// @Param			startFrom		query		string	false	"Earliest start date, YYYY-MM-DD"
// @Param			startTo			query		string	false	"Latest start date, YYYY-MM-DD"
// @Param			scopeColumns	query		bool	false	"Only create columns for options used by the included memberships"
// @Param			raw				query		bool	false	"Return amounts as numbers"
// @Param			sql				query		bool	false	"Include the aggregate query"
// @Router			/v1/reports/{name} [get]
func GetReport(c *gin.Context) {
	def, err := pivot.Lookup(c.Param("name"))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	var filter ReportQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	opts, err := filter.options(hiddenColumns)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	engine := pivot.NewEngine(pivot.GormAccessor{DB: models.DB}, def, formatter)
	ctx := models.WithRequest(c.Request.Context(), requestid.Get(c), def.Name)
	report, err := engine.Build(ctx, opts)
	if err != nil {
		s := message(c, err)
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	data := Report{
		Name:    report.Name,
		Label:   def.Label,
		Columns: report.Columns,
		Rows:    report.Records,
	}

	if filter.SQL {
		data.SQL = report.SQL
	}

	c.JSON(http.StatusOK, ReportResponse{
		Data: &data,
	})
}
