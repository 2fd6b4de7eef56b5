package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/encircleuk/civicrm.extendedreport/pkg/controllers/v1"
	"github.com/encircleuk/civicrm.extendedreport/pkg/httputil"
	"github.com/encircleuk/civicrm.extendedreport/pkg/pivot"
	"github.com/encircleuk/civicrm.extendedreport/test"
	"github.com/stretchr/testify/assert"
)

const reportURL = "http://example.com/v1/reports/membership-price-pivot"

// reportResponse is the response of the report endpoint with generic rows.
type reportResponse struct {
	Data *struct {
		Name    string           `json:"name"`
		Label   string           `json:"label"`
		Columns []pivot.Column   `json:"columns"`
		Rows    []map[string]any `json:"rows"`
		SQL     string           `json:"sql"`
	} `json:"data"`
	Error *string `json:"error"`
}

func columnIDs(columns []pivot.Column) []string {
	var ids []string
	for _, c := range columns {
		if c.Dynamic {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (suite *TestSuiteStandard) TestReportOptions() {
	tests := []struct {
		path   string
		status int
	}{
		{"http://example.com/v1", http.StatusNoContent},
		{"http://example.com/v1/reports", http.StatusNoContent},
		{reportURL, http.StatusNoContent},
		{"http://example.com/v1/reports/contribution-pivot", http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path)
			test.AssertHTTPStatus(t, &recorder, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET", recorder.Header().Get("allow"))
				return
			}

			var response httputil.HTTPError
			test.DecodeResponse(t, &recorder, &response)
			assert.Equal(t, "there is no report with this name: 'contribution-pivot'", response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestGetV1() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("http://example.com/v1/reports", response.Links.Reports)
}

func (suite *TestSuiteStandard) TestGetReports() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ReportListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal("membership-price-pivot", response.Data[0].Name)
	suite.Assert().Equal("Extended Report - Membership Price Pivot", response.Data[0].Label)
	suite.Assert().Equal("CiviMember", response.Data[0].Component)
	suite.Assert().Equal(reportURL, response.Data[0].Links.Self)
	suite.Assert().Nil(response.Error)
}

func (suite *TestSuiteStandard) TestGetReport() {
	gold := suite.createTestPriceFieldValue(3, "Gold")
	option := suite.createTestPriceFieldValue(7, "")
	a := suite.createTestMembership("Jane Doe", 1, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b := suite.createTestMembership("John Doe", 1, 1, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	suite.createTestLineItem(a, gold, "100")
	suite.createTestLineItem(b, option, "1234.5")

	recorder := test.Request(suite.T(), http.MethodGet, reportURL)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response reportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)

	suite.Assert().Equal("membership-price-pivot", response.Data.Name)
	suite.Assert().Equal([]string{"price_opt_3", "price_opt_7"}, columnIDs(response.Data.Columns))
	suite.Assert().Equal("Option 7", response.Data.Columns[len(response.Data.Columns)-1].Label)
	suite.Assert().Empty(response.Data.SQL)

	suite.Require().Len(response.Data.Rows, 2)
	suite.Assert().Equal(float64(a.ID), response.Data.Rows[0]["membership_id"])
	suite.Assert().Equal("Jane Doe", response.Data.Rows[0]["contact_display_name"])
	suite.Assert().Equal("100.00 $", response.Data.Rows[0]["price_opt_3"])
	suite.Assert().Equal("0.00 $", response.Data.Rows[0]["price_opt_7"])
	suite.Assert().Equal("0.00 $", response.Data.Rows[1]["price_opt_3"])
	suite.Assert().Equal("1,234.50 $", response.Data.Rows[1]["price_opt_7"])
}

func (suite *TestSuiteStandard) TestGetReportRaw() {
	gold := suite.createTestPriceFieldValue(3, "Gold")
	a := suite.createTestMembership("Jane Doe", 1, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	suite.createTestLineItem(a, gold, "100")
	suite.createTestLineItem(a, gold, "12.5")
	suite.createTestLineItem(a, gold, "0.1")
	suite.createTestLineItem(a, gold, "0.2")

	recorder := test.Request(suite.T(), http.MethodGet, reportURL+"?raw=true&sql=true")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response reportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data.Rows, 1)
	suite.Assert().Regexp(`"price_opt_3":112\.8[,}]`, recorder.Body.String(), "Raw amounts must be exact JSON numbers")
	suite.Assert().Equal(112.8, response.Data.Rows[0]["price_opt_3"])
	suite.Assert().Contains(response.Data.SQL, "AS price_opt_3")
}

func (suite *TestSuiteStandard) TestGetReportFilters() {
	gold := suite.createTestPriceFieldValue(3, "Gold")
	silver := suite.createTestPriceFieldValue(4, "Silver")
	a := suite.createTestMembership("Jane Doe", 1, 1, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC))
	b := suite.createTestMembership("John Doe", 2, 2, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	c := suite.createTestMembership("Erika Mustermann", 2, 1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	suite.createTestLineItem(a, gold, "100")
	suite.createTestLineItem(b, silver, "50")
	suite.createTestLineItem(c, gold, "20")

	tests := []struct {
		name    string
		query   string
		ids     []uint
		columns []string
	}{
		{"None", "", []uint{a.ID, b.ID, c.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Status", "status=1", []uint{a.ID, c.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Status list", "status=1&status=2&status=1", []uint{a.ID, b.ID, c.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Membership type", "membershipType=2", []uint{b.ID, c.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Contact", fmt.Sprintf("contact=%d", *b.ContactID), []uint{b.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Start from", "startFrom=2024-01-01", []uint{b.ID, c.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Start to", "startTo=2024-01-01", []uint{a.ID, b.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Start range", "startFrom=2024-01-01&startTo=2024-01-31", []uint{b.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Combined", "status=1&membershipType=2", []uint{c.ID}, []string{"price_opt_3", "price_opt_4"}},
		{"Scoped columns", "status=2&scopeColumns=true", []uint{b.ID}, []string{"price_opt_4"}},
		{"No match", "status=9", []uint{}, []string{"price_opt_3", "price_opt_4"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, reportURL+"?"+tt.query)
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response reportResponse
			test.DecodeResponse(t, &recorder, &response)

			ids := make([]uint, 0)
			for _, row := range response.Data.Rows {
				ids = append(ids, uint(row["membership_id"].(float64)))
			}

			assert.Equal(t, tt.ids, ids)
			assert.Equal(t, tt.columns, columnIDs(response.Data.Columns))
		})
	}
}

func (suite *TestSuiteStandard) TestGetReportBadRequest() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Status not a number", "status=active", ""},
		{"Contact negative", "contact=-1", ""},
		{"Date format", "startFrom=01.01.2024", ""},
		{"Boolean", "raw=maybe", ""},
		{"Date range", "startFrom=2024-02-01&startTo=2024-01-01", "the startFrom parameter must not be after the startTo parameter"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodGet, reportURL+"?"+tt.query)
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)

			var response reportResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Nil(t, response.Data)
			if tt.err != "" {
				assert.Equal(t, tt.err, *response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestGetReportNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/contribution-pivot")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var response reportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("there is no report with this name: 'contribution-pivot'", *response.Error)
}

func (suite *TestSuiteStandard) TestGetReportDatabaseError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodGet, reportURL)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	var response reportResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Nil(response.Data)
	suite.Assert().True(strings.HasPrefix(*response.Error, "the report could not be built during discovery"), *response.Error)
	suite.Assert().NotContains(*response.Error, "database is closed")
}

func (suite *TestSuiteStandard) TestMethodNotAllowed() {
	recorder := test.Request(suite.T(), http.MethodPost, reportURL)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
