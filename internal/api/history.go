package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tpfand/tpfand/internal/persistence"
)

const defaultHistoryLimit = 50

func registerHistoryEndpoints(rest *echo.Echo, history persistence.Persistence) {
	rest.GET("/history/", func(c echo.Context) error {
		if history == nil {
			return c.JSONPretty(http.StatusNotFound, &Result{
				Name:    "Not found",
				Message: "The transition history is disabled",
			}, indentationChar)
		}

		limit := defaultHistoryLimit
		if param := c.QueryParam("limit"); len(param) > 0 {
			value, err := strconv.Atoi(param)
			if err != nil {
				return c.JSONPretty(http.StatusBadRequest, &Result{
					Name:    "Bad request",
					Message: "Invalid limit '" + param + "'",
				}, indentationChar)
			}
			limit = value
		}

		records, err := history.LoadTransitions(limit)
		if err != nil {
			return returnError(c, err)
		}
		if records == nil {
			records = []persistence.Record{}
		}
		return c.JSONPretty(http.StatusOK, records, indentationChar)
	})
}
