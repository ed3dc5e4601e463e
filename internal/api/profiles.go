package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/tpfand/tpfand/internal/profile"
)

func registerProfileEndpoints(rest *echo.Echo, table *profile.Table) {
	group := rest.Group("/profile")

	group.GET("/", func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, table.Profiles(), indentationChar)
	})
	group.GET("/:"+urlParamId+"/", func(c echo.Context) error {
		id := c.Param(urlParamId)
		index, err := strconv.Atoi(id)
		if err != nil || index < 0 || index >= table.Len() {
			return returnNotFound(c, id)
		}
		return c.JSONPretty(http.StatusOK, table.Profiles()[index], indentationChar)
	})
}
