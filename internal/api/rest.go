package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tpfand/tpfand/internal/persistence"
	"github.com/tpfand/tpfand/internal/profile"
	"github.com/tpfand/tpfand/internal/status"
)

const (
	urlParamId      = "id"
	indentationChar = "  "
)

type (
	Result struct {
		Name    string `json:"name"`
		Message string `json:"message"`
	}

	// Sources are the read-only views served by the REST API.
	Sources struct {
		Store *status.Store
		Table *profile.Table
		// History is nil if the transition journal is disabled
		History persistence.Persistence
		// Registerer receives the request metrics, prometheus.DefaultRegisterer if nil
		Registerer prometheus.Registerer
	}
)

func CreateRestService(sources Sources) *echo.Echo {
	echoRest := echo.New()
	echoRest.HideBanner = true
	echoRest.HidePort = true

	// Root level middleware
	echoRest.Pre(middleware.AddTrailingSlash())

	echoRest.Use(middleware.Secure())
	echoRest.Use(middleware.Recover())

	registerer := sources.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	echoRest.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "tpfand",
		Subsystem:  "api",
		Registerer: registerer,
	}))

	echoRest.GET("/alive/", isAlive)

	registerProfileEndpoints(echoRest, sources.Table)
	registerStatusEndpoints(echoRest, sources.Store)
	registerHistoryEndpoints(echoRest, sources.History)

	return echoRest
}

// returns an empty "ok" answer
func isAlive(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

// return a "not found" message
func returnNotFound(c echo.Context, id string) (err error) {
	return c.JSONPretty(http.StatusNotFound, &Result{
		Name:    "Not found",
		Message: "No item with id '" + id + "' found",
	}, indentationChar)
}

// return the error message of an error
func returnError(c echo.Context, e error) (err error) {
	return c.JSONPretty(http.StatusInternalServerError, &Result{
		Name:    "Unknown Error",
		Message: e.Error(),
	}, indentationChar)
}
