package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/qdm12/reprint"
	"github.com/tpfand/tpfand/internal/controller"
	"github.com/tpfand/tpfand/internal/status"
)

type transitionResponse struct {
	Time      time.Time `json:"time"`
	FromLevel int       `json:"fromLevel"`
	ToLevel   int       `json:"toLevel"`
	Value     int       `json:"value"`
	Cause     string    `json:"cause"`
}

type statusResponse struct {
	Controller     controller.Snapshot `json:"controller"`
	LastTransition *transitionResponse `json:"lastTransition,omitempty"`
}

func registerStatusEndpoints(rest *echo.Echo, store *status.Store) {
	rest.GET("/status/", func(c echo.Context) error {
		response := statusResponse{
			Controller: store.Controller(),
		}
		if transition, at, ok := store.LastTransition(); ok {
			response.LastTransition = &transitionResponse{
				Time:      at,
				FromLevel: transition.FromLevel(),
				ToLevel:   transition.To.Level,
				Value:     transition.Value,
				Cause:     string(transition.Cause),
			}
		}
		return c.JSONPretty(http.StatusOK, response, indentationChar)
	})

	group := rest.Group("/zone")

	group.GET("/", func(c echo.Context) error {
		data := reprint.This(store.Zones())
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
	group.GET("/:"+urlParamId+"/", func(c echo.Context) error {
		id := c.Param(urlParamId)

		data, exists := store.Zone(id)
		if !exists {
			return returnNotFound(c, id)
		}
		return c.JSONPretty(http.StatusOK, data, indentationChar)
	})
}
