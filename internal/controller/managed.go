package controller

import (
	"context"

	"github.com/tpfand/tpfand/internal/fans"
	"github.com/tpfand/tpfand/internal/ui"
)

// Loop is the part of the controller driven by RunManaged.
type Loop interface {
	Run(ctx context.Context) error
}

// RunManaged hands the fan to the loop for its whole lifetime and returns
// control to the firmware once it exits, however it exits.
func RunManaged(ctx context.Context, loop Loop, mode fans.ModeController) error {
	if err := mode.SwitchToManual(); err != nil {
		ui.Warning("Could not enable manual fan control, trying to continue anyway: %v", err)
	}

	defer func() {
		autoErr := mode.SwitchToAuto()
		if autoErr != nil {
			ui.ErrorAndNotify("Fan Control Error", "Unable to return fan to automatic control, make sure it is running! %v", autoErr)
			return
		}
		ui.Info("Fan returned to automatic control")
	}()

	return loop.Run(ctx)
}
