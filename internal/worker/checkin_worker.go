package worker

import (
	"github.com/ironhall/gym-service/internal/service"
)

// StartCheckInWorker registers the check-in event handlers.
func StartCheckInWorker(recorder *service.CheckInRecorder) {
	if recorder == nil {
		return
	}
	recorder.RegisterHandlers()
}
