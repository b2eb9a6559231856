package services

import (
	"time"

	"github.com/sbilibin2017/gw-governance/internal/models"
)

// Clock returns the current time.
type Clock func() models.Millis

// SystemClock reads the wall clock.
func SystemClock() models.Millis {
	return models.MillisFromTime(time.Now())
}
