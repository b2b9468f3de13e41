package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// TrackTime logs how long a pipeline stage took. Use with defer.
func TrackTime(stage string, start time.Time) {
	elapsed := time.Since(start)
	log.WithField("stage", stage).Debugf("%s took %d ms", stage, elapsed.Milliseconds())
}
