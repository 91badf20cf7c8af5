package robust

import "github.com/sirupsen/logrus"

// log is the package-level logger for the snap-and-retry recovery path.
// Callers that want recovery visibility wired into their own logging stack
// can replace it with SetLogger.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used on the snap-and-retry fallback path.
func SetLogger(l logrus.FieldLogger) {
	log = l
}
