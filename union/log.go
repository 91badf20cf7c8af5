package union

import "github.com/sirupsen/logrus"

// log is the package-level logger for the buffer-zero fallback path.
var log logrus.FieldLogger = logrus.StandardLogger()

// SetLogger replaces the logger used on the buffer-zero fallback path.
func SetLogger(l logrus.FieldLogger) {
	log = l
}
