package cost

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "cost")
