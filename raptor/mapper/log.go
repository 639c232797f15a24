package mapper

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "mapper")
