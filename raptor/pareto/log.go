package pareto

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "pareto")
