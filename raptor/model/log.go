package model

import "github.com/sirupsen/logrus"

var log = logrus.WithField("module", "model")
