package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		logrus.WithError(err).Error("export failed")
		os.Exit(1)
	}
}
