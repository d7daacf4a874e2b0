package main

import (
	"os"

	"github.com/oliverisaac/goli"
	"github.com/sirupsen/logrus"
)

func init() {
	goli.InitLogrus(logrus.InfoLevel)
}

func main() {
	if err := newCLI().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
