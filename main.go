package main

import (
	"os"

	"github.com/leomartinch/raytracer/cmd"
	"github.com/leomartinch/raytracer/log"
)

var logger = log.New("raytracer")

func main() {
	if err := cmd.App().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
