package main

import (
	"github.com/AlexxIT/go711/internal/app"
	"github.com/AlexxIT/go711/internal/transcode"
)

func main() {
	app.Init()       // init config and logs
	transcode.Init() // run jobs from config

	if err := app.DumpLog(); err != nil {
		app.Logger.Error().Err(err).Msg("[app] dump log")
	}
}
