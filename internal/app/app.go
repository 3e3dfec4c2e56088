package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog/log"
)

var Version = "0.3.0"

var ConfigPath string
var Info = map[string]any{
	"version": Version,
}

func Init() {
	var confs flagConfig
	var version bool

	flag.Var(&confs, "config", "go711 config (path to file or raw text), support multiple")
	flag.BoolVar(&version, "version", false, "Print the version of the application and exit")
	flag.Parse()

	if version {
		fmt.Printf("go711 version %s: %s\n", Version, buildInfo())
		os.Exit(0)
	}

	initConfig(confs)
	initLogger()

	log.Logger = Logger

	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	Logger.Info().Str("version", Version).Str("platform", platform).Msg("go711")
	Logger.Debug().Str("version", runtime.Version()).Msg("build")

	if ConfigPath != "" {
		Logger.Info().Str("path", ConfigPath).Msg("config")
	}
}

func buildInfo() string {
	vcsRevision := ""
	vcsTime := time.Now().Local()
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				if len(setting.Value) > 7 {
					vcsRevision = setting.Value[:7]
				} else {
					vcsRevision = setting.Value
				}
				vcsRevision = "(" + vcsRevision + ") "
			}
			if setting.Key == "vcs.time" {
				vcsTime, _ = time.Parse(time.RFC3339, setting.Value)
			}
		}
	}
	return fmt.Sprintf("%s%s %s/%s", vcsRevision, vcsTime.Local().String(), runtime.GOOS, runtime.GOARCH)
}
