package main

import (
	"os"

	"github.com/MKhiriev/go-env-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		build:  models.NewBuildInfo(buildVersion, buildDate, buildCommit),
	}

	os.Exit(a.execute(os.Args[1:]))
}
