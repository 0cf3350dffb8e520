/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
)

var (
	IsDevelopment bool
	ServiceName   string
	ByPassAuth    bool
	ConfigPath    string
)

func init() {
	flag.BoolVar(&IsDevelopment, "dev", true, "set to true if the current run is for development. default value is true")
	flag.StringVar(&ServiceName, "service", APIServer, "name the service reports in logs and traces")
	flag.BoolVar(&ByPassAuth, "no_auth", false, "trust the raw 'sub' header instead of validating session tokens. dev only")
	flag.StringVar(&ConfigPath, "config", "cmd/server/config.yaml", "path to the yaml app config")
}

// Parse must be called once from main, after all packages had a chance to
// register their flags. Library code only declares flags in init.
func Parse() {
	flag.Parse()
}
