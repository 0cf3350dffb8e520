package app_config

import (
	"io/ioutil"
	"log"

	"gopkg.in/yaml.v2"
)

// This is the app config for the api server.
type ServerAppConfig struct {
	// Address the http server binds to, for example ":8080".
	SERVER_ADDR string `yaml:"SERVER_ADDR"`
	// Origins allowed by CORS. Empty list falls back to allow-all, which is
	// only acceptable in development.
	ALLOWED_ORIGINS []string `yaml:"ALLOWED_ORIGINS"`
	// Session token lifetime in hours.
	TOKEN_TTL_HOUR int64 `yaml:"TOKEN_TTL_HOUR"`
}

func ParseServerAppConfig(path string) ServerAppConfig {
	c := ServerAppConfig{}
	yamlFile, err := ioutil.ReadFile(path)
	if err != nil {
		log.Fatal("yamlFile. get err: ", err.Error())
	}
	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		log.Fatal("Unmarshal: ", err)
	}
	return c
}
