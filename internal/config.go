package internal

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var c *config

const (
	RunAddress     = "RUN_ADDRESS"
	DatabaseURI    = "DATABASE_URI"
	ConsumerKey    = "PESAPAL_CONSUMER_KEY"
	ConsumerSecret = "PESAPAL_CONSUMER_SECRET"
	APIURL         = "PESAPAL_API_URL"
	BaseURL        = "BASE_URL"
)

const (
	defaultRunAddress = "localhost:8080"
	defaultAPIURL     = "https://cybqa.pesapal.com/pesapalv3/api" // sandbox
	defaultBaseURL    = "http://localhost:8080"
)

type config struct {
	RunAddress     string
	DatabaseURI    string
	ConsumerKey    string
	ConsumerSecret string
	APIURL         string
	BaseURL        string
}

func NewConfig() (*config, error) {
	c = new(config)

	flag.StringVar(&c.RunAddress, "a", setEnvOrDefault(RunAddress, defaultRunAddress), "host to listen on")
	flag.StringVar(&c.DatabaseURI, "d", setEnvOrDefault(DatabaseURI, ""), "postgres connection path")
	flag.StringVar(&c.ConsumerKey, "k", setEnvOrDefault(ConsumerKey, ""), "pesapal consumer key")
	flag.StringVar(&c.ConsumerSecret, "s", setEnvOrDefault(ConsumerSecret, ""), "pesapal consumer secret")
	flag.StringVar(&c.APIURL, "u", setEnvOrDefault(APIURL, defaultAPIURL), "pesapal api base url")
	flag.StringVar(&c.BaseURL, "b", setEnvOrDefault(BaseURL, defaultBaseURL), "public base url for payment callbacks")

	flag.Parse()

	var missing []string
	if c.DatabaseURI == "" {
		missing = append(missing, DatabaseURI)
	}
	if c.ConsumerKey == "" {
		missing = append(missing, ConsumerKey)
	}
	if c.ConsumerSecret == "" {
		missing = append(missing, ConsumerSecret)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return c, nil
}

func setEnvOrDefault(env, def string) string {
	res, e := os.LookupEnv(env)
	if !e {
		res = def
	}
	return res
}
