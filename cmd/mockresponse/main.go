package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/unbasical/mockresponse/common"
	"github.com/unbasical/mockresponse/configs"
	"github.com/unbasical/mockresponse/pkg/constants/logging"
	"github.com/unbasical/mockresponse/pkg/recorder"
	"github.com/unbasical/mockresponse/pkg/response"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

//nolint:gochecknoglobals,gocritic
var (
	app = kingpin.New("mockresponse", "Helpers for writing assertions against recorded responses.")

	// Config
	configurationPath = app.Flag("config", "Path to the configuration yaml.").Short('k').Envar("MOCKRESPONSE_CONF").ExistingFile()
	logLevel          = app.Flag("log-level", "Overrides the configured Log-Level. Must be one of [DEBUG, INFO, WARN, ERROR]").Envar("LOG_LEVEL").Enum("DEBUG", "INFO", "WARN", "ERROR", "debug", "info", "warn", "error")

	// Commands
	cookie         = app.Command("cookie", "Print the encoded Set-Cookie value a recorder stores for the given cookie.")
	cookieName     = cookie.Arg("name", "Name of the cookie.").Required().String()
	cookieValue    = cookie.Arg("value", "Value of the cookie.").String()
	cookieExpires  = cookie.Flag("expires", "Expiry as Unix timestamp or date string.").String()
	cookiePath     = cookie.Flag("path", "Path attribute.").String()
	cookieDomain   = cookie.Flag("domain", "Domain attribute.").String()
	cookieSecure   = cookie.Flag("secure", "Set the Secure flag.").Bool()
	cookieHTTPOnly = cookie.Flag("http-only", "Set the HttpOnly flag.").Bool()
	cookieSameSite = cookie.Flag("same-site", "SameSite attribute.").String()
	cookiePriority = cookie.Flag("priority", "Priority attribute.").String()

	snapshot     = app.Command("snapshot", "Print the snapshot of a response recorded with the given status, headers and body.")
	snapshotCode = snapshot.Flag("status", "Status code.").Short('s').Default("200").Int()
	snapshotHdrs = snapshot.Flag("header", "Header as NAME=VALUE, can be repeated.").Short('H').StringMap()
	snapshotBody = snapshot.Flag("body", "Body.").Short('b').String()

	config = app.Command("config", "Print the effective configuration.")
)

func main() {
	app.HelpFlag.Short('h')
	app.Version(common.Version)

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	conf := loadConfig()
	if *logLevel != "" {
		conf.Logging.Level = *logLevel
	}
	configs.ConfigureLogging(conf.Logging, os.Stderr)

	var err error
	switch cmd {
	case cookie.FullCommand():
		err = printCookie(os.Stdout)
	case snapshot.FullCommand():
		err = printSnapshot(os.Stdout)
	case config.FullCommand():
		err = yaml.NewEncoder(os.Stdout).Encode(conf)
	default:
		logging.LogForComponent("main").Fatal("Started mockresponse with a unknown command!")
	}
	if err != nil {
		logging.LogForComponent("main").Fatal(err)
	}
}

func loadConfig() *configs.Config {
	if *configurationPath == "" {
		return configs.Default()
	}
	conf, err := configs.FileConfigLoader{FilePath: *configurationPath}.Load()
	if err != nil {
		log.Fatalf("Unable to load config %q: %s", *configurationPath, err)
	}
	return conf
}

func printCookie(out io.Writer) error {
	c := response.Cookie{
		Name:     *cookieName,
		Value:    *cookieValue,
		Path:     *cookiePath,
		Domain:   *cookieDomain,
		Secure:   *cookieSecure,
		HTTPOnly: *cookieHTTPOnly,
		SameSite: *cookieSameSite,
		Priority: *cookiePriority,
	}
	if *cookieExpires != "" {
		if ts, err := strconv.ParseInt(*cookieExpires, 10, 64); err == nil {
			c.Expires = ts
		} else {
			c.Expires = *cookieExpires
		}
	}

	_, err := fmt.Fprintln(out, response.EncodeCookie(c))
	return err
}

func printSnapshot(out io.Writer) error {
	r := recorder.New(recorder.WithConnectionID("cli"))
	names := make([]string, 0, len(*snapshotHdrs))
	for name := range *snapshotHdrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.Header(name, (*snapshotHdrs)[name])
	}
	r.Status(*snapshotCode)
	r.End([]byte(*snapshotBody))

	data, err := r.Snapshot().WithoutConnectionID().YAML()
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
