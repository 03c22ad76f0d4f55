package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/robert-malhotra/go-stac-search/auth"
	stacclient "github.com/robert-malhotra/go-stac-search/client"
)

var (
	baseURLFlag = &cli.StringFlag{
		Name:     "url",
		Aliases:  []string{"u"},
		Usage:    "STAC API base URL",
		Required: true,
	}
	timeoutFlag = &cli.DurationFlag{
		Name:    "timeout",
		Aliases: []string{"t"},
		Usage:   "HTTP client timeout (e.g. 30s, 1m)",
		Value:   30 * time.Second,
	}
	apiKeyFlag = &cli.StringFlag{
		Name:  "api-key",
		Usage: "API key sent with every request",
	}
	apiKeyHeaderFlag = &cli.StringFlag{
		Name:  "api-key-header",
		Usage: "Header name for --api-key",
		Value: "X-API-Key",
	}
	bearerFlag = &cli.StringFlag{
		Name:  "bearer",
		Usage: "Bearer token sent with every request",
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "Log every request",
	}
)

func main() {
	cmd := &cli.Command{
		Name:  "stac-search",
		Usage: "Search and browse STAC APIs",
		Flags: []cli.Flag{baseURLFlag, timeoutFlag, apiKeyFlag, apiKeyHeaderFlag, bearerFlag, verboseFlag},
		Commands: []*cli.Command{
			newSearchCommand(),
			newCollectionsCommand(),
			newItemsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// clientFromCommand builds the API client from the global flags, wiring in
// the auth transport and logger.
func clientFromCommand(cmd *cli.Command) (*stacclient.Client, error) {
	transport := http.DefaultTransport
	if key := cmd.String(apiKeyFlag.Name); key != "" {
		transport = &auth.APIKey{Key: key, Header: cmd.String(apiKeyHeaderFlag.Name), Base: transport}
	}
	if token := cmd.String(bearerFlag.Name); token != "" {
		transport = &auth.BearerToken{Token: token, Base: transport}
	}

	opts := []stacclient.ClientOption{
		stacclient.WithBaseURL(cmd.String(baseURLFlag.Name)),
		stacclient.WithHTTPClient(&http.Client{Transport: transport}),
		stacclient.WithTimeout(cmd.Duration(timeoutFlag.Name)),
	}
	if cmd.Bool(verboseFlag.Name) {
		opts = append(opts, stacclient.WithLogger(newLogger()))
	}
	return stacclient.New(opts...)
}

// charmLogger adapts charmbracelet/log to the client's Logger interface.
type charmLogger struct {
	logger *log.Logger
}

func newLogger() *charmLogger {
	return &charmLogger{
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
		}),
	}
}

func (l *charmLogger) Debugf(format string, args ...any) {
	l.logger.Debugf(format, args...)
}

func (l *charmLogger) Errorf(format string, args ...any) {
	l.logger.Errorf(format, args...)
}
