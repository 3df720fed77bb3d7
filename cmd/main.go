package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const usage = `usage: gw-vacancies [-c config.env] <command> [flags]

commands:
  serve                               run the HTTP API and the schedulers (default)
  init_db                             apply migrations and load vacancies from every source
  update_vacancies [-p source]...     load vacancies from the given sources
  run_parsers [-p source]...          print parsed vacancies without storing them
  create_user -u username -p password create an administrator
  drop_expired_vacancies              delete vacancies older than the retention window
`

// @title gw-vacancies API
// @version 1.0.0
// @description Job vacancy aggregation service: public submissions, moderation and full text search
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, args := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := execute(context.Background(), cfg, args, os.Stdout); err != nil {
		logger.Log.Errorw("command failed", "err", err)
		logger.Sync()
		os.Exit(1)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path
// and the remaining command arguments.
func parseFlags() (string, []string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()
	return *c, flag.Args()
}

// execute dispatches a subcommand
func execute(ctx context.Context, cfg appConfig, args []string, out io.Writer) error {
	command := "serve"
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}

	switch command {
	case "serve":
		return run(ctx, cfg)
	case "init_db":
		return initDB(ctx, cfg)
	case "update_vacancies":
		sources, err := parseSourceFlags(command, args)
		if err != nil {
			return err
		}
		return updateVacancies(ctx, cfg, sources, out)
	case "run_parsers":
		sources, err := parseSourceFlags(command, args)
		if err != nil {
			return err
		}
		return runParsers(ctx, cfg, sources, out)
	case "create_user":
		username, password, err := parseUserFlags(args)
		if err != nil {
			return err
		}
		return createUser(ctx, cfg, username, password, out)
	case "drop_expired_vacancies":
		return dropExpiredVacancies(ctx, cfg, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

// sourceList collects repeated -p flags
type sourceList []string

func (s *sourceList) String() string {
	return strings.Join(*s, ",")
}

func (s *sourceList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func parseSourceFlags(command string, args []string) ([]string, error) {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	var sources sourceList
	fs.Var(&sources, "p", "Source to process, repeatable. Every active source when omitted")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return sources, nil
}

func parseUserFlags(args []string) (string, string, error) {
	fs := flag.NewFlagSet("create_user", flag.ContinueOnError)
	username := fs.String("u", "", "Username")
	password := fs.String("p", "", "Password")
	if err := fs.Parse(args); err != nil {
		return "", "", err
	}
	if *username == "" || *password == "" {
		return "", "", fmt.Errorf("create_user: -u and -p are required")
	}
	return *username, *password, nil
}
