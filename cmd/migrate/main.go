package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"pizza/cmd"
	"pizza/internal/adapters/out/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: migrate up|down [steps]|version|force <version>")
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	m, err := migrations.New(configs.DatabaseURL())
	if err != nil {
		log.Fatalf("open migrations: %v", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := run(m, flag.Args()); err != nil {
		log.Fatalf("%s: %v", flag.Arg(0), err)
	}
}

func run(m *migrate.Migrate, args []string) error {
	switch args[0] {
	case "up":
		return ignoreNoChange(m.Up())
	case "down":
		if len(args) < 2 {
			return ignoreNoChange(m.Down())
		}
		steps, err := strconv.Atoi(args[1])
		if err != nil || steps <= 0 {
			return fmt.Errorf("steps must be a positive integer, got %q", args[1])
		}
		return ignoreNoChange(m.Steps(-steps))
	case "version":
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	case "force":
		if len(args) < 2 {
			return errors.New("force needs a version")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("version must be an integer, got %q", args[1])
		}
		return m.Force(version)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
