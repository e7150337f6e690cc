// adminctl is the terminal moderation client. It shares the credential
// store with the bot, under its own namespace, so a login survives between
// invocations when postgres or redis is configured.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/caarlos0/env/v11"

	tutorbot "github.com/shiksha-labs/tutorbot"
	"github.com/shiksha-labs/tutorbot/internal/adminutil"
	"github.com/shiksha-labs/tutorbot/internal/apiclient"
	"github.com/shiksha-labs/tutorbot/internal/credstore"
	"github.com/shiksha-labs/tutorbot/internal/repository"
)

type cliConfig struct {
	APIBaseURL    string        `env:"API_BASE_URL" envDefault:"http://localhost:9000/api"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
}

const usage = `Usage: adminctl <command> [flags]

Commands:
  login -email <email> -password <password>   sign in as a platform admin
  logout                                      drop the stored admin session
  students [-q <query>] [-csv <file>]         list students, optionally filtered
  student <id>                                show one student
  activate <id>                               re-enable a deactivated student
  deactivate <id>                             disable a student account
`

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "adminctl:", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := cliConfig{}
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	session := credstore.NewSession(credstore.Prefixed(store, "cli:"))
	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, session)

	switch os.Args[1] {
	case "login":
		return cmdLogin(ctx, client, os.Args[2:])
	case "logout":
		return session.AdminLogout(ctx)
	case "students":
		return cmdStudents(ctx, client, os.Args[2:])
	case "student":
		return cmdStudent(ctx, client, os.Args[2:])
	case "activate":
		return cmdModerate(ctx, client, os.Args[2:], true)
	case "deactivate":
		return cmdModerate(ctx, client, os.Args[2:], false)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
		return nil
	}
}

func cmdLogin(ctx context.Context, client *apiclient.Client, args []string) error {
	fl := flag.NewFlagSet("login", flag.ExitOnError)
	email := fl.String("email", "", "admin email")
	password := fl.String("password", "", "admin password")
	fl.Parse(args)
	if *email == "" || *password == "" {
		return fmt.Errorf("login needs -email and -password")
	}

	resp, err := client.Admin.Login(ctx, *email, *password)
	if err != nil {
		return err
	}
	if err := client.Session().SaveAdminLogin(ctx, resp.Token, resp.User); err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", resp.User.Email)
	return nil
}

func cmdStudents(ctx context.Context, client *apiclient.Client, args []string) error {
	fl := flag.NewFlagSet("students", flag.ExitOnError)
	query := fl.String("q", "", "filter by name, email or mobile")
	csvPath := fl.String("csv", "", "write the list to a CSV file")
	fl.Parse(args)

	students, err := client.Admin.Users(ctx)
	if err != nil {
		return err
	}
	students = adminutil.FilterStudents(students, *query)

	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			return fmt.Errorf("create csv: %w", err)
		}
		defer f.Close()
		w := csv.NewWriter(f)
		if err := w.Write(adminutil.CSVHeader); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		for _, s := range students {
			if err := w.Write(adminutil.CSVRow(s)); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("wrote %d students to %s\n", len(students), *csvPath)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMOBILE\tCLASS\tSTATUS\tREGISTERED")
	for _, s := range students {
		status := "active"
		if !s.IsActive {
			status = "inactive"
		}
		mobile, class := "", ""
		if s.Mobile != nil {
			mobile = *s.Mobile
		}
		if s.ClassName != nil {
			class = *s.ClassName
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID, s.Name, mobile, class, status, adminutil.FormatDate(s.CreatedAt))
	}
	return tw.Flush()
}

func cmdStudent(ctx context.Context, client *apiclient.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("student needs exactly one id")
	}
	s, err := client.Admin.UserByID(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n", s.Name, s.ID)
	if s.Age > 0 {
		fmt.Printf("  age:        %d\n", s.Age)
	}
	if s.Mobile != nil {
		fmt.Printf("  mobile:     %s\n", *s.Mobile)
	}
	if s.Email != nil {
		fmt.Printf("  email:      %s\n", *s.Email)
	}
	if s.BoardName != nil {
		fmt.Printf("  board:      %s\n", *s.BoardName)
	}
	if s.ClassName != nil {
		fmt.Printf("  class:      %s\n", *s.ClassName)
	}
	fmt.Printf("  active:     %v\n", s.IsActive)
	fmt.Printf("  verified:   %v\n", s.IsVerified)
	if !s.CreatedAt.IsZero() {
		fmt.Printf("  registered: %s (%s)\n",
			adminutil.FormatDate(s.CreatedAt), adminutil.DaysAgo(s.CreatedAt, time.Now()))
	}
	return nil
}

func cmdModerate(ctx context.Context, client *apiclient.Client, args []string, activate bool) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one student id")
	}

	var (
		resp apiclient.AdminActionResponse
		err  error
	)
	if activate {
		resp, err = client.Admin.ActivateUser(ctx, args[0])
	} else {
		resp, err = client.Admin.DeactivateUser(ctx, args[0])
	}
	if err != nil {
		return err
	}
	if resp.Message != "" {
		fmt.Println(resp.Message)
	} else {
		fmt.Println("done")
	}
	return nil
}

func buildStore(ctx context.Context, cfg cliConfig) (credstore.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		migrationsFS, err := fs.Sub(tutorbot.MigrationsFS, "migrations")
		if err != nil {
			return nil, nil, fmt.Errorf("open migrations: %w", err)
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			return nil, nil, err
		}
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return credstore.NewPostgres(pool), pool.Close, nil
	}
	if cfg.RedisAddr != "" {
		rdb, err := credstore.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		return rdb, func() { rdb.Client().Close() }, nil
	}
	slog.Warn("no DATABASE_URL or REDIS_ADDR set, the login will not outlive this command")
	return credstore.NewMemory(), func() {}, nil
}
