package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/amirasaad/ebanking/infra/repository"
	"github.com/amirasaad/ebanking/internal/fixtures/stores"
	"github.com/amirasaad/ebanking/pkg/app"
	"github.com/amirasaad/ebanking/pkg/config"
	"github.com/amirasaad/ebanking/pkg/domain"
	"github.com/amirasaad/ebanking/pkg/domain/account"
	"github.com/amirasaad/ebanking/pkg/domain/user"
	usersvc "github.com/amirasaad/ebanking/pkg/service/user"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type cli struct {
	envFile string
	metrics string
	out     io.Writer
	load    func(envFile string) (*config.App, error)
	deps    func(cfg *config.App) (*app.Deps, error)
}

// session runs fn between the startup and shutdown hooks. Shutdown runs
// even when fn fails.
func (c *cli) session(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, deps, err := c.setup()
	if err != nil {
		return err
	}

	a := app.New(ctx, deps, cfg)
	defer func() {
		a.Shutdown(ctx)
		if err := c.writeMetrics(cmd, deps.Fs); err != nil {
			deps.Logger.Error("failed to write metrics", "path", c.metrics, "error", err)
		}
	}()
	if err := a.Startup(ctx); err != nil {
		return fmt.Errorf("startup: %w", err)
	}
	if err := fn(ctx, a); err != nil {
		printError(c.out, err)
		return err
	}
	return nil
}

// writeMetrics dumps the store metrics once the session is over. "-" means
// the command's stderr; any other value is a file path on fs.
func (c *cli) writeMetrics(cmd *cobra.Command, fs afero.Fs) error {
	switch c.metrics {
	case "":
		return nil
	case "-":
		return repository.WriteMetrics(cmd.ErrOrStderr(), prometheus.DefaultGatherer)
	}
	f, err := fs.Create(c.metrics)
	if err != nil {
		return err
	}
	writeErr := repository.WriteMetrics(f, prometheus.DefaultGatherer)
	return errors.Join(writeErr, f.Close())
}

func (c *cli) setup() (*config.App, *app.Deps, error) {
	if config.GetEnvAsBool("EBANKING_NO_COLOR", false) {
		color.NoColor = true
	}
	cfg, err := c.load(c.envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	deps, err := c.deps(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize dependencies: %w", err)
	}
	return cfg, deps, nil
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "ebanking",
		Short:         "Keep users, bank accounts and transactions in flat files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(c.out)
	root.PersistentFlags().StringVar(&c.envFile, "env-file", "", "environment file to load before reading configuration")
	root.PersistentFlags().StringVar(&c.metrics, "metrics", config.GetEnv("EBANKING_METRICS", ""),
		"write store metrics in Prometheus text format to this file after the command, - for stderr")

	root.AddCommand(
		c.usersCmd(),
		c.userCmd(),
		c.loginCmd(),
		c.accountsCmd(),
		c.accountCmd(),
		c.transactionsCmd(),
		c.transactionCmd(),
		c.seedCmd(),
	)
	return root
}

func (c *cli) usersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "users",
		Short: "List registered users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.session(cmd, func(_ context.Context, a *app.App) error {
				printUsers(c.out, a.Users.All())
				return nil
			})
		},
	}
}

func (c *cli) userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <id> <first-name> <last-name>",
		Short: "Register a new user",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.session(cmd, func(ctx context.Context, a *app.App) error {
				u, err := user.New(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				if err := a.UserService.AddUser(ctx, a.Users, u); err != nil {
					return err
				}
				success.Fprintf(c.out, "User %s registered as %s\n", u.FullName(), u.ID)
				return nil
			})
		},
	})
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <first-name> <last-name>",
		Short: "Find a user by name and show their accounts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.session(cmd, func(_ context.Context, a *app.App) error {
				u, ok := usersvc.FindByName(a.Users, args[0], args[1])
				if !ok {
					return fmt.Errorf("user %s %s: %w", args[0], args[1], domain.ErrNotFound)
				}
				success.Fprintf(c.out, "Welcome, %s (%s)\n", u.FullName(), u.ID)
				printAccounts(c.out, a.AccountService.GetAccountsByUserID(u.ID))
				return nil
			})
		},
	}
}

func (c *cli) accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts <user-id>",
		Short: "List the accounts of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.session(cmd, func(_ context.Context, a *app.App) error {
				printAccounts(c.out, a.AccountService.GetAccountsByUserID(args[0]))
				return nil
			})
		},
	}
}

func (c *cli) accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage accounts",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "add <user-id> <iban> <type> <balance>",
			Short:   "Open an account for a registered user",
			Example: "  ebanking account add -- A1 RO01BANK0000 current -20",
			Args:    cobra.ExactArgs(4),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.session(cmd, func(ctx context.Context, a *app.App) error {
					return c.addAccount(ctx, a, args)
				})
			},
		},
		&cobra.Command{
			Use:   "delete <iban>",
			Short: "Delete an account by IBAN",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.session(cmd, func(ctx context.Context, a *app.App) error {
					deleted, err := a.AccountService.DeleteAccount(ctx, args[0])
					if err != nil {
						return err
					}
					if !deleted {
						notice.Fprintf(c.out, "No account with IBAN %s\n", args[0])
						return nil
					}
					success.Fprintf(c.out, "Account %s deleted\n", args[0])
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "save",
			Short: "Write the loaded accounts back to the store",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.session(cmd, func(ctx context.Context, a *app.App) error {
					accounts := a.AccountService.GetAllAccounts()
					if err := a.AccountService.SaveAccounts(ctx, accounts); err != nil {
						return err
					}
					success.Fprintf(c.out, "%d accounts saved\n", len(accounts))
					return nil
				})
			},
		},
	)
	return cmd
}

func (c *cli) addAccount(ctx context.Context, a *app.App, args []string) error {
	userID, iban, typ := args[0], args[1], args[2]
	balance, err := strconv.ParseFloat(args[3], 64)
	if err != nil || math.IsNaN(balance) || math.IsInf(balance, 0) {
		return fmt.Errorf("balance %q: %w", args[3], domain.ErrValidation)
	}
	acc := account.New().
		WithUserID(userID).
		WithIBAN(iban).
		WithType(typ).
		WithBalance(balance).
		Build()
	if !a.Users.Contains(acc.UserID) {
		return fmt.Errorf("user %s: %w", acc.UserID, domain.ErrNotFound)
	}
	for _, existing := range a.AccountService.GetAllAccounts() {
		if existing.SameIBAN(acc) {
			return fmt.Errorf("account %s: %w", acc.IBAN, domain.ErrAlreadyExists)
		}
	}

	a.AccountService.AddAccount(acc)
	if err := a.AccountService.SaveAccounts(ctx, a.AccountService.GetAllAccounts()); err != nil {
		return err
	}
	success.Fprintf(c.out, "Account %s opened for %s\n", acc.IBAN, acc.UserID)
	return nil
}

func (c *cli) transactionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transactions <iban>",
		Short: "Show the transaction history of an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.session(cmd, func(ctx context.Context, a *app.App) error {
				txs, err := a.TransactionService.GetTransactionsByAccountIBAN(ctx, args[0])
				if err != nil {
					return err
				}
				printTransactions(c.out, txs)
				return nil
			})
		},
	}
}

func (c *cli) transactionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transaction",
		Short: "Record transactions",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "add <iban> <amount> [date]",
		Short:   "Record a transaction; date is YYYY-MM-DD and defaults to today",
		Example: "  ebanking transaction add RO01BANK0000 120.5\n  ebanking transaction add -- RO01BANK0000 -50.0 2024-01-15",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.session(cmd, func(ctx context.Context, a *app.App) error {
				amount, err := strconv.ParseFloat(args[1], 64)
				if err != nil {
					return fmt.Errorf("amount %q: %w", args[1], domain.ErrValidation)
				}
				date := ""
				if len(args) == 3 {
					date = args[2]
				}
				t, err := a.TransactionService.NewTransaction(args[0], amount, date)
				if err != nil {
					return err
				}
				if err := a.TransactionService.AddTransaction(ctx, t); err != nil {
					return err
				}
				success.Fprintf(c.out, "Recorded %s on %s\n", formatAmount(t.Amount), t.IBAN)
				return nil
			})
		},
	})
	return cmd
}

func (c *cli) seedCmd() *cobra.Command {
	var (
		from  string
		force bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write a sample data set into the configured stores",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, deps, err := c.setup()
			if err != nil {
				return err
			}
			if !force {
				exists, err := afero.Exists(deps.Fs, cfg.Store.UsersPath())
				if err != nil {
					return err
				}
				if exists {
					err := fmt.Errorf("store %s: %w, use --force to overwrite", cfg.Store.UsersPath(), domain.ErrAlreadyExists)
					printError(c.out, err)
					return err
				}
			}
			if err := stores.Seed(deps.Fs, cfg.Store, from); err != nil {
				printError(c.out, err)
				return err
			}
			success.Fprintf(c.out, "Sample data written to %s\n", cfg.Store.Dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "copy store files from this directory instead of the built-in sample")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing stores")
	return cmd
}
