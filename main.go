package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/hanksha/boardgame-club-backend/api"
	"github.com/hanksha/boardgame-club-backend/catalog"
	"github.com/hanksha/boardgame-club-backend/clock"
	"github.com/hanksha/boardgame-club-backend/config"
	"github.com/hanksha/boardgame-club-backend/conflict"
	"github.com/hanksha/boardgame-club-backend/loan"
	"github.com/hanksha/boardgame-club-backend/memory"
	"github.com/hanksha/boardgame-club-backend/session"
	"github.com/hanksha/boardgame-club-backend/users"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

//go:embed database/setup.sql
var setupSQL string

var logger = slog.Default().With("component", "main")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:   "boardgame-club",
		Short: "Board game club backend: catalog, loans and game sessions",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newServeCmd(&cfg))
	rootCmd.AddCommand(newMigrateCmd(&cfg))
	rootCmd.AddCommand(newOverdueCmd(&cfg))
	rootCmd.AddCommand(newFinishExpiredCmd(&cfg))

	return rootCmd
}

// app holds the services built for one storage backend.
type app struct {
	clock     clock.Clock
	users     *users.CachedDirectory
	games     *catalog.Service
	sessions  *session.Service
	loans     *loan.Service
	conflicts *conflict.Service
	close     func()
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	clk := clock.New(loc)

	var (
		userRepo    users.UserRepository
		gameRepo    catalog.GameRepository
		sessionRepo session.SessionRepository
		loanRepo    loan.LoanRepository
		closeFn     = func() {}
	)

	switch cfg.StorageType {
	case config.StorageMemory:
		logger.Info("using in-memory storage")
		store := memory.New()
		seeded := store.AddUser(users.User{Username: "admin", Email: "admin@localhost", FirstName: "Club", LastName: "Admin", Role: users.RoleAdmin})
		logger.Info("seeded admin user", "id", seeded.ID, "username", seeded.Username)

		userRepo, gameRepo, sessionRepo, loanRepo = store, store, store, store
	default:
		logger.Info("connecting to PostgreSQL database")
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)

		if err != nil {
			return nil, fmt.Errorf("unable to connect to database: %w", err)
		}

		userRepo = users.NewRepository(pool)
		gameRepo = catalog.NewRepository(pool)
		sessionRepo = session.NewRepository(pool)
		loanRepo = loan.NewRepository(pool)
		closeFn = pool.Close
	}

	directory := users.NewCachedDirectory(userRepo, cfg.UserCacheTTL)
	games := catalog.NewService(gameRepo)
	sessions := session.NewService(sessionRepo, directory, games, clk)

	return &app{
		clock:     clk,
		users:     directory,
		games:     games,
		sessions:  sessions,
		loans:     loan.NewService(loanRepo, clk, loan.WithOverdueBorrowerBlock(cfg.BlockOverdueBorrowers)),
		conflicts: conflict.NewService(sessions, clk),
		close:     closeFn,
	}, nil
}

func (a *app) router(authHeader string) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	v1 := r.Group("/api/v1")
	v1.Use(api.HeaderAuth(a.users, authHeader))

	api.NewUserHandler().Register(v1.Group("/users"))
	api.NewGameHandler(a.games, a.conflicts).Register(v1.Group("/games"))
	api.NewLoanHandler(a.loans, a.users, a.conflicts, a.clock).Register(v1.Group("/loans"))
	api.NewSessionHandler(a.sessions).Register(v1.Group("/sessions"))

	return r
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if cfg.StorageType == config.StoragePostgres {
				if err := migrate(ctx, cfg.DatabaseURL); err != nil {
					return err
				}
			}

			a, err := newApp(ctx, *cfg)
			if err != nil {
				return err
			}
			defer a.close()

			logger.Info("starting server", "addr", cfg.Addr(), "storage", cfg.StorageType)
			return a.router(cfg.AuthUserHeader).Run(cfg.Addr())
		},
	}
}

func newMigrateCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.StorageType != config.StoragePostgres {
				return fmt.Errorf("migrate needs postgres storage, got %v", cfg.StorageType)
			}
			return migrate(cmd.Context(), cfg.DatabaseURL)
		},
	}
}

func migrate(ctx context.Context, databaseURL string) error {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, setupSQL); err != nil {
		return fmt.Errorf("failed to initialize tables: %w", err)
	}

	logger.Info("initialized database tables")
	return nil
}

func newOverdueCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "overdue",
		Short: "List active loans past their estimated return date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer a.close()

			overdue, err := a.loans.FindOverdue(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, l := range overdue {
				fmt.Fprintf(out, "%s\t%s\t%s\tdue %s\t%d days late\n",
					l.ID, l.Username, l.GameName, l.EstimatedReturnDate.Format(time.DateOnly), a.loans.CalculateDelayDays(l))
			}
			fmt.Fprintf(out, "%d overdue loans\n", len(overdue))
			return nil
		},
	}
}

func newFinishExpiredCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "finish-expired",
		Short: "Mark sessions whose end has passed as finished",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), *cfg)
			if err != nil {
				return err
			}
			defer a.close()

			finished, err := a.sessions.FinishExpiredSessions(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%d sessions finished\n", finished)
			return err
		},
	}
}
