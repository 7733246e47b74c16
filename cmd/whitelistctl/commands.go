package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/wifi-whitelist/internal/i18n"
	"github.com/chainsafe/wifi-whitelist/pkg/config"
	"github.com/chainsafe/wifi-whitelist/pkg/dbutil"
	mghelper "github.com/chainsafe/wifi-whitelist/pkg/dbutil/migrations"
	"github.com/chainsafe/wifi-whitelist/pkg/migrations/whitelistdb"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/form"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/service"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/store"
	"github.com/chainsafe/wifi-whitelist/pkg/whitelist/tui"
)

// errReported marks failures whose message was already printed.
var errReported = errors.New("reported")

const timeFormat = "2006-01-02 15:04:05"

// cli holds the dependencies shared by all subcommands. Fields that are
// already set are kept by setup.
type cli struct {
	cfgFile string
	lang    string

	cfg    *config.Config
	logger *zap.Logger
	db     *bun.DB
	svc    service.Service

	runProgram func(tea.Model) (tea.Model, error)
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whitelistctl",
		Short: "Manage the WiFi network and device whitelist.",
		Long: `whitelistctl adds trusted WiFi networks (SSIDs) and devices
(MAC addresses) to the whitelist registry and lists its entries.

Running without a subcommand will launch the interactive form.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.setup(cmd.Context(), cmd.Name() != "migrate")
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runForm(cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (defaults and WHITELIST_* environment variables when empty)")
	cmd.PersistentFlags().StringVar(&c.lang, "lang", "", `message language ("en", "de"), overrides ui.language`)

	cmd.AddCommand(newFormCmd(c))
	cmd.AddCommand(newAddCmd(c))
	cmd.AddCommand(newListCmd(c))
	cmd.AddCommand(newMigrateCmd(c))

	return cmd
}

func newFormCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive whitelist form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runForm(cmd.OutOrStdout())
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	var ssid, mac string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Whitelist a network and/or a device",
		Example: `  whitelistctl add --ssid "Office WiFi"
  whitelistctl add --mac AA:BB:CC:DD:EE:FF`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := form.New(c.svc, form.WithLogger(c.logger))
			f.SSID = ssid
			f.MAC = mac

			err := f.Submit(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), f.Status().Message)
			if err != nil {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ssid, "ssid", "", "network name, 1-32 characters")
	cmd.Flags().StringVar(&mac, "mac", "", "device MAC address, AA:BB:CC:DD:EE:FF")

	return cmd
}

func newListCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all whitelisted entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := c.svc.List(cmd.Context())
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}
}

func newMigrateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <init|up|down|status>",
		Short:     "Run database migrations",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"init", "up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator := migrate.NewMigrator(c.db, whitelistdb.Migrations)
			return mghelper.RunMigrations(cmd.Context(), migrator, c.logger, args...)
		},
	}
}

// setup loads configuration, activates the message language and opens the
// store. withService is false for commands that only need the database.
func (c *cli) setup(ctx context.Context, withService bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if c.cfg == nil {
		cfg, err := config.Load(c.cfgFile)
		if err != nil {
			return err
		}
		// stdout belongs to command output and the form
		if cfg.Logging.OutputPath == "" || cfg.Logging.OutputPath == "stdout" {
			cfg.Logging.OutputPath = "stderr"
		}
		c.cfg = cfg
	}

	lang := c.cfg.UI.Language
	if c.lang != "" {
		lang = c.lang
	}
	if err := i18n.Init(lang); err != nil {
		return fmt.Errorf("init messages: %w", err)
	}

	if c.logger == nil {
		logger, err := config.NewLogger(c.cfg.Logging, "whitelistctl")
		if err != nil {
			return fmt.Errorf("setup logger: %w", err)
		}
		c.logger = logger
	}

	if c.svc != nil && withService {
		return nil
	}

	if c.db == nil {
		db, err := dbutil.Connect(ctx, &c.cfg.Database)
		if err != nil {
			return fmt.Errorf("connect db: %w", err)
		}
		c.db = db
	}

	if withService && c.svc == nil {
		svc := service.NewService(store.NewStore(c.db), c.logger)
		c.svc = service.NewLog(service.NewMetrics(svc, "cli"), c.logger)
	}
	return nil
}

func (c *cli) runForm(out io.Writer) error {
	run := c.runProgram
	if run == nil {
		run = func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m).Run()
		}
	}

	final, err := run(tui.New(c.svc, form.WithLogger(c.logger)))
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}

	if m, ok := final.(tui.Model); ok && len(m.Inserted()) > 0 {
		printEntries(out, m.Inserted())
	}
	return nil
}

func (c *cli) close() {
	if c.db != nil {
		_ = c.db.Close()
		c.db = nil
	}
	if c.logger != nil {
		_ = c.logger.Sync()
	}
}

func printEntries(out io.Writer, entries []*whitelist.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, i18n.T("list.empty"))
		return
	}

	t := table.New().
		Headers(i18n.T("list.header_ssid"), i18n.T("list.header_mac"), i18n.T("list.header_created"))
	for _, e := range entries {
		created := ""
		if !e.CreatedAt.IsZero() {
			created = e.CreatedAt.Local().Format(timeFormat)
		}
		t.Row(deref(e.SSID), deref(e.MAC), created)
	}
	fmt.Fprintln(out, t.Render())
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
