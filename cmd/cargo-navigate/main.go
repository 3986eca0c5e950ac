package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/quantmind-br/cargo-navigate/internal/app"
	"github.com/quantmind-br/cargo-navigate/internal/browser"
	"github.com/quantmind-br/cargo-navigate/internal/config"
	"github.com/quantmind-br/cargo-navigate/internal/domain"
	"github.com/quantmind-br/cargo-navigate/internal/utils"
	"github.com/quantmind-br/cargo-navigate/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Dependencies for testing
var (
	openURL browser.OpenFunc
	getwd   = os.Getwd
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line in argv and returns the process exit code
func execute(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	bin := binaryName(argv[0])
	fixed, hasFixed := fixedKind(bin)

	cmd := newRootCmd(bin, fixed, hasFixed, stdout, stderr)
	cmd.SetArgs(stripSubcommand(bin, argv[1:]))

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return domain.ExitCode
	}
	return 0
}

// binaryName returns the executable name without directory or .exe suffix
func binaryName(arg0 string) string {
	return strings.TrimSuffix(filepath.Base(arg0), ".exe")
}

// fixedKind reports the target implied by a cargo-<alias> binary name
func fixedKind(bin string) (domain.URLKind, bool) {
	sub, ok := strings.CutPrefix(bin, "cargo-")
	if !ok || sub == "navigate" {
		return 0, false
	}
	kind, err := domain.ParseURLKind(sub)
	if err != nil {
		return 0, false
	}
	return kind, true
}

// stripSubcommand drops the subcommand name cargo passes to external
// subcommands, e.g. "navigate" in `cargo navigate docs serde`.
func stripSubcommand(bin string, args []string) []string {
	sub, ok := strings.CutPrefix(bin, "cargo-")
	if !ok || len(args) == 0 || args[0] != sub {
		return args
	}
	return args[1:]
}

func newRootCmd(bin string, fixed domain.URLKind, hasFixed bool, stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	var (
		cfgFile    string
		verbose    bool
		showConfig bool
	)

	cmd := &cobra.Command{
		Use:           "cargo-navigate [where] [crate]",
		Short:         "Open a crate's repository, homepage, documentation or crates.io page",
		Long:          longHelp(),
		Version:       version.Short(),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}

			if showConfig {
				out, err := cfg.YAML()
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(stdout, out)
				return err
			}

			kind := cfg.DefaultKind()
			name := ""
			switch {
			case hasFixed:
				kind = fixed
				if len(args) == 1 {
					name = args[0]
				}
			case len(args) >= 1:
				if kind, err = domain.ParseURLKind(args[0]); err != nil {
					return err
				}
				if len(args) == 2 {
					name = args[1]
				}
			}

			return run(cmd.Context(), cfg, verbose, name, kind, stdout, stderr)
		},
	}

	if hasFixed {
		cmd.Use = strings.TrimPrefix(bin, "cargo-") + " [crate]"
		cmd.Short = fmt.Sprintf("Open a crate's %s", fixed)
		cmd.Long = ""
		cmd.Args = cobra.MaximumNArgs(1)
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate(version.Full() + "\n")

	flags := cmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ~/.cargo-navigate/config.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	flags.BoolP("print", "p", false, "Print the URL instead of opening a browser")
	flags.String("registry-url", config.DefaultRegistryURL, "Registry base URL")
	flags.String("docs-url", config.DefaultDocsURL, "Documentation host used when a crate has no documentation link")
	flags.Duration("timeout", 0, "Registry request timeout (0 = none)")
	flags.BoolVar(&showConfig, "show-config", false, "Print the effective configuration and exit")

	_ = v.BindPFlag("navigate.print", flags.Lookup("print"))
	_ = v.BindPFlag("registry.url", flags.Lookup("registry-url"))
	_ = v.BindPFlag("docs.url", flags.Lookup("docs-url"))
	_ = v.BindPFlag("http.timeout", flags.Lookup("timeout"))

	return cmd
}

func longHelp() string {
	return fmt.Sprintf(`Navigate to a crate's informative link.

WHERE is one of %s (default: repo).
When CRATE is omitted the Cargo.toml in the current directory is used.`,
		strings.Join(domain.KindAliases(), ", "))
}

func run(ctx context.Context, cfg *config.Config, verbose bool, name string, kind domain.URLKind, stdout, stderr io.Writer) error {
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  stderr,
		Verbose: verbose,
	})

	var opener domain.Opener
	if !cfg.Navigate.Print {
		opener = browser.NewLauncher(browser.WithOpenFunc(openURL), browser.WithLogger(log))
	}

	nav, err := app.NewNavigator(app.NavigatorOptions{
		Config:  cfg,
		Verbose: verbose,
		Opener:  opener,
		Stdout:  stdout,
		WorkDir: getwd,
		Logger:  log,
	})
	if err != nil {
		return err
	}
	defer nav.Close()

	start := time.Now()
	err = nav.Navigate(ctx, name, kind)
	log.Debug().Dur("took", time.Since(start)).Err(err).Msg("Navigation finished")
	return err
}
