package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/claude/yawa/internal/config"
	"github.com/claude/yawa/internal/program"
	"github.com/claude/yawa/internal/prompt"
	"github.com/claude/yawa/internal/service"
	"github.com/claude/yawa/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); cerr != nil && err == nil {
		err = cerr
	}
	if errors.Is(err, service.ErrProgramNotStarted) {
		err = service.ErrProgramNotStarted
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// app holds the flags and the dependencies built from them.
type app struct {
	saveDir    string
	configPath string
	debug      bool

	cfg   *config.Config
	log   *slog.Logger
	store *storage.Store
	svc   *service.Service
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "yawa",
		Short:         "Yet another workout app: run a strength program from the terminal",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&a.saveDir, "save-directory", "s", ".", "directory holding yawa_save_data")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to config file")
	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(
		newStartCmd(a),
		newStatusCmd(a),
		newNextCmd(a),
		newCompleteCmd(a),
		newHistoryCmd(a),
		newMCPCmd(a),
	)
	return cmd
}

// setup loads config and wires storage, prompts and the service for the
// command about to run.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	var err error
	if flags.Changed("config") {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadOptional(a.configPath)
	}
	if err != nil {
		return err
	}

	level := a.cfg.Log.SlogLevel()
	if a.debug {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	saveDir := a.cfg.Storage.SaveDirectory
	if flags.Changed("save-directory") {
		saveDir = a.saveDir
	}

	tmpl, err := program.LookupTemplate(a.cfg.Program.Template)
	if err != nil {
		return err
	}

	a.store = storage.New(saveDir,
		storage.WithHistoryDB(a.cfg.Storage.HistoryDBEnabled()),
		storage.WithLogger(a.log),
	)
	input := prompt.New(cmd.InOrStdin(), cmd.OutOrStdout())
	a.svc = service.New(a.store, input, tmpl, a.log)

	a.log.Debug("yawa starting", "version", Version, "command", cmd.Name(), "save_dir", a.store.Dir())
	return nil
}

func (a *app) close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
