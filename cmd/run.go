package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	hotkeyadapter "tecla/adapters/hotkey"
	"tecla/adapters/process"
	"tecla/logging"
	"tecla/paths"
	"tecla/ports"
	"tecla/registry"
	"tecla/server"
	"tecla/state"
)

// RunCmd starts the daemon: registers every enabled binding with the OS
// and runs their commands when the shortcuts fire.
type RunCmd struct {
	DryRun bool `help:"Register against an in-memory provider instead of the OS"`
	Serve  bool `help:"Also serve the bindings browser over SSH"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	// The OS hotkey channel needs the process main thread pumping its
	// event loop; the daemon body runs on a worker goroutine. Dry runs
	// never touch the OS and skip the loop.
	var runErr error
	body := func() { runErr = r.run(cli) }
	if r.DryRun {
		body()
	} else {
		runEventLoop(body)
	}
	return runErr
}

func (r *RunCmd) run(cli *CLI) error {
	lock, err := state.AcquireDaemonLock(paths.GetLockPath())
	if err != nil {
		return err
	}
	defer lock.Release()

	service, repo, err := cli.openService()
	if err != nil {
		return err
	}
	defer repo.Close()

	var provider ports.HotkeyProvider
	if r.DryRun {
		provider = hotkeyadapter.NewMemory()
	} else {
		provider, err = hotkeyadapter.NewProvider()
		if err != nil {
			return err
		}
	}

	manager := registry.NewManager(provider, cli.validator())
	manager.Start()
	defer func() {
		if err := manager.Close(); err != nil {
			logging.Logger.Error("Failed to close manager", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registrations, err := service.ApplyBindings(ctx, manager, process.NewShellRunner())
	if err != nil {
		return fmt.Errorf("failed to register bindings: %w", err)
	}

	fmt.Printf("tecla: %d shortcut(s) registered\n", len(registrations))
	logging.Logger.Info("Daemon running", "registrations", len(registrations), "dry_run", r.DryRun)

	g, ctx := errgroup.WithContext(ctx)
	if r.Serve {
		host, port := cli.serveAddress()
		srv, err := server.NewServer(host, port, cli.DBPath, cli.settings)
		if err != nil {
			return err
		}
		g.Go(func() error {
			return srv.ListenAndServe(ctx)
		})
	}
	g.Go(func() error {
		<-ctx.Done()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logging.Logger.Info("Daemon shutting down")
	return nil
}
