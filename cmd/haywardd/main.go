package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"rsc.io/getopt"

	"github.com/bwhmather/hayward/internal/config"
	"github.com/bwhmather/hayward/internal/ipc"
	"github.com/bwhmather/hayward/internal/log"
	"github.com/bwhmather/hayward/internal/loop"
	"github.com/bwhmather/hayward/internal/seat"
	"github.com/bwhmather/hayward/internal/tree"
	"github.com/bwhmather/hayward/internal/txn"
	"github.com/bwhmather/hayward/internal/wlcore/stub"
)

func main() {
	if err := getopt.CommandLine.Parse(os.Args[1:]); err != nil {
		log.Errorf("haywardd: %v", err)
		os.Exit(1)
	}
	if *verbose {
		log.SetLevel(log.LevelDebug)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Errorf("haywardd: %v", err)
		os.Exit(1)
	}

	dbg := parseDebugModes(*debugFlag)

	l, err := loop.New()
	if err != nil {
		log.Errorf("haywardd: event loop: %v", err)
		os.Exit(1)
	}
	defer l.Close()

	root := tree.NewRoot()

	scene := stub.NewScene()
	toolkit := stub.NewToolkit(scene)
	// No real backend is wired up in this build; start headless so the
	// tree always has somewhere to place workspaces (spec §6).
	backendOutput := toolkit.AddHeadlessOutput()
	root.AddOutput(backendOutput)

	s := seat.NewSeat("seat0", root, scene)
	tree.SetFocusQuery(s)

	engine := txn.NewEngine(root, l, dbg)
	engine.TxnTimeoutMs = int(cfg.TxnTimeout.Milliseconds())
	s.UrgentTimeout = cfg.UrgentTimeout

	commit := func() {
		tree.Arrange(root)
		engine.CommitDirty(true)
	}

	sockPath := *socketPath
	if sockPath == "" {
		sockPath = defaultSocketPath()
	}
	server := ipc.NewServer(sockPath, nil)
	server.SetCommands(buildCommandTable(root, s, engine, server, commit))
	wireEvents(s, server)
	wireToplevels(toolkit, root, &cfg, s, commit, server)

	ws := root.CreateWorkspace("")
	ws.Gaps = tree.WorkspaceGaps{
		Inner:       cfg.InnerGap,
		OuterTop:    cfg.OuterGap[0],
		OuterRight:  cfg.OuterGap[1],
		OuterBottom: cfg.OuterGap[2],
		OuterLeft:   cfg.OuterGap[3],
		Smart:       tree.SmartGaps(cfg.SmartGaps),
	}
	ws.HideEdgeBorders = tree.HideEdgeBorders(cfg.HideEdgeBorders)
	root.Pending.ActiveWorkspace = ws
	if len(root.Outputs) > 0 {
		root.Outputs[0].Pending.ActiveWorkspace = ws
		ws.Output = root.Outputs[0]
	}
	server.Broadcast(ipc.Event{WorkspaceInit: &ipc.WorkspaceInit{ID: ws.ID(), Name: ws.Name}})
	commit()

	if err := server.Listen(); err != nil {
		log.Errorf("haywardd: ipc: %v", err)
		os.Exit(1)
	}
	defer server.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := server.Serve(ctx); err != nil {
			log.Warnf("haywardd: ipc server stopped: %v", err)
		}
	}()

	go func() {
		<-ctx.Done()
		l.Stop()
	}()

	log.Infof("haywardd: started, socket=%s", sockPath)
	if err := l.Run(); err != nil {
		log.Errorf("haywardd: event loop: %v", err)
		os.Exit(1)
	}
}

func parseDebugModes(s string) txn.Debug {
	var d txn.Debug
	for _, mode := range strings.Split(s, ",") {
		switch strings.TrimSpace(mode) {
		case "noatomic":
			d.NoAtomic = true
		case "txn_wait":
			d.TxnWait = true
		case "txn_timings":
			d.TxnTimings = true
		}
	}
	return d
}

func defaultSocketPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "hayward.sock")
}
