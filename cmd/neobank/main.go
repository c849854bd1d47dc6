// Command neobank is the NeoBank terminal client. It restores the persisted
// session, reconciles it against the backend, and then serves an interactive
// loop where every command funnels through the page router.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/neobank/neobank/internal/core/domain"
	"github.com/neobank/neobank/internal/core/service"
	"github.com/neobank/neobank/internal/infrastructure/config"
	"github.com/neobank/neobank/internal/infrastructure/gateway"
	"github.com/neobank/neobank/internal/infrastructure/nav"
	"github.com/neobank/neobank/internal/infrastructure/store"
	"github.com/neobank/neobank/internal/infrastructure/term"
	"github.com/neobank/neobank/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	sessionPath := cfg.Client.SessionFile
	if sessionPath == "" {
		sessionPath = store.DefaultPath()
	}

	sessionStore := store.New(sessionPath, log)
	backend, err := gateway.New(cfg.Client.APIBaseURL, cfg.Client.HTTPTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build gateway")
	}

	navigator := nav.New("")
	renderer := term.New(os.Stdout)
	reconciler := service.NewReconciler(sessionStore, backend, log)
	router := service.NewPageRouter(sessionStore, backend, navigator, renderer, reconciler, log)

	ctx := context.Background()
	router.Start(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		if !dispatch(ctx, router, navigator, renderer, scanner.Text()) {
			return
		}
	}
}

// dispatch translates one input line into a router entry point. Returns false
// when the loop should stop.
func dispatch(ctx context.Context, router *service.PageRouter, navigator *nav.Navigator, renderer *term.Renderer, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	switch fields[0] {
	case "login":
		router.Login(ctx, arg(fields, 1), arg(fields, 2))
	case "register":
		router.Register(ctx, arg(fields, 1), arg(fields, 2))
	case "logout":
		router.Logout(ctx)
	case "go":
		router.Navigate(ctx, domain.ParsePage(arg(fields, 1)))
	case "refresh":
		router.Navigate(ctx, domain.PageMain)
	case "back":
		navigator.Back()
		drainLocationChanges(ctx, router, navigator)
	case "forward":
		navigator.Forward()
		drainLocationChanges(ctx, router, navigator)
	case "quit", "exit":
		return false
	default:
		renderer.ShowMessage("unknown command: " + fields[0])
	}
	return true
}

// drainLocationChanges feeds pending back/forward notifications into the
// router, the terminal analogue of a popstate listener.
func drainLocationChanges(ctx context.Context, router *service.PageRouter, navigator *nav.Navigator) {
	for {
		select {
		case page := <-navigator.Events():
			router.HandleLocationChange(ctx, page)
		default:
			return
		}
	}
}

func arg(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return fields[i]
}
