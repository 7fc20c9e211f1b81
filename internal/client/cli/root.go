package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dkravets/internhub/internal/client/services"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the InternHub portal (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "portal %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "login":
			a.login(ctx)
		case "upload":
			a.upload(ctx, args)
		case "store":
			a.storeOnly(ctx, args)
		case "list":
			a.list(ctx)
		case "activate":
			a.activate(ctx, args)
		case "delete":
			a.delete(ctx, args)
		case "show":
			a.show()
		case "sections":
			a.printSections()
		case "toggle":
			a.toggleSection(ctx, args)
		case "expandall":
			a.bus.Publish(services.SignalExpandAll)
		case "collapseall":
			a.bus.Publish(services.SignalCollapseAll)
		case "forceexpand":
			a.forceExpand(ctx)
		case "forcecollapse":
			a.forceCollapse(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: upload <file>, store <file>, list, activate <n>, delete <n>, show,")
		fmt.Fprintln(a.out, "  sections, toggle <key>, expandall, collapseall, forceexpand, forcecollapse, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, store <file>, help, exit")
	}
}
