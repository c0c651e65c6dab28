// Package open launches URLs with the system's default handler or a named
// application.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Start opens input asynchronously. An empty app uses the system handler.
func Start(input, app string) error {
	cmd, err := Command(runtime.GOOS, input, app)
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", cmd.Path, err)
	}
	// Reap the launcher; its exit status is not interesting.
	go func() { _ = cmd.Wait() }()
	return nil
}

// Command builds the launcher command for goos without running it.
func Command(goos, input, app string) (*exec.Cmd, error) {
	if app != "" {
		return commandWith(goos, input, app)
	}

	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case "darwin":
		return exec.Command("open", input), nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", input), nil
	case "android":
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}

func commandWith(goos, input, app string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		// start treats & as a command separator
		escaped := strings.ReplaceAll(input, "&", "^&")
		return exec.Command("cmd", "/C", "start", "", app, escaped), nil
	case "darwin":
		return exec.Command("open", "-a", app, input), nil
	case "android":
		return exec.Command("termux-open", "--choose", input), nil
	default:
		return exec.Command(app, input), nil
	}
}
