// Command auth runs the Instamedia authentication service.
package main

import (
	"log/slog"
	"os"

	"github.com/aussiebroadwan/instamedia/internal/auth/app"
)

func main() {
	application, err := app.New(app.LoadConfig())
	if err != nil {
		slog.Error("auth service failed to start", "error", err)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		slog.Error("auth service exited with error", "error", err)
		os.Exit(1)
	}
}
