// prfctl is the PRF back-office in the terminal: it drives the same backend
// API as the web app through the typed client in internal/api, keeping its
// login session in a file the way the browser app kept its token in
// localStorage.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/prf-platform/prfweb/internal/version"

	_ "golang.org/x/crypto/x509roots/fallback"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cmd := newRootCmd()

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
