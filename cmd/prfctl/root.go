package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
	"github.com/prf-platform/prfweb/internal/session"
)

const defaultAPIURL = "http://localhost:8080"

// app wires a lazily-constructed API client into the command tree
type app struct {
	apiURL string
	client *api.Client
}

// Client builds the API client on first use, backed by the file session store
func (a *app) Client() (*api.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	path, err := session.DefaultSessionPath()
	if err != nil {
		return nil, err
	}

	store, err := session.NewFileStore(path)
	if err != nil {
		return nil, err
	}

	a.client = api.NewClient(a.apiURL, store)
	return a.client, nil
}

// requireLogin returns the client and fails early when no token is stored.
// The check is a convenience - the server still rejects unauthorized calls.
func (a *app) requireLogin() (*api.Client, error) {
	client, err := a.Client()
	if err != nil {
		return nil, err
	}
	if client.AuthToken() == "" {
		return nil, session.ErrNoSession
	}
	return client, nil
}

// warnIfNotAdmin prints a heads-up when the stored token doesn't claim the
// admin role. Display hint only: authorization stays with the server.
func (a *app) warnIfNotAdmin() {
	client, err := a.Client()
	if err != nil || client.AuthToken() == "" {
		return
	}
	claims, err := session.ParseClaims(client.AuthToken())
	if err != nil {
		return
	}
	if !claims.IsAdmin() {
		fmt.Fprintln(os.Stderr, "note: your session does not have the admin role - this call will likely be rejected")
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "prfctl",
		Short:         "PRF platform admin CLI",
		Long:          `Command-line back office for the PRF business-promotion platform`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	apiURL := defaultAPIURL
	if fromEnv := os.Getenv("PRF_API_URL"); fromEnv != "" {
		apiURL = fromEnv
	}
	cmd.PersistentFlags().StringVar(&a.apiURL, "api-url", apiURL, "PRF backend origin")

	cmd.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newRegisterCmd(a),
		newPasswordCmd(a),
		newProjectsCmd(a),
		newProductsCmd(a),
		newCategoriesCmd(a),
		newStoriesCmd(a),
		newBlogsCmd(a),
		newExpertsCmd(a),
		newCartCmd(a),
		newOrdersCmd(a),
		newContactsCmd(a),
		newFormalisationsCmd(a),
		newNewsletterCmd(a),
		newUsersCmd(a),
		newReportsCmd(a),
		newVipCmd(a),
	)

	return cmd
}

// newTable returns a tabwriter for aligned list output, flushed by the caller
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// parseID converts a positional argument into a numeric resource id
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// openOptionalUpload opens the file at path when path is non-empty
func openOptionalUpload(path string) (*api.Upload, error) {
	if path == "" {
		return nil, nil
	}
	return api.OpenUpload(path)
}
