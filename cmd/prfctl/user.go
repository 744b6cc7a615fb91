package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage platform accounts (admin)",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			users, err := client.Users(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE")
			for _, u := range users {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			u, err := client.GetUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> - %s, joined %s\n", u.Name, u.Email, u.Role, u.CreatedAt)
			return nil
		},
	}

	setRole := &cobra.Command{
		Use:   "set-role <id> <user|admin>",
		Short: "Promote or demote an account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			u, err := client.UpdateUserRole(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%s is now %s\n", u.Email, u.Role)
			return nil
		},
	}

	cmd.AddCommand(list, get, setRole)
	return cmd
}
