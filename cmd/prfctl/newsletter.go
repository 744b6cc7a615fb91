package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNewsletterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "newsletter",
		Short: "Newsletter campaigns and subscribers",
	}

	subscribe := &cobra.Command{
		Use:   "subscribe <email>",
		Short: "Subscribe an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			res, err := client.SubscribeNewsletter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}

	unsubscribe := &cobra.Command{
		Use:   "unsubscribe <email>",
		Short: "Unsubscribe an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			res, err := client.UnsubscribeNewsletter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}

	var subject, content string
	send := &cobra.Command{
		Use:   "send",
		Short: "Send a campaign to every subscriber (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			res, err := client.SendNewsletter(cmd.Context(), subject, content)
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	}
	send.Flags().StringVar(&subject, "subject", "", "campaign subject")
	send.Flags().StringVar(&content, "content", "", "campaign body")

	list := &cobra.Command{
		Use:   "list",
		Short: "List sent campaigns (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			campaigns, err := client.Newsletters(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tSUBJECT\tSENT")
			for _, n := range campaigns {
				fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, n.Subject, n.CreatedAt)
			}
			return w.Flush()
		},
	}

	subscribers := &cobra.Command{
		Use:   "subscribers",
		Short: "List subscribers, registered users and plain emails alike (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			subs, err := client.NewsletterSubscribers(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "NAME\tEMAIL\tTYPE")
			for _, s := range subs {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Email, s.Type)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(subscribe, unsubscribe, send, list, subscribers)
	return cmd
}
