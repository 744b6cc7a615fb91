package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newContactsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Contact form messages",
	}

	var params api.ContactParams
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Send a contact message",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			msg, err := client.SubmitContact(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("message %d sent (%s)\n", msg.ID, api.RequestTypeLabel(msg.RequestType))
			return nil
		},
	}
	submit.Flags().StringVar(&params.Name, "name", "", "your name")
	submit.Flags().StringVar(&params.Email, "email", "", "your email")
	submit.Flags().StringVar(&params.Phone, "phone", "", "your phone number")
	submit.Flags().StringVar(&params.RequestType, "type", "information", "information, partnership, support, complaint or other")
	submit.Flags().StringVar(&params.Object, "object", "", "subject line")
	submit.Flags().StringVar(&params.Message, "message", "", "message body")

	list := &cobra.Command{
		Use:   "list",
		Short: "List received messages (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			contacts, err := client.Contacts(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tTYPE\tOBJECT\tRECEIVED")
			for _, m := range contacts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					m.ID, m.Name, api.RequestTypeLabel(m.RequestType), m.Object, m.CreatedAt)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one message (admin)",
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

			m, err := client.GetContact(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> %s\n[%s] %s\n\n%s\n",
				m.Name, m.Email, m.Phone, api.RequestTypeLabel(m.RequestType), m.Object, m.Message)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a message (admin)",
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

			if err := client.DeleteContact(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted message %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(submit, list, get, del)
	return cmd
}

func newFormalisationsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "formalisations",
		Short: "Business-registration assistance requests",
	}

	var params api.FormalisationParams
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Request formalisation assistance",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			req, err := client.SubmitFormalisation(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("request %d recorded (%s)\n", req.ID, req.StructureKind())
			return nil
		},
	}
	submit.Flags().StringVar(&params.Name, "name", "", "your name")
	submit.Flags().StringVar(&params.Email, "email", "", "your email")
	submit.Flags().StringVar(&params.Phone, "phone", "", "your phone number")
	submit.Flags().StringVar(&params.Location, "location", "", "city / region")
	submit.Flags().StringVar(&params.Structure, "structure", "", "intended legal structure (SA, SARL, GIC, COOP...)")
	submit.Flags().StringVar(&params.Sector, "sector", "", "business sector")
	submit.Flags().StringVar(&params.Description, "description", "", "what the business does")

	list := &cobra.Command{
		Use:   "list",
		Short: "List requests (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			requests, err := client.Formalisations(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tSTRUCTURE\tSECTOR\tRECEIVED")
			for _, r := range requests {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.Name, r.StructureKind(), r.Sector, r.CreatedAt)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one request (admin)",
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

			r, err := client.GetFormalisation(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> %s - %s\nstructure: %s (%s)\nsector: %s\n\n%s\n",
				r.Name, r.Email, r.Phone, r.Location, r.Structure, r.StructureKind(), r.Sector, r.Description)
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a request (admin)",
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

			if err := client.DeleteFormalisation(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted request %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(submit, list, get, del)
	return cmd
}
