package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newExpertsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experts",
		Short: "Manage the expert directory",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List experts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			experts, err := client.ServiceProviders(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tJOB\tLOCATION")
			for _, e := range experts {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.JobTitle, e.Location)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one expert - contact details require an active VIP subscription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.Client()
			if err != nil {
				return err
			}
			e, err := client.GetServiceProvider(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("%s - %s (%s)\n\n%s\n", e.Name, e.JobTitle, e.Location, e.Description)

			// contact reveal is gated on the locally recorded subscription -
			// a display hint, mirroring the web app's behavior
			if sub, ok := client.VIPSubscription(); ok && sub.Active() {
				fmt.Printf("\nemail: %s\nphone: %s\n", e.Email, e.Phone)
			} else {
				fmt.Println("\ncontact details are reserved for VIP subscribers (prfctl vip subscribe)")
			}

			reviews, err := client.ServiceProviderReviews(cmd.Context(), id)
			if err == nil && len(reviews) > 0 {
				fmt.Printf("\nrating: %.1f/5 (%d reviews)\n", api.AverageRating(reviews), len(reviews))
			}
			return nil
		},
	}

	var params api.ServiceProviderParams
	var imagePath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Add an expert (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			params.Image, err = openOptionalUpload(imagePath)
			if err != nil {
				return err
			}

			e, err := client.CreateServiceProvider(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("created expert %d\n", e.ID)
			return nil
		},
	}
	create.Flags().StringVar(&params.Name, "name", "", "expert name")
	create.Flags().StringVar(&params.Email, "email", "", "contact email")
	create.Flags().StringVar(&params.Phone, "phone", "", "contact phone")
	create.Flags().StringVar(&params.JobTitle, "job-title", "", "profession")
	create.Flags().StringVar(&params.Location, "location", "", "city / region")
	create.Flags().StringVar(&params.Description, "description", "", "profile text")
	create.Flags().StringVar(&imagePath, "image", "", "path to a profile photo (max 2MB)")

	var upd api.ServiceProviderParams
	var updImagePath string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an expert listing (admin)",
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

			current, err := client.GetServiceProvider(cmd.Context(), id)
			if err != nil {
				return err
			}

			merged := api.ServiceProviderParams{
				Name:        current.Name,
				Email:       current.Email,
				Phone:       current.Phone,
				JobTitle:    current.JobTitle,
				Location:    current.Location,
				Description: current.Description,
			}
			if cmd.Flags().Changed("name") {
				merged.Name = upd.Name
			}
			if cmd.Flags().Changed("email") {
				merged.Email = upd.Email
			}
			if cmd.Flags().Changed("phone") {
				merged.Phone = upd.Phone
			}
			if cmd.Flags().Changed("job-title") {
				merged.JobTitle = upd.JobTitle
			}
			if cmd.Flags().Changed("location") {
				merged.Location = upd.Location
			}
			if cmd.Flags().Changed("description") {
				merged.Description = upd.Description
			}
			merged.Image, err = openOptionalUpload(updImagePath)
			if err != nil {
				return err
			}

			e, err := client.UpdateServiceProvider(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Printf("updated expert %d\n", e.ID)
			return nil
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "expert name")
	update.Flags().StringVar(&upd.Email, "email", "", "contact email")
	update.Flags().StringVar(&upd.Phone, "phone", "", "contact phone")
	update.Flags().StringVar(&upd.JobTitle, "job-title", "", "profession")
	update.Flags().StringVar(&upd.Location, "location", "", "city / region")
	update.Flags().StringVar(&upd.Description, "description", "", "profile text")
	update.Flags().StringVar(&updImagePath, "image", "", "path to a new profile photo (max 2MB)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an expert (admin)",
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

			if err := client.DeleteServiceProvider(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted expert %d\n", id)
			return nil
		},
	}

	var review api.ReviewParams
	addReview := &cobra.Command{
		Use:   "review <id>",
		Short: "Leave a review for an expert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.Client()
			if err != nil {
				return err
			}

			r, err := client.AddServiceProviderReview(cmd.Context(), id, review)
			if err != nil {
				return err
			}
			fmt.Printf("review %d recorded\n", r.ID)
			return nil
		},
	}
	addReview.Flags().StringVar(&review.Name, "name", "", "your name")
	addReview.Flags().StringVar(&review.Email, "email", "", "your email")
	addReview.Flags().IntVar(&review.Rating, "rating", 5, "rating from 1 to 5")
	addReview.Flags().StringVar(&review.Comment, "comment", "", "review text")

	cmd.AddCommand(list, get, create, update, del, addReview)
	return cmd
}
