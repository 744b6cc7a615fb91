package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newProjectsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Manage promoted projects",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			projects, err := client.Projects(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tFREE\tBASIC\tCLASSIC\tPREMIUM\tCATEGORY")
			for _, p := range projects {
				fmt.Fprintf(w, "%d\t%s\t%t\t%.0f\t%.0f\t%.0f\t%d\n",
					p.ID, p.Name, p.IsFree, p.BasicPrice, p.ClassicPrice, p.PremiumPrice, p.CategoryID)
			}
			return w.Flush()
		},
	}

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one project",
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
			p, err := client.Project(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n\n%s\n", p.Name, p.Description)
			if !p.IsFree {
				fmt.Printf("\nplans: basic %.0f / classic %.0f / premium %.0f\n", p.BasicPrice, p.ClassicPrice, p.PremiumPrice)
			}
			return nil
		},
	}

	var params api.ProjectParams
	var imagePath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a project (admin)",
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

			p, err := client.CreateProject(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("created project %d\n", p.ID)
			return nil
		},
	}
	create.Flags().StringVar(&params.Name, "name", "", "project name")
	create.Flags().StringVar(&params.Description, "description", "", "project description")
	create.Flags().BoolVar(&params.IsFree, "free", false, "free project (no subscription plans)")
	create.Flags().Float64Var(&params.BasicPrice, "basic-price", 0, "basic plan price")
	create.Flags().Float64Var(&params.ClassicPrice, "classic-price", 0, "classic plan price")
	create.Flags().Float64Var(&params.PremiumPrice, "premium-price", 0, "premium plan price")
	create.Flags().IntVar(&params.CategoryID, "category", 0, "category id")
	create.Flags().StringVar(&imagePath, "image", "", "path to a cover image (max 2MB)")

	var upd api.ProjectParams
	var updImagePath string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project (admin)",
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

			// fetch first so the update carries the unchanged fields
			current, err := client.Project(cmd.Context(), id)
			if err != nil {
				return err
			}

			merged := api.ProjectParams{
				Name:         current.Name,
				Description:  current.Description,
				IsFree:       current.IsFree,
				BasicPrice:   current.BasicPrice,
				ClassicPrice: current.ClassicPrice,
				PremiumPrice: current.PremiumPrice,
				CategoryID:   current.CategoryID,
			}
			if cmd.Flags().Changed("name") {
				merged.Name = upd.Name
			}
			if cmd.Flags().Changed("description") {
				merged.Description = upd.Description
			}
			if cmd.Flags().Changed("free") {
				merged.IsFree = upd.IsFree
			}
			if cmd.Flags().Changed("basic-price") {
				merged.BasicPrice = upd.BasicPrice
			}
			if cmd.Flags().Changed("classic-price") {
				merged.ClassicPrice = upd.ClassicPrice
			}
			if cmd.Flags().Changed("premium-price") {
				merged.PremiumPrice = upd.PremiumPrice
			}
			if cmd.Flags().Changed("category") {
				merged.CategoryID = upd.CategoryID
			}
			merged.Image, err = openOptionalUpload(updImagePath)
			if err != nil {
				return err
			}

			p, err := client.UpdateProject(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Printf("updated project %d\n", p.ID)
			return nil
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "project name")
	update.Flags().StringVar(&upd.Description, "description", "", "project description")
	update.Flags().BoolVar(&upd.IsFree, "free", false, "free project (no subscription plans)")
	update.Flags().Float64Var(&upd.BasicPrice, "basic-price", 0, "basic plan price")
	update.Flags().Float64Var(&upd.ClassicPrice, "classic-price", 0, "classic plan price")
	update.Flags().Float64Var(&upd.PremiumPrice, "premium-price", 0, "premium plan price")
	update.Flags().IntVar(&upd.CategoryID, "category", 0, "category id")
	update.Flags().StringVar(&updImagePath, "image", "", "path to a new cover image (max 2MB)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project (admin)",
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

			if err := client.DeleteProject(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted project %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, get, create, update, del)
	return cmd
}
