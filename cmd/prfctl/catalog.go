package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newCategoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage the project/product taxonomy",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			categories, err := client.Categories(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
			for _, c := range categories {
				fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Name, c.Description)
			}
			return w.Flush()
		},
	}

	var params api.CategoryParams
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a category (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			a.warnIfNotAdmin()

			c, err := client.CreateCategory(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("created category %d\n", c.ID)
			return nil
		},
	}
	create.Flags().StringVar(&params.Name, "name", "", "category name")
	create.Flags().StringVar(&params.Description, "description", "", "category description")

	var upd api.CategoryParams
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Rename a category (admin)",
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

			current, err := client.GetCategory(cmd.Context(), id)
			if err != nil {
				return err
			}

			merged := api.CategoryParams{Name: current.Name, Description: current.Description}
			if cmd.Flags().Changed("name") {
				merged.Name = upd.Name
			}
			if cmd.Flags().Changed("description") {
				merged.Description = upd.Description
			}

			c, err := client.UpdateCategory(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Printf("updated category %d\n", c.ID)
			return nil
		},
	}
	update.Flags().StringVar(&upd.Name, "name", "", "category name")
	update.Flags().StringVar(&upd.Description, "description", "", "category description")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category (admin)",
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

			if err := client.DeleteCategory(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted category %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}

func newStoriesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stories",
		Short: "Manage success stories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List success stories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			stories, err := client.SuccessStories(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tTITLE")
			for _, s := range stories {
				fmt.Fprintf(w, "%d\t%s\n", s.ID, s.Title)
			}
			return w.Flush()
		},
	}

	var params api.SuccessStoryParams
	var imagePath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a success story (admin)",
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

			s, err := client.CreateSuccessStory(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("created story %d\n", s.ID)
			return nil
		},
	}
	create.Flags().StringVar(&params.Title, "title", "", "story title")
	create.Flags().StringVar(&params.Description, "description", "", "story text")
	create.Flags().StringVar(&imagePath, "image", "", "path to an illustration (max 2MB)")

	var upd api.SuccessStoryParams
	var updImagePath string
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a success story (admin)",
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

			current, err := client.GetSuccessStory(cmd.Context(), id)
			if err != nil {
				return err
			}

			merged := api.SuccessStoryParams{Title: current.Title, Description: current.Description}
			if cmd.Flags().Changed("title") {
				merged.Title = upd.Title
			}
			if cmd.Flags().Changed("description") {
				merged.Description = upd.Description
			}
			merged.Image, err = openOptionalUpload(updImagePath)
			if err != nil {
				return err
			}

			s, err := client.UpdateSuccessStory(cmd.Context(), id, merged)
			if err != nil {
				return err
			}
			fmt.Printf("updated story %d\n", s.ID)
			return nil
		},
	}
	update.Flags().StringVar(&upd.Title, "title", "", "story title")
	update.Flags().StringVar(&upd.Description, "description", "", "story text")
	update.Flags().StringVar(&updImagePath, "image", "", "path to a new illustration (max 2MB)")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a success story (admin)",
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

			if err := client.DeleteSuccessStory(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted story %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}
