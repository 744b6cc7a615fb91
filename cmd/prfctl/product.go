package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newProductsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage marketplace products",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			products, err := client.Products(cmd.Context())
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK")
			for _, p := range products {
				fmt.Fprintf(w, "%d\t%s\t%.0f\t%d\n", p.ID, p.Name, p.Price, p.Stock)
			}
			return w.Flush()
		},
	}

	var params api.ProductParams
	var imagePath string
	create := &cobra.Command{
		Use:   "create",
		Short: "Create a product (admin)",
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

			p, err := client.CreateProduct(cmd.Context(), params)
			if err != nil {
				return err
			}
			fmt.Printf("created product %d\n", p.ID)
			return nil
		},
	}
	create.Flags().StringVar(&params.Name, "name", "", "product name")
	create.Flags().StringVar(&params.Description, "description", "", "product description")
	create.Flags().Float64Var(&params.Price, "price", 0, "unit price")
	create.Flags().IntVar(&params.Stock, "stock", 0, "units in stock")
	create.Flags().IntVar(&params.CategoryID, "category", 0, "category id")
	create.Flags().StringVar(&imagePath, "image", "", "path to a product image (max 2MB)")

	var stock int
	var price float64
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a product's price and stock (admin)",
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
			current, err := client.GetProduct(cmd.Context(), id)
			if err != nil {
				return err
			}

			updateParams := api.ProductParams{
				Name:        current.Name,
				Description: current.Description,
				Price:       current.Price,
				Stock:       current.Stock,
				CategoryID:  current.CategoryID,
			}
			if cmd.Flags().Changed("price") {
				updateParams.Price = price
			}
			if cmd.Flags().Changed("stock") {
				updateParams.Stock = stock
			}

			p, err := client.UpdateProduct(cmd.Context(), id, updateParams)
			if err != nil {
				return err
			}
			fmt.Printf("updated product %d: price %.0f, stock %d\n", p.ID, p.Price, p.Stock)
			return nil
		},
	}
	update.Flags().Float64Var(&price, "price", 0, "new unit price")
	update.Flags().IntVar(&stock, "stock", 0, "new stock level")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product (admin)",
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

			if err := client.DeleteProduct(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Printf("deleted product %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}
