package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prf-platform/prfweb/internal/api"
)

func newCartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage your cart and check out",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Show the cart",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			items, err := client.Cart(cmd.Context())
			if err != nil {
				return err
			}

			var total float64
			w := newTable()
			fmt.Fprintln(w, "ID\tPRODUCT\tQTY\tPRICE")
			for _, item := range items {
				fmt.Fprintf(w, "%d\t%s\t%d\t%.0f\n", item.ID, item.Name, item.Quantity, item.Price)
				total += item.Price * float64(item.Quantity)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Printf("total: %.0f\n", total)
			return nil
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			item, err := client.AddToCart(cmd.Context(), productID, quantity)
			if err != nil {
				return err
			}
			fmt.Printf("added %s (x%d)\n", item.Name, item.Quantity)
			return nil
		},
	}
	add.Flags().IntVar(&quantity, "quantity", 1, "number of units")

	var newQuantity int
	update := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Change the quantity of a cart entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			item, err := client.UpdateCartItem(cmd.Context(), itemID, newQuantity)
			if err != nil {
				return err
			}
			fmt.Printf("%s is now x%d\n", item.Name, item.Quantity)
			return nil
		},
	}
	update.Flags().IntVar(&newQuantity, "quantity", 1, "new number of units")

	remove := &cobra.Command{
		Use:   "remove <item-id>",
		Short: "Remove a cart entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := a.requireLogin()
			if err != nil {
				return err
			}
			if err := client.RemoveFromCart(cmd.Context(), itemID); err != nil {
				return err
			}
			fmt.Printf("removed item %d\n", itemID)
			return nil
		},
	}

	var operator, phone string
	checkout := &cobra.Command{
		Use:   "checkout",
		Short: "Pay for the cart by mobile money",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}

			res, err := client.Checkout(cmd.Context(), api.CheckoutParams{
				Operator: operator,
				Phone:    phone,
			})
			if err != nil {
				return err
			}
			fmt.Printf("payment %s for %.0f - confirm on your phone, then run:\n  prfctl cart confirm %s\n",
				res.Status, res.TotalAmount, res.Reference)
			return nil
		},
	}
	checkout.Flags().StringVar(&operator, "operator", "", "mobile money operator")
	checkout.Flags().StringVar(&phone, "phone", "", "payer phone number")

	confirm := &cobra.Command{
		Use:   "confirm <reference>",
		Short: "Confirm a pending payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			res, err := client.ConfirmPayment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("payment %s: %s\n", res.Reference, res.Status)
			return nil
		},
	}

	cmd.AddCommand(list, add, update, remove, checkout, confirm)
	return cmd
}

func newOrdersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "View and manage orders",
	}

	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List your orders (--all for every order, admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}

			var orders []api.Order
			if all {
				a.warnIfNotAdmin()
				orders, err = client.AdminOrders(cmd.Context())
			} else {
				orders, err = client.Orders(cmd.Context())
			}
			if err != nil {
				return err
			}

			w := newTable()
			fmt.Fprintln(w, "ID\tTOTAL\tSTATUS\tOPERATOR\tCREATED")
			for _, o := range orders {
				fmt.Fprintf(w, "%d\t%.0f\t%s\t%s\t%s\n", o.ID, o.TotalAmount, o.Status, o.Operator, o.CreatedAt)
			}
			return w.Flush()
		},
	}
	list.Flags().BoolVar(&all, "all", false, "list every order on the platform")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one order",
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
			o, err := client.GetOrder(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Printf("order %d - %s, total %.0f via %s\n", o.ID, o.Status, o.TotalAmount, o.Operator)
			w := newTable()
			fmt.Fprintln(w, "PRODUCT\tQTY\tPRICE")
			for _, item := range o.Items {
				fmt.Fprintf(w, "%s\t%d\t%.0f\n", item.Name, item.Quantity, item.Price)
			}
			return w.Flush()
		},
	}

	setStatus := &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Set an order's status (admin)",
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

			o, err := client.UpdateOrderStatus(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("order %d is now %s\n", o.ID, o.Status)
			return nil
		},
	}

	cmd.AddCommand(list, get, setStatus)
	return cmd
}

func newVipCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vip",
		Short: "VIP subscription",
	}

	var level, operator, phone string
	var projectID int
	subscribe := &cobra.Command{
		Use:   "subscribe",
		Short: "Subscribe to a project plan and unlock expert contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.requireLogin()
			if err != nil {
				return err
			}

			sub, err := client.Subscribe(cmd.Context(), projectID, level, operator, phone)
			if err != nil {
				return err
			}
			fmt.Printf("subscription %s: %s plan, status %s\n", sub.ID, sub.Plan, sub.Status)
			return nil
		},
	}
	subscribe.Flags().IntVar(&projectID, "project", 0, "project id")
	subscribe.Flags().StringVar(&level, "level", "Basic", "plan level: Basic, Classic or Premium")
	subscribe.Flags().StringVar(&operator, "operator", "", "mobile money operator")
	subscribe.Flags().StringVar(&phone, "phone", "", "payer phone number")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the locally recorded subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.Client()
			if err != nil {
				return err
			}
			sub, ok := client.VIPSubscription()
			if !ok {
				fmt.Println("no subscription recorded")
				return nil
			}
			fmt.Printf("%s plan via %s - %s, expires %s\n",
				sub.Plan, sub.Operator, sub.Status, sub.ExpiresAt.Format("2006-01-02"))
			if !sub.Active() {
				fmt.Println("(inactive)")
			}
			return nil
		},
	}

	cmd.AddCommand(subscribe, status)
	return cmd
}
