package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"ledgerdesk/internal/bootstrap"
	dashboarddto "ledgerdesk/internal/modules/dashboard/dto"
	invoicedto "ledgerdesk/internal/modules/invoice/dto"
	purchasedto "ledgerdesk/internal/modules/purchase/dto"
	"ledgerdesk/internal/platform/config"
)

func newInvoiceCmd(overrides *config.Overrides) *cobra.Command {
	invoice := &cobra.Command{Use: "invoice", Short: "Invoice operations"}

	invoice.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				invoices, err := app.InvoiceCLI.List(ctx)
				if err != nil {
					return err
				}
				if len(invoices) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no invoices")
					return nil
				}
				for _, inv := range invoices {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t$%.2f\t%s\t%s\n", inv.ID, inv.Title, inv.Amount, inv.Draft.Date, inv.Status)
				}
				return nil
			})
		},
	})

	invoice.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				inv, err := app.InvoiceCLI.Show(ctx, args[0])
				if err != nil {
					return err
				}
				printInvoice(cmd.OutOrStdout(), inv)
				return nil
			})
		},
	})

	var title, amount, date, status, description string
	bindInvoiceFlags := func(cmd *cobra.Command, statusDefault string) {
		cmd.Flags().StringVar(&title, "title", "", "invoice title")
		cmd.Flags().StringVar(&amount, "amount", "", "amount, e.g. 1200.50")
		cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
		cmd.Flags().StringVar(&status, "status", statusDefault, "status: Pending|Paid|Overdue")
		cmd.Flags().StringVar(&description, "description", "", "optional description")
	}

	create := &cobra.Command{
		Use:   "create --title <title> --amount <amount> --date <YYYY-MM-DD>",
		Short: "Create an invoice owned by the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				inv, err := app.InvoiceCLI.Create(ctx, title, amount, date, status, description)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created invoice %s\n", displayID(inv.ID))
				return nil
			})
		},
	}
	bindInvoiceFlags(create, "Pending")

	update := &cobra.Command{
		Use:   "update <id> [--title ...] [--amount ...] [--date ...] [--status ...] [--description ...]",
		Short: "Update an invoice; unset flags keep their stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				flags := cmd.Flags()
				inv, err := app.InvoiceCLI.Update(ctx, args[0], func(in *invoicedto.DraftInput) {
					if flags.Changed("title") {
						in.Title = title
					}
					if flags.Changed("amount") {
						in.Amount = amount
					}
					if flags.Changed("date") {
						in.Date = date
					}
					if flags.Changed("status") {
						in.Status = status
					}
					if flags.Changed("description") {
						in.Description = description
					}
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated invoice %s\n", displayID(inv.ID))
				return nil
			})
		},
	}
	bindInvoiceFlags(update, "")

	invoice.AddCommand(create, update, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.InvoiceCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted invoice %s\n", args[0])
				return nil
			})
		},
	})
	return invoice
}

func newPurchaseCmd(overrides *config.Overrides) *cobra.Command {
	purchase := &cobra.Command{Use: "purchase", Short: "Purchase operations"}

	purchase.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List purchases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				purchases, err := app.PurchaseCLI.List(ctx)
				if err != nil {
					return err
				}
				if len(purchases) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no purchases")
					return nil
				}
				for _, p := range purchases {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t$%.2f\t%s\t%s\n", p.ID, p.Name, p.Vendor, p.Amount, p.Draft.Date, p.Status)
				}
				return nil
			})
		},
	})

	purchase.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.PurchaseCLI.Show(ctx, args[0])
				if err != nil {
					return err
				}
				printPurchase(cmd.OutOrStdout(), p)
				return nil
			})
		},
	})

	var name, vendor, amount, date, status string
	bindPurchaseFlags := func(cmd *cobra.Command, statusDefault string) {
		cmd.Flags().StringVar(&name, "name", "", "item name")
		cmd.Flags().StringVar(&vendor, "vendor", "", "vendor")
		cmd.Flags().StringVar(&amount, "amount", "", "amount, e.g. 99.90")
		cmd.Flags().StringVar(&date, "date", "", "date as YYYY-MM-DD")
		cmd.Flags().StringVar(&status, "status", statusDefault, "status: In Transit|Completed|Pending")
	}

	create := &cobra.Command{
		Use:   "create --name <name> --vendor <vendor> --amount <amount> --date <YYYY-MM-DD>",
		Short: "Create a purchase owned by the signed-in user",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				p, err := app.PurchaseCLI.Create(ctx, name, vendor, amount, date, status)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created purchase %s\n", displayID(p.ID))
				return nil
			})
		},
	}
	bindPurchaseFlags(create, "In Transit")

	update := &cobra.Command{
		Use:   "update <id> [--name ...] [--vendor ...] [--amount ...] [--date ...] [--status ...]",
		Short: "Update a purchase; unset flags keep their stored value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				flags := cmd.Flags()
				p, err := app.PurchaseCLI.Update(ctx, args[0], func(in *purchasedto.DraftInput) {
					if flags.Changed("name") {
						in.Name = name
					}
					if flags.Changed("vendor") {
						in.Vendor = vendor
					}
					if flags.Changed("amount") {
						in.Amount = amount
					}
					if flags.Changed("date") {
						in.Date = date
					}
					if flags.Changed("status") {
						in.Status = status
					}
				})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated purchase %s\n", displayID(p.ID))
				return nil
			})
		},
	}
	bindPurchaseFlags(update, "")

	purchase.AddCommand(create, update, &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(cmd, overrides, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.PurchaseCLI.Delete(ctx, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted purchase %s\n", args[0])
				return nil
			})
		},
	})
	return purchase
}

func printInvoice(w io.Writer, inv invoicedto.InvoiceOutput) {
	_, _ = fmt.Fprintf(w, "id: %s\ntitle: %s\namount: $%.2f\ndate: %s\nstatus: %s\nowner: %s\n", displayID(inv.ID), inv.Title, inv.Amount, inv.Draft.Date, inv.Status, displayID(inv.OwnerID))
	if inv.Description != "" {
		_, _ = fmt.Fprintf(w, "description: %s\n", inv.Description)
	}
}

func printPurchase(w io.Writer, p purchasedto.PurchaseOutput) {
	_, _ = fmt.Fprintf(w, "id: %s\nname: %s\nvendor: %s\namount: $%.2f\ndate: %s\nstatus: %s\nowner: %s\n", displayID(p.ID), p.Name, p.Vendor, p.Amount, p.Draft.Date, p.Status, displayID(p.OwnerID))
}

func statusCounts(counts []dashboarddto.StatusCountOutput) []string {
	out := make([]string, 0, len(counts))
	for _, c := range counts {
		out = append(out, fmt.Sprintf("%s=%d", c.Status, c.Count))
	}
	return out
}

func displayID(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
