package cli

import (
	"strings"

	"hypercart/internal/model"

	"github.com/spf13/cobra"
)

func newProductsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product", "prd"},
		Short:   "List and add products",
	}
	cmd.AddCommand(newProductsListCmd(app))
	cmd.AddCommand(newProductsAddCmd(app))
	return cmd
}

func newProductsListCmd(app *App) *cobra.Command {
	var categoryID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products (optionally for one category)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ps, err := s.ListProducts(cmd.Context(), categoryID)
			if err != nil {
				return writeErr(cmd, err)
			}
			rows := make([][]string, 0, len(ps))
			for _, p := range ps {
				rows = append(rows, []string{p.ID, p.CategoryID, p.Name, model.FormatCents(p.PriceCents)})
			}
			return writeOut(cmd, app, withTable(ps, []string{"ID", "CATEGORY", "NAME", "PRICE"}, rows))
		},
	}
	cmd.Flags().StringVar(&categoryID, "category", "", "Only list products in this category")
	return cmd
}

func newProductsAddCmd(app *App) *cobra.Command {
	var categoryID string
	var price string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a product to a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cents, err := model.ParseCents(price)
			if err != nil {
				return writeErr(cmd, err)
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			categoryID = strings.TrimSpace(categoryID)
			p, err := s.AddProduct(cmd.Context(), categoryID, strings.Join(args, " "), cents)
			if err != nil {
				return writeErr(cmd, storeErr(err, "category", categoryID))
			}
			return writeOut(cmd, app, envelope{Data: p})
		},
	}
	cmd.Flags().StringVar(&categoryID, "category", "", "Category id (required)")
	cmd.Flags().StringVar(&price, "price", "0", "Unit price, e.g. 3.49")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}
