package cli

import (
	"fmt"
	"strconv"
	"strings"

	"hypercart/internal/model"

	"github.com/spf13/cobra"
)

func newCartCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and change the shopping cart",
	}
	cmd.AddCommand(newCartShowCmd(app))
	cmd.AddCommand(newCartAddCmd(app))
	cmd.AddCommand(newCartRmCmd(app))
	return cmd
}

func newCartShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show cart lines and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cart, err := s.Cart(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cartTable(cart))
		},
	}
}

func cartTable(cart model.Cart) tableEnvelope {
	rows := make([][]string, 0, len(cart.Lines)+1)
	for _, l := range cart.Lines {
		rows = append(rows, []string{
			l.Product.ID,
			l.Product.Name,
			strconv.Itoa(l.Quantity),
			model.FormatCents(l.Product.PriceCents),
			model.FormatCents(l.SubtotalCents()),
		})
	}
	rows = append(rows, []string{"", "total", strconv.Itoa(cart.ItemCount), "", model.FormatCents(cart.TotalCents)})
	return withTable(cart, []string{"ID", "PRODUCT", "QTY", "PRICE", "SUBTOTAL"}, rows)
}

func newCartAddCmd(app *App) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if qty <= 0 {
				return writeErr(cmd, fmt.Errorf("quantity must be positive: %d", qty))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			if err := s.AddToCart(cmd.Context(), id, qty); err != nil {
				return writeErr(cmd, storeErr(err, "product", id))
			}
			cart, err := s.Cart(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cartTable(cart))
		},
	}
	cmd.Flags().IntVar(&qty, "qty", 1, "Quantity to add")
	return cmd
}

func newCartRmCmd(app *App) *cobra.Command {
	var qty int
	cmd := &cobra.Command{
		Use:   "rm <product-id>",
		Short: "Remove a product from the cart (all of it unless --qty is set)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			if err := s.RemoveFromCart(cmd.Context(), id, qty); err != nil {
				return writeErr(cmd, storeErr(err, "cart line", id))
			}
			cart, err := s.Cart(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, cartTable(cart))
		},
	}
	cmd.Flags().IntVar(&qty, "qty", 0, "Quantity to remove (0 removes the whole line)")
	return cmd
}
