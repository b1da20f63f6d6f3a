package cli

import (
	"fmt"
	"strconv"
	"strings"

	"hypercart/internal/model"
	"hypercart/internal/store"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category", "cat"},
		Short:   "List and arrange product categories",
	}
	cmd.AddCommand(newCategoriesListCmd(app))
	cmd.AddCommand(newCategoriesAddCmd(app))
	cmd.AddCommand(newCategoriesRenameCmd(app))
	cmd.AddCommand(newCategoriesRmCmd(app))
	cmd.AddCommand(newCategoriesMoveCmd(app))
	return cmd
}

func newCategoriesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			cs, err := s.ListCategories(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			counts, err := s.ProductCounts(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, categoriesTable(cs, counts))
		},
	}
}

func categoriesTable(cs []model.Category, counts map[string]int) tableEnvelope {
	rows := make([][]string, 0, len(cs))
	for _, c := range cs {
		rows = append(rows, []string{strconv.Itoa(c.Position), c.ID, c.Name, strconv.Itoa(counts[c.ID])})
	}
	return withTable(cs, []string{"#", "ID", "NAME", "PRODUCTS"}, rows)
}

func newCategoriesAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category at the end of the list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, err := s.AddCategory(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope{Data: c})
		},
	}
}

func newCategoriesRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <category-id> <name>",
		Short: "Rename a category",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			if err := s.RenameCategory(cmd.Context(), id, strings.Join(args[1:], " ")); err != nil {
				return writeErr(cmd, storeErr(err, "category", id))
			}
			return writeOut(cmd, app, envelope{Data: map[string]any{"id": id, "renamed": true}})
		},
	}
}

func newCategoriesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <category-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a category with its products",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			id := strings.TrimSpace(args[0])
			if err := s.DeleteCategory(cmd.Context(), id); err != nil {
				return writeErr(cmd, storeErr(err, "category", id))
			}
			return writeOut(cmd, app, envelope{Data: map[string]any{"id": id, "deleted": true}})
		},
	}
}

func newCategoriesMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move <category-id> <index>",
		Short: "Move a category to a 0-based position (clamped to the list)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			at, err := strconv.Atoi(strings.TrimSpace(args[1]))
			if err != nil {
				return writeErr(cmd, fmt.Errorf("invalid index %q: %w", args[1], err))
			}
			s, err := openStore(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			ctx := cmd.Context()
			cs, err := s.ListCategories(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			ids := make([]string, 0, len(cs))
			for _, c := range cs {
				ids = append(ids, c.ID)
			}
			next, err := store.MoveID(ids, id, at)
			if err != nil {
				return writeErr(cmd, storeErr(err, "category", id))
			}
			if err := s.SetCategoryOrder(ctx, next); err != nil {
				return writeErr(cmd, err)
			}
			cs, err = s.ListCategories(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			counts, err := s.ProductCounts(ctx)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, categoriesTable(cs, counts))
		},
	}
}
