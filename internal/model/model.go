package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"hypercart/internal/reorder"
)

// Category groups products and is the unit the user reorders in the TUI.
// Position is the 0-based render order; ties fall back to CreatedAt, then ID.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}

// Reorderable is the category as the reorder engine sees it.
func (c Category) Reorderable() reorder.Item {
	return reorder.Item{ID: c.ID, Label: c.Name, Order: c.Position}
}

type Product struct {
	ID         string    `json:"id"`
	CategoryID string    `json:"categoryId"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CartLine struct {
	Product   Product   `json:"product"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (l CartLine) SubtotalCents() int64 {
	return l.Product.PriceCents * int64(l.Quantity)
}

type Cart struct {
	Lines      []CartLine `json:"lines"`
	ItemCount  int        `json:"itemCount"`
	TotalCents int64      `json:"totalCents"`
}

// FormatCents renders an amount like "12.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ParseCents parses "12", "12.5" or "12.50" into cents.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	whole, frac, hasFrac := strings.Cut(s, ".")
	if whole == "" && !hasFrac {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}
	neg := strings.HasPrefix(whole, "-")
	whole = strings.TrimPrefix(whole, "-")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w < 0 {
		return 0, fmt.Errorf("invalid amount: %q", s)
	}
	var f int64
	if hasFrac {
		if len(frac) == 0 || len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount: %q (at most two decimals)", s)
		}
		if len(frac) == 1 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil || f < 0 {
			return 0, fmt.Errorf("invalid amount: %q", s)
		}
	}
	cents := w*100 + f
	if neg {
		cents = -cents
	}
	return cents, nil
}
