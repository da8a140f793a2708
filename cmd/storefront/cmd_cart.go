package main

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"storefront/internal/service"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var addCmd = &cobra.Command{
	Use:   "add PRODUCT_ID...",
	Short: "Add products to the cart",
	Long: `Add one unit of each product to the cart of the signed-in user.

Each product is sent as its own request; requests run concurrently and
each confirmed add counts once. Run 'storefront login' first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	a := newApp(cfg)
	out := cmd.OutOrStdout()

	var added atomic.Int64
	var mu sync.Mutex
	notifier := service.NotifierFunc(func(ctx context.Context, outcome service.Outcome) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, outcome.Message())
	})

	page := a.page(a.store, service.CounterFunc(func() { added.Add(1) }), notifier)

	g, ctx := errgroup.WithContext(cmd.Context())
	for _, id := range args {
		g.Go(func() error {
			page.AddToCart(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	fmt.Fprintf(out, "Cart +%d\n", added.Load())
	if int(added.Load()) != len(args) {
		return fmt.Errorf("%d of %d products not added", len(args)-int(added.Load()), len(args))
	}
	return nil
}
