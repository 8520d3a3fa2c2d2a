// Package inspire fetches and prints the quote of the day.
package inspire

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"daykeep/pkg/quote"
)

type Inspire struct {
	Fetcher *quote.Fetcher
}

func (n *Inspire) Do(ctx context.Context) error {
	f := n.Fetcher
	if f == nil {
		f = &quote.Fetcher{}
	}
	q := f.Daily(ctx)

	fmt.Printf("%q\n", q.Text)
	author := color.New(color.Faint)
	author.Printf("    %s\n", q.Author)
	return nil
}
