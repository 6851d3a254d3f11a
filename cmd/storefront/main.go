package main

import (
	"context"
	"errors"
	"os"

	"shekinah-storefront/internal/storefront"
	"shekinah-storefront/pkg/logger"
)

func main() {
	mylog := logger.NewLogger("storefront")

	if err := storefront.Execute(context.Background(), mylog, os.Args[1:]); err != nil {
		if errors.Is(err, storefront.ErrHelp) {
			return
		}
		os.Exit(1)
	}
}
