package main

import (
	"context"
	"os"

	"github.com/agbru/sampler/internal/app"
)

func main() {
	application := app.New(os.Stdout, os.Stderr)
	os.Exit(application.Run(context.Background(), os.Args[1:]))
}
