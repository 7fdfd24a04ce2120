package main

import (
	"fmt"
	"os"

	"github.com/mooncoven/mooncoven-backend/internal/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		fmt.Printf("failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.Log.Sync()

	a.Log.Info("listening", "addr", a.Cfg.Addr)
	if err := a.Run(); err != nil {
		a.Log.Fatal("server exited", "error", err)
	}
}
