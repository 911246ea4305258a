package main

import (
	"inakat_backend/internal/app"
	"inakat_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
