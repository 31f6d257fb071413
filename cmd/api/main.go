package main

import (
	"context"
	"log"

	"github.com/enayetchefonline/partner-gateway/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("partner gateway API failed: %v", err)
	}
}
