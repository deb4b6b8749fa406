package main

import (
	"context"
	"log"
	"os"

	"backend/config"
	"backend/renderer"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.LoadEnv()
	config.InitDB()
	ctx := context.Background()

	storage, err := utils.NewS3Storage(ctx)
	if err != nil {
		log.Fatalf("S3 init failed: %v", err)
	}
	mailer, err := utils.NewSESMailer(ctx)
	if err != nil {
		log.Fatalf("SES init failed: %v", err)
	}

	var moderator services.ImageModerator
	if rek, err := utils.NewRekognitionModerator(ctx); err != nil {
		log.Printf("logo moderation disabled: %v", err)
	} else {
		moderator = rek
	}

	var pusher services.Pusher
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push notifications disabled: %v", err)
		push = nil
	} else {
		pusher = push
	}

	hub := services.NewRealtimeHub()
	notifier := services.NewPlanNotifier(hub, pusher)
	pdf := renderer.NewPDFRenderer(renderer.NewHTTPImageFetcher())
	plans := services.NewPlanService(config.DB, storage, mailer, pdf, notifier, config.Layout())
	logos := services.NewLogoService(services.NewBrandingService(config.DB), storage, moderator)

	r := routes.SetupRouter(routes.Deps{
		DB:       config.DB,
		Plans:    plans,
		Logos:    logos,
		Push:     push,
		Realtime: hub,
	})

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
