package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"groupmap/internal/env"
	"groupmap/internal/refresh"
	"groupmap/internal/repository"
	"groupmap/internal/server"
	"groupmap/internal/snapshot"
	"groupmap/pkg/graceful"
	"groupmap/pkg/kafkaclient"
	"groupmap/pkg/planningcenter"
)

func main() {
	env.LoadEnv()
	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	// Both credentials are required. The proxy still starts without them but
	// answers /groups with a descriptive 500 instead of defaulting silently.
	var configErr error
	appID, okID := os.LookupEnv("PLANNING_CENTER_APP_ID")
	secret, okSecret := os.LookupEnv("PLANNING_CENTER_SECRET")
	if !okID || !okSecret {
		configErr = fmt.Errorf("PLANNING_CENTER_APP_ID and PLANNING_CENTER_SECRET must be set")
		log.Printf("Missing upstream credentials: %v", configErr)
	}

	policy := repository.Policy{
		RequireOpenEnrollment: env.GetBool("REQUIRE_OPEN_ENROLLMENT", false),
		RequirePublicURL:      env.GetBool("REQUIRE_PUBLIC_URL", false),
		GroupTypeFilter:       env.Get("GROUP_TYPE_FILTER", ""),
	}

	client := planningcenter.NewClient(appID, secret)
	repo := repository.New(client, policy)
	store := snapshot.NewStore()

	var events refresh.EventPublisher
	if broker, ok := os.LookupEnv("KAFKA_BROKER"); ok && broker != "" {
		topic := env.Get("KAFKA_TOPIC", "groupmap.refresh")
		publisher := kafkaclient.NewPublisher(broker, topic)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.Printf("Failed to close Kafka publisher: %v", err)
			}
		}()
		events = publisher
		log.Printf("Publishing refresh events to Kafka broker %s, topic %s", broker, topic)
	}

	refresher := refresh.NewRefresher(repo, store, events)

	srv := &http.Server{
		Addr:    ":" + env.Get("PORT", "8080"),
		Handler: server.New(refresher, configErr).Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Group map proxy listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
	log.Println("Server stopped.")
}
