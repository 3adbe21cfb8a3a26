package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"parley/internal/application/suggestion/usecases"
	"parley/internal/infrastructure/ai"
	"parley/internal/infrastructure/config"
	"parley/internal/infrastructure/database"
	"parley/internal/infrastructure/pubsub"
	"parley/internal/infrastructure/repository"
	"parley/internal/shared/logger"
)

// The suggestion worker watches the change feed for new tickets and runs
// the knowledge-base matching pipeline for each one. The path is advisory:
// failures are logged and swallowed, and re-delivered events are no-ops.
func main() {
	env := "development"
	if len(os.Args) > 1 {
		env = os.Args[1]
	}
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	log := logger.NewLogger()
	log.Infow("starting suggestion worker", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		log.Fatalw("failed to initialize database", "error", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to redis", "error", err)
	}
	log.Infow("redis connection established", "address", cfg.Redis.Addr())

	feed := pubsub.NewRedisChangeFeed(redisClient, log)

	ticketRepo := repository.NewTicketRepository(database.Get(), feed)
	articleRepo := repository.NewArticleRepository(database.Get())
	suggestionRepo := repository.NewSuggestionRepository(database.Get(), feed)

	aiService := ai.NewOpenAIService(&cfg.OpenAI, log)

	generateUC := usecases.NewGenerateSuggestionUseCase(
		ticketRepo, articleRepo, suggestionRepo,
		aiService, aiService,
		cfg.Suggestion.SimilarityThreshold, cfg.Suggestion.SearchLimit,
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)

		err := feed.SubscribeChanges(ctx, []string{pubsub.TableTickets}, func(event pubsub.ChangeEvent) {
			if event.Kind != pubsub.ChangeInsert {
				return
			}

			cmd := usecases.GenerateSuggestionCommand{
				TicketID:     event.ID,
				SkipIfExists: true,
			}

			if _, err := generateUC.Execute(ctx, cmd); err != nil {
				log.Warnw("suggestion generation failed",
					"ticket_id", event.ID,
					"error", err)
				return
			}
		})
		if err != nil && ctx.Err() == nil {
			log.Errorw("change feed subscription ended", "error", err)
		}
	}()

	log.Infow("suggestion worker started, watching for new tickets")

	sig := <-sigChan
	log.Infow("received signal, shutting down", "signal", sig)

	cancel()
	<-done

	log.Infow("suggestion worker stopped")
}
