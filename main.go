package main

import (
	"LogoBot/ai"
	"LogoBot/bot"
	"LogoBot/core"
	"LogoBot/health"
	"LogoBot/holder"
	"LogoBot/lib/sl"
	"LogoBot/storage"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	// optional, environment variables may come from the platform instead
	_ = godotenv.Load()

	conf := core.MustLoad(*configPath)
	log := setupLogger(conf.Env)
	log.With(
		slog.String("config", *configPath),
		slog.String("env", conf.Env),
		slog.String("provider", conf.Generator.Provider),
		slog.String("model", conf.Generator.Model),
	).Info("starting logo bot")

	var journal storage.JournalStorage
	if conf.Mongo.Enabled {
		mongoURI := fmt.Sprintf("mongodb://%s:%s@%s:%s",
			conf.Mongo.User, conf.Mongo.Password,
			conf.Mongo.Host, conf.Mongo.Port)
		var err error
		journal, err = storage.NewMongoJournalStorage(mongoURI, conf.Mongo.Database, log)
		if err != nil {
			log.With(
				slog.String("db", conf.Mongo.Database),
				slog.String("user", conf.Mongo.User),
				slog.String("host", conf.Mongo.Host),
			).Error("falling back to memory", sl.Err(err))
			journal = storage.NewMemoryJournalStorage()
		} else {
			log.Info("using MongoDB journal")
		}
	} else {
		journal = storage.NewMemoryJournalStorage()
		log.Info("using in-memory journal")
	}
	state := holder.NewUserState(storage.NewMemoryStyleStorage(), journal, log)

	api, err := tgbotapi.NewBotAPI(conf.TelegramApiKey)
	if err != nil {
		log.With(sl.Secret(conf.TelegramApiKey)).Error("creating telegram", sl.Err(err))
		return
	}
	log.With(slog.String("username", api.Self.UserName)).Info("authorized on telegram")

	catalog := core.NewCatalog(conf.Styles)
	tgBot := bot.NewTgBot(api, log)
	tgBot.SetGenerator(ai.NewGenerator(conf, log))
	tgBot.SetUserState(state)
	tgBot.SetTexts(catalog, core.NewMessages(conf.Messages, catalog))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var runHealth func(context.Context) error
	if !conf.Health.Disabled {
		runHealth = health.NewServer(net.JoinHostPort("", conf.Health.Port), log).Run
	}

	log.Info("bot started")

	if err := run(ctx, log, tgBot.Start, runHealth); err != nil {
		log.Error("stopped with error", sl.Err(err))
	}

	if err := state.Close(); err != nil {
		log.Error("error closing storage", sl.Err(err))
	}

	log.Info("shutdown complete")
}

// run serves the bot and, when runHealth is set, the health server. Both
// stop once the bot returns or ctx is done.
func run(ctx context.Context, log *slog.Logger, runBot, runHealth func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer cancel()
		return runBot(ctx)
	})
	if runHealth != nil {
		group.Go(func() error {
			// a failing probe listener must not take the bot down
			if err := runHealth(ctx); err != nil {
				log.Error("health server", sl.Err(err))
			}
			return nil
		})
	}
	return group.Wait()
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}
