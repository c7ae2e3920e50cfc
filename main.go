package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"f1telemetrycompare/pkg/apps"
	"f1telemetrycompare/pkg/compare"
	"f1telemetrycompare/pkg/livetiming"
	"f1telemetrycompare/pkg/notification"
	"f1telemetrycompare/pkg/settings"
	"f1telemetrycompare/pkg/webserver"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	// get config from env
	domain := os.Getenv("TELEMETRY_API_DOMAIN")
	cacheDb := os.Getenv("CACHE_DB")
	if cacheDb == "" {
		cacheDb = livetiming.DefaultCacheDb
	}

	cache, err := livetiming.NewCache(cacheDb)
	if err != nil {
		// Abort if something is wrong
		log.Panic(err)
	}
	defer cache.Close()

	lt := livetiming.NewManager(domain, cache)
	cm := compare.NewManager(lt)

	// Create a new cancellable background context. Calling `cancel()` leads to the cancellation of the context
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	exitChan := make(chan bool)

	// Season schedules are refreshed every hour so a running app picks up
	// calendar changes without a restart
	scheduleTicker := time.NewTicker(60 * time.Minute)
	lt.Sync(ctx, scheduleTicker, exitChan)

	// The bot surface is optional. Without a token the app is just the
	// web comparator.
	token := os.Getenv("TELEGRAM_TOKEN")
	if token != "" {
		bot, err := tgbotapi.NewBotAPI(token)
		if err != nil {
			// Abort if something is wrong
			log.Panic(err)
		}

		// Set this to true to log all interactions with telegram servers
		bot.Debug = false

		sm, err := settings.NewManager()
		if err != nil {
			log.Panic(err)
		}
		defer sm.Close()

		mainApp := apps.NewMainApp(ctx, bot, cm, sm)

		nm := notification.NewManager(ctx, bot, sm)
		go nm.Start(exitChan)

		watcher := notification.NewWatcher(lt)
		watcherTicker := time.NewTicker(1 * time.Minute)
		watcher.Start(ctx, watcherTicker, exitChan)

		u := tgbotapi.NewUpdate(0)
		u.Timeout = 60

		// `updates` is a golang channel which receives telegram updates
		updates := bot.GetUpdatesChan(u)

		// Pass cancellable context to goroutine
		go receiveUpdates(ctx, bot, mainApp, updates)

		// Tell the user the bot is online
		log.Println("Start listening for updates. Press Ctrl-C to stop it")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigs
		scheduleTicker.Stop()
		close(exitChan)
		cancel()
	}()

	wm := webserver.NewManager(cm)
	wm.Debug()
	// lock the main thread until the webserver drains after a signal
	wm.Serve(exitChan)
}

func receiveUpdates(ctx context.Context, bot *tgbotapi.BotAPI, app *apps.MainApp, updates tgbotapi.UpdatesChannel) {
	// `for {` means the loop is infinite until we manually stop it
	for {
		select {
		// stop looping if ctx is cancelled
		case <-ctx.Done():
			return
		// receive update from channel and then handle it
		case update := <-updates:
			handleUpdate(ctx, bot, app, update)
		}
	}
}

func handleUpdate(ctx context.Context, bot *tgbotapi.BotAPI, app *apps.MainApp, update tgbotapi.Update) {
	switch {
	// Handle messages
	case update.Message != nil:
		handleMessage(ctx, bot, app, update.Message)
	// Handle button clicks
	case update.CallbackQuery != nil:
		handleCallbackQuery(ctx, bot, app, update.CallbackQuery)
	}
}

func handleMessage(ctx context.Context, bot *tgbotapi.BotAPI, app *apps.MainApp, message *tgbotapi.Message) {
	user := message.From
	text := message.Text

	if user == nil {
		return
	}

	// Print to console
	log.Printf("%s wrote %s", user.FirstName, text)

	var err error
	if message.IsCommand() {
		accept, handler := app.AcceptCommand(text)
		if accept {
			err = handler(ctx, message.Chat.ID)
		}
	} else {
		accept, handler := app.AcceptButton(text)
		if accept {
			err = handler(ctx, message.Chat.ID)
		}
	}

	if err != nil {
		log.Printf("An error occured: %s", err.Error())
	}
}

func handleCallbackQuery(ctx context.Context, bot *tgbotapi.BotAPI, app *apps.MainApp, query *tgbotapi.CallbackQuery) {
	accept, handler := app.AcceptCallback(query)
	if !accept {
		return
	}

	// Close the query spinner even if rendering fails
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := bot.Request(callback); err != nil {
		log.Printf("An error occured: %s", err.Error())
	}

	if err := handler(ctx, query); err != nil {
		log.Printf("An error occured: %s", err.Error())
	}
}
