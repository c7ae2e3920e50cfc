package notification

import (
	"context"
	"log"
	"strconv"

	"f1telemetrycompare/pkg/model"
	"f1telemetrycompare/pkg/pubsub"
	"f1telemetrycompare/pkg/settings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nikoksr/notify"
)

type Lister interface {
	ListUsersForSessionStarted(sessionType string) ([]settings.TelegramUser, error)
}

type Manager struct {
	ctx    context.Context
	lister Lister
	bot    *tgbotapi.BotAPI
}

func NewManager(ctx context.Context, bot *tgbotapi.BotAPI, lister Lister) *Manager {
	return &Manager{
		ctx:    ctx,
		bot:    bot,
		lister: lister,
	}
}

func (m *Manager) Start(exitChan <-chan bool) {
	startedChan := pubsub.SessionStartedPubSub.Subscribe(pubsub.PubSubSessionStartedPreffix)
	for {
		select {
		case <-exitChan:
			return
		case newSession := <-startedChan:
			sessionType, ok := settings.SessionTypeFor(newSession.SessionCode)
			if !ok {
				continue
			}
			log.Printf("Session to be notified started: %s -> %s\n", newSession.EventName, newSession.SessionName)
			m.handleNotification(newSession, sessionType)
		}
	}
}

func (m *Manager) handleNotification(newSession model.SessionStarted, sessionType string) {
	receipients, err := m.lister.ListUsersForSessionStarted(sessionType)
	if err != nil {
		log.Printf("Error listing users for session started: %s", err.Error())
		return
	}
	log.Printf("Sending notification for %s -> %s to %d telegram users\n", newSession.EventName, sessionType, len(receipients))
	err = m.sendNotification(receipients, newSession)
	if err != nil {
		log.Printf("Error notifying users: %s", err.Error())
	}
}

func (m *Manager) sendNotification(tusers []settings.TelegramUser, newSession model.SessionStarted) error {
	if len(tusers) == 0 {
		return nil
	}

	tg := &Telegram{}
	tg.SetClient(m.bot)

	for _, tuser := range tusers {
		chatId, _ := strconv.ParseInt(tuser.ChatID, 0, 64)
		tg.AddReceivers(chatId)
	}

	n := notify.NewWithServices(tg)
	err := n.Send(m.ctx, "Nueva sesión iniciada:", newSession.String())
	if err != nil {
		return err
	}
	return nil
}
