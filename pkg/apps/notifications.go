package apps

import (
	"context"
	"fmt"
	"strings"

	"f1telemetrycompare/pkg/menus"
	"f1telemetrycompare/pkg/settings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	inlineKeyboardNotification = "Notif"
)

type NotificationsApp struct {
	bot          *tgbotapi.BotAPI
	sm           *settings.Manager
	appMenu      menus.ApplicationMenu
	menuKeyboard tgbotapi.ReplyKeyboardMarkup
}

func NewNotificationsApp(ctx context.Context, bot *tgbotapi.BotAPI, sm *settings.Manager, appMenu menus.ApplicationMenu) *NotificationsApp {
	menuKeyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(appMenu.ButtonBackTo()),
		),
	)

	return &NotificationsApp{
		bot:          bot,
		sm:           sm,
		appMenu:      appMenu,
		menuKeyboard: menuKeyboard,
	}
}

func (na *NotificationsApp) AcceptCommand(command string) (bool, func(ctx context.Context, chatId int64) error) {
	return false, nil
}

func (na *NotificationsApp) AcceptCallback(query *tgbotapi.CallbackQuery) (bool, func(ctx context.Context, query *tgbotapi.CallbackQuery) error) {
	data := strings.Split(query.Data, ":")
	if data[0] != inlineKeyboardNotification {
		return false, nil
	}
	return true, func(ctx context.Context, query *tgbotapi.CallbackQuery) error {
		userID := fmt.Sprint(query.From.ID)
		chatID := fmt.Sprint(query.Message.Chat.ID)

		err := na.sm.ToggleNotificationForSessionStarted(userID, chatID, data[1])
		if err != nil {
			return err
		}

		n, err := na.sm.ListNotifications(userID)
		if err != nil {
			return err
		}

		keyboard := na.notificationsKeyboard(n)
		msg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, notificationsMessage(n))
		msg.ReplyMarkup = &keyboard
		_, err = na.bot.Send(msg)
		return err
	}
}

func (na *NotificationsApp) AcceptButton(button string) (bool, func(ctx context.Context, chatId int64) error) {
	if button == na.appMenu.Name {
		return true, na.renderNotifications()
	} else if button == na.appMenu.ButtonBackTo() {
		return true, func(ctx context.Context, chatId int64) error {
			msg := tgbotapi.NewMessage(chatId, "OK")
			msg.ReplyMarkup = na.appMenu.PrevMenu()
			_, err := na.bot.Send(msg)
			return err
		}
	}
	return false, nil
}

func (na *NotificationsApp) renderNotifications() func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		n, err := na.sm.ListNotifications(fmt.Sprint(chatId))
		if err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(chatId, notificationsMessage(n))
		msg.ReplyMarkup = na.notificationsKeyboard(n)
		_, err = na.bot.Send(msg)
		return err
	}
}

func (na *NotificationsApp) notificationsKeyboard(n settings.Notifications) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Entrenamientos "+n.PracticeSymbol(), inlineKeyboardNotification+":"+settings.Practice),
			tgbotapi.NewInlineKeyboardButtonData("Clasificación "+n.QualSymbol(), inlineKeyboardNotification+":"+settings.Qual),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Sprint "+n.SprintSymbol(), inlineKeyboardNotification+":"+settings.Sprint),
			tgbotapi.NewInlineKeyboardButtonData("Carrera "+n.RaceSymbol(), inlineKeyboardNotification+":"+settings.Race),
		),
	)
}

func notificationsMessage(n settings.Notifications) string {
	return fmt.Sprintf("Avisos de inicio de sesión:\n\n%s", n.String())
}
