package apps

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"

	"f1telemetrycompare/pkg/chart"
	"f1telemetrycompare/pkg/compare"
	"f1telemetrycompare/pkg/helper"
	"f1telemetrycompare/pkg/livetiming"
	"f1telemetrycompare/pkg/menus"
	"f1telemetrycompare/pkg/model"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	menuCompare = "/comparar"

	tableDriver = "PIL"
)

// /comparar <año> <gran premio> <sesión> <pilotoA> <pilotoB>
var commandCompare = regexp.MustCompile(`^\/comparar\s+(\d{4})\s+(.+?)\s+(\S+)\s+([A-Za-z0-9]{2,3})\s+([A-Za-z0-9]{2,3})$`)

type CompareApp struct {
	bot          *tgbotapi.BotAPI
	cm           *compare.Manager
	appMenu      menus.ApplicationMenu
	menuKeyboard tgbotapi.ReplyKeyboardMarkup
}

func NewCompareApp(ctx context.Context, bot *tgbotapi.BotAPI, cm *compare.Manager, appMenu menus.ApplicationMenu) *CompareApp {
	menuKeyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(appMenu.ButtonBackTo()),
		),
	)

	return &CompareApp{
		bot:          bot,
		cm:           cm,
		appMenu:      appMenu,
		menuKeyboard: menuKeyboard,
	}
}

func (ca *CompareApp) AcceptCommand(command string) (bool, func(ctx context.Context, chatId int64) error) {
	if commandCompare.MatchString(command) {
		groups := commandCompare.FindStringSubmatch(command)
		year, _ := strconv.Atoi(groups[1])
		req := compare.Request{
			Year:    year,
			Event:   groups[2],
			Session: groups[3],
			DriverA: livetiming.NormalizeDriver(groups[4]),
			DriverB: livetiming.NormalizeDriver(groups[5]),
		}
		return true, ca.renderComparison(req)
	}
	return false, nil
}

func (ca *CompareApp) AcceptCallback(query *tgbotapi.CallbackQuery) (bool, func(ctx context.Context, query *tgbotapi.CallbackQuery) error) {
	return false, nil
}

func (ca *CompareApp) AcceptButton(button string) (bool, func(ctx context.Context, chatId int64) error) {
	if button == ca.appMenu.Name {
		return true, func(ctx context.Context, chatId int64) error {
			message := "Compara las vueltas rápidas de dos pilotos.\n\n"
			message += fmt.Sprintf("Uso: %s <año> <gran premio> <sesión> <pilotoA> <pilotoB>\n\n", menuCompare)
			message += fmt.Sprintf("Por ejemplo: %s 2023 Monza Q VER LEC", menuCompare)
			msg := tgbotapi.NewMessage(chatId, message)
			msg.ReplyMarkup = ca.menuKeyboard
			_, err := ca.bot.Send(msg)
			return err
		}
	} else if button == ca.appMenu.ButtonBackTo() {
		return true, func(ctx context.Context, chatId int64) error {
			msg := tgbotapi.NewMessage(chatId, "OK")
			msg.ReplyMarkup = ca.appMenu.PrevMenu()
			_, err := ca.bot.Send(msg)
			return err
		}
	}
	return false, nil
}

func (ca *CompareApp) renderComparison(req compare.Request) func(ctx context.Context, chatId int64) error {
	return func(ctx context.Context, chatId int64) error {
		cmp, err := ca.cm.Compare(ctx, req)
		if err != nil {
			log.Printf("comparison failed: %s", err.Error())
			msg := tgbotapi.NewMessage(chatId, compareErrorMessage(err))
			_, err = ca.bot.Send(msg)
			return err
		}

		var b bytes.Buffer
		t := table.NewWriter()
		t.SetOutputMirror(&b)
		t.SetStyle(table.StyleRounded)
		t.AppendSeparator()

		t.AppendHeader(table.Row{tableDriver, "Tiempo", "S1", "S2", "S3", "Goma"})
		for _, dl := range []model.DriverLap{cmp.DriverA, cmp.DriverB} {
			t.AppendRow([]interface{}{
				dl.Driver,
				helper.SecondsToMinutes(dl.Lap.Time),
				helper.ToSectorTime(dl.Lap.S1),
				helper.ToSectorTime(dl.Lap.S2),
				helper.ToSectorTime(dl.Lap.S3),
				dl.Lap.Compound,
			})
		}
		t.AppendFooter(table.Row{cmp.Slower, helper.SecondsToDiff(cmp.Delta)})
		t.Render()

		msg := tgbotapi.NewMessage(chatId, fmt.Sprintf("```\nVuelta rápida en %q\n\n%s```", cmp.Title(), b.String()))
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		_, err = ca.bot.Send(msg)
		if err != nil {
			return err
		}

		png, err := chart.BuildComparisonPNG(cmp, compare.Align(cmp))
		if err != nil {
			return err
		}
		photo := tgbotapi.NewPhoto(chatId, tgbotapi.FileBytes{Name: "comparacion.png", Bytes: png})
		photo.Caption = cmp.Title()
		_, err = ca.bot.Send(photo)
		return err
	}
}

func compareErrorMessage(err error) string {
	switch {
	case errors.Is(err, livetiming.ErrSessionNotFound):
		return "No se ha encontrado la sesión. Revisa el año, el gran premio y el tipo de sesión."
	case errors.Is(err, livetiming.ErrDriverNotFound):
		return "Alguno de los pilotos no tiene vuelta cronometrada en esta sesión."
	}
	return "No se ha podido completar la comparación. Vuelve a intentarlo."
}
