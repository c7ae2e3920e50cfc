package menus

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	buttonBackTo = "Volver a"
)

// Menuer hands an application the keyboard to go back to.
type Menuer interface {
	Menu() tgbotapi.ReplyKeyboardMarkup
}

type ApplicationMenu struct {
	Name     string
	From     string
	prevMenu Menuer
}

func NewApplicationMenu(name, from string, prevMenu Menuer) ApplicationMenu {
	return ApplicationMenu{
		Name:     name,
		From:     from,
		prevMenu: prevMenu,
	}
}

func (am *ApplicationMenu) ButtonBackTo() string {
	return buttonBackTo + " " + am.From
}

func (am *ApplicationMenu) PrevMenu() tgbotapi.ReplyKeyboardMarkup {
	return am.prevMenu.Menu()
}
