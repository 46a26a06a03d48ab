package notification

import (
	"context"
	"fmt"
	"strings"

	"warsto_quotation/internal/domain/entities"
	"warsto_quotation/internal/usecase/interfaces"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type telegramSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramNotifier posts to the staff channel when a quotation has custom
// lines that need a call back.
type TelegramNotifier struct {
	bot       telegramSender
	channelID int64
}

var _ interfaces.IStaffNotifier = (*TelegramNotifier)(nil)

func NewTelegramNotifier(token string, channelID int64) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramNotifier{bot: bot, channelID: channelID}, nil
}

func (n *TelegramNotifier) NotifyCustomRequirements(ctx context.Context, q entities.Quotation, f entities.Form) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.channelID, formatCustomRequirements(q, f))
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send telegram notification: %w", err)
	}
	return nil
}

func formatCustomRequirements(q entities.Quotation, f entities.Form) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New quotation %s needs a follow-up\n", q.ID)
	fmt.Fprintf(&b, "Home: %s\n", q.DwellingSize)
	fmt.Fprintf(&b, "Customer: %s\n", f.Contact.Name)
	fmt.Fprintf(&b, "Phone: %s\n", f.Contact.PhoneNumber)
	fmt.Fprintf(&b, "Email: %s\n", f.Contact.Email)
	fmt.Fprintf(&b, "Property: %s\n", f.Contact.PropertyName)
	b.WriteString("Custom items:\n")
	for _, li := range q.LineItems {
		if li.IsCustom {
			fmt.Fprintf(&b, "- %s: %s\n", li.Room, li.ItemName)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
