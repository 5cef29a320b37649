package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	tgmodels "github.com/go-telegram/bot/models"

	"kai-ticket-watcher/models"
	"kai-ticket-watcher/services"
	"kai-ticket-watcher/utils"
)

// MessageLimit is the largest message body sent in a single Bot API call;
// longer reports are chunked
const MessageLimit = 4000

const (
	sendRateDelayMs = 400
	sendMaxRetries  = 3
)

// TelegramNotifier delivers alerts through the Telegram Bot API
type TelegramNotifier struct {
	bot         *bot.Bot
	chatID      string
	baseURL     string
	rateLimiter *utils.RateLimiter
	logger      *utils.Logger
}

// NewTelegramNotifier creates a notifier for the given bot token and chat
func NewTelegramNotifier(token, chatID, baseURL string, logger *utils.Logger) (*TelegramNotifier, error) {
	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return &TelegramNotifier{
		bot:         b,
		chatID:      chatID,
		baseURL:     baseURL,
		rateLimiter: utils.NewRateLimiter(sendRateDelayMs),
		logger:      logger,
	}, nil
}

// SendTicketAlert sends a numbered summary of matching tickets
func (n *TelegramNotifier) SendTicketAlert(ctx context.Context, tickets []*models.TicketOption) error {
	if len(tickets) == 0 {
		return nil
	}

	lines := []string{"🚆 TRAIN TICKET ALERT", ""}
	for i, ticket := range tickets {
		depart := ticket.DepartureDatetime.Format("2006-01-02 15:04")
		if ticket.DepartureLabel != nil {
			depart = *ticket.DepartureLabel
		}
		lines = append(lines,
			fmt.Sprintf("#%d %s", i+1, ticket.ShortLabel()),
			fmt.Sprintf("   %s -> %s", ticket.Origin, ticket.Destination),
			fmt.Sprintf("   Depart : %s", depart),
			fmt.Sprintf("   Price  : %s (%s)", services.FormatRupiah(ticket.Price), ticket.Currency),
			fmt.Sprintf("   Seats  : %d", ticket.SeatsAvailable),
			"",
			services.SectionDivider,
			"",
		)
	}
	lines = append(lines, services.SectionDivider, fmt.Sprintf("Book manually at %s", n.baseURL))

	return n.send(ctx, strings.Join(lines, "\n"))
}

// SendTrainResultsSummary sends the full report over every scraped row,
// available or not
func (n *TelegramNotifier) SendTrainResultsSummary(ctx context.Context, summary models.SearchSummary, trains []*models.TrainResult) error {
	return n.send(ctx, services.FormatTrainResultsMessage(summary, trains))
}

func (n *TelegramNotifier) send(ctx context.Context, text string) error {
	for _, chunk := range services.SplitMessage(text, MessageLimit) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		body := chunk
		err := utils.RetryWithBackoff(ctx, sendMaxRetries, func() error {
			n.rateLimiter.Wait()
			_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
				ChatID:             n.chatID,
				Text:               body,
				LinkPreviewOptions: &tgmodels.LinkPreviewOptions{IsDisabled: bot.True()},
			})
			return err
		}, n.logger)
		if err != nil {
			return fmt.Errorf("sending telegram message: %w", err)
		}
	}
	n.logger.Info("Telegram notification sent")
	return nil
}
