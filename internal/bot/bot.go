// Package bot implements Nyra, the Lunaria guild's Discord bot: a prefix
// command router plus a handful of canned-content handlers. Everything
// transport-level (gateway session, auth, reconnect, event delivery) belongs
// to discordgo.
package bot

import (
	"errors"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// DefaultPrefix is what a message must start with to be treated as a command.
const DefaultPrefix = "lunaria!"

type Config struct {
	Token  string
	Prefix string
}

type Bot struct {
	session *discordgo.Session
	router  *Router
	cfg     Config
	log     *slog.Logger
}

func New(cfg Config, log *slog.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("bot: missing token")
	}
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	if log == nil {
		log = slog.Default()
	}

	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, err
	}
	s.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentMessageContent

	b := &Bot{
		session: s,
		router:  NewRouter(cfg.Prefix),
		cfg:     cfg,
		log:     log,
	}
	b.register()

	s.AddHandler(b.onReady)
	s.AddHandler(b.onMessageCreate)
	return b, nil
}

func (b *Bot) register() {
	b.router.Handle("wisdom", b.handleWisdom)
	b.router.Handle("welcome", b.handleWelcome)
	b.router.Handle("help", b.handleHelp)
}

// Start opens the gateway connection. It returns once the session is up;
// events arrive on discordgo's own goroutines from then on.
func (b *Bot) Start() error {
	return b.session.Open()
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.log.Info("🌑 Nyra has awakened", "user", r.User.Username)
}

func (b *Bot) onMessageCreate(_ *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	h, args, ok := b.router.Match(m.Content)
	if !ok {
		return
	}

	resp, err := h(&Invocation{
		Args:     args,
		Author:   m.Author,
		Mentions: m.Mentions,
	})
	if err != nil {
		b.log.Error("handler failed", "content", m.Content, "err", err)
		return
	}
	b.send(m.ChannelID, resp)
}

// send delivers a response to the originating channel. Delivery errors are
// logged and otherwise dropped; retry policy lives in the transport layer.
func (b *Bot) send(channelID string, resp *Response) {
	if resp == nil {
		return
	}

	var err error
	if resp.Embed != nil {
		_, err = b.session.ChannelMessageSendEmbed(channelID, resp.Embed)
	} else {
		_, err = b.session.ChannelMessageSend(channelID, resp.Content)
	}
	if err != nil {
		b.log.Error("send failed", "channel", channelID, "err", err)
	}
}
