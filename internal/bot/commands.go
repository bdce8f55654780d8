package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/bwmarrin/discordgo"
)

var wisdomLines = []string{
	"Even void can return something.",
	"All data is a spell waiting to be cast.",
	"Modules are fragments of the soul, split but eternal.",
	"Syntax isn't written — it's conjured.",
	"The REPL is your cauldron; stir it wisely.",
}

// lunaria!wisdom
func (b *Bot) handleWisdom(_ *Invocation) (*Response, error) {
	line := wisdomLines[rand.IntN(len(wisdomLines))]
	return &Response{Content: "🔮 " + line}, nil
}

// lunaria!welcome [@user], target defaults to the invoker.
func (b *Bot) handleWelcome(inv *Invocation) (*Response, error) {
	target := inv.Author
	if len(inv.Mentions) > 0 {
		target = inv.Mentions[0]
	}
	return &Response{Embed: welcomeEmbed(target)}, nil
}

// lunaria!help
func (b *Bot) handleHelp(_ *Invocation) (*Response, error) {
	return &Response{Embed: helpEmbed()}, nil
}

func welcomeEmbed(target *discordgo.User) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🌙 A new star rises...",
		Description: fmt.Sprintf(
			"Welcome to **Lunaria**, %s!\nLet the code guide you through the void.",
			target.Mention(),
		),
		Color: 0x9e91ff,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Nyra, Guardian of the Grimoire",
		},
	}
}

func helpEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "📜 Nyra's Grimoire of Commands",
		Color: 0xaab6ff,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "lunaria!wisdom",
				Value:  "Receive a cryptic line of code-sorcery.",
				Inline: false,
			},
			{
				Name:   "lunaria!welcome [@user]",
				Value:  "Manually invoke the welcome ritual.",
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "More spells soon to be discovered...",
		},
	}
}
