package bot

import (
	"strings"
	"unicode"

	"github.com/bwmarrin/discordgo"
)

// Invocation is what a handler gets: the arguments after the command name
// and the pieces of the inbound message it may care about.
type Invocation struct {
	Args     []string
	Author   *discordgo.User
	Mentions []*discordgo.User
}

// Response is built fresh per invocation and handed straight to the
// transport. Embed wins when both are set.
type Response struct {
	Content string
	Embed   *discordgo.MessageEmbed
}

type Handler func(inv *Invocation) (*Response, error)

// Router maps command names to handlers. Names are matched exactly:
// "lunaria!wisdomX" does not dispatch "wisdom".
type Router struct {
	prefix   string
	commands map[string]Handler
}

func NewRouter(prefix string) *Router {
	return &Router{
		prefix:   prefix,
		commands: make(map[string]Handler),
	}
}

func (r *Router) Handle(name string, h Handler) {
	r.commands[name] = h
}

// Match parses a raw message. The command name abuts the prefix directly
// (lunaria!wisdom); whatever fields follow become args. The third return is
// false for unprefixed text and unknown commands alike.
func (r *Router) Match(content string) (Handler, []string, bool) {
	rest, ok := strings.CutPrefix(content, r.prefix)
	if !ok {
		return nil, nil, false
	}
	// The name must follow the prefix with no gap: "lunaria! wisdom" is not
	// a command.
	if rest == "" || unicode.IsSpace(rune(rest[0])) {
		return nil, nil, false
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return nil, nil, false
	}

	h, ok := r.commands[fields[0]]
	if !ok {
		return nil, nil, false
	}
	return h, fields[1:], true
}
