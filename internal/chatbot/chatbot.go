// Package chatbot turns free-form user messages into grocery-list actions.
// The HTTP layer only depends on the Interpreter interface, so the rule-based
// Bot can be swapped for a smarter collaborator without touching handlers.
package chatbot

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mstead/pantry/internal/model"
	"github.com/mstead/pantry/internal/remind"
	"github.com/mstead/pantry/internal/store"
	"github.com/mstead/pantry/internal/suggest"
)

// Reply is the answer to a user message. Refresh tells the client the grocery
// list changed and should be re-fetched.
type Reply struct {
	Text    string `json:"reply"`
	Refresh bool   `json:"refresh"`
}

// Interpreter processes one chat message.
type Interpreter interface {
	Interpret(message string) (Reply, error)
}

// Bot is a rule-based Interpreter over the grocery store and the derived
// suggestion/reminder views.
type Bot struct {
	store *store.GroceryStore
	now   func() time.Time
}

func NewBot(st *store.GroceryStore) *Bot {
	return &Bot{store: st, now: time.Now}
}

var (
	// "add [quantity] [unit] of [name] to [category]" — quantity is accepted
	// but discarded, items carry only a unit.
	addRe    = regexp.MustCompile(`add\s+(?:\d+(?:\.\d+)?\s+)?(?:(?P<unit>\w+)\s+of\s+)?(?P<name>[\w ]+?)(?:\s+to\s+(?P<category>\w+))?$`)
	removeRe = regexp.MustCompile(`remove\s+(?P<name>[\w ]+)`)
)

// Interpret dispatches on keywords, mirroring what users actually type:
// "add 2 liters of milk", "remove bread", "what's expiring", "suggestions",
// "show list", "clear list" / "purchase".
func (b *Bot) Interpret(message string) (Reply, error) {
	msg := strings.ToLower(strings.TrimSpace(message))

	switch {
	case strings.Contains(msg, "add"):
		return b.handleAdd(msg)
	case strings.Contains(msg, "remove"):
		return b.handleRemove(msg)
	case strings.Contains(msg, "expir"):
		return b.handleExpiring()
	case strings.Contains(msg, "suggest"):
		return b.handleSuggestions()
	case strings.Contains(msg, "clear list") || strings.Contains(msg, "purchase"):
		return b.handlePurchase()
	case strings.Contains(msg, "list"):
		return b.handleList()
	case strings.Contains(msg, "hello") || strings.Contains(msg, "hi"):
		return Reply{Text: "Hello! How can I help you with your groceries today?"}, nil
	}
	return Reply{Text: "Sorry, I don't understand."}, nil
}

func (b *Bot) handleAdd(msg string) (Reply, error) {
	m := addRe.FindStringSubmatch(msg)
	if m == nil {
		return Reply{Text: "I couldn't figure out what to add. Try: 'add 2 liters of milk to dairy'."}, nil
	}

	unit := m[addRe.SubexpIndex("unit")]
	if unit == "" {
		unit = "pcs"
	}
	name := strings.TrimSpace(m[addRe.SubexpIndex("name")])
	category := m[addRe.SubexpIndex("category")]

	_, err := b.store.AddItem(name, unit, category, nil)
	if errors.Is(err, store.ErrDuplicate) {
		return Reply{Text: fmt.Sprintf("%s is already on your list.", name)}, nil
	}
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: fmt.Sprintf("I've added %s to your list.", name), Refresh: true}, nil
}

func (b *Bot) handleRemove(msg string) (Reply, error) {
	m := removeRe.FindStringSubmatch(msg)
	if m == nil {
		return Reply{Text: "I couldn't figure out what to remove. Try: 'remove milk'."}, nil
	}
	wanted := strings.TrimSpace(m[removeRe.SubexpIndex("name")])

	// Chat input is lower-cased, stored names are not; resolve to the exact
	// stored spelling before removing.
	items, err := b.store.ListItems()
	if err != nil {
		return Reply{}, err
	}
	for _, item := range items {
		if strings.ToLower(item.Name) != wanted {
			continue
		}
		if err := b.store.RemoveItem(item.Name); err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf("I've removed %s from your list.", item.Name), Refresh: true}, nil
	}
	return Reply{Text: fmt.Sprintf("I couldn't find %s in your list.", wanted)}, nil
}

func (b *Bot) handleExpiring() (Reply, error) {
	items, err := b.store.ListItems()
	if err != nil {
		return Reply{}, err
	}
	reminders := remind.Expiring(items, b.now())
	if len(reminders) == 0 {
		return Reply{Text: "You have no items expiring soon."}, nil
	}
	return Reply{Text: "Here are the items expiring soon:\n" + strings.Join(reminders, "\n")}, nil
}

func (b *Bot) handleSuggestions() (Reply, error) {
	items, err := b.store.ListItems()
	if err != nil {
		return Reply{}, err
	}
	history, err := b.store.ListHistory()
	if err != nil {
		return Reply{}, err
	}

	var sections []string
	if missing := suggest.Missing(items, history, b.now()); len(missing) > 0 {
		sections = append(sections, "Missing items:\n"+strings.Join(missing, "\n"))
	}
	if healthier := suggest.Healthier(items); len(healthier) > 0 {
		sections = append(sections, "Healthier alternatives:\n"+strings.Join(healthier, "\n"))
	}

	if len(sections) == 0 {
		return Reply{Text: "I have no suggestions for you right now."}, nil
	}
	return Reply{Text: strings.Join(sections, "\n\n")}, nil
}

func (b *Bot) handlePurchase() (Reply, error) {
	count, err := b.store.PurchaseAll(b.now().UTC())
	if err != nil {
		return Reply{}, err
	}
	if count == 0 {
		return Reply{Text: "Your grocery list is already empty."}, nil
	}
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	return Reply{
		Text:    fmt.Sprintf("I've marked %d %s as purchased and cleared your list.", count, noun),
		Refresh: true,
	}, nil
}

func (b *Bot) handleList() (Reply, error) {
	items, err := b.store.ListItems()
	if err != nil {
		return Reply{}, err
	}
	if len(items) == 0 {
		return Reply{Text: "Your grocery list is empty."}, nil
	}

	var sb strings.Builder
	sb.WriteString("Here's your grocery list:\n")
	for _, item := range items {
		sb.WriteString(formatItem(item))
		sb.WriteByte('\n')
	}
	return Reply{Text: strings.TrimRight(sb.String(), "\n")}, nil
}

func formatItem(item model.GroceryItem) string {
	if item.Category != "" {
		return fmt.Sprintf("- %s (%s, %s)", item.Name, item.Unit, item.Category)
	}
	return fmt.Sprintf("- %s (%s)", item.Name, item.Unit)
}
