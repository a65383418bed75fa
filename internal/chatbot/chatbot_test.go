package chatbot

import (
	"strings"
	"testing"
	"time"

	"github.com/mstead/pantry/internal/database"
	"github.com/mstead/pantry/internal/model"
	"github.com/mstead/pantry/internal/store"
)

func setupBot(t *testing.T) (*Bot, *store.GroceryStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	gs := store.NewGroceryStore(db)
	bot := NewBot(gs)
	bot.now = func() time.Time {
		return time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	}
	return bot, gs
}

func TestInterpretAdd(t *testing.T) {
	bot, gs := setupBot(t)

	reply, err := bot.Interpret("add 2 liters of milk to dairy")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !reply.Refresh {
		t.Error("add should request a refresh")
	}
	if !strings.Contains(reply.Text, "milk") {
		t.Errorf("reply = %q, want it to mention milk", reply.Text)
	}

	items, _ := gs.ListItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "milk" || items[0].Unit != "liters" || items[0].Category != "dairy" {
		t.Errorf("item = %+v, want milk/liters/dairy", items[0])
	}
}

func TestInterpretAddBareItem(t *testing.T) {
	bot, gs := setupBot(t)

	if _, err := bot.Interpret("add bananas"); err != nil {
		t.Fatalf("interpret: %v", err)
	}

	items, _ := gs.ListItems()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "bananas" || items[0].Unit != "pcs" {
		t.Errorf("item = %+v, want bananas with default unit pcs", items[0])
	}
}

func TestInterpretAddDuplicate(t *testing.T) {
	bot, _ := setupBot(t)

	bot.Interpret("add milk")
	reply, err := bot.Interpret("add milk")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if reply.Refresh {
		t.Error("duplicate add should not request a refresh")
	}
	if !strings.Contains(reply.Text, "already") {
		t.Errorf("reply = %q, want duplicate notice", reply.Text)
	}
}

func TestInterpretRemove(t *testing.T) {
	bot, gs := setupBot(t)

	gs.AddItem("Milk", "liters", "", nil)

	reply, err := bot.Interpret("remove milk")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !reply.Refresh {
		t.Error("remove should request a refresh")
	}

	items, _ := gs.ListItems()
	if len(items) != 0 {
		t.Errorf("expected empty list, got %d items", len(items))
	}
}

func TestInterpretRemoveUnknown(t *testing.T) {
	bot, _ := setupBot(t)

	reply, err := bot.Interpret("remove caviar")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if reply.Refresh {
		t.Error("failed remove should not request a refresh")
	}
	if !strings.Contains(reply.Text, "couldn't find") {
		t.Errorf("reply = %q, want a not-found notice", reply.Text)
	}
}

func TestInterpretExpiring(t *testing.T) {
	bot, gs := setupBot(t)

	expiry, _ := model.ParseDate("2026-08-28")
	gs.AddItem("Yogurt", "cups", "", &expiry)

	reply, err := bot.Interpret("what is expiring soon?")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !strings.Contains(reply.Text, "Yogurt") {
		t.Errorf("reply = %q, want it to mention Yogurt", reply.Text)
	}
}

func TestInterpretSuggestions(t *testing.T) {
	bot, gs := setupBot(t)

	gs.AddItem("white bread", "loaf", "", nil)

	reply, err := bot.Interpret("any suggestions?")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !strings.Contains(reply.Text, "brown bread") {
		t.Errorf("reply = %q, want healthier alternative brown bread", reply.Text)
	}
}

func TestInterpretPurchase(t *testing.T) {
	bot, gs := setupBot(t)

	gs.AddItem("Milk", "liters", "", nil)
	gs.AddItem("Bread", "loaf", "", nil)

	reply, err := bot.Interpret("purchase everything")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !reply.Refresh {
		t.Error("purchase should request a refresh")
	}

	items, _ := gs.ListItems()
	if len(items) != 0 {
		t.Errorf("expected empty list, got %d items", len(items))
	}
	history, _ := gs.ListHistory()
	if len(history) != 2 {
		t.Errorf("expected 2 history records, got %d", len(history))
	}
}

func TestInterpretShowList(t *testing.T) {
	bot, gs := setupBot(t)

	gs.AddItem("Milk", "liters", "Dairy & Eggs", nil)

	reply, err := bot.Interpret("show list")
	if err != nil {
		t.Fatalf("interpret: %v", err)
	}
	if !strings.Contains(reply.Text, "Milk (liters, Dairy & Eggs)") {
		t.Errorf("reply = %q, want formatted item line", reply.Text)
	}
}

func TestInterpretEmptyList(t *testing.T) {
	bot, _ := setupBot(t)

	reply, _ := bot.Interpret("show list")
	if reply.Text != "Your grocery list is empty." {
		t.Errorf("reply = %q", reply.Text)
	}
}

func TestInterpretGreetingAndFallback(t *testing.T) {
	bot, _ := setupBot(t)

	reply, _ := bot.Interpret("hello there")
	if !strings.Contains(reply.Text, "Hello") {
		t.Errorf("greeting reply = %q", reply.Text)
	}

	reply, _ = bot.Interpret("make me a sandwich")
	if reply.Text != "Sorry, I don't understand." {
		t.Errorf("fallback reply = %q", reply.Text)
	}
}
