package task

import (
	"testing"
	"time"
)

func TestKeyIsScopedByCategory(t *testing.T) {
	a := Task{ID: "1", Category: CategoryInitial}
	b := Task{ID: "1", Category: CategoryHealthWellness}

	if a.Key() == b.Key() {
		t.Fatalf("tasks in different categories share key %q", a.Key())
	}
	if a.Key() != "initial:1" {
		t.Fatalf("key = %q, want %q", a.Key(), "initial:1")
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	deadline := now.Add(time.Hour)

	tk := Task{ID: "1", Category: CategoryInitial, ExpiresAt: &deadline}
	if tk.Expired(now) {
		t.Fatal("task expired before its deadline")
	}
	if !tk.Expired(now.Add(2 * time.Hour)) {
		t.Fatal("task not expired after its deadline")
	}

	evergreen := Task{ID: "2", Category: CategoryMoneySavings}
	if evergreen.Expired(now.Add(1000 * time.Hour)) {
		t.Fatal("task without deadline reported expired")
	}
}

func TestTimeLeftClampsAtZero(t *testing.T) {
	now := time.Now()
	deadline := now.Add(90 * time.Second)
	tk := Task{ID: "1", Category: CategoryInitial, ExpiresAt: &deadline}

	if got := tk.TimeLeft(now); got != 90 {
		t.Fatalf("TimeLeft = %d, want 90", got)
	}
	if got := tk.TimeLeft(now.Add(5 * time.Minute)); got != 0 {
		t.Fatalf("TimeLeft past deadline = %d, want 0", got)
	}
	evergreen := Task{ID: "2", Category: CategoryGeneralKnowledge}
	if got := evergreen.TimeLeft(now); got != 0 {
		t.Fatalf("TimeLeft without deadline = %d, want 0", got)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range AllCategories {
		if !c.Valid() {
			t.Errorf("category %q should be valid", c)
		}
	}
	if Category("drinkingGames").Valid() {
		t.Error("unknown category accepted")
	}
}
