package history_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/raysh454/linkscope/internal/history"
	"github.com/raysh454/linkscope/internal/model"
	"github.com/raysh454/linkscope/internal/testutil"
)

func newLog(t *testing.T, limit int) *history.Log {
	t.Helper()
	l, err := history.NewLog(&history.Config{Limit: limit}, &testutil.DummyLogger{})
	if err != nil {
		t.Fatalf("NewLog: %v", err)
	}
	return l
}

func result(id, url string) *model.ScanResult {
	return &model.ScanResult{ID: id, URL: url, Status: model.StatusSafe, Score: 100}
}

func TestLog_AppendOrder(t *testing.T) {
	t.Parallel()
	l := newLog(t, 5)

	l.Append(result("a", "https://a.example"))
	l.Append(result("b", "https://b.example"))
	l.Append(result("c", "https://c.example"))

	got := l.Entries()
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "c" || got[2].ID != "a" {
		t.Errorf("order = [%s %s %s], want most-recent-first", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestLog_CapEviction(t *testing.T) {
	t.Parallel()
	const limit = 4
	l := newLog(t, limit)

	for i := 0; i < limit+1; i++ {
		l.Append(result(fmt.Sprintf("s%d", i), fmt.Sprintf("https://example.com/%d", i)))
	}

	if l.Len() != limit {
		t.Fatalf("len = %d, want %d", l.Len(), limit)
	}
	got := l.Entries()
	if got[0].ID != fmt.Sprintf("s%d", limit) {
		t.Errorf("newest = %s, want s%d", got[0].ID, limit)
	}
	// The original first scan was evicted.
	if l.Get("s0") != nil {
		t.Error("oldest entry survived past the cap")
	}
}

func TestLog_DefaultLimit(t *testing.T) {
	t.Parallel()
	l := newLog(t, 0)

	for i := 0; i < history.DefaultLimit+5; i++ {
		l.Append(result(fmt.Sprintf("s%d", i), "https://example.com"))
	}
	if l.Len() != history.DefaultLimit {
		t.Errorf("len = %d, want %d", l.Len(), history.DefaultLimit)
	}
}

func TestLog_FilterCaseInsensitive(t *testing.T) {
	t.Parallel()
	l := newLog(t, 10)

	l.Append(result("a", "https://GitHub.com/raysh454"))
	l.Append(result("b", "https://example.com"))
	l.Append(result("c", "http://github.com/login"))

	got := l.Filter("GITHUB")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "c" || got[1].ID != "a" {
		t.Errorf("filter order = [%s %s]", got[0].ID, got[1].ID)
	}

	if all := l.Filter(""); len(all) != 3 {
		t.Errorf("empty filter returned %d entries, want 3", len(all))
	}
}

func TestLog_Clear(t *testing.T) {
	t.Parallel()
	l := newLog(t, 10)

	l.Append(result("a", "https://a.example"))
	l.Clear()
	if l.Len() != 0 {
		t.Errorf("len after clear = %d", l.Len())
	}
}

func TestLog_ConcurrentAppend(t *testing.T) {
	t.Parallel()
	l := newLog(t, 8)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l.Append(result(fmt.Sprintf("s%d", i), "https://example.com"))
		}(i)
	}
	wg.Wait()

	if l.Len() != 8 {
		t.Errorf("len = %d, want 8", l.Len())
	}
}
