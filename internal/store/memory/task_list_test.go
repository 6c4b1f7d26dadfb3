package memory

import (
	"errors"
	"strings"
	"testing"
	"todo-list/internal/domain"
	"todo-list/internal/store"
)

var _ store.TaskList = (*TaskList)(nil)

func newTask(title string, priority domain.Priority) *domain.Task {
	return domain.NewTask(title, priority, domain.WithAdded("03/01/2024 09:05:02"))
}

func TestTaskList_Add_ReturnsRunningCount(t *testing.T) {
	l := New()

	if n := l.Add(newTask("Buy milk", domain.PriorityLow)); n != 1 {
		t.Fatalf("Add() = %d, want 1", n)
	}
	if n := l.Add(newTask("Call Bob", domain.PriorityHigh)); n != 2 {
		t.Fatalf("Add() = %d, want 2", n)
	}
	if n := l.Add(newTask("Call Bob", domain.PriorityHigh)); n != 3 {
		t.Fatalf("Add() duplicate = %d, want 3", n)
	}

	got := l.List(0)
	want := []string{"Buy milk", "Call Bob", "Call Bob"}
	if len(got) != len(want) {
		t.Fatalf("List() len = %d, want %d", len(got), len(want))
	}
	for i, e := range got {
		if e.Title != want[i] {
			t.Fatalf("List()[%d].Title = %q, want %q", i, e.Title, want[i])
		}
	}
}

func TestTaskList_Add_Nil(t *testing.T) {
	l := New()
	l.Add(newTask("a", domain.PriorityLow))

	if n := l.Add(nil); n != 2 {
		t.Fatalf("Add(nil) = %d, want 2", n)
	}
	if got := l.List(0); len(got) != 1 {
		t.Fatalf("List() len = %d, want 1", len(got))
	}
	if _, err := l.Task("a"); err != nil {
		t.Fatalf("Task() err = %v, want nil", err)
	}
	if l.Remove("missing") {
		t.Fatal("Remove() = true, want false")
	}
}

func TestTaskList_Remove_Single(t *testing.T) {
	l := New()
	l.Add(newTask("a", domain.PriorityLow))
	l.Add(newTask("b", domain.PriorityLow))
	l.Add(newTask("c", domain.PriorityLow))

	if !l.Remove("b") {
		t.Fatal("Remove() = false, want true")
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}

	got := l.List(0)
	if got[0].Title != "a" || got[1].Title != "c" {
		t.Fatalf("List() after Remove = %+v, want [a c]", got)
	}
}

func TestTaskList_Remove_AllDuplicates(t *testing.T) {
	l := New()
	l.Add(newTask("x", domain.PriorityLow))
	l.Add(newTask("y", domain.PriorityLow))
	l.Add(newTask("x", domain.PriorityHigh))

	if !l.Remove("x") {
		t.Fatal("Remove() = false, want true")
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if _, err := l.Task("x"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Task() err = %v, want %v", err, store.ErrNotFound)
	}
}

func TestTaskList_Remove_Absent(t *testing.T) {
	l := New()
	l.Add(newTask("Buy milk", domain.PriorityLow))

	if l.Remove("buy milk") {
		t.Fatal("Remove() case-insensitive match, want exact")
	}
	if l.Remove("Buy") {
		t.Fatal("Remove() partial match, want exact")
	}
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
}

func TestTaskList_List_Filter(t *testing.T) {
	l := New()
	l.Add(newTask("a", domain.PriorityLow))
	l.Add(newTask("b", domain.PriorityHigh))
	l.Add(newTask("c", domain.PriorityHigh))
	l.Add(newTask("d", domain.PriorityUrgent))

	got := l.List(domain.PriorityHigh)
	if len(got) != 2 {
		t.Fatalf("List(5) len = %d, want 2", len(got))
	}
	for _, e := range got {
		if e.Priority != domain.PriorityHigh {
			t.Fatalf("List(5) returned priority %d", e.Priority)
		}
	}
	if got[0].Title != "b" || got[1].Title != "c" {
		t.Fatalf("List(5) order = %+v, want [b c]", got)
	}

	// filter is not normalized
	if got := l.List(99); len(got) != 0 {
		t.Fatalf("List(99) len = %d, want 0", len(got))
	}
}

func TestTaskList_List_Triples(t *testing.T) {
	l := New()
	l.Add(newTask("Buy milk", domain.PriorityMedium))

	got := l.List(0)
	want := store.Entry{Added: "03/01/2024 09:05:02", Title: "Buy milk", Priority: domain.PriorityMedium}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("List() = %+v, want [%+v]", got, want)
	}
}

func TestTaskList_List_ReturnsCopy(t *testing.T) {
	l := New()
	l.Add(newTask("a", domain.PriorityLow))

	got := l.List(0)
	got[0].Title = "mutated"

	again := l.List(0)
	if len(again) != 1 || again[0].Title != "a" {
		t.Fatalf("List() leaked internal state: %+v", again)
	}
}

func TestTaskList_Task_FirstMatch(t *testing.T) {
	l := New()
	first := newTask("X", domain.PriorityLow)
	l.Add(first)
	l.Add(newTask("X", domain.PriorityUrgent))

	got, err := l.Task("X")
	if err != nil {
		t.Fatalf("Task() err = %v, want nil", err)
	}
	if got != first {
		t.Fatalf("Task() returned %+v, want first match", got)
	}
}

func TestTaskList_Task_SharesReference(t *testing.T) {
	l := New()
	l.Add(newTask("X", domain.PriorityLow))

	got, _ := l.Task("X")
	got.SetPriority(domain.PriorityUrgent)

	if list := l.List(domain.PriorityUrgent); len(list) != 1 {
		t.Fatalf("List(7) len = %d, want 1", len(list))
	}
}

func TestTaskList_Task_NotFound(t *testing.T) {
	l := New()
	l.Add(newTask("X", domain.PriorityLow))

	_, err := l.Task("Y")
	if err == nil {
		t.Fatal("Task() err = nil, want non-nil")
	}
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Task() err = %v, want %v", err, store.ErrNotFound)
	}
	if !strings.Contains(err.Error(), "Y") {
		t.Fatalf("Task() err = %q, want title in message", err.Error())
	}
}
