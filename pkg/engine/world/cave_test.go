package world

import (
	"testing"

	"github.com/zyedidia/generic/mapset"
)

// makeLine builds a cave of n rooms connected in a line: 1-2-3-...-n
func makeLine(t *testing.T, n int) *Cave {
	t.Helper()
	c := NewCave()
	for i := 1; i <= n; i++ {
		if !c.AddRoom(NewRoom(i, "Room", "", MoodCalm)) {
			t.Fatalf("AddRoom(%d) = false, want true", i)
		}
	}
	for i := 1; i < n; i++ {
		c.Connect(i, i+1)
	}
	c.SetStartRoom(1)
	return c
}

func TestAddRoom_DuplicateID(t *testing.T) {
	c := NewCave()
	c.AddRoom(NewRoom(1, "A", "", MoodCalm))
	if c.AddRoom(NewRoom(1, "B", "", MoodCalm)) {
		t.Error("AddRoom(duplicate id) = true, want false")
	}
	if c.Room(1).Name != "A" {
		t.Errorf("Room(1).Name = %q, want A", c.Room(1).Name)
	}
}

func TestConnect_Symmetric(t *testing.T) {
	c := makeLine(t, 3)
	if !c.IsAdjacent(1, 2) || !c.IsAdjacent(2, 1) {
		t.Error("Connect(1, 2) did not create a two-way passage")
	}
	if c.IsAdjacent(1, 3) {
		t.Error("IsAdjacent(1, 3) = true, want false")
	}
	if c.Connect(1, 99) {
		t.Error("Connect(1, 99) = true for missing room, want false")
	}
	if c.Connect(2, 2) {
		t.Error("Connect(2, 2) = true, want false")
	}
}

func TestConnect_ExitsStaySorted(t *testing.T) {
	c := makeLine(t, 4)
	c.Connect(2, 4)
	got := c.Neighbors(2)
	want := []int{1, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Neighbors(2) = %v, want %v", got, want)
			break
		}
	}
}

func TestDisconnect(t *testing.T) {
	c := makeLine(t, 3)
	c.Disconnect(2, 3)
	if c.IsAdjacent(2, 3) || c.IsAdjacent(3, 2) {
		t.Error("Disconnect(2, 3) left a passage behind")
	}
}

func TestReachable_AvoidsRooms(t *testing.T) {
	c := makeLine(t, 5)
	all := c.Reachable(1, mapset.New[int]())
	if all.Size() != 5 {
		t.Errorf("Reachable(1) size = %d, want 5", all.Size())
	}

	avoid := mapset.New[int]()
	avoid.Put(3)
	part := c.Reachable(1, avoid)
	if part.Size() != 2 || part.Has(3) || part.Has(4) {
		t.Errorf("Reachable(1, avoid 3) size = %d, want rooms 1 and 2 only", part.Size())
	}
}

func TestReachable_MissingStart(t *testing.T) {
	c := makeLine(t, 2)
	if got := c.Reachable(42, mapset.New[int]()); got.Size() != 0 {
		t.Errorf("Reachable(42) size = %d, want 0", got.Size())
	}
}

func TestDistance(t *testing.T) {
	c := makeLine(t, 5)
	tests := []struct {
		from, to, want int
	}{
		{1, 1, 0},
		{1, 2, 1},
		{1, 5, 4},
		{5, 2, 3},
		{1, 9, -1},
	}
	for _, tt := range tests {
		if got := c.Distance(tt.from, tt.to); got != tt.want {
			t.Errorf("Distance(%d, %d) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	c := makeLine(t, 3)
	if msg := c.Validate(); msg != "" {
		t.Errorf("Validate() = %q, want empty", msg)
	}

	c.Room(1).Exits = append(c.Room(1).Exits, 3)
	if msg := c.Validate(); msg == "" {
		t.Error("Validate() with one-way exit = empty, want error description")
	}

	if msg := NewCave().Validate(); msg == "" {
		t.Error("Validate() on empty cave = empty, want error description")
	}
}

func TestSortedItems(t *testing.T) {
	set := NewItemSet("rope", "arrows", "lantern")
	got := SortedItems(set)
	want := []string{"arrows", "lantern", "rope"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedItems = %v, want %v", got, want)
			break
		}
	}
}
