package tilemap

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	r := NewBoxedRoom(5, 5)
	r.X, r.Y = 3, -1
	r.SetOverlay(2, 3, OverlayLadder)
	r.SetOverlay(1, 1, OverlayPlatform)
	r.SetDoor(Door{X: 0, Y: 2, Dir: DirLeft})
	r.SetDoor(Door{X: 4, Y: 2, Dir: DirRight})
	r.Spawns = append(r.Spawns, SpawnTemplate{X: 2.5, Y: 3.0, EnemyType: "Bat"})

	path := filepath.Join(dir, "room_000.json")
	if err := SaveRoom(r, path); err != nil {
		t.Fatalf("SaveRoom: %v", err)
	}

	got, err := LoadRoom(os.DirFS(dir), "room_000.json")
	if err != nil {
		t.Fatalf("LoadRoom: %v", err)
	}
	if !reflect.DeepEqual(got, r) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, r)
	}
}

func TestLoadRoomFolderSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()

	a := NewBoxedRoom(4, 4)
	b := NewBoxedRoom(6, 3)
	if err := SaveRoom(a, filepath.Join(dir, "room_000.json")); err != nil {
		t.Fatal(err)
	}
	if err := SaveRoom(b, filepath.Join(dir, "room_001.json")); err != nil {
		t.Fatal(err)
	}
	// Malformed JSON, a name outside the protocol, and a size mismatch: all
	// skipped, none fatal.
	os.WriteFile(filepath.Join(dir, "room_002.json"), []byte("{not json"), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0o644)
	os.WriteFile(filepath.Join(dir, "room_003.json"),
		[]byte(`{"x":0,"y":0,"w":2,"h":2,"base":[1],"overlay":[0]}`), 0o644)

	rooms, err := LoadRoomFolder(os.DirFS(dir), ".")
	if err != nil {
		t.Fatalf("LoadRoomFolder: %v", err)
	}
	if len(rooms) != 2 {
		t.Fatalf("loaded %d rooms, want 2", len(rooms))
	}
	if rooms[0].W != 4 || rooms[1].W != 6 {
		t.Errorf("rooms out of filename order: widths %d,%d", rooms[0].W, rooms[1].W)
	}
}

func TestNextRoomPathPadsToWidestIndex(t *testing.T) {
	dir := t.TempDir()

	path, err := NextRoomPath(dir)
	if err != nil {
		t.Fatalf("NextRoomPath(empty): %v", err)
	}
	if filepath.Base(path) != "room_000.json" {
		t.Errorf("empty folder next = %s, want room_000.json", filepath.Base(path))
	}

	os.WriteFile(filepath.Join(dir, "room_0041.json"), []byte("{}"), 0o644)
	os.WriteFile(filepath.Join(dir, "room_007.json"), []byte("{}"), 0o644)

	path, err = NextRoomPath(dir)
	if err != nil {
		t.Fatalf("NextRoomPath: %v", err)
	}
	if filepath.Base(path) != "room_0042.json" {
		t.Errorf("next = %s, want room_0042.json", filepath.Base(path))
	}
}
