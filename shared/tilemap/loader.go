package tilemap

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// Room files are one JSON document each, named room_<digits>.json. Loading
// goes through fs.FS so callers can pass embed.FS (bundled templates) or
// os.DirFS (a user room folder); saving writes real files.

var roomFileName = regexp.MustCompile(`^room_(\d+)\.json$`)

// LoadRoom reads and decodes a single room file.
func LoadRoom(fsys fs.FS, path string) (*Room, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("load room %s: %w", path, err)
	}
	var r Room
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode room %s: %w", path, err)
	}
	if err := r.validate(); err != nil {
		return nil, fmt.Errorf("room %s: %w", path, err)
	}
	return &r, nil
}

func (r *Room) validate() error {
	if r.W <= 0 || r.H <= 0 {
		return fmt.Errorf("invalid size %dx%d", r.W, r.H)
	}
	if len(r.Base) != r.W*r.H || len(r.Overlay) != r.W*r.H {
		return fmt.Errorf("tile array length %d/%d does not match size %dx%d",
			len(r.Base), len(r.Overlay), r.W, r.H)
	}
	return nil
}

// LoadRoomFolder loads every room_<digits>.json file under dir, sorted by
// filename for deterministic ordering. Unreadable or malformed files are
// skipped with a warning; the rest of the folder still loads.
func LoadRoomFolder(fsys fs.FS, dir string) ([]*Room, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read room folder %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && roomFileName.MatchString(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	rooms := make([]*Room, 0, len(names))
	for _, name := range names {
		r, err := LoadRoom(fsys, filepath.ToSlash(filepath.Join(dir, name)))
		if err != nil {
			log.Printf("Warning: skipping room file %s: %v", name, err)
			continue
		}
		rooms = append(rooms, r)
	}
	return rooms, nil
}

// SaveRoom writes the room as an indented JSON document. The in-memory room
// is unaffected by a write failure.
func SaveRoom(r *Room, path string) error {
	if err := r.validate(); err != nil {
		return fmt.Errorf("save room %s: %w", path, err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encode room %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save room %s: %w", path, err)
	}
	return nil
}

// NextRoomPath returns the path for the next room file in dir: index
// max-existing+1, zero-padded to the widest digit count observed (three when
// the folder has no rooms yet).
func NextRoomPath(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read room folder %s: %w", dir, err)
	}

	next := 0
	width := 3
	for _, e := range entries {
		m := roomFileName.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		var idx int
		fmt.Sscanf(m[1], "%d", &idx)
		if idx+1 > next {
			next = idx + 1
		}
		if len(m[1]) > width {
			width = len(m[1])
		}
	}
	return filepath.Join(dir, fmt.Sprintf("room_%0*d.json", width, next)), nil
}

// DeleteRoom removes a room file. Failures are logged and otherwise ignored;
// the in-memory room is unaffected.
func DeleteRoom(path string) {
	if err := os.Remove(path); err != nil {
		log.Printf("Warning: could not delete room file %s: %v", path, err)
	}
}
