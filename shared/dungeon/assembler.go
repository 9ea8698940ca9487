package dungeon

import (
	"errors"
	"math/rand"
	"time"

	"github.com/automoto/stonedelve/shared/tilemap"
)

// AssemblerConfig bounds a generation run.
type AssemblerConfig struct {
	// TargetRooms is how many rooms to aim for, first room included.
	TargetRooms int
	// MaxAttempts caps placement attempts; exhausting it yields a smaller,
	// still-valid dungeon rather than an error.
	MaxAttempts int
	// Seed for the run's RNG; 0 derives one from the clock.
	Seed int64
}

// Assembler stitches room templates into a connected dungeon by matching
// doors with opposite facings, rejecting tile conflicts, and retrying under a
// randomized search. One RNG drives the whole run, so a seed reproduces the
// layout.
type Assembler struct {
	templates []*tilemap.Room
	cfg       AssemblerConfig
	rng       *rand.Rand
}

// NewAssembler creates an assembler over the template pool.
func NewAssembler(templates []*tilemap.Room, cfg AssemblerConfig) *Assembler {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Assembler{
		templates: templates,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Generate assembles a dungeon. The first room is a random template anchored
// at the origin; every further attempt picks a random placed room and door,
// a random template with an opposite-facing door, translates the candidate so
// the two door cells coincide, and merges it unless the placement duplicates
// an anchor or conflicts tile-for-tile with the rooms already down. Matched
// door cells are carved to Empty so the rooms are mutually traversable, and
// an inter-room Door is recorded at the opening.
func (a *Assembler) Generate() (*Dungeon, error) {
	if len(a.templates) == 0 {
		return nil, errors.New("assemble dungeon: no room templates")
	}

	d := New()
	first := a.templates[a.rng.Intn(len(a.templates))].Clone()
	first.X, first.Y = 0, 0
	d.AddRoom(first)

	placed := 1
	for attempt := 0; attempt < a.cfg.MaxAttempts && placed < a.cfg.TargetRooms; attempt++ {
		target := d.Rooms[a.rng.Intn(len(d.Rooms))]
		if len(target.Doors) == 0 {
			continue
		}
		targetDoor := target.Doors[a.rng.Intn(len(target.Doors))]

		tmpl := a.templates[a.rng.Intn(len(a.templates))]
		want := targetDoor.Dir.Opposite()
		var matches []tilemap.Door
		for _, td := range tmpl.Doors {
			if td.Dir == want {
				matches = append(matches, td)
			}
		}
		if len(matches) == 0 {
			continue
		}
		match := matches[a.rng.Intn(len(matches))]

		cand := tmpl.Clone()
		cand.X = target.X + targetDoor.X - match.X
		cand.Y = target.Y + targetDoor.Y - match.Y

		if a.duplicateAnchor(d, cand) {
			continue
		}
		if a.conflicts(d, cand) {
			continue
		}

		carve(target, targetDoor)
		carve(cand, match)
		d.AddRoom(cand)
		d.Doors = append(d.Doors, &Door{
			X:    target.X + targetDoor.X,
			Y:    target.Y + targetDoor.Y,
			Dir:  targetDoor.Dir,
			Open: true,
		})
		placed++
	}

	d.Flatten()
	return d, nil
}

// duplicateAnchor rejects the degenerate case of a candidate landing exactly
// on an existing room's anchor.
func (a *Assembler) duplicateAnchor(d *Dungeon, cand *tilemap.Room) bool {
	for _, r := range d.Rooms {
		if r.X == cand.X && r.Y == cand.Y {
			return true
		}
	}
	return false
}

// conflicts compares every cell the candidate would occupy against every
// placed room covering that world coordinate. NotPartOfRoom is transparent on
// either side; any other mismatch — base or overlay — rejects the whole
// placement.
func (a *Assembler) conflicts(d *Dungeon, cand *tilemap.Room) bool {
	for cy := 0; cy < cand.H; cy++ {
		for cx := 0; cx < cand.W; cx++ {
			cb, co := cand.TileAt(cx, cy)
			if cb == tilemap.BaseNotPartOfRoom {
				continue
			}
			wx, wy := cand.X+cx, cand.Y+cy
			for _, r := range d.Rooms {
				rb, ro := r.WorldTileAt(wx, wy)
				if rb == tilemap.BaseNotPartOfRoom {
					continue
				}
				if rb != cb || ro != co {
					return true
				}
			}
		}
	}
	return false
}

// carve opens a door cell so the connected rooms are traversable into each
// other.
func carve(r *tilemap.Room, d tilemap.Door) {
	r.SetBase(d.X, d.Y, tilemap.BaseEmpty)
}
