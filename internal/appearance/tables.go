package appearance

import (
	"github.com/vovakirdan/tui-galaga/internal/event"
	"github.com/vovakirdan/tui-galaga/internal/formation"
	"github.com/vovakirdan/tui-galaga/internal/traj"
)

func p(x, y uint8) formation.Index { return formation.Index{X: x, Y: y} }

// order lists destination slots, 8 per unit. Within a unit the first four
// and the last four form the two halves a pattern alternates between.
var order = [UnitCount * unitSize]formation.Index{
	p(4, 2), p(5, 2), p(4, 3), p(5, 3),
	p(4, 4), p(5, 4), p(4, 5), p(5, 5),

	p(3, 1), p(4, 1), p(5, 1), p(6, 1),
	p(3, 2), p(6, 2), p(3, 3), p(6, 3),

	p(8, 2), p(7, 2), p(8, 3), p(7, 3),
	p(1, 2), p(2, 2), p(1, 3), p(2, 3),

	p(7, 4), p(6, 4), p(7, 5), p(6, 5),
	p(3, 4), p(2, 4), p(3, 5), p(2, 5),

	p(9, 4), p(8, 4), p(9, 5), p(8, 5),
	p(0, 4), p(1, 4), p(0, 5), p(1, 5),
}

// kindTable holds the two kinds each unit alternates between.
var kindTable = [UnitCount][2]event.EnemyKind{
	{event.Butterfly, event.Bee},
	{event.Owl, event.Butterfly},
	{event.Butterfly, event.Butterfly},
	{event.Bee, event.Bee},
	{event.Bee, event.Bee},
}

// pattern decides how a unit's eight enemies are timed and placed.
type pattern uint8

const (
	// patMirror sends pairs at once, one per half, mirrored left and right.
	patMirror pattern = iota
	// patChain sends one enemy at a time, alternating halves.
	patChain
	// patChainCentered is patChain without the side offset.
	patChainCentered
	// patSideBySide sends pairs on the same path, offset to either side.
	patSideBySide
)

type unitEntry struct {
	pat   pattern
	table []traj.Command
	flipX bool
}

// unitTable is indexed by stage modulo its length, then by unit.
var unitTable = [...][UnitCount]unitEntry{
	{
		{patMirror, traj.Entry1, false},
		{patChain, traj.Entry2, false},
		{patChain, traj.Entry2, true},
		{patChainCentered, traj.Entry1, false},
		{patChainCentered, traj.Entry1, true},
	},
	{
		{patMirror, traj.Entry3, true},
		{patSideBySide, traj.Entry2, false},
		{patSideBySide, traj.Entry2, true},
		{patSideBySide, traj.Entry1, false},
		{patSideBySide, traj.Entry1, true},
	},
	{
		{patMirror, traj.Entry1, false},
		{patMirror, traj.Entry2, true},
		{patMirror, traj.Entry2, false},
		{patMirror, traj.Entry1, false},
		{patMirror, traj.Entry1, false},
	},
	{
		{patMirror, traj.Entry3, true},
		{patSideBySide, traj.Entry2, false},
		{patSideBySide, traj.Entry2, true},
		{patSideBySide, traj.Entry3, false},
		{patSideBySide, traj.Entry3, true},
	},
}

// assaultTable gives extra divers per side for each unit. Stages past the
// end use the last row.
var assaultTable = [...][UnitCount]int{
	{0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0},
	{1, 0, 0, 1, 1},
	{1, 0, 0, 1, 1},
	{1, 0, 0, 1, 1},
	{1, 1, 1, 1, 1},
	{1, 1, 1, 1, 1},
	{2, 1, 1, 2, 2},
	{2, 1, 1, 2, 2},
	{2, 1, 1, 2, 2},
	{2, 2, 2, 2, 2},
}

// shotEnableTable gives how many enemies of each unit may fire while
// entering. Stages past the end use the last row.
var shotEnableTable = [...][UnitCount]int{
	{0, 0, 0, 0, 0},
	{3, 4, 4, 4, 4},
	{4, 4, 4, 4, 4},
	{4, 4, 4, 4, 4},
	{5, 5, 5, 5, 5},
}
