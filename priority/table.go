package priority

import "github.com/pkg/errors"

// Class is a Windows process priority class as passed to SetPriorityClass.
type Class uint32

const (
	IdlePriorityClass        Class = 0x00000040
	BelowNormalPriorityClass Class = 0x00004000
	NormalPriorityClass      Class = 0x00000020
	AboveNormalPriorityClass Class = 0x00008000
	HighPriorityClass        Class = 0x00000080
	RealtimePriorityClass    Class = 0x00000100
)

var classTable = map[Level]Class{
	High:        HighPriorityClass,
	AboveNormal: AboveNormalPriorityClass,
	Normal:      NormalPriorityClass,
	BelowNormal: BelowNormalPriorityClass,
	Idle:        IdlePriorityClass,
}

// classLevel maps any class value to a level. Known classes map directly,
// realtime is treated as High and anything unrecognised as Normal.
func classLevel(c Class) Level {
	for level, class := range classTable {
		if class == c {
			return level
		}
	}
	if c == RealtimePriorityClass {
		return High
	}
	return Normal
}

// levelClass expects a valid level.
func levelClass(l Level) Class {
	return classTable[l]
}

// nicenessStep is one row of a niceness table: values up to and including
// max classify as level, and level is set using representative.
type nicenessStep struct {
	max            int
	representative int
	level          Level
}

// nicenessTable is walked top to bottom; the last row catches everything above
// the previous max.
type nicenessTable []nicenessStep

const (
	minNiceness = -20
	maxNiceness = 19
)

var linuxTable = nicenessTable{
	{max: -15, representative: -20, level: High},
	{max: -5, representative: -10, level: AboveNormal},
	{max: 5, representative: 0, level: Normal},
	{max: 15, representative: 10, level: BelowNormal},
	{max: maxNiceness, representative: 19, level: Idle},
}

// darwinTable deliberately differs from linuxTable: High starts at -10 and
// the Normal/BelowNormal split sits at 0, not at Linux's -15 and 5.
var darwinTable = nicenessTable{
	{max: -10, representative: -10, level: High},
	{max: -5, representative: -5, level: AboveNormal},
	{max: 0, representative: 0, level: Normal},
	{max: 5, representative: 5, level: BelowNormal},
	{max: maxNiceness, representative: 10, level: Idle},
}

func (t nicenessTable) classify(niceness int) Level {
	for _, step := range t {
		if niceness <= step.max {
			return step.level
		}
	}
	return t[len(t)-1].level
}

// representative expects a valid level.
func (t nicenessTable) representative(l Level) int {
	for _, step := range t {
		if step.level == l {
			return step.representative
		}
	}
	return 0
}

// decodeLinuxNiceness converts the raw getpriority syscall result, which
// Linux reports as 20-nice so that it is never negative.
func decodeLinuxNiceness(raw int, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	return 20 - raw, nil
}

// decodeDarwinNiceness converts the libc getpriority result. Only the low 32
// bits are meaningful. libc returns -1 both for niceness -1 and on failure
// without clearing errno first, so -1 paired with anything but the errors
// getpriority itself reports is niceness -1 with a stale errno.
func decodeDarwinNiceness(raw int, err error) (int, error) {
	n := int(int32(raw))
	if err != nil {
		if n == -1 && !isGetpriorityErrno(err) {
			return n, nil
		}
		return 0, err
	}
	return n, nil
}

func isGetpriorityErrno(err error) bool {
	for _, errno := range getpriorityErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}

func tableFor(o OS) nicenessTable {
	switch o {
	case Linux:
		return linuxTable
	case Darwin:
		return darwinTable
	}
	return nil
}
