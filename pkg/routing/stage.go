package routing

// Stage is the ordered lifecycle position of a venture. Routing consults
// it because some agents are meaningless before certain data exists.
type Stage string

const (
	StageIdeation Stage = "ideation"
	StagePreSeed  Stage = "pre_seed"
	StageSeed     Stage = "seed"
	StageSeriesA  Stage = "series_a"
	StageSeriesB  Stage = "series_b"
	StageGrowth   Stage = "growth"
	StageExit     Stage = "exit"
)

var stageOrder = map[Stage]int{
	StageIdeation: 0,
	StagePreSeed:  1,
	StageSeed:     2,
	StageSeriesA:  3,
	StageSeriesB:  4,
	StageGrowth:   5,
	StageExit:     6,
}

// ParseStage validates a raw stage string. Unknown values are reported
// rather than silently coerced.
func ParseStage(raw string) (Stage, bool) {
	s := Stage(raw)
	_, ok := stageOrder[s]
	return s, ok
}

// Order returns the position of the stage in the lifecycle, -1 if unknown.
func (s Stage) Order() int {
	if o, ok := stageOrder[s]; ok {
		return o
	}
	return -1
}

func (s Stage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}
