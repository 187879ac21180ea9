package engine

// Source supplies uniform floats in [0, 1). *math/rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Block value range.
const (
	MinValue = 1
	MaxValue = 10
)

// Target range: [targetBase, targetBase+targetSpan+level/3).
const (
	targetBase = 5
	targetSpan = 10
)

// RandomValue draws a block value uniformly from [MinValue, MaxValue].
func RandomValue(src Source) int {
	v := MinValue + int(src.Float64()*float64(MaxValue-MinValue+1))
	if v > MaxValue {
		v = MaxValue
	}
	return v
}

// GenerateTarget draws a target sum for the given level.
// The range widens by one every three levels.
func GenerateTarget(src Source, level int) int {
	span := targetSpan + level/3
	return targetBase + int(src.Float64()*float64(span))
}

// TargetRange returns the inclusive bounds GenerateTarget can produce for level.
func TargetRange(level int) (lo, hi int) {
	return targetBase, targetBase + targetSpan + level/3 - 1
}
