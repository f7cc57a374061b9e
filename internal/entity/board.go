package entity

const BoardSize = 9

// Line - three cell indices that win the game when owned by one mark.
type Line [3]int

// WinLines is scanned in order, the first completed line is the one reported.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board - 3x3 grid in row-major order.
type Board [BoardSize]Mark

func InRange(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, cell := range that {
		if cell == mark {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

// CompletedLine - returns the first winning line fully owned by mark.
func (that Board) CompletedLine(mark Mark) (Line, bool) {
	if !mark.IsPlayer() {
		return Line{}, false
	}

	for _, line := range WinLines {
		if that[line[0]] == mark && that[line[1]] == mark && that[line[2]] == mark {
			return line, true
		}
	}

	return Line{}, false
}
