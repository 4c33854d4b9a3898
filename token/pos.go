package token

import "fmt"

// Pos is a position in a document. Line and Col are 1-based; Col counts
// bytes.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}
