package meshio

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var tableLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Float", Pattern: `[-+]?(\d+\.\d*|\.\d+)([eE][-+]?\d+)?|[-+]?\d+[eE][-+]?\d+`},
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

type nodeFile struct {
	Records []*nodeRecord `parser:"( @@ | EOL )*"`
}

type nodeRecord struct {
	Pos lexer.Position

	ID            int     `parser:"@Int"`
	X             float64 `parser:"@(Float | Int)"`
	Y             float64 `parser:"@(Float | Int)"`
	UX            float64 `parser:"@(Float | Int)"`
	UY            float64 `parser:"@(Float | Int)"`
	BoundaryType  int     `parser:"@Int"`
	BoundaryIndex int     `parser:"@Int"`
	Color         int     `parser:"@Int EOL"`
}

type elementFile struct {
	Records []*elementRecord `parser:"( @@ | EOL )*"`
}

type elementRecord struct {
	Pos lexer.Position

	ID    int   `parser:"@Int"`
	Nodes []int `parser:"@Int @Int @Int @Int"`
	Color int   `parser:"@Int EOL"`
}

var (
	nodeParser = participle.MustBuild[nodeFile](
		participle.Lexer(tableLexer),
		participle.Elide("Comment", "Whitespace"),
	)
	elementParser = participle.MustBuild[elementFile](
		participle.Lexer(tableLexer),
		participle.Elide("Comment", "Whitespace"),
	)
)
