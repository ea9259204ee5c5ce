package terrain

// BlockType classifies a block. Only grass-tagged top blocks are ever
// materialized in this scope; dirt and stone are defined for the data
// model but nothing selects materials by tag (see DESIGN.md).
type BlockType uint8

const (
	BlockGrass BlockType = iota
	BlockDirt
	BlockStone
)

func (b BlockType) String() string {
	switch b {
	case BlockGrass:
		return "grass"
	case BlockDirt:
		return "dirt"
	case BlockStone:
		return "stone"
	default:
		return "unknown"
	}
}

// Block is one unit cube. Y is derived from the height source at (X,Z),
// never stored independently of it. Blocks are computed once during
// chunk build and never mutated.
type Block struct {
	X, Y, Z int
	Kind    BlockType
}
