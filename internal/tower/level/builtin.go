package level

// BuiltinTileSize is the tile size of the built-in towers: 20 columns fill a 1280px screen.
const BuiltinTileSize = 64

// Builtins returns the towers shipped with the game, in menu order.
func Builtins() []Map {
	return []Map{
		{
			ID:       "test",
			Name:     "Test Map (Quick)",
			TileSize: BuiltinTileSize,
			Rows: []string{
				"                    ",
				"         X          ",
				"      ---H--        ",
				"         H          ",
				"  E      H       M  ",
				"  -----  H---  -----",
				"         H          ",
				"      M  H   E      ",
				"     ----H ------   ",
				"         H          ",
				"   OO    H          ",
				"  -----  H          ",
				"         H          ",
				"       P H          ",
				"--------------------",
			},
		},
		{
			ID:       "level_1",
			Name:     "Level 1 (Medium)",
			TileSize: BuiltinTileSize,
			Rows: []string{
				"                    ",
				"         X          ",
				"      ------        ",
				"                    ",
				"  E                 ",
				"  -----      -----  ",
				"                    ",
				"             E      ",
				"     -----  ------  ",
				"                    ",
				"                    ",
				"         OO         ",
				"       ------       ",
				"                    ",
				"                    ",
				"           ------   ",
				"  E                 ",
				"  -------           ",
				"                    ",
				"         OO         ",
				"       -------      ",
				"                    ",
				"              E     ",
				"   ----     -----   ",
				"                    ",
				"                    ",
				"          -------   ",
				"                    ",
				"   OOO              ",
				"  ------            ",
				"                    ",
				"             E      ",
				"        --------    ",
				"                    ",
				"     E              ",
				"  -----             ",
				"                    ",
				"           OO       ",
				"       --------     ",
				"                    ",
				"         P          ",
				"--------------------",
			},
		},
		{
			ID:       "level_2",
			Name:     "Level 2 (Challenging)",
			TileSize: BuiltinTileSize,
			Rows: []string{
				"                    ",
				"         X          ",
				"       -----        ",
				"                    ",
				"                    ",
				"  E           E     ",
				"  ---         ---   ",
				"                    ",
				"        OOO         ",
				"      --------      ",
				"                    ",
				"                    ",
				"   E          E     ",
				"   ---       ----   ",
				"                    ",
				"         O          ",
				"  ----      -----   ",
				"                    ",
				"                    ",
				"           E        ",
				"       --------     ",
				"                    ",
				"  E                 ",
				"  -----   OOO       ",
				"        -------     ",
				"                    ",
				"              E     ",
				"          ------    ",
				"                    ",
				"  OO                ",
				"  -----             ",
				"                    ",
				"           E        ",
				"         ------     ",
				"                    ",
				"    E               ",
				"    ----    OO      ",
				"          ------    ",
				"                    ",
				"                    ",
				"  E           E     ",
				"  ----      -----   ",
				"                    ",
				"         OOO        ",
				"      ---------     ",
				"         P          ",
				"--------------------",
			},
		},
	}
}
