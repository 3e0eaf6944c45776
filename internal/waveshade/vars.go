package waveshade

var (
	Debug = false // set to true for verbose debug output

	// Compile time checks that every texture kind implements the interface.
	_ Texture = (*ImageTexture)(nil)
	_ Texture = SolidTexture{}
)
