package game

// Director decides which cell to dig next: a person at the console, or the
// computer.
type Director interface {
	/**
	 * Initialize the director for a freshly created board
	 */
	Init(*Board)

	/**
	 * Choose the next cell to dig. Returning io.EOF ends the game early.
	 */
	Next() (Coord, error)

	/**
	 * Called once the game has ended
	 */
	End()
}
