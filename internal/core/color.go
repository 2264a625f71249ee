package core

// Color is the palette slot of a screen cell. Slots name what is drawn, not
// a terminal colour; the front-end decides how each slot looks.
type Color uint8

const (
	ColorDefault Color = iota // HUD text and empty cells
	ColorPlatform
	ColorObstacle
	ColorLadder
	ColorExit
	ColorPlayer1
	ColorPlayer2
	ColorEnemyPatrol
	ColorEnemyAlert
	ColorEnemyCooldown
	ColorGunner
	ColorGunnerCooldown
	ColorPlayerShot
	ColorEnemyShot

	// ColorCount is the number of palette slots.
	ColorCount
)
