// Package scenes switches between the screens of the game.
//
// Like in a play, the game moves between scenes. The [Director] owns the
// stage and the current [Scene], and implements ebiten.Game.
package scenes

// Scene is one screen of the game. Scenes add their layers to the stage in
// OnAttach and remove them in OnDetach.
type Scene interface {
	// Update advances the scene by delta seconds.
	Update(delta float64)
	OnAttach()
	OnDetach()
}
