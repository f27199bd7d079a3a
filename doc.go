// Package trainbox is a small puzzle game about toy trains built on
// [Ebitengine].
//
// Trains carrying numbered cargo leave a station on the left, travel through
// a row of track components, and arrive at a terminal on the right. Each
// component may reorder, copy or simply pass trains along.
//
// The code is split into a handful of packages:
//
//   - gfx: retained-mode layer tree (group and image layers), canvas images,
//     tweens and the stage that draws everything to the screen.
//   - uimodel: the component tree. Every component owns a back and a front
//     layer and hands trains to its train taker.
//   - model and level: the data model of a track and YAML level files.
//   - scenes: the scene abstraction and the director that switches scenes.
//   - store: SQLite persistence for saved tracks.
//   - ecs: a Donburi bridge for train events.
//
// # Logging
//
// Packages log through [Logger]. Nothing is printed until [SetLogger] is
// called:
//
//	trainbox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//		Level: slog.LevelDebug,
//	})))
//
// [Ebitengine]: https://ebitengine.org
package trainbox
