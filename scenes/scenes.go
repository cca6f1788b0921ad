package scenes

import "github.com/automoto/lyricfire/tracks"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// GameResult carries one finished encounter's outcome to the game over
// screen.
type GameResult struct {
	Victory        bool
	Track          *tracks.Track
	LinesCompleted int
	ExpectedLines  int
}
