package components

import (
	"github.com/automoto/lyricfire/tracks"
	"github.com/yohamta/donburi"
)

// TrackData is the encounter's song clock and per-line scoring scratchpad.
// Frame advances once per tick; line and cue indices only ever move forward
// until a reset.
type TrackData struct {
	Track *tracks.Track

	Frame     int  // frames since the encounter started
	LineIndex int  // next line to close out
	CueIndex  int  // next boss fire cue to trigger
	LineHits  int  // player hits landed during the current line window
	Finished  bool // all lines closed out
}

var Track = donburi.NewComponentType[TrackData]()
