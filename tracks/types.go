package tracks

// Line is one lyric line of a track. At and Duration are seconds from the
// start of the song; a line's scoring window is [At, At+Duration). Lines
// with empty text are instrumental breaks and do not count toward the
// expected scored-line total.
type Line struct {
	At       float64 `yaml:"at"`
	Duration float64 `yaml:"duration"`
	Text     string  `yaml:"text"`
}

// Cue is a scripted boss fire request. Height is "high" or "low"; the fire
// gate may still reject the cue at runtime.
type Cue struct {
	At     float64 `yaml:"at"`
	Height string  `yaml:"height"`
}

// Track is the parsed metadata of one playable song.
type Track struct {
	Name   string  `yaml:"-"` // file stem, filled by the loader
	Title  string  `yaml:"title"`
	Artist string  `yaml:"artist"`
	Music  string  `yaml:"music"` // audio file path relative to the assets root
	BPM    float64 `yaml:"bpm"`
	Lines  []Line  `yaml:"lines"`
	Cues   []Cue   `yaml:"cues"`
}

// ScoredLineCount returns the number of lines with non-empty lyric text.
// This is the expected line total the boss health pool is divided by.
func (t *Track) ScoredLineCount() int {
	n := 0
	for _, l := range t.Lines {
		if l.Text != "" {
			n++
		}
	}
	return n
}

// Length returns the end time in seconds of the last line or cue.
func (t *Track) Length() float64 {
	end := 0.0
	for _, l := range t.Lines {
		if v := l.At + l.Duration; v > end {
			end = v
		}
	}
	for _, c := range t.Cues {
		if c.At > end {
			end = c.At
		}
	}
	return end
}
