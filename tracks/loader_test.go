package tracks

import (
	"strings"
	"testing"
	"testing/fstest"
)

const sampleTrack = `
title: Test Song
artist: Nobody
music: audio/music/test.ogg
bpm: 120
lines:
  - at: 1.0
    duration: 2.0
    text: "first line"
  - at: 4.0
    duration: 2.0
    text: ""
  - at: 8.0
    duration: 2.0
    text: "second line"
cues:
  - at: 3.0
    height: high
  - at: 6.5
    height: low
`

func TestParse_Success(t *testing.T) {
	track, err := Parse("test_song", []byte(sampleTrack))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if track.Name != "test_song" {
		t.Errorf("Expected name test_song, got %q", track.Name)
	}
	if track.Title != "Test Song" {
		t.Errorf("Expected title Test Song, got %q", track.Title)
	}
	if len(track.Lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(track.Lines))
	}
	if len(track.Cues) != 2 {
		t.Errorf("Expected 2 cues, got %d", len(track.Cues))
	}
}

func TestScoredLineCount_SkipsEmptyLines(t *testing.T) {
	track, err := Parse("test_song", []byte(sampleTrack))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// The middle line is an instrumental break and must not count.
	if got := track.ScoredLineCount(); got != 2 {
		t.Errorf("Expected 2 scored lines, got %d", got)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{
			name: "not yaml",
			data: "{{{{",
			want: "failed to parse",
		},
		{
			name: "missing title",
			data: "lines:\n  - {at: 1, duration: 1, text: hi}\n",
			want: "title",
		},
		{
			name: "no scored lines",
			data: "title: x\nlines:\n  - {at: 1, duration: 1, text: \"\"}\n",
			want: "no scored lyric lines",
		},
		{
			name: "unsorted lines",
			data: "title: x\nlines:\n  - {at: 5, duration: 1, text: a}\n  - {at: 1, duration: 1, text: b}\n",
			want: "before the previous",
		},
		{
			name: "bad cue height",
			data: "title: x\nlines:\n  - {at: 1, duration: 1, text: a}\ncues:\n  - {at: 1, height: middle}\n",
			want: "height",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("bad", []byte(tc.data))
			if err == nil {
				t.Fatalf("Expected error containing %q, got nil", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadAll_SkipsMalformed(t *testing.T) {
	fsys := fstest.MapFS{
		"tracks/b_good.yaml":   {Data: []byte(sampleTrack)},
		"tracks/a_broken.yaml": {Data: []byte("{{{{")},
		"tracks/ignored.txt":   {Data: []byte("nope")},
	}

	got := LoadAll(fsys, "tracks")
	if len(got) != 1 {
		t.Fatalf("Expected 1 track, got %d", len(got))
	}
	if got[0].Name != "b_good" {
		t.Errorf("Expected track b_good, got %q", got[0].Name)
	}
}

func TestLength(t *testing.T) {
	track, err := Parse("test_song", []byte(sampleTrack))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	// Last line ends at 10.0, after the last cue at 6.5.
	if got := track.Length(); got != 10.0 {
		t.Errorf("Expected length 10.0, got %v", got)
	}
}
