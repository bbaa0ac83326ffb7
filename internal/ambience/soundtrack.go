package ambience

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Soundtrack is a decoded audio file ready to be looped.
type Soundtrack struct {
	Path     string
	Streamer beep.StreamSeekCloser
	Format   beep.Format

	file *os.File
}

// Open decodes a wav, mp3 or flac file chosen by extension.
func Open(path string) (*Soundtrack, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &Soundtrack{
		Path:     path,
		Streamer: streamer,
		Format:   format,
		file:     f,
	}, nil
}

// Loop returns an endless stream over the soundtrack.
func (s *Soundtrack) Loop() beep.Streamer {
	return beep.Loop(-1, s.Streamer)
}

func (s *Soundtrack) Close() error {
	err := s.Streamer.Close()
	if cerr := s.file.Close(); err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}
	return err
}

// PickSoundtrack asks for a file with a native dialog. A cancelled dialog
// returns an empty path and no error.
func PickSoundtrack() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Choose a soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
