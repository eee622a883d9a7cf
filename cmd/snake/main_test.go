package main

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/trytobebee/termsnake/pkg/game"
)

type fakeDrainer struct{ err error }

func (f fakeDrainer) Drain() error { return f.err }

type fakeSummary struct {
	err   error
	drawn bool
}

func (f *fakeSummary) RenderGameOver(*game.Game) error {
	f.drawn = true
	return f.err
}

// TestFinish checks that the terminal is always restored and every failure is reported
func TestFinish(t *testing.T) {
	tests := []struct {
		name       string
		drainErr   error
		renderErr  error
		restoreErr error
		want       []string
	}{
		{"Clean", nil, nil, nil, nil},
		{"Summary fails", nil, errors.New("broken pipe"), nil, []string{"draw summary: broken pipe"}},
		{"Restore fails", nil, nil, errors.New("bad fd"), []string{"restore terminal: bad fd"}},
		{
			"All fail",
			errors.New("eio"), errors.New("broken pipe"), errors.New("bad fd"),
			[]string{"drain input: eio", "draw summary: broken pipe", "restore terminal: bad fd"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := game.NewGame(game.NewGrid(10, 10), rand.New(rand.NewSource(1)))
			screen := &fakeSummary{err: tc.renderErr}
			restored := 0
			restore := func() error {
				restored++
				return tc.restoreErr
			}

			err := finish(fakeDrainer{err: tc.drainErr}, screen, g, restore)

			if restored != 1 || !screen.drawn {
				t.Errorf("Expected one restore and a drawn summary, got restores=%d drawn=%v", restored, screen.drawn)
			}
			if len(tc.want) == 0 {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %v", tc.want)
			}
			for _, w := range tc.want {
				if !strings.Contains(err.Error(), w) {
					t.Errorf("Error %q is missing %q", err, w)
				}
			}
		})
	}
}
