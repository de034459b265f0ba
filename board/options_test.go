package board

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestDifficultyValidate(t *testing.T) {
	tests := []struct {
		name       string
		difficulty Difficulty
		wantErr    error
	}{
		{"Easy preset", Easy, nil},
		{"Medium preset", Medium, nil},
		{"Expert preset", Expert, nil},
		{"All mines", Difficulty{Width: 2, Height: 2, NumMines: 4}, nil},
		{"Zero width", Difficulty{Width: 0, Height: 9, NumMines: 0}, ErrInvalidDimensions},
		{"Negative height", Difficulty{Width: 9, Height: -1, NumMines: 0}, ErrInvalidDimensions},
		{"Negative mines", Difficulty{Width: 9, Height: 9, NumMines: -1}, ErrTooManyMines},
		{"Mines exceed area", Difficulty{Width: 3, Height: 3, NumMines: 10}, ErrTooManyMines},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.difficulty.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDisplayParams(t *testing.T) {
	tests := []struct {
		name             string
		options          BoardOptions
		windowW, windowH float64
		want             DisplayParams
	}{
		{
			name: "Fixed size centered",
			options: BoardOptions{
				Difficulty: Expert,
				Position:   CenteredPosition{},
				TileSize:   FixedTileSize(20),
			},
			windowW: 1600, windowH: 800,
			want: DisplayParams{
				BoardWidth: 600, BoardHeight: 320,
				TileSize: 20,
				OriginX:  -300, OriginY: -160,
			},
		},
		{
			name: "Adaptive capped by window height",
			options: BoardOptions{
				Difficulty: Medium,
				Position:   CenteredPosition{},
				TileSize:   AdaptiveTileSize{Min: 10, Max: 50},
			},
			windowW: 1600, windowH: 800,
			want: DisplayParams{
				BoardWidth: 800, BoardHeight: 800,
				TileSize: 50,
				OriginX:  -400, OriginY: -400,
			},
		},
		{
			name: "Adaptive clamped to minimum",
			options: BoardOptions{
				Difficulty: Medium,
				Position:   CenteredPosition{},
				TileSize:   AdaptiveTileSize{Min: 10, Max: 50},
			},
			windowW: 80, windowH: 80,
			want: DisplayParams{
				BoardWidth: 160, BoardHeight: 160,
				TileSize: 10,
				OriginX:  -80, OriginY: -80,
			},
		},
		{
			name: "Centered with offset",
			options: BoardOptions{
				Difficulty: Difficulty{Width: 4, Height: 2, NumMines: 1},
				Position:   CenteredPosition{OffsetX: 10, OffsetY: -5},
				TileSize:   FixedTileSize(10),
			},
			windowW: 400, windowH: 400,
			want: DisplayParams{
				BoardWidth: 40, BoardHeight: 20,
				TileSize: 10,
				OriginX:  -10, OriginY: -15,
			},
		},
		{
			name: "Custom position",
			options: BoardOptions{
				Difficulty: Easy,
				Position:   CustomPosition{X: 5, Y: 7},
				TileSize:   FixedTileSize(12),
			},
			windowW: 400, windowH: 400,
			want: DisplayParams{
				BoardWidth: 108, BoardHeight: 108,
				TileSize: 12,
				OriginX:  5, OriginY: 7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.options.DisplayParams(tt.windowW, tt.windowH)
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestOptionsRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		options BoardOptions
	}{
		{"Defaults", DefaultOptions()},
		{
			"Fixed and custom",
			BoardOptions{
				Difficulty:  Expert,
				Position:    CustomPosition{X: 12, Y: 34},
				TileSize:    FixedTileSize(16),
				TilePadding: 2.5,
				SafeStart:   false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.options.Save(&buf); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			loaded, err := LoadOptions(&buf)
			if err != nil {
				t.Fatalf("LoadOptions failed: %v", err)
			}
			if !reflect.DeepEqual(loaded, tt.options) {
				t.Errorf("Expected %+v after round trip, got %+v", tt.options, loaded)
			}
		})
	}
}

func TestLoadOptionsRejectsUnknownKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			"Unknown tile size kind",
			`{"difficulty":{"width":9,"height":9,"mines":10},"position":{"kind":"centered"},"tile_size":{"kind":"huge"}}`,
		},
		{
			"Unknown position kind",
			`{"difficulty":{"width":9,"height":9,"mines":10},"position":{"kind":"floating"},"tile_size":{"kind":"fixed","size":10}}`,
		},
		{
			"Malformed document",
			`{"difficulty":`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadOptions(strings.NewReader(tt.input)); err == nil {
				t.Error("Expected an error, got nil")
			}
		})
	}
}
