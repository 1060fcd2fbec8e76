package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/matzehuels/slidedeck/pkg/canvas"
	"github.com/matzehuels/slidedeck/pkg/deck"
	"github.com/matzehuels/slidedeck/pkg/errors"
)

func TestCodesFromConstruction(t *testing.T) {
	page := func() *canvas.Canvas {
		c, err := canvas.New("t", 13.33, 7.5, canvas.White)
		if err != nil {
			t.Fatal(err)
		}
		return c
	}

	tests := []struct {
		name string
		run  func() error
		want errors.Code
	}{
		{"unknown color", func() error {
			_, err := canvas.ParseColor("chartreuse")
			return err
		}, errors.ErrCodeInvalidColor},
		{"negative width", func() error {
			_, err := page().DrawRect(canvas.Rect(1, 1, -2, 1), canvas.Navy.Ptr(), nil, 0)
			return err
		}, errors.ErrCodeInvalidGeometry},
		{"negative font size", func() error {
			_, err := page().DrawText("x", canvas.Rect(1, 1, 2, 1), canvas.Style{Size: -9})
			return err
		}, errors.ErrCodeInvalidGeometry},
		{"deck extension", func() error {
			_, err := deck.FormatOf("slides.json")
			return err
		}, errors.ErrCodeInvalidFormat},
		{"missing deck file", func() error {
			_, _, err := deck.Load(filepath.Join(t.TempDir(), "gone.toml"))
			return err
		}, errors.ErrCodeFileNotFound},
		{"malformed toml", func() error {
			_, err := deck.Parse([]byte("title = "), deck.FormatTOML)
			return err
		}, errors.ErrCodeInvalidDeck},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q (err: %v)", got, tt.want, err)
			}
			if !errors.Is(fmt.Errorf("load: %w", err), tt.want) {
				t.Errorf("code %s lost behind fmt.Errorf wrapping", tt.want)
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	_, err := canvas.ParseColor("#12")
	if err == nil {
		t.Fatal("expected an error")
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("ParseColor error %T is not *errors.Error", err)
	}
	if got, want := err.Error(), "INVALID_COLOR: "+e.Message; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := errors.UserMessage(err); got != e.Message {
		t.Errorf("UserMessage() = %q, want the message without the code", got)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	err := errors.Wrap(errors.ErrCodeRenderFailed, fs.ErrPermission, "write %s", "deck.pptx")

	if got, want := err.Error(), "RENDER_FAILED: write deck.pptx: permission denied"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, fs.ErrPermission) {
		t.Error("cause not reachable through errors.Is")
	}
	if got := errors.UserMessage(err); got != "write deck.pptx" {
		t.Errorf("UserMessage() = %q", got)
	}

	inner := errors.New(errors.ErrCodeInvalidColor, "bad fill")
	outer := errors.Wrap(errors.ErrCodeInvalidDeck, inner, "slide 3")
	if errors.GetCode(outer) != errors.ErrCodeInvalidDeck {
		t.Errorf("GetCode() = %q, want the outermost code", errors.GetCode(outer))
	}
}

func TestCodeOfForeignErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"plain", stderrors.New("plain")},
		{"wrapped plain", fmt.Errorf("render: %w", fs.ErrClosed)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetCode(tt.err); got != "" {
				t.Errorf("GetCode() = %q, want empty", got)
			}
			if errors.Is(tt.err, errors.ErrCodeInternal) {
				t.Error("Is() = true for an uncoded error")
			}
		})
	}
	if got := errors.UserMessage(fs.ErrClosed); got != fs.ErrClosed.Error() {
		t.Errorf("UserMessage() = %q", got)
	}
}
