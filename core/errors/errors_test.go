package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestConfigError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ConfigError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &ConfigError{Setting: "db", Path: "/root/x.db", Message: "permission denied"},
			wantMsg: `invalid db path "/root/x.db": permission denied`,
		},
		{
			name:    "without path",
			err:     &ConfigError{Setting: "db", Message: "path cannot be empty"},
			wantMsg: "invalid db: path cannot be empty",
		},
		{
			name:    "message from underlying error",
			err:     &ConfigError{Setting: "source", Path: "a.json", Err: fmt.Errorf("too long")},
			wantMsg: `invalid source path "a.json": too long`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrConfig) {
				t.Errorf("errors.Is(%v, ErrConfig) = false", tt.err)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		err := &ConfigError{Setting: "db", Path: "x", Err: fs.ErrPermission}
		if !errors.Is(err, fs.ErrPermission) {
			t.Error("expected underlying fs.ErrPermission to be reachable")
		}
		if !errors.Is(err, ErrConfig) {
			t.Error("expected ErrConfig to be reachable")
		}
	})
}

func TestIOError(t *testing.T) {
	underlying := fs.ErrNotExist
	tests := []struct {
		name    string
		err     *IOError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &IOError{Operation: "read", Path: "New_Testament.json", Err: underlying},
			wantMsg: "failed to read New_Testament.json: file does not exist",
		},
		{
			name:    "without path",
			err:     &IOError{Operation: "open", Err: underlying},
			wantMsg: "failed to open: file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, underlying) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, underlying)
			}
			if errors.Is(tt.err, ErrInput) {
				t.Error("IOError without Class must not classify as ErrInput")
			}
		})
	}

	t.Run("with class", func(t *testing.T) {
		err := &IOError{Operation: "read", Path: "nt.json", Class: ErrInput, Err: underlying}
		if !errors.Is(err, ErrInput) || !errors.Is(err, underlying) {
			t.Error("expected both the class and the underlying error to be reachable")
		}
	})
}

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ParseError
		wantMsg string
	}{
		{
			name:    "with path",
			err:     &ParseError{Format: "JSON", Path: "nt.json", Message: "unexpected end of input"},
			wantMsg: "failed to parse JSON at nt.json: unexpected end of input",
		},
		{
			name:    "without path",
			err:     &ParseError{Format: "JSON", Message: "top-level value is not an array"},
			wantMsg: "failed to parse JSON: top-level value is not an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInput) {
				t.Error("expected ErrInput to be reachable")
			}
		})
	}
}

func TestShapeError(t *testing.T) {
	underlying := fmt.Errorf("strconv failure")
	err := &ShapeError{Kind: "verse", Key: "7", Message: `missing ":" separator`, Err: underlying}

	want := `malformed verse key "7": missing ":" separator`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrShape) {
		t.Error("expected ErrShape to be reachable")
	}
	if !errors.Is(err, underlying) {
		t.Error("expected underlying error to be reachable")
	}
	if errors.Is(err, ErrInput) {
		t.Error("shape errors must not classify as input errors")
	}
}

func TestStorageError(t *testing.T) {
	underlying := fmt.Errorf("CHECK constraint failed")

	t.Run("with table", func(t *testing.T) {
		err := NewStorage("insert", "bible_verses", underlying)
		want := "insert on bible_verses: CHECK constraint failed"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
		if !errors.Is(err, ErrStorage) || !errors.Is(err, underlying) {
			t.Error("expected both ErrStorage and the driver error to be reachable")
		}
	})

	t.Run("without table", func(t *testing.T) {
		err := NewStorage("commit", "", underlying)
		want := "commit: CHECK constraint failed"
		if got := err.Error(); got != want {
			t.Errorf("Error() = %q, want %q", got, want)
		}
	})

	t.Run("nil error", func(t *testing.T) {
		if err := NewStorage("commit", "", nil); err != nil {
			t.Errorf("NewStorage(nil) = %v, want nil", err)
		}
	})
}

func TestConstructors(t *testing.T) {
	if err := NewConfig("db", "x", "bad"); err.Setting != "db" || err.Path != "x" || err.Message != "bad" {
		t.Errorf("NewConfig() = %+v", err)
	}
	if err := NewIO("read", "x", fs.ErrNotExist); err.Operation != "read" || err.Err != fs.ErrNotExist {
		t.Errorf("NewIO() = %+v", err)
	}
	if err := NewParse("JSON", "x", "bad"); err.Format != "JSON" || err.Message != "bad" {
		t.Errorf("NewParse() = %+v", err)
	}
	if err := NewShape("comment", "1", "bad"); err.Kind != "comment" || err.Key != "1" {
		t.Errorf("NewShape() = %+v", err)
	}
}

func TestWrap(t *testing.T) {
	base := errors.New("base")

	if got := Wrap(nil, "context"); got != nil {
		t.Errorf("Wrap(nil) = %v, want nil", got)
	}

	wrapped := Wrap(base, "loading source")
	if wrapped.Error() != "loading source: base" {
		t.Errorf("Wrap() = %q", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("Wrap() should preserve the chain")
	}

	if got := Wrapf(nil, "book %d", 1); got != nil {
		t.Errorf("Wrapf(nil) = %v, want nil", got)
	}
	wrapped = Wrapf(base, "book %d", 3)
	if wrapped.Error() != "book 3: base" {
		t.Errorf("Wrapf() = %q", wrapped.Error())
	}

	var shape *ShapeError
	if !As(Wrap(NewShape("verse", "x", "bad"), "chapter 1"), &shape) {
		t.Error("As() should find ShapeError through Wrap")
	}
}
