package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Stage:  StageLayout,
				Kind:   KindUnsupported,
				Index:  -1,
				Detail: "horizontal grid flow",
			},
			contains: []string{"[layout]", "unsupported", "horizontal grid flow"},
		},
		{
			name: "indexed error",
			err: &Error{
				Stage:  StageLayout,
				Kind:   KindOutOfBounds,
				Index:  12,
				Detail: "index out of bounds (length 10)",
			},
			contains: []string{"[layout]", "out_of_bounds", "at index 12", "length 10"},
		},
		{
			name: "minimal error",
			err: &Error{
				Stage: StageProvider,
				Kind:  KindInvalidInput,
				Index: -1,
			},
			contains: []string{"[provider]", "invalid_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Stage:  StageRecycle,
				Kind:   KindExhausted,
				Index:  -1,
				Detail: "pool drained",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[recycle]", "exhausted", "pool drained", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(StageLayout, KindInvalidInput, cause, "wrapped")

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find wrapped cause")
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := Unsupported(StageLayout, "horizontal grid flow")

	if !errors.Is(err, &Error{Stage: StageLayout, Kind: KindUnsupported}) {
		t.Error("expected match on stage+kind")
	}
	if errors.Is(err, &Error{Stage: StageProvider, Kind: KindUnsupported}) {
		t.Error("unexpected match on different stage")
	}
	if errors.Is(err, &Error{Stage: StageLayout, Kind: KindOutOfBounds}) {
		t.Error("unexpected match on different kind")
	}
	if errors.Is(err, errors.New("plain")) {
		t.Error("unexpected match on plain error")
	}
}

func TestConstructors(t *testing.T) {
	if e := OutOfBounds(StageLayout, 7, 5); e.Index != 7 || e.Kind != KindOutOfBounds {
		t.Errorf("OutOfBounds built %+v", e)
	}
	if e := NotInitialized(StageRender, "layout manager"); !strings.Contains(e.Error(), "layout manager not initialized") {
		t.Errorf("NotInitialized message %q", e.Error())
	}
	if e := InvalidInput(StageProvider, "negative span"); e.Index != -1 {
		t.Errorf("InvalidInput index = %d, want -1", e.Index)
	}
}
