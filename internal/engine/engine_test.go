package engine

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeBytes_Tree(t *testing.T) {
	got, err := DecodeBytes([]byte(`{"fields":[{"name":"id","type":"integer","constraints":{"minLength":2,"unique":true}}],"x":null}`), EnforceOptions{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := map[string]any{
		"fields": []any{
			map[string]any{
				"name":        "id",
				"type":        "integer",
				"constraints": map[string]any{"minLength": float64(2), "unique": true},
			},
		},
		"x": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded tree mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeBytes_EmptyArrayIsNotNil(t *testing.T) {
	got, err := DecodeBytes([]byte(`{"fields":[]}`), EnforceOptions{})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	arr, ok := got.(map[string]any)["fields"].([]any)
	if !ok || arr == nil {
		t.Fatalf("expected non-nil empty array, got %#v", got)
	}
}

func TestDecodeBytes_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":     ``,
		"truncated": `{"fields": [`,
		"garbage":   `not json`,
		"trailing":  `{} {}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeBytes([]byte(in), EnforceOptions{}); err == nil {
				t.Fatalf("expected error for %q", in)
			}
		})
	}
}

func TestDecodeBytes_EmptyInputIsUnexpectedEOF(t *testing.T) {
	_, err := DecodeBytes(nil, EnforceOptions{})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestDecodeBytes_DuplicateKeys(t *testing.T) {
	in := []byte(`{"fields":[{"name":"a","name":"b"}]}`)

	v, err := DecodeBytes(in, EnforceOptions{OnDuplicate: DupIgnore})
	if err != nil {
		t.Fatalf("ignore: unexpected err: %v", err)
	}
	entry := v.(map[string]any)["fields"].([]any)[0].(map[string]any)
	if entry["name"] != "b" {
		t.Fatalf("expected last occurrence to win, got %v", entry["name"])
	}

	var warned []SimpleIssue
	if _, err := DecodeBytes(in, EnforceOptions{OnDuplicate: DupWarn, IssueSink: func(si SimpleIssue) { warned = append(warned, si) }}); err != nil {
		t.Fatalf("warn: unexpected err: %v", err)
	}
	if len(warned) != 1 || warned[0].Code != "duplicate_key" || warned[0].Path != "/fields/0/name" {
		t.Fatalf("unexpected warn issues: %+v", warned)
	}

	_, err = DecodeBytes(in, EnforceOptions{OnDuplicate: DupError})
	var ie IssueError
	if !errors.As(err, &ie) {
		t.Fatalf("error: expected IssueError, got %v", err)
	}
	if ie.Code != "duplicate_key" || ie.Path != "/fields/0/name" {
		t.Fatalf("unexpected issue: %+v", ie.SimpleIssue)
	}
}

func TestDecodeBytes_SiblingObjectsDoNotShareKeys(t *testing.T) {
	in := []byte(`{"fields":[{"name":"a"},{"name":"b"}]}`)
	if _, err := DecodeBytes(in, EnforceOptions{OnDuplicate: DupError}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestDecodeBytes_Limits(t *testing.T) {
	_, err := DecodeBytes([]byte(`{"a":{"b":{"c":1}}}`), EnforceOptions{MaxDepth: 2})
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "max_depth" || ie.Path != "/a/b" {
		t.Fatalf("expected depth issue at /a/b, got %v", err)
	}

	_, err = DecodeBytes([]byte(`{"fields":[]}`), EnforceOptions{MaxBytes: 4})
	if !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("expected truncated issue, got %v", err)
	}
}

func TestEscapePointerToken(t *testing.T) {
	if got := EscapePointerToken("a/b~c"); got != "a~1b~0c" {
		t.Fatalf("got %q", got)
	}
}
