package snapshot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCodecByName(t *testing.T) {
	tests := []struct {
		name string
		want string
		err  bool
	}{
		{"", "json", false},
		{"json", "json", false},
		{"JSON", "json", false},
		{"yaml", "yaml", false},
		{"yml", "yaml", false},
		{"toml", "", true},
	}
	for _, tt := range tests {
		c, err := CodecByName(tt.name)
		if tt.err {
			if err == nil {
				t.Errorf("CodecByName(%q) expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("CodecByName(%q) error: %v", tt.name, err)
			continue
		}
		if c.Name() != tt.want {
			t.Errorf("CodecByName(%q).Name() = %q, want %q", tt.name, c.Name(), tt.want)
		}
	}
}

func TestCodecsNormalize(t *testing.T) {
	want := map[string]any{
		"a":    1,
		"big":  3.5,
		"name": "x",
		"ok":   true,
		"none": nil,
		"list": []any{1, "two", map[string]any{"three": 3}},
	}
	for _, c := range []Codec{JSON, YAML} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(want)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			got, err := c.Unmarshal(data)
			if err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("decoded mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestYAMLNonStringKeys(t *testing.T) {
	got, err := YAML.Unmarshal([]byte("outer:\n  1: one\n  2: two\n"))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := map[string]any{"outer": map[string]any{"1": "one", "2": "two"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestCodecUnmarshalError(t *testing.T) {
	if _, err := JSON.Unmarshal([]byte("{")); err == nil {
		t.Error("JSON.Unmarshal expected error")
	}
	if _, err := YAML.Unmarshal([]byte("a: [")); err == nil {
		t.Error("YAML.Unmarshal expected error")
	}
}
