package tsv

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{
		{"Account", "Memo"},
		{"Cash", `say "hi"`},
	}
	if err := Write(&buf, rows); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "\"Account\"\t\"Memo\"\n\"Cash\"\t\"say \"\"hi\"\"\"\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  [][]string
	}{
		{
			name:  "quoted fields",
			input: "\"a\"\t\"b c\"\n\"d\"\t\"\"\n",
			want:  [][]string{{"a", "b c"}, {"d", ""}},
		},
		{
			name:  "unquoted fields",
			input: "a\tb\n",
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "doubled quotes and tabs inside a field",
			input: "\"x \"\"y\"\"\"\t\"1\t2\"\n",
			want:  [][]string{{`x "y"`, "1\t2"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Read() returned %d rows, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if strings.Join(got[i], "|") != strings.Join(tt.want[i], "|") {
					t.Errorf("row %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRoundTripKeepsEmbeddedNewline(t *testing.T) {
	var buf bytes.Buffer
	rows := [][]string{{"line1\nline2", "b"}}
	if err := Write(&buf, rows); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(got) != 1 || got[0][0] != "line1\nline2" {
		t.Errorf("Read() = %q", got)
	}
}
