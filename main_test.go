package main

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestHandleCLIArgs_HelpPrintsVersionAndUsage(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		output := captureStdout(t, func() {
			handled := handleCLIArgs([]string{arg})
			if !handled {
				t.Fatalf("expected %s arg to be handled", arg)
			}
		})

		if !strings.HasPrefix(output, "nissaya_compare "+appVersion+"\n") {
			t.Errorf("unexpected %s output: got %q", arg, output)
		}
		if !strings.Contains(output, "usage: nissaya_compare") {
			t.Errorf("%s output missing usage: got %q", arg, output)
		}
	}
}

func TestHandleCLIArgs_VersionPrintsVersion(t *testing.T) {
	output := captureStdout(t, func() {
		handled := handleCLIArgs([]string{"--version"})
		if !handled {
			t.Fatal("expected --version arg to be handled")
		}
	})

	expected := "nissaya_compare " + appVersion + "\n"
	if output != expected {
		t.Fatalf("unexpected version output: got %q want %q", output, expected)
	}
}

func TestHandleCLIArgs_NoArgsNotHandled(t *testing.T) {
	if handled := handleCLIArgs(nil); handled {
		t.Fatal("expected nil args to not be handled")
	}
	if handled := handleCLIArgs([]string{"draft1.txt"}); handled {
		t.Fatal("expected a draft path to not be handled")
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "drafts only",
			args: []string{"one.txt", "HEAD~1:one.txt"},
			want: Config{Sources: []string{"one.txt", "HEAD~1:one.txt"}},
		},
		{
			name: "all flags",
			args: []string{"--word", "--side-by-side", "--engine=dmp", "--export-dir=/tmp/reports", "a.txt", "b.txt"},
			want: Config{
				Sources:     []string{"a.txt", "b.txt"},
				ViewMode:    SideBySideView,
				CompareMode: WordMode,
				Engine:      EngineDMP,
				ExportDir:   "/tmp/reports",
			},
		},
		{
			name:    "unknown flag",
			args:    []string{"--color"},
			wantErr: true,
		},
		{
			name:    "unknown engine",
			args:    []string{"--engine=patience"},
			wantErr: true,
		},
		{
			name:    "too many drafts",
			args:    []string{"1.txt", "2.txt", "3.txt", "4.txt", "5.txt"},
			wantErr: true,
		},
		{
			name: "no arguments",
			args: nil,
			want: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgs() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseArgs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	original := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed creating pipe: %v", err)
	}

	os.Stdout = w
	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed closing writer: %v", err)
	}
	os.Stdout = original

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed reading output: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("failed closing reader: %v", err)
	}

	return buf.String()
}
