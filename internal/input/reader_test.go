package input

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	t.Run("splits file into lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		require.NoError(t, os.WriteFile(path, []byte("first\nsecond\nthird"), 0644))

		lines, err := ReadFile(path)

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, lines)
	})

	t.Run("drops invalid utf8 bytes", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		require.NoError(t, os.WriteFile(path, []byte("NullPointerException\xff\xfe occurred\n"), 0644))

		lines, err := ReadFile(path)

		require.NoError(t, err)
		assert.Equal(t, "NullPointerException occurred", lines[0])
	})

	t.Run("missing file returns error", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "nope.log"))
		assert.Error(t, err)
	})
}

func TestRead(t *testing.T) {
	t.Run("consumes stream to EOF", func(t *testing.T) {
		lines, err := Read(strings.NewReader("a\nb\nc\n"))

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, lines)
	})

	t.Run("empty stream", func(t *testing.T) {
		lines, err := Read(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("handles long lines", func(t *testing.T) {
		long := strings.Repeat("x", 200*1024)
		lines, err := Read(strings.NewReader(long))

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Len(t, lines[0], 200*1024)
	})

	t.Run("lines have no length cap", func(t *testing.T) {
		huge := strings.Repeat("y", 2*1024*1024)
		lines, err := Read(strings.NewReader(huge + "\ntail"))

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Len(t, lines[0], 2*1024*1024)
		assert.Equal(t, "tail", lines[1])
	})
}

func TestExtractMessage(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "message field",
			line: `{"level":"error","message":"NullPointerException in build"}`,
			want: "NullPointerException in build",
		},
		{
			name: "msg field",
			line: `{"msg":"future completion failed"}`,
			want: "future completion failed",
		},
		{
			name: "eventMessage field",
			line: `{"eventMessage":"Connection refused","processID":42}`,
			want: "Connection refused",
		},
		{
			name: "non-json passes through",
			line: "E/flutter: plain old log line",
			want: "E/flutter: plain old log line",
		},
		{
			name: "json without message field passes through",
			line: `{"level":"info","code":200}`,
			want: `{"level":"info","code":200}`,
		},
		{
			name: "malformed json passes through",
			line: `{"message": unterminated`,
			want: `{"message": unterminated`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMessage(tt.line))
		})
	}
}

func TestExtractMessages(t *testing.T) {
	lines := []string{
		`{"message":"boom"}`,
		"raw line",
	}

	assert.Equal(t, []string{"boom", "raw line"}, ExtractMessages(lines))
}
