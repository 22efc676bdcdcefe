package classify

import "testing"

func BenchmarkClassify(b *testing.B) {
	lines := []string{
		"I/flutter (12345): app started",
		"E/flutter (12345): NullPointerException in widget build",
		"Unhandled Exception: future completion failed",
		"  at Widget.build (main.dart:42)",
		"  at runApp (app.dart:10)",
		"WARNING: ssl certificate verification disabled",
		"Skipped 42 frames! dropped frames in UI thread",
		"D/EGL_emulation: eglMakeCurrent",
		"",
		"TimeoutException after 30s",
	}

	// Repeat to approximate a real log dump.
	input := make([]string, 0, len(lines)*100)
	for i := 0; i < 100; i++ {
		input = append(input, lines...)
	}

	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Classify(input)
	}
}
