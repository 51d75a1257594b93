package patch_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/propedit/pkg/patch"
)

var fixedTime = time.Date(2026, time.March, 4, 10, 20, 30, 123456000, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

const fixedStamp = "2026-03-04 10:20:30.123456"

func apply(content string, req ...patch.Op) patch.Outcome {
	return patch.Apply(content, req, patch.WithClock(fixedClock), patch.WithTool("test"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		content string
		want    string
		req     patch.Request
		changed bool
	}{
		"update in place": {
			content: "a=1\nb=2\nc=3\n",
			req:     patch.Request{patch.Update("b", "9")},
			want:    "a=1\nb=9\nc=3\n",
			changed: true,
		},
		"update with same value is a no-op": {
			content: "a = 1\nb=  2  \n",
			req:     patch.Request{patch.Update("b", " 2")},
			want:    "a = 1\nb=  2  \n",
		},
		"changed update normalizes spacing": {
			content: "b  =  2\n",
			req:     patch.Request{patch.Update("b", " 3 ")},
			want:    "b=3\n",
			changed: true,
		},
		"delete produces audit block": {
			content: "a=1\nb=2\n",
			req:     patch.Request{patch.Delete("a")},
			want: "\n# The following property (a) was removed by test on " + fixedStamp + "\n" +
				"#a=1\n\nb=2\n",
			changed: true,
		},
		"delete of absent key": {
			content: "a=1\n",
			req:     patch.Request{patch.Delete("missing")},
			want:    "a=1\n",
		},
		"missing update key is appended": {
			content: "a=1\n",
			req:     patch.Request{patch.Update("z", "5")},
			want:    "a=1\n\n# Added by test at " + fixedStamp + "\nz=5\n" + patch.AppendFooter + "\n",
			changed: true,
		},
		"appended keys keep request order": {
			content: "",
			req: patch.Request{
				patch.Update("zeta", "1"),
				patch.Update("alpha", "2"),
				patch.Update("mid", "3"),
			},
			want:    "\n# Added by test at " + fixedStamp + "\nzeta=1\nalpha=2\nmid=3\n" + patch.AppendFooter + "\n",
			changed: true,
		},
		"repeated update keeps first position and last value": {
			content: "",
			req: patch.Request{
				patch.Update("a", "1"),
				patch.Update("b", "2"),
				patch.Update("a", "3"),
			},
			want:    "\n# Added by test at " + fixedStamp + "\na=3\nb=2\n" + patch.AppendFooter + "\n",
			changed: true,
		},
		"opaque lines are verbatim": {
			content: "# a=1\n   \n  a comment-ish line mentioning a\n\t# indented b=2\n",
			req:     patch.Request{patch.Update("a", "2"), patch.Delete("b")},
			want: "# a=1\n   \n  a comment-ish line mentioning a\n\t# indented b=2\n" +
				"\n# Added by test at " + fixedStamp + "\na=2\n" + patch.AppendFooter + "\n",
			changed: true,
		},
		"untouched entries keep their spacing": {
			content: "  x = 1  \ny=2\n",
			req:     patch.Request{patch.Update("y", "3")},
			want:    "  x = 1  \ny=3\n",
			changed: true,
		},
		"only first duplicate is updated": {
			content: "a=1\na=2\n",
			req:     patch.Request{patch.Update("a", "9")},
			want:    "a=9\na=2\n",
			changed: true,
		},
		"update wins over delete for the same key": {
			content: "a=1\n",
			req:     patch.Request{patch.Delete("a"), patch.Update("a", "2")},
			want:    "a=2\n",
			changed: true,
		},
		"empty request": {
			content: "a=1\n\n# c\n",
			want:    "a=1\n\n# c\n",
		},
		"missing final newline is added": {
			content: "a=1",
			want:    "a=1\n",
		},
		"crlf is kept on every emitted line": {
			content: "a=1\r\nb=2\r\nc=3\r\n",
			req:     patch.Request{patch.Update("a", "9"), patch.Delete("b"), patch.Update("d", "4")},
			want: "a=9\r\n" +
				"\r\n# The following property (b) was removed by test on " + fixedStamp + "\r\n" +
				"#b=2\r\n\r\n" +
				"c=3\r\n" +
				"\r\n# Added by test at " + fixedStamp + "\r\nd=4\r\n" + patch.AppendFooter + "\r\n",
			changed: true,
		},
		"crlf unchanged file is byte for byte": {
			content: "a=1\r\n# c\r\n\r\n",
			req:     patch.Request{patch.Update("a", "1"), patch.Delete("z")},
			want:    "a=1\r\n# c\r\n\r\n",
		},
		"mixed endings follow each edited line": {
			content: "a=1\nb=2\r\n",
			req:     patch.Request{patch.Update("a", "8"), patch.Update("b", "9")},
			want:    "a=8\nb=9\r\n",
			changed: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := patch.Apply(tc.content, tc.req, patch.WithClock(fixedClock), patch.WithTool("test"))
			assert.Equal(t, tc.want, got.Content)
			assert.Equal(t, tc.changed, got.Changed)
		})
	}
}

func TestApply_DeleteEveryDuplicate(t *testing.T) {
	t.Parallel()

	got := apply("a=1\nb=2\na=3\n", patch.Delete("a"))
	require.True(t, got.Changed)
	assert.Equal(t, []string{"a", "a"}, got.Deleted)

	lines := got.Lines()
	assert.Equal(t, []string{
		"",
		"# The following property (a) was removed by test on " + fixedStamp,
		"#a=1",
		"",
		"b=2",
		"",
		"# The following property (a) was removed by test on " + fixedStamp,
		"#a=3",
		"",
	}, lines)
}

func TestApply_Summary(t *testing.T) {
	t.Parallel()

	got := apply("a=1\nb=2\nc=3\n",
		patch.Update("a", "1"),
		patch.Update("b", "20"),
		patch.Delete("c"),
		patch.Update("d", "4"),
	)

	require.True(t, got.Changed)
	assert.Equal(t, []string{"b"}, got.Updated)
	assert.Equal(t, []string{"c"}, got.Deleted)
	assert.Equal(t, []string{"d"}, got.Appended)
}

func TestApply_SingleTimestampPerRun(t *testing.T) {
	t.Parallel()

	calls := 0
	clock := func() time.Time {
		calls++

		return fixedTime.Add(time.Duration(calls) * time.Hour)
	}

	got := patch.Apply("a=1\nb=2\n",
		patch.Request{patch.Delete("a"), patch.Delete("b"), patch.Update("c", "3")},
		patch.WithClock(clock),
		patch.WithTimeFormat(func(t time.Time) string { return t.Format(time.RFC3339) }),
	)

	assert.Equal(t, 1, calls)

	stamp := fixedTime.Add(time.Hour).Format(time.RFC3339)
	assert.Equal(t, 3, strings.Count(got.Content, stamp))
	assert.Contains(t, got.Content, "removed by "+patch.DefaultTool+" on "+stamp)
	assert.Contains(t, got.Content, "# Added by "+patch.DefaultTool+" at "+stamp)
}

func TestApply_OrderPreserved(t *testing.T) {
	t.Parallel()

	content := "# header\na=1\nb=2\n\nc=3\nd=4\n"
	got := apply(content, patch.Delete("b"), patch.Update("d", "40"), patch.Update("e", "5"))

	var kept []string

	for _, l := range got.Lines() {
		switch l {
		case "# header", "a=1", "c=3", "d=40", "e=5":
			kept = append(kept, l)
		}
	}

	assert.Equal(t, []string{"# header", "a=1", "c=3", "d=40", "e=5"}, kept)

	lines := got.Lines()
	assert.Equal(t, patch.AppendFooter, lines[len(lines)-1])
}

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	req := patch.Request{
		patch.Update("a", "10"),
		patch.Delete("b"),
		patch.Update("new.key", "value"),
	}

	first := patch.Apply("a=1\nb=2\n", req, patch.WithClock(fixedClock))
	require.True(t, first.Changed)

	second := patch.Apply(first.Content, req, patch.WithClock(func() time.Time {
		return fixedTime.Add(24 * time.Hour)
	}))
	assert.False(t, second.Changed)
	assert.Equal(t, first.Content, second.Content)
	assert.Empty(t, second.Appended)
}

func TestApply_AppendedKeysAreEntriesOnNextRun(t *testing.T) {
	t.Parallel()

	first := apply("a=1\n", patch.Update("z", "5"))
	require.Equal(t, []string{"z"}, first.Appended)

	second := apply(first.Content, patch.Update("z", "6"))
	require.True(t, second.Changed)
	assert.Equal(t, []string{"z"}, second.Updated)
	assert.Empty(t, second.Appended)
	assert.Contains(t, second.Lines(), "z=6")
	assert.NotContains(t, second.Lines(), "z=5")
}

func TestOpKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "update", patch.Update("a", "b").Kind.String())
	assert.Equal(t, "delete", patch.Delete("a").Kind.String())
}
