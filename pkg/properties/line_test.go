package properties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/macropower/propedit/pkg/properties"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		raw  string
		want properties.Line
	}{
		"simple entry": {
			raw:  "a=1",
			want: properties.Line{Raw: "a=1", Kind: properties.KindEntry, Key: "a", RawValue: "1"},
		},
		"spaces around delimiter": {
			raw:  "  user.name = jeff ",
			want: properties.Line{Raw: "  user.name = jeff ", Kind: properties.KindEntry, Key: "user.name", RawValue: " jeff"},
		},
		"split on first equals only": {
			raw:  "url=http://x?a=b",
			want: properties.Line{Raw: "url=http://x?a=b", Kind: properties.KindEntry, Key: "url", RawValue: "http://x?a=b"},
		},
		"empty value": {
			raw:  "empty=",
			want: properties.Line{Raw: "empty=", Kind: properties.KindEntry, Key: "empty", RawValue: ""},
		},
		"blank": {
			raw:  "   ",
			want: properties.Line{Raw: "   ", Kind: properties.KindOpaque},
		},
		"comment with equals": {
			raw:  "# a=1",
			want: properties.Line{Raw: "# a=1", Kind: properties.KindOpaque},
		},
		"indented comment": {
			raw:  "   #a=1",
			want: properties.Line{Raw: "   #a=1", Kind: properties.KindOpaque},
		},
		"no delimiter": {
			raw:  "just some text",
			want: properties.Line{Raw: "just some text", Kind: properties.KindOpaque},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, properties.Parse(tc.raw))
		})
	}
}

func TestLine_Value(t *testing.T) {
	t.Parallel()

	l := properties.Parse("k =  v  ")
	assert.True(t, l.IsEntry())
	assert.Equal(t, "v", l.Value())
	assert.Equal(t, "k =  v", l.Trimmed())
	assert.Equal(t, "entry", l.Kind.String())
	assert.Equal(t, "opaque", properties.Parse("#").Kind.String())
}

func TestLine_EOL(t *testing.T) {
	t.Parallel()

	l := properties.Parse("k=v\r")
	assert.Equal(t, "v", l.Value())
	assert.Equal(t, "k=v", l.Trimmed())
	assert.Equal(t, properties.CRLF, l.EOL())
	assert.Equal(t, properties.LF, properties.Parse("k=v").EOL())
}
