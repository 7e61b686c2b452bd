package span

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func TestCodecRoundTrip(t *testing.T) {
	cases := map[string]struct {
		span Span
	}{
		"Bounded":      {span: Must(16, 496)},
		"BoundedEmpty": {span: Must(30, 30)},
		"Negative":     {span: Must(-100, -10)},
		"From":         {span: NewFrom(-1)},
		"Until":        {span: NewUntil(4096)},
		"All":          {span: All{}},
		"Void":         {span: Void{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Encode(NewWriter(&buf), tc.span)
			assert.NoError(t, err)

			got, err := Decode(NewReader(&buf))
			assert.NoError(t, err)
			assert.Equal(t, tc.span, got)
		})
	}
}

func TestDecodeUnknownTag(t *testing.T) {
	for _, tag := range []byte{5, 6, 255} {
		_, err := Decode(NewReader(bytes.NewReader([]byte{tag})))
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownTag)
	}
}

func TestDecodeInvalidBounds(t *testing.T) {
	// Bounded payload with start > stop.
	var buf bytes.Buffer
	w := NewWriter(&buf)
	assert.NoError(t, w.WriteByte(0))
	assert.NoError(t, w.WriteLong(100))
	assert.NoError(t, w.WriteLong(0))

	got, err := Decode(NewReader(&buf))
	assert.ErrorIs(t, err, ErrInvalidBounds)
	assert.Nil(t, got)
}

func TestDecodeTruncated(t *testing.T) {
	cases := map[string][]byte{
		"NoTag":        {},
		"BoundedShort": {0, 0, 0, 0},
		"FromShort":    {1, 0},
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(NewReader(bytes.NewReader(data)))
			assert.Error(t, err)
		})
	}
}

func TestEncodeGolden(t *testing.T) {
	spans := []Span{
		Must(16, 496),
		NewFrom(-1),
		NewUntil(4096),
		All{},
		Void{},
	}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, s := range spans {
		if err := Encode(w, s); err != nil {
			t.Fatal(err)
		}
	}
	goldie.New(t).Assert(t, "spans", buf.Bytes())
}
