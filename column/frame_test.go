package column

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colcodec/columnar/compress"
)

func TestFrame_BelowThresholdIsRaw(t *testing.T) {
	cfg := DefaultCompressionConfig()
	body := []byte("short")

	framed, err := Frame(body, cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(compress.Raw), framed[0])
	assert.Equal(t, body, framed[1:])
}

func TestFrame_AboveThresholdCompresses(t *testing.T) {
	cfg := DefaultCompressionConfig()
	body := bytes.Repeat([]byte("abcdefgh"), 64) // 512 bytes, above threshold

	framed, err := Frame(body, cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(compress.Deflate), framed[0])
	assert.Less(t, len(framed), len(body))
}

func TestFrame_LevelZeroDisablesCompression(t *testing.T) {
	cfg := CompressionConfig{ThresholdBytes: 0, Level: 0, Method: "default"}
	body := bytes.Repeat([]byte("x"), 1024)

	framed, err := Frame(body, cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(compress.Raw), framed[0])
}

func TestFrameUnframe_RoundTrip(t *testing.T) {
	methods := []string{"default", "best", "fast", "fastest"}
	body := bytes.Repeat([]byte("payload-segment "), 100)

	for _, method := range methods {
		method := method
		t.Run(method, func(t *testing.T) {
			cfg := CompressionConfig{ThresholdBytes: 0, Level: 6, Method: method}

			framed, err := Frame(body, cfg)
			require.NoError(t, err)

			unframed, err := Unframe(framed)
			require.NoError(t, err)
			assert.Equal(t, body, unframed)
		})
	}
}

func TestUnframe_UnknownFlag(t *testing.T) {
	_, err := Unframe([]byte{0xfe, 1, 2, 3})
	assert.Error(t, err)
}

func TestUnframe_Empty(t *testing.T) {
	_, err := Unframe(nil)
	assert.Error(t, err)
}

func TestUnframeBounded_ExceedsLimit(t *testing.T) {
	cfg := CompressionConfig{ThresholdBytes: 0, Level: 6, Method: "default"}
	body := bytes.Repeat([]byte("z"), 1<<16)

	framed, err := Frame(body, cfg)
	require.NoError(t, err)

	_, err = UnframeBounded(framed, 16)
	assert.Error(t, err)
}

func TestFrame_InvalidMethod(t *testing.T) {
	cfg := CompressionConfig{ThresholdBytes: 0, Level: 6, Method: "bogus"}
	_, err := Frame([]byte("data"), cfg)
	assert.Error(t, err)
}
