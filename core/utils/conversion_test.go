package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToInt64E(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    int64
		wantErr bool
	}{
		{"Int", 42, 42, false},
		{"Int8", int8(-3), -3, false},
		{"Uint32", uint32(7), 7, false},
		{"WholeFloat", 8.0, 8, false},
		{"FractionalFloat", 8.5, 0, true},
		{"String", " 12 ", 12, false},
		{"Bytes", []byte("9"), 9, false},
		{"BadString", "twelve", 0, true},
		{"Uint64Overflow", uint64(1 << 63), 0, true},
		{"Unsupported", struct{}{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToInt64E(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToUint64E(t *testing.T) {
	got, err := ToUint64E(uint64(1 << 63))
	assert.NoError(t, err)
	assert.Equal(t, uint64(1<<63), got)

	_, err = ToUint64E(-1)
	assert.Error(t, err)

	got, err = ToUint64E("65535")
	assert.NoError(t, err)
	assert.Equal(t, uint64(65535), got)
}

func TestToFloat64E(t *testing.T) {
	got, err := ToFloat64E(float32(1.5))
	assert.NoError(t, err)
	assert.Equal(t, 1.5, got)

	got, err = ToFloat64E(3)
	assert.NoError(t, err)
	assert.Equal(t, 3.0, got)

	_, err = ToFloat64E("abc")
	assert.Error(t, err)
}

func TestToBoolE(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    bool
		wantErr bool
	}{
		{"Bool", true, true, false},
		{"One", 1, true, false},
		{"Zero", uint8(0), false, false},
		{"Two", 2, false, true},
		{"StringTrue", "true", true, false},
		{"StringT", "T", true, false},
		{"BadString", "yes", false, true},
		{"Unsupported", 1.0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBoolE(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "1m0s", ToString(time.Minute))
	assert.Equal(t, "12", ToString(12))
}
