package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArch(t *testing.T) {
	tests := []struct {
		input   string
		want    Arch
		wantErr bool
	}{
		{input: "arm", want: ARCH_ARM},
		{input: "RISCV", want: ARCH_RISCV},
		{input: "x86", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseArch(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrArchUnsupported)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArchString(t *testing.T) {
	assert.Equal(t, "arm", ARCH_ARM.String())
	assert.Equal(t, "riscv", ARCH_RISCV.String())
	assert.Equal(t, "Arch(9)", Arch(9).String())
	assert.False(t, Arch(-1).Valid())
	assert.Equal(t, []Arch{ARCH_ARM, ARCH_RISCV}, Archs())
	assert.Len(t, Archs(), NUM_ARCH)
}

func TestArchUnmarshalText(t *testing.T) {
	var a Arch
	require.NoError(t, a.UnmarshalText([]byte("riscv")))
	assert.Equal(t, ARCH_RISCV, a)
	assert.Error(t, a.UnmarshalText([]byte("mips")))
	assert.Equal(t, ARCH_RISCV, a)
}
