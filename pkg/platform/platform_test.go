package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrings(t *testing.T) {
	require.Equal(t, "Windows", OSWindows.String())
	require.Equal(t, "Linux", OSLinux.String())
	require.Equal(t, "Mac", OSMac.String())
	require.Equal(t, "(null)", OSNull.String())
	require.Equal(t, "(null)", OS(42).String())

	require.Equal(t, "X64", ArchX64.String())
	require.Equal(t, "X86", ArchX86.String())
	require.Equal(t, "Arm", ArchArm.String())
	require.Equal(t, "Arm64", ArchArm64.String())
	require.Equal(t, "(null)", ArchCount.String())

	require.Equal(t, "gc", CompilerGC.String())
	require.Equal(t, "(null)", CompilerNull.String())
}

func TestFromGo(t *testing.T) {
	require.Equal(t, OSLinux, osFromGo("linux"))
	require.Equal(t, OSMac, osFromGo("darwin"))
	require.Equal(t, OSWindows, osFromGo("windows"))
	require.Equal(t, OSNull, osFromGo("plan9"))

	require.Equal(t, ArchX64, archFromGo("amd64"))
	require.Equal(t, ArchX86, archFromGo("386"))
	require.Equal(t, ArchArm, archFromGo("arm"))
	require.Equal(t, ArchArm64, archFromGo("arm64"))
	require.Equal(t, ArchNull, archFromGo("riscv64"))

	require.Equal(t, CompilerGCCGo, compilerFromGo("gccgo"))
	require.Equal(t, CompilerNull, compilerFromGo("tinygo"))
}

func TestCurrent(t *testing.T) {
	ctx := Current()
	require.Equal(t, osFromGo(runtime.GOOS), ctx.OS)
	require.Equal(t, archFromGo(runtime.GOARCH), ctx.Arch)
	require.Equal(t, compilerFromGo(runtime.Compiler), ctx.Compiler)
	require.Equal(t, ctx.OS.String()+"/"+ctx.Arch.String()+" ("+ctx.Compiler.String()+")", ctx.String())
}

func TestParse(t *testing.T) {
	o, err := ParseOS("mac")
	require.NoError(t, err)
	require.Equal(t, OSMac, o)

	o, err = ParseOS("darwin")
	require.NoError(t, err)
	require.Equal(t, OSMac, o)

	_, err = ParseOS("(null)")
	require.Error(t, err)

	a, err := ParseArch("amd64")
	require.NoError(t, err)
	require.Equal(t, ArchX64, a)

	a, err = ParseArch("ARM64")
	require.NoError(t, err)
	require.Equal(t, ArchArm64, a)

	_, err = ParseArch("mips")
	require.Error(t, err)
}
