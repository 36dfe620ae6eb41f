package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rerapony/Nuke-KeenTools-sub003/meshio"
)

func writeInputs(t *testing.T, dir string, bodies ...string) []string {
	t.Helper()
	paths := make([]string, len(bodies))
	for i, b := range bodies {
		paths[i] = filepath.Join(dir, "in"+string(rune('a'+i))+".obj")
		require.NoError(t, os.WriteFile(paths[i], []byte(b), 0o644))
	}

	return paths
}

const (
	triA = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	triB = "v 0 0 0\nv 1 0 0\nv 0 1 1\nf 1 2 3\n"
	triC = "v 0 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3\n"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestBlendWritesMeanAndExtremes(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir, triA, triB, triC)
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, append([]string{"blend", "--out", outDir, "--n-pca", "2", "--variance-threshold", "0"}, in...)...)
	require.NoError(t, err)

	mean, err := meshio.ReadFile(filepath.Join(outDir, "mean.obj"))
	require.NoError(t, err)
	require.Equal(t, "mean", mean.Name)
	require.Len(t, mean.Points, 3)
	require.InDelta(t, 1.0/3, mean.Points[2].Z, 1e-12)
	require.Equal(t, [][]int{{0, 1, 2}}, mean.Faces)

	for _, name := range []string{"extreme_01.obj", "extreme_02.obj"} {
		_, err = os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, name)
	}
	_, err = os.Stat(filepath.Join(outDir, "extreme_03.obj"))
	require.True(t, os.IsNotExist(err))
}

func TestBlendRemovesStaleExtremes(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir, triA, triB, triC)
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, append([]string{"blend", "--out", outDir, "--n-pca", "2", "--variance-threshold", "0"}, in...)...)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "extreme_02.obj"))
	require.NoError(t, err)

	_, err = execute(t, append([]string{"blend", "--out", outDir, "--n-pca", "1", "--variance-threshold", "1"}, in...)...)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "extreme_01.obj"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outDir, "extreme_02.obj"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(outDir, "mean.obj"))
	require.NoError(t, err)
}

func TestBlendPresetAndPrettyShow(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir, triA, triB, triC)
	preset := filepath.Join(dir, "knobs.yaml")
	require.NoError(t, os.WriteFile(preset, []byte("n_pca: 2\nvariance_threshold: 0\npretty_show: true\ndelta_x: 3\n"), 0o644))
	outDir := filepath.Join(dir, "out")

	_, err := execute(t, append([]string{"blend", "--out", outDir, "--config", preset}, in...)...)
	require.NoError(t, err)

	plainDir := filepath.Join(dir, "plain")
	_, err = execute(t, append([]string{"blend", "--out", plainDir, "--config", preset, "--pretty-show=false"}, in...)...)
	require.NoError(t, err)

	for i, name := range []string{"mean.obj", "extreme_01.obj", "extreme_02.obj"} {
		spaced, err := meshio.ReadFile(filepath.Join(outDir, name))
		require.NoError(t, err)
		plain, err := meshio.ReadFile(filepath.Join(plainDir, name))
		require.NoError(t, err)
		shift := float64(1-i) * 3
		for k := range plain.Points {
			require.InDelta(t, plain.Points[k].X+shift, spaced.Points[k].X, 1e-12)
		}
	}
}

func TestBlendTopologyMismatch(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir, triA, "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n")
	_, err := execute(t, append([]string{"blend", "--out", filepath.Join(dir, "out")}, in...)...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 3")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir, triA, triB)
	out, err := execute(t, append([]string{"inspect", "--solver", "jacobi"}, in...)...)
	require.NoError(t, err)
	require.Contains(t, out, "rank:    1")
	require.Contains(t, out, "K:       1")
	require.True(t, strings.Contains(out, "0.5"), out)
}

func TestInspectRejectsUnknownSolver(t *testing.T) {
	dir := t.TempDir()
	in := writeInputs(t, dir, triA, triB)
	_, err := execute(t, append([]string{"inspect", "--solver", "qr"}, in...)...)
	require.ErrorContains(t, err, "unsupported solver")
}
