package exttool

import (
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/src-d/treediff/internal/core"
)

func TestRunDirMaterializesBothSidesAndInvokesTool(t *testing.T) {
	var leftSeen, rightSeen []string
	materializeLeft := func(fs billy.Filesystem, root, path string) error {
		leftSeen = append(leftSeen, path)
		f, err := fs.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = f.Write([]byte("left-" + path))
		return err
	}
	materializeRight := func(fs billy.Filesystem, root, path string) error {
		rightSeen = append(rightSeen, path)
		f, err := fs.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = f.Write([]byte("right-" + path))
		return err
	}

	cfg := Config{Name: "true"}
	err := RunDir(cfg, core.NewLogger(), []string{"a.txt"}, []string{"b.txt"}, materializeLeft, materializeRight)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, leftSeen)
	assert.Equal(t, []string{"b.txt"}, rightSeen)
}

func TestRunDirWarnsOnMaterializeErrorButContinues(t *testing.T) {
	failing := func(fs billy.Filesystem, root, path string) error {
		return os.ErrPermission
	}
	ok := func(fs billy.Filesystem, root, path string) error { return nil }

	cfg := Config{Name: "true"}
	err := RunDir(cfg, core.NewLogger(), []string{"bad.txt"}, []string{"good.txt"}, failing, ok)
	assert.NoError(t, err, "a single path's materialize failure is logged, not fatal")
}

func TestRunDirPropagatesToolFailure(t *testing.T) {
	cfg := Config{Name: "false"}
	noop := func(fs billy.Filesystem, root, path string) error { return nil }
	err := RunDir(cfg, core.NewLogger(), nil, nil, noop, noop)
	assert.Error(t, err)
}

func TestRunFileByFileWritesOnlyPresentSides(t *testing.T) {
	cfg := Config{Name: "true"}
	err := RunFileByFile(cfg, []byte("left content"), nil, true, false)
	require.NoError(t, err)
}

func TestRunFileByFilePropagatesToolFailure(t *testing.T) {
	cfg := Config{Name: "false"}
	err := RunFileByFile(cfg, []byte("l"), []byte("r"), true, true)
	assert.Error(t, err)
}
