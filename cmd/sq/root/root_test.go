package root

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shadowquest/internal/config"
	"shadowquest/internal/engine"
	"shadowquest/internal/storage"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sq.db")
	t.Setenv(config.EnvDBPath, path)
	t.Setenv(config.EnvTimezone, "UTC")
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvPlayer, "")
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func loadState(t *testing.T, path string) engine.PlayerState {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	st, err := storage.NewStateRepo(db, "", nil).Load(ctx)
	require.NoError(t, err)
	return st
}

func TestCLI_AddDoStatus(t *testing.T) {
	path := setupEnv(t)

	out := execute(t, "add", "-d", "medium", "Read", "a", "chapter")
	assert.Contains(t, out, "Read a chapter")

	st := loadState(t, path)
	require.Len(t, st.Quests, 1)
	id := st.Quests[0].ID

	out = execute(t, "list")
	assert.Contains(t, out, engine.ShortID(id))

	out = execute(t, "do", engine.ShortID(id))
	assert.Contains(t, out, "+30")

	st = loadState(t, path)
	assert.Equal(t, 30, st.TotalExp)
	assert.Equal(t, 1, st.CurrentStreak)
	assert.True(t, st.Quests[0].Completed)

	out = execute(t, "do", id)
	assert.Contains(t, out, "already")
	assert.Equal(t, 30, loadState(t, path).TotalExp)

	out = execute(t, "status")
	assert.Contains(t, out, engine.Tiers[0].Name)
	assert.Contains(t, out, "170 to "+engine.Tiers[1].Name)
}

func TestCLI_FailAndEval(t *testing.T) {
	path := setupEnv(t)

	execute(t, "add", "-d", "hard", "Deep work")
	id := loadState(t, path).Quests[0].ID

	execute(t, "fail", id)
	st := loadState(t, path)
	assert.Equal(t, 0, st.TotalExp)
	assert.True(t, st.Quests[0].Failed)

	out := execute(t, "eval")
	assert.Contains(t, out, engine.WeakZoneCompletionRatio)

	out = execute(t, "history")
	assert.Contains(t, out, "-30")
}

func TestCLI_RemoveAndUnknownID(t *testing.T) {
	path := setupEnv(t)

	execute(t, "add", "Stretch")
	id := loadState(t, path).Quests[0].ID

	out := execute(t, "rm", id)
	assert.Contains(t, out, "Stretch")
	assert.Empty(t, loadState(t, path).Quests)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"do", "deadbeef"})
	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, engine.ErrQuestNotFound)
}

func TestCLI_Tiers(t *testing.T) {
	setupEnv(t)

	out := execute(t, "tiers")
	for _, tier := range engine.Tiers {
		assert.Contains(t, out, tier.Name)
	}
}

func TestCLI_Reset(t *testing.T) {
	path := setupEnv(t)

	execute(t, "add", "Walk")
	require.Len(t, loadState(t, path).Quests, 1)

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"reset"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
	require.Len(t, loadState(t, path).Quests, 1)

	execute(t, "reset", "--yes")
	assert.Empty(t, loadState(t, path).Quests)
}
